package fingerprint_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rewatch/internal/adapters/fingerprint"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestFingerprinters_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		strategy ports.Fingerprinter
		input    string
		want     domain.Fingerprint
	}{
		{
			name:     "crc32 of test",
			strategy: fingerprint.NewCRC32(),
			input:    "test",
			want:     "d87f7e0c",
		},
		{
			name:     "crc32 of empty input",
			strategy: fingerprint.NewCRC32(),
			input:    "",
			want:     "00000000",
		},
		{
			name:     "xxhash of empty input",
			strategy: fingerprint.NewXXHash(),
			input:    "",
			want:     "ef46db3751d8e999",
		},
		{
			name:     "sha256 of test",
			strategy: fingerprint.NewSHA256(),
			input:    "test",
			want:     "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.strategy.Fingerprint(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFingerprinters_Deterministic(t *testing.T) {
	for _, f := range []ports.Fingerprinter{fingerprint.NewCRC32(), fingerprint.NewXXHash(), fingerprint.NewSHA256()} {
		t.Run(f.Name(), func(t *testing.T) {
			a, err := f.Fingerprint(strings.NewReader("hello world"))
			require.NoError(t, err)
			b, err := f.Fingerprint(strings.NewReader("hello world"))
			require.NoError(t, err)
			c, err := f.Fingerprint(strings.NewReader("hello world!"))
			require.NoError(t, err)

			assert.Equal(t, a, b)
			assert.NotEqual(t, a, c)
			assert.NotEqual(t, domain.DirectoryFingerprint, a)
		})
	}
}

func TestFingerprinters_ReadError(t *testing.T) {
	for _, f := range []ports.Fingerprinter{fingerprint.NewCRC32(), fingerprint.NewXXHash(), fingerprint.NewSHA256()} {
		t.Run(f.Name(), func(t *testing.T) {
			_, err := f.Fingerprint(failingReader{})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	reg := fingerprint.NewRegistry()

	for _, name := range []string{domain.FingerprintCRC32, domain.FingerprintXXHash, domain.FingerprintSHA256} {
		f, err := reg.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	f, err := reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, domain.FingerprintCRC32, f.Name(), "empty name selects the reference strategy")

	_, err = reg.Get("md5")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown fingerprint strategy")
}
