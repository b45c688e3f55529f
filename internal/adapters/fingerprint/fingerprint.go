// Package fingerprint provides content fingerprint strategies.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Fingerprinter = (*CRC32)(nil)
	_ ports.Fingerprinter = (*XXHash)(nil)
	_ ports.Fingerprinter = (*SHA256)(nil)
)

// CRC32 fingerprints content with the IEEE CRC32 checksum.
type CRC32 struct{}

// NewCRC32 creates a CRC32 fingerprinter.
func NewCRC32() *CRC32 {
	return &CRC32{}
}

// Name returns "crc32".
func (*CRC32) Name() string {
	return domain.FingerprintCRC32
}

// Fingerprint returns the 8 hex digit CRC32 of r.
func (*CRC32) Fingerprint(r io.Reader) (domain.Fingerprint, error) {
	hasher := crc32.NewIEEE()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
	}
	return domain.Fingerprint(fmt.Sprintf("%08x", hasher.Sum32())), nil
}

// XXHash fingerprints content with 64-bit xxHash.
type XXHash struct{}

// NewXXHash creates an xxHash fingerprinter.
func NewXXHash() *XXHash {
	return &XXHash{}
}

// Name returns "xxhash".
func (*XXHash) Name() string {
	return domain.FingerprintXXHash
}

// Fingerprint returns the 16 hex digit xxHash of r.
func (*XXHash) Fingerprint(r io.Reader) (domain.Fingerprint, error) {
	hasher := xxhash.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
	}
	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}

// SHA256 fingerprints content with SHA-256, for callers that want collision resistance.
type SHA256 struct{}

// NewSHA256 creates a SHA-256 fingerprinter.
func NewSHA256() *SHA256 {
	return &SHA256{}
}

// Name returns "sha256".
func (*SHA256) Name() string {
	return domain.FingerprintSHA256
}

// Fingerprint returns the hex encoded SHA-256 digest of r.
func (*SHA256) Fingerprint(r io.Reader) (domain.Fingerprint, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", zerr.Wrap(err, domain.ErrFileHashFailed.Error())
	}
	return domain.Fingerprint(hex.EncodeToString(hasher.Sum(nil))), nil
}
