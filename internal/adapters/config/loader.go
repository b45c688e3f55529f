// Package config provides the configuration loader for rewatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"github.com/gobwas/glob"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration schema version this loader understands.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validWatchNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load reads the configuration at path, or discovers rewatch.yaml by walking up
// from cwd when path is empty.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	configPath := path
	if configPath == "" {
		found, err := findConfiguration(cwd)
		if err != nil {
			return nil, err
		}
		configPath = found
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	var file Rewatchfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.build(filepath.Clean(configPath), &file)
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) build(configPath string, file *Rewatchfile) (*domain.Config, error) {
	configDir := filepath.Dir(configPath)

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, assuming %q", file.Version, domain.ConfigFileName, SupportedVersion))
	}

	cfg := &domain.Config{
		Dir:         configDir,
		Fingerprint: defaultString(file.Fingerprint, domain.FingerprintCRC32),
		Backend:     defaultString(file.Cache.Backend, domain.BackendFile),
		StatePath:   resolvePath(configDir, defaultString(file.Cache.Path, domain.DefaultStatePath())),
		Interval:    domain.DefaultInterval,
		Trigger:     defaultString(file.Trigger, domain.TriggerPoll),
		Watches:     make(map[string]*domain.Watch, len(file.Watches)),
	}

	if err := validateSettings(cfg); err != nil {
		return nil, err
	}

	if file.Interval != "" {
		interval, err := time.ParseDuration(file.Interval)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidInterval.Error()), "interval", file.Interval)
		}
		if interval <= 0 {
			return nil, zerr.With(domain.ErrInvalidInterval, "interval", file.Interval)
		}
		cfg.Interval = interval
	}

	if len(file.Watches) == 0 {
		return nil, zerr.With(domain.ErrNoWatches, "path", configPath)
	}

	for name, dto := range file.Watches {
		watch, err := buildWatch(configDir, cfg.StatePath, name, dto)
		if err != nil {
			return nil, zerr.With(err, "watch", name)
		}
		cfg.Watches[name] = watch
	}

	return cfg, nil
}

func validateSettings(cfg *domain.Config) error {
	if !slices.Contains([]string{domain.FingerprintCRC32, domain.FingerprintXXHash, domain.FingerprintSHA256}, cfg.Fingerprint) {
		return zerr.With(domain.ErrUnknownFingerprint, "fingerprint", cfg.Fingerprint)
	}
	if !slices.Contains([]string{domain.BackendMemory, domain.BackendFile, domain.BackendSQLite}, cfg.Backend) {
		return zerr.With(domain.ErrUnknownCacheBackend, "backend", cfg.Backend)
	}
	if !slices.Contains([]string{domain.TriggerPoll, domain.TriggerFSNotify}, cfg.Trigger) {
		return zerr.With(domain.ErrUnknownTrigger, "trigger", cfg.Trigger)
	}
	return nil
}

func buildWatch(configDir, statePath, name string, dto *WatchDTO) (*domain.Watch, error) {
	if !validWatchNameRegex.MatchString(name) {
		return nil, zerr.With(domain.ErrInvalidWatchName, "watch_name", name)
	}
	if dto == nil || dto.Root == "" {
		return nil, domain.ErrMissingRoot
	}

	for _, pattern := range slices.Concat(dto.Names, dto.Exclude) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
		}
	}

	recursive := true
	if dto.Recursive != nil {
		recursive = *dto.Recursive
	}

	return &domain.Watch{
		Name:         name,
		Root:         resolvePath(configDir, dto.Root),
		Names:        slices.Clone(dto.Names),
		Exclude:      slices.Clone(dto.Exclude),
		Directories:  dto.Directories,
		Recursive:    recursive,
		RelativeIDs:  dto.RelativeIDs,
		TrustModTime: dto.TrustMtime,
		StatePath:    statePath,
	}, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func resolvePath(configDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(configDir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or passed explicitly by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
