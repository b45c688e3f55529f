package domain

import "go.trai.ch/zerr"

var (
	// ErrEnumerationFailed is returned when the live set of a watch cannot be listed.
	ErrEnumerationFailed = zerr.New("failed to enumerate resources")

	// ErrResourceReadFailed is returned when a resource's content cannot be read for fingerprinting.
	ErrResourceReadFailed = zerr.New("failed to read resource")

	// ErrCacheBackendFailed is returned when the snapshot cache's underlying store fails.
	ErrCacheBackendFailed = zerr.New("snapshot cache backend failed")

	// ErrRootNotFound is returned when a watch root does not exist.
	ErrRootNotFound = zerr.New("watch root does not exist")

	// ErrRootNotDir is returned when a watch root is not a directory.
	ErrRootNotDir = zerr.New("watch root is not a directory")

	// ErrInvalidPattern is returned when a name or exclude glob cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrUnknownFingerprint is returned when a fingerprint strategy name is not registered.
	ErrUnknownFingerprint = zerr.New("unknown fingerprint strategy, expected 'crc32', 'xxhash' or 'sha256'")

	// ErrUnknownCacheBackend is returned when a cache backend name is not supported.
	ErrUnknownCacheBackend = zerr.New("unknown cache backend, expected 'memory', 'file' or 'sqlite'")

	// ErrUnknownTrigger is returned when a watch trigger name is not supported.
	ErrUnknownTrigger = zerr.New("unknown trigger, expected 'poll' or 'fsnotify'")

	// ErrInvalidInterval is returned when the watch interval is not positive.
	ErrInvalidInterval = zerr.New("interval must be positive")

	// ErrInvalidWatchName is returned when a watch name contains invalid characters.
	ErrInvalidWatchName = zerr.New("watch name can only contain alphanumeric characters, hyphens and underscores")

	// ErrMissingRoot is returned when a watch has no root configured.
	ErrMissingRoot = zerr.New("watch root is required")

	// ErrNoWatches is returned when the configuration declares no watches.
	ErrNoWatches = zerr.New("no watches configured")

	// ErrWatchNotFound is returned when a requested watch is not declared in the configuration.
	ErrWatchNotFound = zerr.New("watch not found")

	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find rewatch.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrChangesDetected is returned by detect --exit-code when at least one watch changed.
	ErrChangesDetected = zerr.New("changes detected")

	// ErrDetectionFailed is returned when one or more detection passes fail.
	ErrDetectionFailed = zerr.New("detection failed")

	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create snapshot store directory")

	// ErrStoreReadFailed is returned when a stored snapshot cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read snapshot")

	// ErrStoreUnmarshalFailed is returned when a stored snapshot cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal snapshot")

	// ErrStoreMarshalFailed is returned when a snapshot cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal snapshot")

	// ErrStoreWriteFailed is returned when a snapshot cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write snapshot")

	// ErrStoreOpenFailed is returned when the snapshot database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open snapshot database")

	// ErrStoreQueryFailed is returned when a snapshot database statement fails.
	ErrStoreQueryFailed = zerr.New("snapshot database query failed")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrTriggerStartFailed is returned when a pass trigger cannot be started.
	ErrTriggerStartFailed = zerr.New("failed to start trigger")
)
