package domain

import "path/filepath"

const (
	// RewatchDirName is the name of the internal state directory.
	RewatchDirName = ".rewatch"

	// CacheDirName is the name of the directory holding file-backed snapshots.
	CacheDirName = "cache"

	// SnapshotDBName is the name of the SQLite snapshot database.
	SnapshotDBName = "snapshots.db"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "rewatch.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStatePath returns the default root directory for rewatch state.
func DefaultStatePath() string {
	return RewatchDirName
}

// SnapshotDirPath returns the directory holding file-backed snapshots below base.
func SnapshotDirPath(base string) string {
	return filepath.Join(base, CacheDirName)
}

// SnapshotDBPath returns the SQLite snapshot database path below base.
func SnapshotDBPath(base string) string {
	return filepath.Join(base, SnapshotDBName)
}
