package config

// Rewatchfile represents the structure of the rewatch.yaml configuration file.
type Rewatchfile struct {
	Version     string               `yaml:"version"`
	Fingerprint string               `yaml:"fingerprint"`
	Cache       CacheDTO             `yaml:"cache"`
	Interval    string               `yaml:"interval"`
	Trigger     string               `yaml:"trigger"`
	Watches     map[string]*WatchDTO `yaml:"watches"`
}

// CacheDTO represents the cache section of the configuration.
type CacheDTO struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// WatchDTO represents a watch definition in the configuration.
type WatchDTO struct {
	Root        string   `yaml:"root"`
	Names       []string `yaml:"names"`
	Exclude     []string `yaml:"exclude"`
	Directories bool     `yaml:"directories"`
	Recursive   *bool    `yaml:"recursive"`
	RelativeIDs bool     `yaml:"relative_ids"`
	TrustMtime  bool     `yaml:"trust_mtime"`
}
