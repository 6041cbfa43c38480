package config

// SnapshotsConfig controls the on-disk daily match snapshots.
type SnapshotsConfig struct {
	Enabled       bool
	Folder        string
	RetentionDays int
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:       boolEnvOrDefault(envSnapshotsEnabled, true),
		Folder:        envOrDefault(envSnapshotsFolder, defaultSnapshotsFolder),
		RetentionDays: intEnvOrDefault(envSnapshotsRetention, defaultSnapshotsRetention),
	}
}
