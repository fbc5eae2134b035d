package model

// Stats storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Settings contains user preferences loaded from settings.yaml.
type Settings struct {
	BlockList            []string
	StatsBackend         string
	DataDir              string
	LogLevel             string
	DestinationCommand   []string
	SoundEnabled         bool
	NotificationsEnabled bool
}

// DefaultBlockList returns the built-in list of distracting destinations.
func DefaultBlockList() []string {
	return []string{
		"instagram.com",
		"tiktok.com",
		"facebook.com",
		"twitter.com",
		"youtube.com",
		"reddit.com",
		"x.com",
		"snapchat.com",
	}
}

// DefaultSettings returns default settings for FocusGuard.
func DefaultSettings() Settings {
	return Settings{
		BlockList:            DefaultBlockList(),
		StatsBackend:         BackendFile,
		LogLevel:             "info",
		SoundEnabled:         true,
		NotificationsEnabled: true,
	}
}
