package config

const (
	defaultDataDir              = "~/.local/share/studytrack"
	defaultLogDir               = "~/.local/share/studytrack/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultNotifyRequestTimeout = 10
	defaultSettingsSpeed        = 1.0
	defaultSettingsTheme        = "light"
	defaultSettingsLanguage     = "en"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Milestones:     true,
			Streaks:        true,
			CourseComplete: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Defaults: Defaults{
			Notifications: true,
			Autoplay:      false,
			Speed:         defaultSettingsSpeed,
			Theme:         defaultSettingsTheme,
			Language:      defaultSettingsLanguage,
		},
	}
}
