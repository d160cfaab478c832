package config

import "time"

const (
	defaultTitle         = "Personal Site"
	defaultContentDir    = "content"
	defaultStaticDir     = "static"
	defaultOutputDir     = "./site"
	defaultServeAddr     = ":8080"
	defaultWatchDebounce = 2 * time.Second
	defaultEventsSubject = "sitegen.builds"
	defaultNATSCluster   = "nats://127.0.0.1:4222"
	defaultHistoryDB     = ".sitegen/history.db"
)

func applyDefaults(config *Config) {
	if config.Site.Title == "" {
		config.Site.Title = defaultTitle
	}
	if config.Content.Directory == "" {
		config.Content.Directory = defaultContentDir
	}
	if config.Content.StaticDir == "" {
		config.Content.StaticDir = defaultStaticDir
	}
	if config.Output.Directory == "" {
		config.Output.Directory = defaultOutputDir
	}
	if config.Serve.Addr == "" {
		config.Serve.Addr = defaultServeAddr
	}
	if config.Daemon.WatchDebounce == "" {
		config.Daemon.WatchDebounce = defaultWatchDebounce.String()
	}
	if config.Events.Subject == "" {
		config.Events.Subject = defaultEventsSubject
	}
	if config.Events.Enabled && config.Events.NATSURL == "" {
		config.Events.NATSURL = defaultNATSCluster
	}
	if config.History.Database == "" {
		config.History.Database = defaultHistoryDB
	}
	if config.Logging.Level == "" {
		config.Logging.Level = string(LogLevelInfo)
	}
	if config.Logging.Format == "" {
		config.Logging.Format = string(LogFormatText)
	}
}
