package config

import (
	"net/url"
	"strings"
	"time"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Validate checks the configuration for values that would make a build or
// serve run fail later in a less obvious way.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return sgerrors.New(sgerrors.CategoryConfig, sgerrors.SeverityFatal, "site.title must not be empty")
	}

	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "" && u.Host == "") {
			return sgerrors.New(sgerrors.CategoryConfig, sgerrors.SeverityFatal, "site.base_url is not a valid URL").
				WithContext("base_url", c.Site.BaseURL)
		}
	}

	if c.Output.Directory == "" {
		return sgerrors.New(sgerrors.CategoryConfig, sgerrors.SeverityFatal, "output.directory must not be empty")
	}

	if c.Daemon.RebuildInterval != "" {
		dur, err := time.ParseDuration(c.Daemon.RebuildInterval)
		if err != nil {
			return sgerrors.Wrap(err, sgerrors.CategoryConfig, sgerrors.SeverityFatal, "daemon.rebuild_interval is not a valid duration")
		}
		if dur < 0 {
			return sgerrors.New(sgerrors.CategoryConfig, sgerrors.SeverityFatal, "daemon.rebuild_interval must not be negative")
		}
	}

	if c.Daemon.WatchDebounce != "" {
		if _, err := time.ParseDuration(c.Daemon.WatchDebounce); err != nil {
			return sgerrors.Wrap(err, sgerrors.CategoryConfig, sgerrors.SeverityFatal, "daemon.watch_debounce is not a valid duration")
		}
	}

	return nil
}
