package config

import (
	"fmt"
	"os"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

const configTemplate = `# sitegen configuration
site:
  title: %q
  author: %q
  description: ""
  base_url: ""

content:
  directory: content
  static_dir: static

output:
  directory: ./site
  clean: false

serve:
  addr: ":8080"
  metrics: false

# daemon:
#   rebuild_interval: 10m
#   watch_debounce: 2s

# events:
#   enabled: true
#   nats_url: nats://127.0.0.1:4222
#   subject: sitegen.builds

logging:
  level: info
  format: text
`

// Init writes a starter configuration file.
func Init(configPath string, force bool, title, author string) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return sgerrors.New(sgerrors.CategoryConfig, sgerrors.SeverityFatal, "configuration file already exists, use --force to overwrite").
			WithContext("path", configPath)
	}

	data := fmt.Sprintf(configTemplate, title, author)
	if err := os.WriteFile(configPath, []byte(data), 0o644); err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to write configuration file").
			WithContext("path", configPath)
	}
	return nil
}
