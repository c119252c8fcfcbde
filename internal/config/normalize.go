package config

import "strings"

func (c *Config) normalize() error {
	c.normalizeOutput()
	c.normalizeBookend()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOutput() {
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = defaultOutputDir
	}
	if strings.TrimSpace(c.Output.Bitrate) == "" {
		c.Output.Bitrate = defaultBitrate
	}
}

func (c *Config) normalizeBookend() {
	if strings.TrimSpace(c.Bookend.Prefix) == "" {
		c.Bookend.Prefix = defaultBookendPrefix
	}
	normalized := make([]string, 0, len(c.Bookend.Extensions))
	for _, ext := range c.Bookend.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	if len(normalized) == 0 {
		normalized = []string{".mp3"}
	}
	c.Bookend.Extensions = normalized
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
