package config

import (
	"errors"
	"fmt"
	"regexp"
)

var bitratePattern = regexp.MustCompile(`^[0-9]+k?$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateFades(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !bitratePattern.MatchString(c.Output.Bitrate) {
		return fmt.Errorf("output.bitrate must look like 192k or 192000, got %q", c.Output.Bitrate)
	}
	return nil
}

func (c *Config) validateFades() error {
	if c.Fades.InMillis < 0 {
		return errors.New("fades.in_ms must not be negative")
	}
	if c.Fades.OutMillis < 0 {
		return errors.New("fades.out_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
