package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Root == "" {
		return errors.New("paths.root must be set")
	}
	if c.Paths.SourceDir == c.Paths.TextDir || c.Paths.SourceDir == c.Paths.SelectDir {
		return errors.New("paths.source_dir must differ from the output directories")
	}
	if c.Paths.TextDir == c.Paths.SelectDir {
		return errors.New("paths.text_dir and paths.select_dir must differ")
	}
	return nil
}

func (c *Config) validateExtract() error {
	for _, slot := range c.Extract.PreferredSlots {
		if slot < 0 {
			return fmt.Errorf("extract.preferred_slots: slot index %d is negative", slot)
		}
	}
	for _, marker := range c.Extract.Markers {
		if marker == "" {
			return errors.New("extract.markers must not contain empty strings")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
