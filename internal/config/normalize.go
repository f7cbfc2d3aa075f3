package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTool(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTool() error {
	c.Tool.ImageCmd = strings.TrimSpace(c.Tool.ImageCmd)
	if c.Tool.ImageCmd == "" {
		if value, ok := os.LookupEnv("CORONA_IMAGE_CMD"); ok && strings.TrimSpace(value) != "" {
			c.Tool.ImageCmd = strings.TrimSpace(value)
		} else {
			c.Tool.ImageCmd = defaultImageCmd
		}
	}
	// Bare names stay bare so PATH lookup still applies; anything that looks
	// like a path gets expanded.
	if strings.ContainsAny(c.Tool.ImageCmd, `/\`) || strings.HasPrefix(c.Tool.ImageCmd, "~") {
		expanded, err := expandPath(c.Tool.ImageCmd)
		if err != nil {
			return fmt.Errorf("tool.image_cmd: %w", err)
		}
		c.Tool.ImageCmd = expanded
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir != "" {
		if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
			return fmt.Errorf("output.dir: %w", err)
		}
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Prefix = strings.TrimSpace(c.Output.Prefix)
	return nil
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
	if dir := strings.TrimSpace(c.Logging.Dir); dir != "" {
		if expanded, err := expandPath(dir); err == nil {
			c.Logging.Dir = expanded
		}
	} else {
		c.Logging.Dir = ""
	}
}
