package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/mines"
)

type Config struct {
	Mode      string `json:"mode"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	MineCount int    `json:"mine_count"`
	LogFile   string `json:"log_file"`
	LogLevel  string `json:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:      "development",
		Rows:      9,
		Cols:      9,
		MineCount: 10,
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":       c.Mode,
		"rows":       c.Rows,
		"cols":       c.Cols,
		"mine_count": c.MineCount,
		"log_file":   c.LogFile,
		"log_level":  c.LogLevel,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Params is the board a bare "n" command starts.
func (c Config) Params() mines.GameParams {
	return mines.GameParams{Rows: c.Rows, Cols: c.Cols, MineCount: c.MineCount}
}

// Level defaults to debug in development and info otherwise.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel != "" {
		return logrus.ParseLevel(c.LogLevel)
	}
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Params().Validate()
}

// ApplyEnv lets DEVELOPMENT override the configured mode; "0" means
// production.
func ApplyEnv(config *Config) {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return
	}
	if development != "0" {
		config.Mode = "development"
	} else {
		config.Mode = "production"
	}
}

// ReadConfig overlays the JSON file at path onto config.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
