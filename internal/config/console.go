package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/benvon/zenith-task/internal/timer"
	"gopkg.in/yaml.v3"
)

// DefaultConsoleConfigFile is read when no config path is given
const DefaultConsoleConfigFile = "zenith.yaml"

// ConsoleConfig holds console application settings
type ConsoleConfig struct {
	TasksFile      string `yaml:"tasks_file"`
	CategoriesFile string `yaml:"categories_file"`
	WorkMinutes    int    `yaml:"work_minutes"`
	BreakMinutes   int    `yaml:"break_minutes"`
	Debug          bool   `yaml:"debug"`
}

// LoadConsole reads console settings from an optional YAML file and then
// applies ZENITH_* environment overrides. An explicit path that does not
// exist is an error; a missing default file is not.
func LoadConsole(path string) (*ConsoleConfig, error) {
	cfg := &ConsoleConfig{
		TasksFile:      "tasks.txt",
		CategoriesFile: "categories.txt",
		WorkMinutes:    25,
		BreakMinutes:   5,
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConsoleConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.TasksFile = getEnv("ZENITH_TASKS_FILE", cfg.TasksFile)
	cfg.CategoriesFile = getEnv("ZENITH_CATEGORIES_FILE", cfg.CategoriesFile)
	cfg.WorkMinutes = getEnvInt("ZENITH_WORK_MINUTES", cfg.WorkMinutes)
	cfg.BreakMinutes = getEnvInt("ZENITH_BREAK_MINUTES", cfg.BreakMinutes)
	cfg.Debug = getEnvBool("ZENITH_DEBUG", cfg.Debug)

	if cfg.TasksFile == "" || cfg.CategoriesFile == "" {
		return nil, fmt.Errorf("tasks_file and categories_file must not be empty")
	}
	if _, err := timer.FromMinutes(cfg.WorkMinutes, cfg.BreakMinutes); err != nil {
		return nil, fmt.Errorf("work_minutes and break_minutes must be between 0 and %d: %w", timer.MaxMinutes, err)
	}

	return cfg, nil
}
