package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Tests in this file mutate process environment and therefore do not run in parallel.

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "5000" {
					t.Errorf("Expected default ServerPort to be '5000', got '%s'", cfg.ServerPort)
				}
				if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
					t.Errorf("Expected default CORS origins [*], got %v", cfg.CORSAllowedOrigins)
				}
				if cfg.RateLimit != "50-S" {
					t.Errorf("Expected default RateLimit '50-S', got '%s'", cfg.RateLimit)
				}
				if cfg.RedisURL != "" {
					t.Errorf("Expected RedisURL to be empty by default, got '%s'", cfg.RedisURL)
				}
				if cfg.RequestTimeout != 30*time.Second {
					t.Errorf("Expected default RequestTimeout 30s, got %v", cfg.RequestTimeout)
				}
				if cfg.EnableHSTS {
					t.Error("Expected EnableHSTS to default to false")
				}
			},
		},
		{
			name: "overrides",
			envVars: map[string]string{
				"SERVER_PORT":             "9090",
				"CORS_ALLOWED_ORIGINS":    "http://a.test, http://b.test,http://a.test",
				"SERVER_DEBUG_MODE":       "1",
				"RATE_LIMIT":              "100-M",
				"REQUEST_TIMEOUT_SECONDS": "5",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "9090" {
					t.Errorf("Expected ServerPort '9090', got '%s'", cfg.ServerPort)
				}
				if len(cfg.CORSAllowedOrigins) != 2 {
					t.Errorf("Expected 2 distinct origins, got %v", cfg.CORSAllowedOrigins)
				}
				if !cfg.ServerDebugMode {
					t.Error("Expected ServerDebugMode to be true")
				}
				if cfg.RequestTimeout != 5*time.Second {
					t.Errorf("Expected RequestTimeout 5s, got %v", cfg.RequestTimeout)
				}
			},
		},
		{
			name:        "invalid port",
			envVars:     map[string]string{"SERVER_PORT": "http"},
			expectError: true,
		},
		{
			name:        "invalid rate",
			envVars:     map[string]string{"RATE_LIMIT": "fast"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"SERVER_PORT", "CORS_ALLOWED_ORIGINS", "SERVER_DEBUG_MODE", "RATE_LIMIT", "REDIS_URL", "REQUEST_TIMEOUT_SECONDS", "ENABLE_HSTS"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.expectError {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadConsole(t *testing.T) {
	for _, key := range []string{"ZENITH_TASKS_FILE", "ZENITH_CATEGORIES_FILE", "ZENITH_WORK_MINUTES", "ZENITH_BREAK_MINUTES", "ZENITH_DEBUG"} {
		t.Setenv(key, "")
	}

	t.Run("defaults without file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := LoadConsole("")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.TasksFile != "tasks.txt" || cfg.CategoriesFile != "categories.txt" {
			t.Errorf("Unexpected default files: %+v", cfg)
		}
		if cfg.WorkMinutes != 25 || cfg.BreakMinutes != 5 {
			t.Errorf("Unexpected default minutes: %+v", cfg)
		}
	})

	t.Run("yaml file with env override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zenith.yaml")
		content := "tasks_file: /data/t.txt\ncategories_file: /data/c.txt\nwork_minutes: 50\nbreak_minutes: 10\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		t.Setenv("ZENITH_BREAK_MINUTES", "15")

		cfg, err := LoadConsole(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.TasksFile != "/data/t.txt" || cfg.CategoriesFile != "/data/c.txt" {
			t.Errorf("Expected files from yaml, got %+v", cfg)
		}
		if cfg.WorkMinutes != 50 {
			t.Errorf("Expected WorkMinutes 50, got %d", cfg.WorkMinutes)
		}
		if cfg.BreakMinutes != 15 {
			t.Errorf("Expected env override BreakMinutes 15, got %d", cfg.BreakMinutes)
		}
	})

	t.Run("explicit missing file", func(t *testing.T) {
		if _, err := LoadConsole(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Expected error for missing explicit config file")
		}
	})

	t.Run("negative minutes", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ZENITH_WORK_MINUTES", "-5")
		if _, err := LoadConsole(""); err == nil {
			t.Error("Expected error for negative minutes")
		}
	})

	t.Run("minutes over a day", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ZENITH_BREAK_MINUTES", "1441")
		if _, err := LoadConsole(""); err == nil {
			t.Error("Expected error for break_minutes over a day")
		}
	})
}
