package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadConfigFileFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "config.toml", "api_base_url = \"http://api.test\"\noffline = true\nchat_width = 100\n"},
		{"yaml", "config.yaml", "api_base_url: http://api.test\noffline: true\nchat_width: 100\n"},
		{"json", "config.json", `{"api_base_url": "http://api.test", "offline": true, "chat_width": 100}`},
	}

	repo := NewConfigRepository()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.file, tc.content)

			cfg, err := repo.LoadConfigFile(path)
			if err != nil {
				t.Fatalf("load %s: %v", tc.name, err)
			}
			if cfg.APIBaseURL != "http://api.test" {
				t.Fatalf("unexpected api url %q", cfg.APIBaseURL)
			}
			if !cfg.Offline {
				t.Fatal("expected offline to be set")
			}
			if cfg.ChatWidth != 100 {
				t.Fatalf("unexpected chat width %d", cfg.ChatWidth)
			}
		})
	}
}

func TestLoadConfigFileRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "config.ini", "api_base_url=http://api.test\n")

	if _, err := NewConfigRepository().LoadConfigFile(path); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FINTEACH_API_URL", "http://env.test")
	t.Setenv("FINTEACH_OFFLINE", "true")
	t.Setenv("FINTEACH_CHAT_WIDTH", "90")

	cfg := NewConfigRepository().LoadEnv()
	if cfg.APIBaseURL != "http://env.test" {
		t.Fatalf("unexpected api url %q", cfg.APIBaseURL)
	}
	if !cfg.Offline {
		t.Fatal("expected offline from env")
	}
	if cfg.ChatWidth != 90 {
		t.Fatalf("unexpected chat width %d", cfg.ChatWidth)
	}
}
