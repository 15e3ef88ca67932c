package display

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileDefaults(t *testing.T) {
	profile, err := LoadProfile("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(profile.RepostIndicators) == 0 {
		t.Error("Expected built-in repost indicators")
	}
	if len(profile.ShortLinks) == 0 {
		t.Error("Expected built-in short-link rules")
	}
}

func TestLoadProfileFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	content := `repost_indicators:
  - "boosted"
short_links:
  - host: "pics.example.net"
    media_url_template: "https://cdn.example.net/%s.jpg"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(profile.RepostIndicators) != 1 || profile.RepostIndicators[0] != "boosted" {
		t.Errorf("Expected file indicators to replace defaults, got: %v", profile.RepostIndicators)
	}
	if len(profile.ShortLinks) != 1 || profile.ShortLinks[0].Host != "pics.example.net" {
		t.Errorf("Expected file short links, got: %v", profile.ShortLinks)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile("/nonexistent/sources.yml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte("repost_indicators: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := LoadProfile(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
