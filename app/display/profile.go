package display

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShortLink describes how a source platform's inline-image short links can be
// reconstructed into probable direct media URLs. The template receives the
// identifier extracted from the short link; the synthesized URL is
// best-effort and never verified to resolve.
type ShortLink struct {
	Host             string `yaml:"host"`
	MediaURLTemplate string `yaml:"media_url_template"`
}

// Profile carries the display-time heuristics: repost indicator phrases and
// short-link reconstruction rules. Keeping these declared rather than inlined
// lets tests pin them down and operators extend them per source platform.
type Profile struct {
	RepostIndicators []string    `yaml:"repost_indicators"`
	ShortLinks       []ShortLink `yaml:"short_links"`
}

func DefaultProfile() *Profile {
	return &Profile{
		RepostIndicators: []string{"rt @", "reposted", "retweet", "repost"},
		ShortLinks: []ShortLink{
			{
				Host:             "pic.twitter.com",
				MediaURLTemplate: "https://pbs.twimg.com/media/%s?format=jpg&name=medium",
			},
		},
	}
}

// LoadProfile reads a profile from a YAML file, falling back to the built-in
// defaults when no path is given. File values replace defaults per key.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	return profile, nil
}
