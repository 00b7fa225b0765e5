package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"load-ledger-service/internal/report"
)

// Get returns the environment value for key, or fallback when unset or
// empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadReportLayout reads a page layout from a yaml file. An empty path
// returns the built-in default layout; a file that exists but fails to
// parse or validate is an error rather than a silent fallback.
func LoadReportLayout(path string) (report.PageLayout, error) {
	if path == "" {
		return report.DefaultLayout(), nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return report.PageLayout{}, fmt.Errorf("load report layout: read %q: %w", path, err)
	}

	layout := report.DefaultLayout()
	if err := yaml.Unmarshal(bytes, &layout); err != nil {
		return report.PageLayout{}, fmt.Errorf("load report layout: parse %q: %w", path, err)
	}

	if err := layout.Validate(); err != nil {
		return report.PageLayout{}, fmt.Errorf("load report layout: %q: %w", path, err)
	}

	return layout, nil
}
