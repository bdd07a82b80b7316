//go:build !tinygo

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"

	"gopkg.in/yaml.v3"
)

type yamlAlarm struct {
	Hour     uint8  `yaml:"hour"`
	Minute   uint8  `yaml:"minute"`
	Meridiem string `yaml:"meridiem"`
	Enabled  bool   `yaml:"enabled"`
	Label    string `yaml:"label,omitempty"`
}

// YAMLStore keeps the alarm in a YAML file on the host.
type YAMLStore struct {
	path string
}

// NewYAMLStore returns a store backed by path. The file is created on the
// first Save.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Path returns the backing file.
func (s *YAMLStore) Path() string { return s.path }

func (s *YAMLStore) Load() (alarm.Config, bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return alarm.Config{}, false, nil
		}
		return alarm.Config{}, false, fmt.Errorf("read alarm file: %w", err)
	}

	var doc yamlAlarm
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return alarm.Config{}, false, fmt.Errorf("parse alarm yaml: %v: %w", err, ErrCorrupt)
	}

	cfg := alarm.Config{
		Hour:    doc.Hour,
		Minute:  doc.Minute,
		Enabled: doc.Enabled,
		Label:   doc.Label,
	}
	switch strings.ToUpper(strings.TrimSpace(doc.Meridiem)) {
	case "AM":
		cfg.IsAM = true
	case "PM":
	default:
		return alarm.Config{}, false, fmt.Errorf("meridiem %q: %w", doc.Meridiem, ErrCorrupt)
	}
	if !cfg.Valid() {
		return alarm.Config{}, false, fmt.Errorf("alarm %s: %w", cfg, ErrCorrupt)
	}
	return cfg, true, nil
}

func (s *YAMLStore) Save(cfg alarm.Config) error {
	if !cfg.Valid() {
		return fmt.Errorf("save alarm %s: %w", cfg, alarm.ErrInvalidConfig)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create alarm directory: %w", err)
		}
	}

	doc := yamlAlarm{
		Hour:     cfg.Hour,
		Minute:   cfg.Minute,
		Meridiem: clocktime.Meridiem(cfg.IsAM),
		Enabled:  cfg.Enabled,
		Label:    cfg.Label,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal alarm yaml: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("write alarm file: %w", err)
	}
	return nil
}
