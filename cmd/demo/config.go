package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// Config holds the demo's window settings, loaded from the embedded
// configs/demo.json.
type Config struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Framerate    int    `json:"framerate"`
}

// LoadConfig reads and parses configs/demo.json from fsys.
func LoadConfig(fsys fs.FS) (*Config, error) {
	data, err := fs.ReadFile(fsys, "configs/demo.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read demo.json: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo.json: %w", err)
	}

	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("demo.json: invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Framerate <= 0 {
		cfg.Framerate = 60
	}

	return &cfg, nil
}
