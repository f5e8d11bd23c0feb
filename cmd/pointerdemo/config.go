package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/kestrel-ui/go-pointer/tcellhost"
)

// Config describes the demo scene: the boxes on screen and whether the
// host runs in touch-simulation mode.
type Config struct {
	TouchSimulation bool        `toml:"touch_simulation"`
	Boxes           []BoxConfig `toml:"box"`
}

// BoxConfig is one rectangle in the scene. Parent names another box's id;
// boxes without a parent hang off the root.
type BoxConfig struct {
	ID     string `toml:"id"`
	Parent string `toml:"parent"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	W      int    `toml:"w"`
	H      int    `toml:"h"`
	Label  string `toml:"label"`
	Color  string `toml:"color"`
}

// DefaultConfig returns the scene used when no config file is given: two
// side-by-side targets with a child nested in the first.
func DefaultConfig() *Config {
	return &Config{
		TouchSimulation: true,
		Boxes: []BoxConfig{
			{ID: "left", X: 2, Y: 2, W: 28, H: 12, Label: "left", Color: "#2a4d69"},
			{ID: "inner", Parent: "left", X: 6, Y: 5, W: 10, H: 4, Label: "inner", Color: "#4b86b4"},
			{ID: "right", X: 40, Y: 2, W: 28, H: 12, Label: "right", Color: "#63ace5"},
		},
	}
}

// LoadConfig reads a TOML scene description. An empty path yields the
// default scene.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ids are present and unique and every parent exists.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Boxes))
	for _, b := range c.Boxes {
		if b.ID == "" {
			return fmt.Errorf("box at (%d,%d) has no id", b.X, b.Y)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate box id %q", b.ID)
		}
		seen[b.ID] = true
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("box %q has empty geometry", b.ID)
		}
	}
	for _, b := range c.Boxes {
		if b.Parent != "" && !seen[b.Parent] {
			return fmt.Errorf("box %q names unknown parent %q", b.ID, b.Parent)
		}
	}
	return nil
}

// BuildTree realizes the scene as a box tree rooted at a full-screen box.
func (c *Config) BuildTree(screenW, screenH int) (*tcellhost.Box, map[string]*tcellhost.Box, error) {
	root := tcellhost.NewBox("root", 0, 0, screenW, screenH)
	boxes := make(map[string]*tcellhost.Box, len(c.Boxes))

	for _, bc := range c.Boxes {
		box := tcellhost.NewBox(bc.ID, bc.X, bc.Y, bc.W, bc.H)
		box.SetLabel(bc.Label)
		if bc.Color != "" {
			color, err := parseColor(bc.Color)
			if err != nil {
				return nil, nil, fmt.Errorf("box %q: %w", bc.ID, err)
			}
			box.SetStyle(tcell.StyleDefault.Background(color).Foreground(tcell.ColorWhite))
		}
		boxes[bc.ID] = box
	}
	for _, bc := range c.Boxes {
		parent := root
		if bc.Parent != "" {
			parent = boxes[bc.Parent]
		}
		parent.AddChild(boxes[bc.ID])
	}
	return root, boxes, nil
}

// parseColor reads a #rrggbb hex color.
func parseColor(s string) (tcell.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("bad color %q, want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	return tcell.NewRGBColor(
		int32(v>>16&0xff),
		int32(v>>8&0xff),
		int32(v&0xff),
	), nil
}
