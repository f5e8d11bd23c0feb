package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EmptyPathUsesDefaultScene(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Boxes) == 0 {
		t.Error("default scene has no boxes")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	scene := `
touch_simulation = false

[[box]]
id = "a"
x = 1
y = 1
w = 10
h = 5
label = "A"
color = "#112233"

[[box]]
id = "b"
parent = "a"
x = 2
y = 2
w = 4
h = 2
`
	if err := os.WriteFile(path, []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TouchSimulation {
		t.Error("touch_simulation = true, want false")
	}
	if len(cfg.Boxes) != 2 {
		t.Fatalf("got %d boxes, want 2", len(cfg.Boxes))
	}
	if cfg.Boxes[1].Parent != "a" {
		t.Errorf("parent = %q, want %q", cfg.Boxes[1].Parent, "a")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		boxes   []BoxConfig
		wantErr bool
	}{
		"valid": {
			boxes: []BoxConfig{
				{ID: "a", W: 10, H: 5},
				{ID: "b", Parent: "a", W: 4, H: 2},
			},
		},
		"missing id": {
			boxes:   []BoxConfig{{W: 10, H: 5}},
			wantErr: true,
		},
		"duplicate id": {
			boxes: []BoxConfig{
				{ID: "a", W: 10, H: 5},
				{ID: "a", W: 4, H: 2},
			},
			wantErr: true,
		},
		"unknown parent": {
			boxes:   []BoxConfig{{ID: "a", Parent: "ghost", W: 10, H: 5}},
			wantErr: true,
		},
		"empty geometry": {
			boxes:   []BoxConfig{{ID: "a", W: 0, H: 5}},
			wantErr: true,
		},
		"forward parent reference": {
			boxes: []BoxConfig{
				{ID: "child", Parent: "outer", W: 4, H: 2},
				{ID: "outer", W: 10, H: 5},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := (&Config{Boxes: tc.boxes}).Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_BuildTree(t *testing.T) {
	cfg := &Config{Boxes: []BoxConfig{
		{ID: "a", X: 1, Y: 1, W: 10, H: 5, Color: "#102030"},
		{ID: "b", Parent: "a", X: 2, Y: 2, W: 4, H: 2},
	}}

	root, boxes, err := cfg.BuildTree(80, 24)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if boxes["b"].Parent() != boxes["a"] {
		t.Errorf("b's parent = %v, want a", boxes["b"].Parent())
	}
	if boxes["a"].Parent() != root {
		t.Errorf("a's parent = %v, want the root", boxes["a"].Parent())
	}
	if got := root.At(3, 3); got != boxes["b"] {
		t.Errorf("At(3,3) = %v, want the nested box", got)
	}
}

func TestConfig_BuildTreeRejectsBadColor(t *testing.T) {
	cfg := &Config{Boxes: []BoxConfig{
		{ID: "a", W: 10, H: 5, Color: "red"},
	}}
	if _, _, err := cfg.BuildTree(80, 24); err == nil {
		t.Error("BuildTree accepted a malformed color")
	}
}
