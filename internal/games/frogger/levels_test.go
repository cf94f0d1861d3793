package frogger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLevels(t *testing.T) {
	levels, err := DefaultLevels()
	if err != nil {
		t.Fatalf("DefaultLevels() failed: %v", err)
	}
	if len(levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d", len(levels))
	}
	if levels[0].Lanes != 3 {
		t.Errorf("Level 1 should have 3 lanes, got %d", levels[0].Lanes)
	}
	for _, lvl := range levels[1:] {
		if lvl.Lanes != 4 {
			t.Errorf("Level %d should have 4 lanes, got %d", lvl.Number, lvl.Lanes)
		}
	}
	for i, lvl := range levels {
		if lvl.Number != i+1 {
			t.Errorf("Level at index %d numbered %d", i, lvl.Number)
		}
	}
}

func TestParseLevelsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "levels: []", "empty"},
		{"not yaml", "levels: [[[", "cannot parse"},
		{"lanes", "levels:\n  - lanes: 5", "lanes must be 3 or 4"},
		{"kind", "levels:\n  - lanes: 3\n    objects:\n      - {kind: log, row: 2, col: 2}", "unknown object kind"},
		{"color", "levels:\n  - lanes: 3\n    objects:\n      - {kind: gem, color: red, row: 2, col: 2}", "unknown gem color"},
		{"off board", "levels:\n  - lanes: 3\n    objects:\n      - {kind: rock, row: 6, col: 2}", "off the board"},
		{"gem in water", "levels:\n  - lanes: 3\n    objects:\n      - {kind: gem, color: blue, row: 0, col: 2}", "off the board"},
		{"start cell", "levels:\n  - lanes: 3\n    objects:\n      - {kind: rock, row: 5, col: 3}", "start cell"},
		{"duplicate", "levels:\n  - lanes: 3\n    objects:\n      - {kind: rock, row: 2, col: 2}\n      - {kind: gem, color: green, row: 2, col: 2}", "more than one object"},
		{"water blocked", "levels:\n  - lanes: 3\n    objects:\n" +
			"      - {kind: rock, row: 0, col: 1}\n      - {kind: rock, row: 0, col: 2}\n" +
			"      - {kind: rock, row: 0, col: 3}\n      - {kind: rock, row: 0, col: 4}\n" +
			"      - {kind: rock, row: 0, col: 5}", "every water cell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevels([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseLevelsDefaultName(t *testing.T) {
	levels, err := ParseLevels([]byte("levels:\n  - lanes: 3\n  - lanes: 4\n    name: Second"))
	if err != nil {
		t.Fatalf("ParseLevels() failed: %v", err)
	}
	if levels[0].Name != "Level 1" || levels[1].Name != "Second" {
		t.Errorf("Unexpected names %q, %q", levels[0].Name, levels[1].Name)
	}
}

func TestLoadLevelsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte("levels:\n  - lanes: 4"), 0o644); err != nil {
		t.Fatal(err)
	}

	levels, err := LoadLevelsFile(path)
	if err != nil {
		t.Fatalf("LoadLevelsFile() failed: %v", err)
	}
	if len(levels) != 1 || levels[0].Lanes != 4 {
		t.Errorf("Unexpected levels %+v", levels)
	}

	if _, err := LoadLevelsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLevelFor(t *testing.T) {
	levels, err := DefaultLevels()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		number   int
		wantName string
	}{
		{1, levels[0].Name},
		{2, levels[1].Name},
		{3, levels[2].Name},
		{4, levels[2].Name},
		{10, levels[2].Name},
	}
	for _, tt := range tests {
		got := levelFor(levels, tt.number)
		if got.Name != tt.wantName {
			t.Errorf("levelFor(%d) = %q, want %q", tt.number, got.Name, tt.wantName)
		}
		if got.Number != tt.number {
			t.Errorf("levelFor(%d).Number = %d", tt.number, got.Number)
		}
	}
}

func TestLevelMap(t *testing.T) {
	levels, err := DefaultLevels()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"#~~~#",
		"====g",
		"=b===",
		"=====",
		"=#=g=",
		"..S..",
	}
	got := levels[1].Map()
	if len(got) != len(want) {
		t.Fatalf("Map() returned %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}
