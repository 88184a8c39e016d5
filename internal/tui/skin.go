package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinytelemetry/memory/internal/model"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Base palette shared by every skin.
var (
	ColorGray   = lipgloss.Color("240")
	ColorBlue   = lipgloss.Color("39")
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorWhite  = lipgloss.Color("255")
)

// FaceStyle is how one face value is drawn.
type FaceStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Skin maps face values to visuals. It carries no game state.
type Skin struct {
	Name    string      `yaml:"name"`
	Faces   []FaceStyle `yaml:"faces"`
	Back    string      `yaml:"back"`
	Border  string      `yaml:"border"`
	Cursor  string      `yaml:"cursor"`
	Matched string      `yaml:"matched"`
	Accent  string      `yaml:"accent"`
}

// DefaultSkin mirrors the classic coloured shapes.
func DefaultSkin() Skin {
	return Skin{
		Name: model.DefaultSkin,
		Faces: []FaceStyle{
			{Glyph: "●", Color: "196"},
			{Glyph: "■", Color: "27"},
			{Glyph: "▲", Color: "34"},
			{Glyph: "◆", Color: "226"},
			{Glyph: "●", Color: "208"},
			{Glyph: "■", Color: "129"},
			{Glyph: "▲", Color: "213"},
			{Glyph: "◆", Color: "94"},
		},
		Back:    "░░░",
		Border:  "240",
		Cursor:  "220",
		Matched: "42",
		Accent:  "39",
	}
}

// LoadSkin returns the named skin. "default" (or empty) is built in; any
// other name is read from <configDir>/skins/<name>.yml. Fields missing from
// the file keep their default values.
func LoadSkin(name, configDir string) (Skin, error) {
	skin := DefaultSkin()
	if name == "" || name == model.DefaultSkin {
		return skin, nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return skin, fmt.Errorf("reading skin %q: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return DefaultSkin(), fmt.Errorf("parsing skin %q: %w", name, err)
	}
	if err := skin.validate(); err != nil {
		return DefaultSkin(), fmt.Errorf("skin %q: %w", name, err)
	}
	if skin.Name == "" || skin.Name == model.DefaultSkin {
		skin.Name = name
	}
	return skin, nil
}

func (s Skin) validate() error {
	if len(s.Faces) < model.PairCount {
		return fmt.Errorf("needs %d faces, has %d", model.PairCount, len(s.Faces))
	}
	for i, f := range s.Faces {
		if f.Glyph == "" {
			return fmt.Errorf("face %d has no glyph", i)
		}
	}
	if s.Back == "" {
		return errors.New("card back is empty")
	}
	return nil
}

// face returns the styled glyph for a face value.
func (s Skin) face(value int) string {
	if value < 0 || value >= len(s.Faces) {
		return "?"
	}
	f := s.Faces[value]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color)).Bold(true).Render(f.Glyph)
}
