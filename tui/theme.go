package tui

import (
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"

	"github.com/zvonler/vex/utils"
)

// Theme holds the listing screen colors as lipgloss color values, either
// ANSI palette indexes or hex strings.
type Theme struct {
	Title    string `yaml:"title"`
	Selected string `yaml:"selected"`
	Author   string `yaml:"author"`
	URL      string `yaml:"url"`
	Muted    string `yaml:"muted"`
	Loading  string `yaml:"loading"`
}

var DefaultTheme = Theme{
	Title:    "11",
	Selected: "10",
	Author:   "9",
	URL:      "14",
	Muted:    "8",
	Loading:  "12",
}

// LoadTheme reads a YAML theme file. A missing or undecodable file falls
// back to the defaults rather than failing the program.
func LoadTheme(path string) Theme {
	theme := DefaultTheme
	if path == "" {
		return theme
	}

	if exists, err := utils.PathExists(path); err != nil || !exists {
		log.Printf("No theme file at %q. Using defaults", path)
		return theme
	}

	if content, err := os.ReadFile(path); err != nil {
		log.Printf("Unreadable theme file: %s", err)
	} else if err = yaml.Unmarshal(content, &theme); err != nil {
		log.Printf("Failed to decode theme, using defaults instead: %s", err)
		theme = DefaultTheme
	}
	return theme
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title))
}

func (t Theme) selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Selected))
}

func (t Theme) authorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Author))
}

func (t Theme) urlStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.URL))
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
}

func (t Theme) loadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Loading))
}
