package editor

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gioui.org/f32"
	"github.com/vsariola/surface"
	"gopkg.in/yaml.v2"
)

type (
	// Preferences are the user tunable settings of the editor. The defaults
	// are embedded from preferences.yml; the user can override any of them
	// in preferences.yml under <UserConfigDir>/surface.
	Preferences struct {
		Window      WindowPreferences
		Tracks      TrackPreferences
		Panels      PanelPreferences
		Grid        float32
		AnimationMs int
		// LayoutFile is where the layout is autosaved, relative to the config
		// directory. Empty disables autosaving.
		LayoutFile string
		YmlError   error `yaml:"-"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	TrackPreferences struct {
		Top    float32
		Height float32
	}

	PanelPreferences struct {
		TitleBarHeight float32
		Width          float32
		Height         float32
		MinWidth       float32
		MinHeight      float32
	}
)

const configDirName = "surface"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// DefaultPreferences returns the embedded defaults, without the user's
// overrides.
func DefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ConfigPath returns the path of filename in the user's config directory.
func ConfigPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configDirName, filename), nil
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	path, err := ConfigPath(filename)
	if err != nil {
		return false, err
	}
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

func MakePreferences() Preferences {
	preferences := DefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

func (p Preferences) TrackGeometry() TrackGeometry {
	return TrackGeometry{Top: p.Tracks.Top, Height: p.Tracks.Height}
}

func (p Preferences) AnimationDuration() time.Duration {
	return time.Duration(max(p.AnimationMs, 0)) * time.Millisecond
}

// WindowConfig returns the configuration of a new panel with the default
// size, placed one grid step in from the top left corner.
func (p Preferences) WindowConfig(id, title string) WindowConfig {
	return WindowConfig{
		ID:             id,
		Title:          title,
		Position:       f32.Pt(p.Grid, p.Grid),
		Size:           surface.Sz(p.Panels.Width, p.Panels.Height),
		MinSize:        surface.Sz(p.Panels.MinWidth, p.Panels.MinHeight),
		TitleBarHeight: p.Panels.TitleBarHeight,
	}
}
