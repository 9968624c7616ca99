package surface

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type (
	// Layout is the persisted arrangement of an editor surface: the geometry
	// of the floating windows in stacking order (bottom first) and the
	// canonical order of the tracks. Window contents and track contents are
	// not part of the layout; they belong to the project file.
	Layout struct {
		Windows []WindowLayout `yaml:",omitempty"`
		Tracks  []TrackLayout  `yaml:",omitempty"`
	}

	WindowLayout struct {
		ID            string
		Title         string  `yaml:",omitempty"`
		X, Y          float32
		Width, Height float32
		Minimized     bool    `yaml:",omitempty"`
		RestoreHeight float32 `yaml:",omitempty"`
	}

	TrackLayout struct {
		ID   string
		Name string `yaml:",omitempty"`
	}
)

// ReadLayout parses a YAML layout document.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && err != io.EOF {
		return Layout{}, fmt.Errorf("could not decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Write encodes the layout as YAML.
func (l Layout) Write(w io.Writer) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("could not encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not encode layout: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Validate checks that the ids in the layout are non-empty and unique within
// their kind.
func (l Layout) Validate() error {
	seen := map[string]bool{}
	for _, w := range l.Windows {
		if w.ID == "" {
			return fmt.Errorf("layout has a window without an id")
		}
		if seen[w.ID] {
			return fmt.Errorf("layout has duplicate window id %q", w.ID)
		}
		seen[w.ID] = true
	}
	clear(seen)
	for _, t := range l.Tracks {
		if t.ID == "" {
			return fmt.Errorf("layout has a track without an id")
		}
		if seen[t.ID] {
			return fmt.Errorf("layout has duplicate track id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
