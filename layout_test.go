package surface_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vsariola/surface"
)

const exampleLayout = `windows:
  - id: mixer
    title: mixer
    x: 100
    y: 40
    width: 300
    height: 28
    minimized: true
    restoreheight: 200
tracks:
  - id: drums
    name: drums
  - id: bass
`

func TestReadLayout(t *testing.T) {
	l, err := surface.ReadLayout(strings.NewReader(exampleLayout))
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}
	if len(l.Windows) != 1 || len(l.Tracks) != 2 {
		t.Fatalf("expected 1 window and 2 tracks, got %d and %d", len(l.Windows), len(l.Tracks))
	}
	w := l.Windows[0]
	if w.X != 100 || w.Y != 40 || !w.Minimized || w.RestoreHeight != 200 {
		t.Errorf("window decoded wrong: %+v", w)
	}
	if l.Tracks[1].ID != "bass" || l.Tracks[1].Name != "" {
		t.Errorf("track decoded wrong: %+v", l.Tracks[1])
	}
}

func TestReadLayoutRejectsDuplicateIDs(t *testing.T) {
	doc := "tracks:\n  - id: a\n  - id: a\n"
	if _, err := surface.ReadLayout(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for duplicate track ids")
	}
}

func TestReadLayoutRejectsUnknownFields(t *testing.T) {
	doc := "windows:\n  - id: a\n    colour: red\n"
	if _, err := surface.ReadLayout(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for unknown field")
	}
}

func TestEmptyLayout(t *testing.T) {
	l, err := surface.ReadLayout(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document should be a valid layout: %v", err)
	}
	if len(l.Windows) != 0 || len(l.Tracks) != 0 {
		t.Errorf("expected empty layout, got %+v", l)
	}
}

func TestWriteLayout(t *testing.T) {
	l := surface.Layout{
		Tracks: []surface.TrackLayout{{ID: "lead"}},
	}
	var buf bytes.Buffer
	if err := l.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "id: lead") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "windows") {
		t.Errorf("empty window list should be omitted:\n%s", buf.String())
	}
}

func TestSizeMax(t *testing.T) {
	got := surface.Sz(50, 120).Max(surface.Sz(100, 80))
	if got != surface.Sz(100, 120) {
		t.Errorf("Max = %v", got)
	}
}
