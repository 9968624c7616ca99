package export_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vsariola/surface"
	"github.com/vsariola/surface/export"
)

var testLayout = surface.Layout{
	Windows: []surface.WindowLayout{
		{ID: "mixer", X: 100, Y: 100, Width: 280, Height: 200},
		{ID: "browser", Title: "sample browser", X: 300.4, Y: 40, Width: 200, Height: 24, Minimized: true, RestoreHeight: 300},
	},
	Tracks: []surface.TrackLayout{
		{ID: "drums", Name: "drums"},
		{ID: "bass"},
	},
}

func TestFormats(t *testing.T) {
	e, err := export.New("demo")
	if err != nil {
		t.Fatalf("could not create exporter: %v", err)
	}
	if got, want := e.Formats(), []string{".css", ".html", ".svg"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Formats() = %v, want %v", got, want)
	}
}

func TestLayout(t *testing.T) {
	e, err := export.New("demo")
	if err != nil {
		t.Fatalf("could not create exporter: %v", err)
	}
	docs, err := e.Layout(testLayout)
	if err != nil {
		t.Fatalf("could not export layout: %v", err)
	}
	tests := []struct {
		ext  string
		want []string
	}{
		{".css", []string{
			"#window-mixer { left: 100px; top: 100px; width: 280px; height: 200px; z-index: 1; }",
			"#window-browser { left: 300px; top: 40px; width: 200px; height: 24px; z-index: 2; }",
			"#track-drums { top: 8px; height: 40px; line-height: 40px; }",
			"#track-bass { top: 48px; height: 40px; line-height: 40px; }",
			"width: 500px;",
			"height: 300px;",
		}},
		{".html", []string{
			"<title>Demo</title>",
			`<li id="track-drums">Drums</li>`,
			`<li id="track-bass">Bass</li>`,
			`<section class="window" id="window-mixer">`,
			`<section class="window minimized" id="window-browser">`,
			"<header>Sample Browser</header>",
			"#window-mixer {",
		}},
		{".svg", []string{
			`viewBox="0 0 500 300"`,
			`<rect x="100" y="100" width="280" height="200"`,
			`<text x="8" y="68" dominant-baseline="middle" fill="#dedede">Bass</text>`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			doc, ok := docs[tt.ext]
			if !ok {
				t.Fatalf("no %v document", tt.ext)
			}
			for _, w := range tt.want {
				if !strings.Contains(doc, w) {
					t.Errorf("%v document does not contain %q:\n%v", tt.ext, w, doc)
				}
			}
		})
	}
	if strings.Index(docs[".html"], "track-drums") > strings.Index(docs[".html"], "track-bass") {
		t.Errorf("tracks are not in canonical order")
	}
}

func TestLayoutInvalid(t *testing.T) {
	e, err := export.New("")
	if err != nil {
		t.Fatalf("could not create exporter: %v", err)
	}
	l := surface.Layout{Tracks: []surface.TrackLayout{{ID: "a"}, {ID: "a"}}}
	if _, err := e.Layout(l); err == nil {
		t.Fatalf("expected an error for duplicate track ids")
	}
}

func TestDocument(t *testing.T) {
	e, err := export.New("")
	if err != nil {
		t.Fatalf("could not create exporter: %v", err)
	}
	doc, err := e.Document(testLayout, ".svg")
	if err != nil {
		t.Fatalf("could not export svg: %v", err)
	}
	if !strings.HasPrefix(string(doc), "<svg") {
		t.Errorf("svg document starts with %q", string(doc[:min(len(doc), 20)]))
	}
	if _, err := e.Document(testLayout, ".pdf"); err == nil {
		t.Errorf("expected an error for an unknown extension")
	}
}

func TestNewFromTemplates(t *testing.T) {
	dir := t.TempDir()
	tmpl := `{{range .Tracks}}{{.ID | upper}} {{end}}{{len .Windows}}`
	if err := os.WriteFile(filepath.Join(dir, "order.txt"), []byte(tmpl), 0644); err != nil {
		t.Fatalf("could not write template: %v", err)
	}
	e, err := export.NewFromTemplates("demo", dir)
	if err != nil {
		t.Fatalf("could not create exporter: %v", err)
	}
	docs, err := e.Layout(testLayout)
	if err != nil {
		t.Fatalf("could not export layout: %v", err)
	}
	want := map[string]string{".txt": "DRUMS BASS 2"}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("got %v, want %v", docs, want)
	}
	if _, err := export.NewFromTemplates("demo", filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected an error for a directory without templates")
	}
}
