// Package export renders a surface.Layout into documents other programs can
// show, e.g. a static HTML page with the windows and tracks in place. The
// documents are produced by text templates; the standard ones are embedded,
// but a directory of custom templates can be used instead.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/surface"
)

type Exporter struct {
	Template *template.Template
	// Name is the base name of the exported files, used e.g. to link the
	// stylesheet from the page.
	Name string
	// TrackTop and TrackHeight place the track rows, like the track geometry
	// of the editor.
	TrackTop    float32
	TrackHeight float32
}

//go:embed templates/*
var templateFS embed.FS

const (
	defaultTrackTop    = 8
	defaultTrackHeight = 40
	// trackColumnWidth is the width of the track column in the exported
	// documents.
	trackColumnWidth = 240
)

// New returns a new exporter using the standard templates.
func New(name string) (*Exporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.*")
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	return newExporter(tmpl, name), nil
}

// NewFromTemplates returns a new exporter using the templates in
// templateDirectory. Every file in the directory is a template; the
// extension of its name is the extension of the document it produces.
func NewFromTemplates(name, templateDirectory string) (*Exporter, error) {
	globPtrn := filepath.Join(templateDirectory, "*.*")
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseGlob(globPtrn)
	if err != nil {
		return nil, fmt.Errorf(`could not create template based on directory "%v": %v`, templateDirectory, err)
	}
	return newExporter(tmpl, name), nil
}

func newExporter(tmpl *template.Template, name string) *Exporter {
	if name == "" {
		name = "layout"
	}
	return &Exporter{Template: tmpl, Name: name, TrackTop: defaultTrackTop, TrackHeight: defaultTrackHeight}
}

// Formats returns the extensions, with the dot, of the documents the
// exporter produces.
func (e *Exporter) Formats() []string {
	var ret []string
	for _, t := range e.Template.Templates() {
		if ext := filepath.Ext(t.Name()); ext != "" && t.Tree != nil {
			ret = append(ret, ext)
		}
	}
	slices.Sort(ret)
	return slices.Compact(ret)
}

// Layout renders l with every template. The result maps the extension of
// each document to its contents.
func (e *Exporter) Layout(l surface.Layout) (map[string]string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	data := e.macros(l)
	retmap := map[string]string{}
	for _, t := range e.Template.Templates() {
		extension := filepath.Ext(t.Name())
		if extension == "" || t.Tree == nil {
			continue
		}
		result := bytes.NewBufferString("")
		if err := e.Template.ExecuteTemplate(result, t.Name(), &data); err != nil {
			return nil, fmt.Errorf(`could not execute template "%v": %v`, t.Name(), err)
		}
		retmap[extension] = result.String()
	}
	return retmap, nil
}

// Document renders l with the template producing the given extension, e.g.
// ".html".
func (e *Exporter) Document(l surface.Layout, extension string) ([]byte, error) {
	docs, err := e.Layout(l)
	if err != nil {
		return nil, err
	}
	doc, ok := docs[extension]
	if !ok {
		return nil, fmt.Errorf("no template produces %v documents", extension)
	}
	return []byte(doc), nil
}

type (
	// LayoutMacros is the data the templates are executed with. Geometry is
	// rounded to whole pixels.
	LayoutMacros struct {
		Name          string
		Windows       []WindowMacros
		Tracks        []TrackMacros
		Width, Height int
		TrackWidth    int
	}

	WindowMacros struct {
		surface.WindowLayout
		Left, Top     int
		Right, Bottom int
		PxWidth       int
		PxHeight      int
		Z             int
	}

	TrackMacros struct {
		surface.TrackLayout
		Index int
		Top   int
		Px    int
	}
)

func (e *Exporter) macros(l surface.Layout) LayoutMacros {
	ret := LayoutMacros{Name: e.Name, TrackWidth: trackColumnWidth}
	for i, t := range l.Tracks {
		tm := TrackMacros{
			TrackLayout: t,
			Index:       i,
			Top:         round(e.TrackTop + float32(i)*e.TrackHeight),
			Px:          round(e.TrackHeight),
		}
		ret.Tracks = append(ret.Tracks, tm)
		ret.Height = max(ret.Height, tm.Top+tm.Px)
	}
	ret.Width = trackColumnWidth
	for i, w := range l.Windows {
		wm := WindowMacros{
			WindowLayout: w,
			Left:         round(w.X),
			Top:          round(w.Y),
			PxWidth:      round(w.Width),
			PxHeight:     round(w.Height),
			Z:            i + 1,
		}
		wm.Right = wm.Left + wm.PxWidth
		wm.Bottom = wm.Top + wm.PxHeight
		ret.Windows = append(ret.Windows, wm)
		ret.Width = max(ret.Width, wm.Right)
		ret.Height = max(ret.Height, wm.Bottom)
	}
	return ret
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
