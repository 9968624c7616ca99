package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsariola/surface"
	"github.com/vsariola/surface/export"
	"github.com/vsariola/surface/version"
)

func filterExtensions(input map[string]string, extensions []string) map[string]string {
	ret := map[string]string{}
	for _, ext := range extensions {
		extWithDot := "." + strings.TrimPrefix(ext, ".")
		if inputVal, ok := input[extWithDot]; ok {
			ret[extWithDot] = inputVal
		}
	}
	return ret
}

func main() {
	safe := flag.Bool("n", false, "Never overwrite files; if file already exists and would be overwritten, give an error.")
	list := flag.Bool("l", false, "Do not write files; just list files that would change instead.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	tmplDir := flag.String("t", "", "Use the templates in this directory instead of the standard templates.")
	outPath := flag.String("o", "", "Directory or filename where to write the exported documents. Extension is ignored. Directory and its parents are created if needed. By default, everything is placed in the same directory where the original layout file is.")
	extensionsOut := flag.String("e", "", "Output only the documents with these comma separated extensions. For example: html,css")
	trackTop := flag.Float64("top", 8, "Offset of the first track row.")
	trackHeight := flag.Float64("height", 40, "Height of one track row.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	newExporter := func(name string) (*export.Exporter, error) {
		var e *export.Exporter
		var err error
		if *tmplDir != "" {
			e, err = export.NewFromTemplates(name, *tmplDir)
		} else {
			e, err = export.New(name)
		}
		if err != nil {
			return nil, err
		}
		e.TrackTop = float32(*trackTop)
		e.TrackHeight = float32(*trackHeight)
		return e, nil
	}
	output := func(filename string, extension string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		_, name := filepath.Split(filename)
		dir := filepath.Dir(filename)
		if *outPath != "" {
			// check if it's an already existing directory and the user just forgot trailing slash
			if info, err := os.Stat(*outPath); err == nil && info.IsDir() {
				dir = *outPath
			} else {
				outdir, outname := filepath.Split(*outPath)
				if outdir != "" {
					dir = outdir
				}
				if outname != "" {
					name = outname
				}
			}
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
		f := filepath.Join(dir, name)
		original, err := os.ReadFile(f)
		if err == nil {
			if bytes.Equal(original, contents) {
				return nil // no need to update
			}
			if !*list && *safe {
				return fmt.Errorf("file %v would be overwritten by exporter", f)
			}
		}
		if *list {
			fmt.Println(f)
			return nil
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	process := func(filename string) error {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("could not read file %v: %v", filename, err)
		}
		l, err := surface.ReadLayout(file)
		file.Close()
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		e, err := newExporter(name)
		if err != nil {
			return fmt.Errorf("error creating exporter: %v", err)
		}
		docs, err := e.Layout(l)
		if err != nil {
			return fmt.Errorf("exporting layout failed: %v", err)
		}
		if len(*extensionsOut) > 0 {
			docs = filterExtensions(docs, strings.Split(*extensionsOut, ","))
		}
		for extension, doc := range docs {
			if err := output(filename, extension, []byte(doc)); err != nil {
				return fmt.Errorf("error outputting %v file: %v", extension, err)
			}
		}
		return nil
	}
	retval := 0
	for _, param := range flag.Args() {
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			files, err := filepath.Glob(filepath.Join(param, "*.yml"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for yml files: %v\n", param, err)
				retval = 1
				continue
			}
			for _, file := range files {
				if err := process(file); err != nil {
					fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
					retval = 1
				}
			}
		} else {
			if err := process(param); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", param, err)
				retval = 1
			}
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Surface layout exporter. Input .yml layouts, outputs documents showing them (e.g. .html, .css and .svg files).\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
