package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/vsariola/surface/editor"
	"github.com/vsariola/surface/editor/gioui"
	"github.com/vsariola/surface/version"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var versionFlag = flag.Bool("v", false, "print version")

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	broker := editor.NewBroker()
	pointer := &gioui.GlobalPointer{}
	frames := &gioui.FrameClock{}
	model := editor.NewModel(broker, pointer, frames, editor.MakePreferences())
	surfaceUi := gioui.NewSurface(model, pointer, frames)

	if a := flag.Args(); len(a) > 0 {
		f, err := os.Open(a[0])
		if err != nil {
			log.Printf("could not open layout '%s': %v", a[0], err)
		} else {
			model.ReadLayout(f)
		}
	} else {
		model.LoadAutosave()
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		editor.TrySend(broker.CloseGUI, struct{}{})
		if !editor.TimeoutWait(broker.FinishedGUI, 3*time.Second) {
			log.Print("the editor did not quit in time, exiting without saving")
			os.Exit(1)
		}
	}()

	go func() {
		surfaceUi.Main()
		model.Close()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close() // error handling omitted for example
			runtime.GC()    // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}
