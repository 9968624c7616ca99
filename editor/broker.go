package editor

import (
	"time"
)

type (
	// Broker is the message hub of one editor surface. It replaces any
	// global event bus: every surface composes its own broker and hands it to
	// the engines, so independent surfaces (and tests) never see each other's
	// messages.
	//
	// The Drag, Window and Track buses are synchronous and owned by the GUI
	// goroutine. ToGUI is the only way for other goroutines (e.g. a layout
	// file being written in the background) to talk back to the GUI
	// goroutine; the GUI loop receives from it and runs the messages. It has
	// a generous buffer and senders should use TrySend so that a stalled GUI
	// never blocks them.
	Broker struct {
		Drag   Bus[DragMsg]
		Window Bus[WindowMsg]
		Track  Bus[TrackMsg]

		ToGUI chan MsgToGUI

		// CloseGUI can be sent to (non-blocking, capacity 1) to ask the GUI
		// loop to quit; FinishedGUI is closed by the GUI loop once it is done.
		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToGUI is sent to the GUI goroutine. Exactly one of the fields is
	// normally set. Func is executed on the GUI goroutine, Alert is shown to
	// the user.
	MsgToGUI struct {
		Func  func()
		Alert *Alert
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToGUI:       make(chan MsgToGUI, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutWait blocks until c is closed or t has passed, e.g. to give the GUI
// loop a moment to finish after CloseGUI. It returns false on timeout.
func TimeoutWait(c <-chan struct{}, t time.Duration) bool {
	timer := time.NewTimer(t)
	defer timer.Stop()
	select {
	case <-c:
		return true
	case <-timer.C:
		return false
	}
}
