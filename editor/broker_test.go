package editor_test

import (
	"testing"
	"time"

	"github.com/vsariola/surface/editor"
)

func TestTrySend(t *testing.T) {
	c := make(chan int, 1)
	if !editor.TrySend(c, 1) {
		t.Error("TrySend to an empty channel failed")
	}
	if editor.TrySend(c, 2) {
		t.Error("TrySend to a full channel succeeded")
	}
	if v := <-c; v != 1 {
		t.Errorf("received %d, want 1", v)
	}
}

func TestTimeoutWait(t *testing.T) {
	b := editor.NewBroker()
	if editor.TimeoutWait(b.FinishedGUI, time.Millisecond) {
		t.Error("TimeoutWait returned true for an open channel")
	}
	go close(b.FinishedGUI)
	if !editor.TimeoutWait(b.FinishedGUI, time.Minute) {
		t.Error("TimeoutWait timed out on a closed channel")
	}
}
