package engine

import (
	"testing"
	"time"
)

func TestTickerDriverLifecycle(t *testing.T) {
	d := NewTickerDriver(time.Millisecond)

	if d.Running() || d.C() != nil {
		t.Fatal("New driver should be stopped with a nil channel")
	}

	d.Start()
	c := d.C()
	d.Start()
	if !d.Running() || d.C() != c {
		t.Error("Repeated Start should keep the same ticker")
	}

	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatal("No frame delivered")
	}

	d.Stop()
	d.Stop()
	if d.Running() || d.C() != nil {
		t.Error("Stopped driver should report a nil channel")
	}
}
