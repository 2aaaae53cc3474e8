package input

import "testing"

func TestResized(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Error("no resize expected before any events")
	}

	in.events = append(in.events,
		Event{Type: EventWindowResize, Width: 640, Height: 480},
		Event{Type: EventQuit},
		Event{Type: EventWindowResize, Width: 800, Height: 600},
	)
	w, h, ok := in.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized() = %d, %d, %v, want 800, 600, true", w, h, ok)
	}
}
