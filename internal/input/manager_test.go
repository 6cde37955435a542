package input

import (
	"testing"

	"github.com/dshills/keychord/internal/input/binding"
	"github.com/dshills/keychord/internal/input/key"
)

// fakeDevices is a scriptable provider backend for tests.
type fakeDevices struct {
	keys     map[key.Key]bool
	buttons  map[key.MouseButton]bool
	pads     map[uint8]map[key.PadButton]bool
	touches  map[uint8]key.TouchPhase
	gestures key.GestureState
}

func newFakeDevices() *fakeDevices {
	return &fakeDevices{
		keys:    make(map[key.Key]bool),
		buttons: make(map[key.MouseButton]bool),
		pads:    make(map[uint8]map[key.PadButton]bool),
		touches: make(map[uint8]key.TouchPhase),
	}
}

func (f *fakeDevices) IsKeyDown(k key.Key) bool            { return f.keys[k] }
func (f *fakeDevices) IsButtonDown(b key.MouseButton) bool { return f.buttons[b] }
func (f *fakeDevices) TouchCount() int                     { return len(f.touches) }
func (f *fakeDevices) PhaseAt(point uint8) key.TouchPhase  { return f.touches[point] }
func (f *fakeDevices) Gestures() key.GestureState          { return f.gestures }

func (f *fakeDevices) padDown(slot uint8, b key.PadButton) {
	if f.pads[slot] == nil {
		f.pads[slot] = make(map[key.PadButton]bool)
	}
	f.pads[slot][b] = true
}

// padState adapts fakeDevices to GamepadState, whose IsButtonDown
// signature collides with MouseState's.
type padState struct{ f *fakeDevices }

func (p padState) IsConnected(slot uint8) bool { return p.f.pads[slot] != nil }

func (p padState) IsButtonDown(slot uint8, b key.PadButton) bool {
	return p.f.pads[slot][b]
}

func (f *fakeDevices) provider() Provider {
	return Provider{
		Keyboard: f,
		Mouse:    f,
		Gamepad:  padState{f},
		Touch:    f,
		Gesture:  f,
	}
}

func testManager(t *testing.T, chords map[string]string) (*Manager, *fakeDevices) {
	t.Helper()
	devices := newFakeDevices()
	m := NewManager(devices.provider())
	for action, chord := range chords {
		b, err := binding.NewBuilder().WithChord(chord).WithAction(action, "").Build()
		if err != nil {
			t.Fatalf("building %q: %v", chord, err)
		}
		m.AddBinding(b)
	}
	return m, devices
}

func TestUpdateFiresOnFreshMatchOnly(t *testing.T) {
	m, devices := testManager(t, map[string]string{"save": "LeftCtrl+S"})

	var fired []Event
	m.Subscribe(func(ev Event) { fired = append(fired, ev) })

	// Tick 1: chord not satisfied.
	devices.keys[key.KeyLeftCtrl] = true
	m.Update()
	if len(fired) != 0 {
		t.Fatalf("tick 1 fired %d events, want 0", len(fired))
	}
	if m.WasActionTriggered("save") {
		t.Error("WasActionTriggered = true on tick 1")
	}

	// Tick 2: chord satisfied, edge fires.
	devices.keys[key.KeyS] = true
	m.Update()
	if len(fired) != 1 {
		t.Fatalf("tick 2 fired %d events, want 1", len(fired))
	}
	if fired[0].Action.Name != "save" {
		t.Errorf("event action = %q, want %q", fired[0].Action.Name, "save")
	}
	if fired[0].Chord.String() != "LeftCtrl+S" {
		t.Errorf("event chord = %q, want %q", fired[0].Chord, "LeftCtrl+S")
	}
	if fired[0].Time.IsZero() {
		t.Error("event timestamp is zero")
	}
	if !m.WasActionTriggered("save") {
		t.Error("WasActionTriggered = false on tick 2")
	}
	if !m.IsActionActive("save") {
		t.Error("IsActionActive = false on tick 2")
	}

	// Tick 3: still held, no new edge.
	m.Update()
	if len(fired) != 1 {
		t.Fatalf("tick 3 fired %d events total, want still 1", len(fired))
	}
	if m.WasActionTriggered("save") {
		t.Error("WasActionTriggered = true on tick 3 while held")
	}
	if !m.IsActionActive("save") {
		t.Error("IsActionActive = false on tick 3 while held")
	}

	// Tick 4: released.
	devices.keys[key.KeyLeftCtrl] = false
	devices.keys[key.KeyS] = false
	m.Update()
	if m.IsActionActive("save") {
		t.Error("IsActionActive = true after release")
	}

	// Tick 5: pressed again, fires again.
	devices.keys[key.KeyLeftCtrl] = true
	devices.keys[key.KeyS] = true
	m.Update()
	if len(fired) != 2 {
		t.Errorf("re-press fired %d events total, want 2", len(fired))
	}
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	m, devices := testManager(t, map[string]string{"jump": "Space"})

	var order []int
	m.Subscribe(func(Event) { order = append(order, 1) })
	m.Subscribe(func(Event) { order = append(order, 2) })
	m.Subscribe(func(Event) { order = append(order, 3) })

	devices.keys[key.KeySpace] = true
	m.Update()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("handler order = %v, want [1 2 3]", order)
	}
}

func TestAllMatchingBindingsFire(t *testing.T) {
	m, devices := testManager(t, map[string]string{
		"interact": "E",
		"use_item": "E",
	})

	var fired []string
	m.Subscribe(func(ev Event) { fired = append(fired, ev.Action.Name) })

	devices.keys[key.KeyE] = true
	m.Update()

	if len(fired) != 2 {
		t.Errorf("fired = %v, want both bindings", fired)
	}
}

func TestFindBestMatchScenario(t *testing.T) {
	m, devices := testManager(t, map[string]string{
		"advanced_interact": "LeftCtrl+E",
		"interact":          "E",
	})

	devices.keys[key.KeyLeftCtrl] = true
	devices.keys[key.KeyE] = true
	m.Update()
	if got := m.FindBestMatch(); got == nil || got.Action.Name != "advanced_interact" {
		t.Errorf("FindBestMatch = %v, want advanced_interact", got)
	}

	devices.keys[key.KeyLeftCtrl] = false
	m.Update()
	if got := m.FindBestMatch(); got == nil || got.Action.Name != "interact" {
		t.Errorf("FindBestMatch = %v, want interact", got)
	}
}

func TestSingleKeyBindingFiresAlongsideUnrelatedInput(t *testing.T) {
	m, devices := testManager(t, map[string]string{"click": "MouseLeft"})

	var fired int
	m.Subscribe(func(Event) { fired++ })

	// A simulated tap gesture accompanies the click; the mouse binding
	// must still fire.
	devices.buttons[key.MouseLeft] = true
	devices.gestures.Tap = true
	m.Update()

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestNilDeviceClassesContributeNothing(t *testing.T) {
	devices := newFakeDevices()
	m := NewManager(Provider{Keyboard: devices}) // only keyboard wired

	b, err := binding.NewBuilder().WithChord("Pad0:South").WithAction("fire", "").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	m.AddBinding(b)

	devices.padDown(0, key.PadSouth) // active, but class not wired
	m.Update()

	if m.IsActionActive("fire") {
		t.Error("unwired gamepad class produced inputs")
	}
	if m.Pressed().Len() != 0 {
		t.Errorf("Pressed().Len() = %d, want 0", m.Pressed().Len())
	}
}

// staleTouch reports per-point phases but an empty point count.
type staleTouch struct{ f *fakeDevices }

func (s staleTouch) TouchCount() int                    { return 0 }
func (s staleTouch) PhaseAt(point uint8) key.TouchPhase { return s.f.touches[point] }

func TestPollTouchHonorsTouchCount(t *testing.T) {
	devices := newFakeDevices()
	m := NewManager(Provider{Touch: staleTouch{devices}})

	devices.touches[0] = key.TouchHeld
	m.Update()

	if m.Pressed().Len() != 0 {
		t.Errorf("Pressed().Len() = %d, want 0", m.Pressed().Len())
	}
}

func TestGamepadTouchGesturePolling(t *testing.T) {
	m, devices := testManager(t, map[string]string{
		"pad_menu":   "Pad1:Start",
		"two_finger": "Touch0:Held+Touch1:Held",
		"zoom_out":   "PinchOut",
	})

	devices.touches[0] = key.TouchHeld
	devices.touches[1] = key.TouchHeld
	m.Update()

	if !m.WasActionTriggered("two_finger") {
		t.Error(`WasActionTriggered("two_finger") = false, want true`)
	}

	// The single-key pad and gesture bindings match by subset, so they
	// fire even while the touch points stay held.
	devices.padDown(1, key.PadStart)
	devices.gestures.PinchOut = true
	m.Update()

	for _, action := range []string{"pad_menu", "zoom_out"} {
		if !m.WasActionTriggered(action) {
			t.Errorf("WasActionTriggered(%q) = false, want true", action)
		}
	}
}

func TestSetBindingEnabled(t *testing.T) {
	m, devices := testManager(t, map[string]string{"jump": "Space"})

	if !m.SetBindingEnabled("jump", false) {
		t.Fatal("SetBindingEnabled = false, want true")
	}

	devices.keys[key.KeySpace] = true
	m.Update()
	if m.WasActionTriggered("jump") {
		t.Error("disabled binding triggered")
	}

	// Re-enabling while the key is still held does not fire: the
	// binding now matches the previous snapshot too, so there is no
	// edge until the key is released and pressed again.
	m.SetBindingEnabled("jump", true)
	m.Update()
	if m.WasActionTriggered("jump") {
		t.Error("re-enabled binding triggered while key still held")
	}

	devices.keys[key.KeySpace] = false
	m.Update()
	devices.keys[key.KeySpace] = true
	m.Update()
	if !m.WasActionTriggered("jump") {
		t.Error("re-enabled binding did not trigger on a fresh press")
	}
}

func TestRemoveBinding(t *testing.T) {
	m, devices := testManager(t, map[string]string{"jump": "Space"})

	if !m.RemoveBinding("jump") {
		t.Fatal("RemoveBinding = false, want true")
	}

	devices.keys[key.KeySpace] = true
	m.Update()
	if m.IsActionActive("jump") {
		t.Error("removed binding still active")
	}
}

func TestSetBindingsReplacesCollection(t *testing.T) {
	m, devices := testManager(t, map[string]string{"jump": "Space"})

	fresh := binding.NewCollection()
	b, err := binding.NewBuilder().WithChord("E").WithAction("interact", "").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	fresh.Add(b)
	m.SetBindings(fresh)

	devices.keys[key.KeyE] = true
	m.Update()
	if !m.IsActionActive("interact") {
		t.Error("replacement bindings not active")
	}

	m.SetBindings(nil)
	if m.Bindings() == nil || m.Bindings().Len() != 0 {
		t.Error("SetBindings(nil) should install an empty collection")
	}
}

func TestMetricsRecorded(t *testing.T) {
	m, devices := testManager(t, map[string]string{"jump": "Space"})

	devices.keys[key.KeySpace] = true
	m.Update()
	m.Update()

	stats := m.Metrics().Snapshot()
	if stats.TicksTotal != 2 {
		t.Errorf("TicksTotal = %d, want 2", stats.TicksTotal)
	}
	if stats.EventsTotal != 1 {
		t.Errorf("EventsTotal = %d, want 1", stats.EventsTotal)
	}
}
