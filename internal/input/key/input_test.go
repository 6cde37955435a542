package key

import (
	"errors"
	"testing"
)

func TestInputEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Input
		want bool
	}{
		{"same keyboard key", Keyboard(KeyA), Keyboard(KeyA), true},
		{"different keyboard keys", Keyboard(KeyA), Keyboard(KeyB), false},
		{"same mouse button", Mouse(MouseLeft), Mouse(MouseLeft), true},
		{"different devices", Keyboard(KeyA), Mouse(MouseLeft), false},
		{"same pad slot and button", Gamepad(1, PadSouth), Gamepad(1, PadSouth), true},
		{"different pad slots", Gamepad(0, PadSouth), Gamepad(1, PadSouth), false},
		{"different pad buttons", Gamepad(0, PadSouth), Gamepad(0, PadEast), false},
		{"same touch point and phase", Touch(2, TouchBegan), Touch(2, TouchBegan), true},
		{"different touch phases", Touch(2, TouchBegan), Touch(2, TouchEnded), false},
		{"same gesture", GestureInput(GestureTap), GestureInput(GestureTap), true},
		{"different gestures", GestureInput(GestureTap), GestureInput(GestureHold), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equals(tt.a); got != tt.want {
				t.Errorf("Equals() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputRankOrdering(t *testing.T) {
	// Device classes order keyboard < mouse < gamepad < touch < gesture.
	ordered := []Input{
		Keyboard(KeyZ),
		Mouse(MouseLeft),
		Gamepad(0, PadStart),
		Touch(0, TouchEnded),
		GestureInput(GestureTap),
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("Rank(%s) = %d not below Rank(%s) = %d",
				ordered[i-1], ordered[i-1].Rank(), ordered[i], ordered[i].Rank())
		}
	}

	// Gamepad slots order by id before button code.
	if Gamepad(0, PadStart).Rank() >= Gamepad(1, PadSouth).Rank() {
		t.Error("gamepad rank should order by slot id before button code")
	}
	if Touch(0, TouchEnded).Rank() >= Touch(1, TouchBegan).Rank() {
		t.Error("touch rank should order by point id before phase code")
	}
}

func TestInputName(t *testing.T) {
	tests := []struct {
		in   Input
		want string
	}{
		{Keyboard(KeySpace), "Space"},
		{Keyboard(KeyLeftCtrl), "LeftCtrl"},
		{Mouse(MouseRight), "MouseRight"},
		{Gamepad(0, PadSouth), "Pad0:South"},
		{Gamepad(3, PadR2), "Pad3:R2"},
		{Touch(9, TouchMoved), "Touch9:Moved"},
		{GestureInput(GesturePinchOut), "PinchOut"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.in.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		token   string
		want    Input
		wantErr bool
	}{
		{"A", Keyboard(KeyA), false},
		{"space", Keyboard(KeySpace), false},
		{"MouseLeft", Mouse(MouseLeft), false},
		{"Pad0:South", Gamepad(0, PadSouth), false},
		{"pad2:start", Gamepad(2, PadStart), false},
		{"Touch1:Began", Touch(1, TouchBegan), false},
		{"DoubleTap", GestureInput(GestureDoubleTap), false},
		// Keyboard wins over gamepad d-pad names.
		{"Up", Keyboard(KeyUp), false},
		// Out-of-range device indices do not resolve.
		{"Pad4:South", Input{}, true},
		{"Touch10:Began", Input{}, true},
		{"Pad0:NoSuchButton", Input{}, true},
		{"", Input{}, true},
		{"Bogus", Input{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseInput(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInput(%q) error = %v, wantErr = %v", tt.token, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnknownInput) {
					t.Errorf("error = %v, want ErrUnknownInput", err)
				}
				return
			}
			if !got.Equals(tt.want) {
				t.Errorf("ParseInput(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseInputRoundTrip(t *testing.T) {
	inputs := []Input{
		Keyboard(KeyE),
		Keyboard(KeyLeftCtrl),
		Mouse(MouseWheelDown),
		Gamepad(1, PadL3),
		Touch(4, TouchHeld),
		GestureInput(GestureSwipeDown),
	}

	for _, in := range inputs {
		parsed, err := ParseInput(in.Name())
		if err != nil {
			t.Fatalf("ParseInput(%q) error = %v", in.Name(), err)
		}
		if !parsed.Equals(in) {
			t.Errorf("round trip for %q = %v, want %v", in.Name(), parsed, in)
		}
	}
}
