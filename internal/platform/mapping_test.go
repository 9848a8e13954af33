package platform

import (
	"testing"

	"github.com/appengine-ltd/retro-rally/internal/input"
)

func TestLookupMapping(t *testing.T) {
	cases := []struct {
		name            string
		vendor, product uint16
		axes, buttons   int32
		want            *deviceMapping
	}{
		{"xbox 360", 0x045E, 0x028E, 6, 11, xboxMapping},
		{"dualsense", 0x054C, 0x0CE6, 6, 15, playstationMapping},
		{"switch pro", 0x057E, 0x2009, 4, 16, switchProMapping},
		{"unknown pad", 0x1234, 0x0001, 6, 12, genericMapping},
		{"flight pedals", 0x1234, 0x0002, 3, 0, nil},
	}
	for _, tc := range cases {
		if got := lookupMapping(tc.vendor, tc.product, tc.axes, tc.buttons); got != tc.want {
			t.Fatalf("%s: unexpected mapping %v", tc.name, got)
		}
	}
}

func TestMappingsCoverFaceButtons(t *testing.T) {
	for _, m := range []*deviceMapping{xboxMapping, playstationMapping, switchProMapping, genericMapping} {
		for b := input.PadButton(0); b < input.NumPadButtons; b++ {
			if b.IsDpad() {
				if m.buttons[b] != noIndex {
					t.Fatalf("%s: d-pad %v must come from the hat", m.name, b)
				}
				continue
			}
			if m.buttons[b] == noIndex {
				t.Fatalf("%s: %v unmapped", m.name, b)
			}
		}
	}
}

func TestTriggerValue(t *testing.T) {
	cases := []struct {
		raw  int16
		want int16
	}{
		{-32768, 0},
		{0, 16384},
		{32767, 32767},
	}
	for _, tc := range cases {
		if got := triggerValue(tc.raw); got != tc.want {
			t.Fatalf("triggerValue(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
	if invertAxis(-32768) != 32767 || invertAxis(100) != -100 {
		t.Fatalf("unexpected axis inversion")
	}
}

func TestHatButtons(t *testing.T) {
	hat := hatUp | hatLeft
	if !hatButton(hat, input.PadDpadUp) || !hatButton(hat, input.PadDpadLeft) {
		t.Fatalf("expected up and left")
	}
	if hatButton(hat, input.PadDpadDown) || hatButton(hat, input.PadDpadRight) || hatButton(hat, input.PadA) {
		t.Fatalf("unexpected buttons from hat %02x", hat)
	}
}
