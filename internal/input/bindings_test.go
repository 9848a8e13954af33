package input

import "testing"

func countKey(b *Bindings, k Key) int {
	n := 0
	for need := Need(0); need < NumRemappableNeeds; need++ {
		for _, have := range b[need].Keys {
			if have == k {
				n++
			}
		}
	}
	return n
}

func TestAssignKeyStripsOtherNeeds(t *testing.T) {
	b := DefaultBindings()
	if b[NeedBackward].Keys[1] != KeyS {
		t.Fatalf("expected S on backward by default")
	}
	stripped := b.AssignKey(NeedForward, 0, KeyS)
	if len(stripped) != 1 || stripped[0] != NeedBackward {
		t.Fatalf("expected backward to lose S, got %v", stripped)
	}
	if b[NeedForward].Keys[0] != KeyS {
		t.Fatalf("expected S in forward slot 0, got %v", b[NeedForward].Keys[0])
	}
	if n := countKey(&b, KeyS); n != 1 {
		t.Fatalf("expected exactly one binding for S, got %d", n)
	}
}

func TestAssignKeySameNeedOtherSlot(t *testing.T) {
	b := DefaultBindings()
	b.AssignKey(NeedForward, 0, KeyW)
	if b[NeedForward].Keys[1] != KeyNull {
		t.Fatalf("expected slot 1 cleared, got %v", b[NeedForward].Keys[1])
	}
	if n := countKey(&b, KeyW); n != 1 {
		t.Fatalf("expected one W binding, got %d", n)
	}
}

func TestAssignLeavesUINeedsAlone(t *testing.T) {
	b := DefaultBindings()
	b.AssignKey(NeedBrakes, 0, KeyUp)
	if b[NeedUIUp].Keys[0] != KeyUp {
		t.Fatalf("ui bindings must not be stripped")
	}
}

func TestAssignPadAndMouse(t *testing.T) {
	b := DefaultBindings()
	stripped := b.AssignPad(NeedBrakes, 1, ButtonBinding(PadA))
	if len(stripped) != 1 || stripped[0] != NeedForward {
		t.Fatalf("expected forward to lose A, got %v", stripped)
	}
	if b[NeedForward].Pad[0].Bound() {
		t.Fatalf("expected forward pad slot 0 cleared")
	}

	stripped = b.AssignMouse(NeedBrakes, MouseLeft)
	if len(stripped) != 1 || stripped[0] != NeedThrowForward {
		t.Fatalf("expected throw forward to lose left click, got %v", stripped)
	}
	if b[NeedThrowForward].Mouse != MouseNone || b[NeedBrakes].Mouse != MouseLeft {
		t.Fatalf("mouse binding not moved")
	}
}

func TestResetRestoresOneFamily(t *testing.T) {
	def := DefaultBindings()
	b := DefaultBindings()
	b.ClearKey(NeedForward, 0)
	b.ClearPad(NeedForward, 0)
	b.ClearMouse(NeedThrowForward)

	b.ResetKeyboard(&def)
	if b[NeedForward].Keys != def[NeedForward].Keys {
		t.Fatalf("keyboard not reset")
	}
	if b[NeedForward].Pad[0].Bound() {
		t.Fatalf("keyboard reset must not touch pad bindings")
	}
	b.ResetGamepad(&def)
	b.ResetMouse(&def)
	if b != def {
		t.Fatalf("expected defaults after resetting every family")
	}
}

func TestPadBindingText(t *testing.T) {
	for _, pb := range []PadBinding{{}, ButtonBinding(PadStart), AxisPlus(PadTriggerLeft), AxisMinus(PadLeftY)} {
		got, err := ParsePadBinding(pb.String())
		if err != nil {
			t.Fatalf("parse %q: %v", pb.String(), err)
		}
		if got != pb {
			t.Fatalf("parse %q = %v", pb.String(), got)
		}
	}
	if _, err := ParsePadBinding("button:nope"); err == nil {
		t.Fatalf("expected error for unknown button")
	}
}
