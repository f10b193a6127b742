package hal

import "testing"

func TestVirtualPinConfigure(t *testing.T) {
	p := newVirtualPin("GP14", GPIOCapInput|GPIOCapPullUp)
	if _, err := p.Read(); err == nil {
		t.Fatal("expected Read to fail before Configure")
	}
	if err := p.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("expected output to be rejected")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullDown); err == nil {
		t.Fatal("expected pull-down to be rejected")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	level, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !level {
		t.Fatal("expected pull-up to read high")
	}
	if err := p.Write(false); err == nil {
		t.Fatal("expected Write on input to fail")
	}
}

func TestPinButtonsActiveLow(t *testing.T) {
	var pins [ButtonCount]GPIOPin
	var raw [ButtonCount]*virtualPin
	for i := range pins {
		raw[i] = newVirtualPin(Button(i).String(), GPIOCapInput|GPIOCapPullUp)
		pins[i] = raw[i]
	}
	b, err := newPinButtons(pins)
	if err != nil {
		t.Fatalf("newPinButtons: %v", err)
	}

	for btn := Button(0); btn < ButtonCount; btn++ {
		pressed, err := b.Pressed(btn)
		if err != nil {
			t.Fatalf("Pressed(%s): %v", btn, err)
		}
		if pressed {
			t.Fatalf("Pressed(%s)=true at rest", btn)
		}
	}

	raw[ButtonUp].drive(false)
	if pressed, _ := b.Pressed(ButtonUp); !pressed {
		t.Fatal("expected up pressed when line is low")
	}
	if pressed, _ := b.Pressed(ButtonDown); pressed {
		t.Fatal("down must not follow up")
	}
	if _, err := b.Pressed(Button(9)); err == nil {
		t.Fatal("expected error for unknown button")
	}
}

func TestPinButtonsRequiresPins(t *testing.T) {
	var pins [ButtonCount]GPIOPin
	pins[ButtonMode] = newVirtualPin("M", GPIOCapInput|GPIOCapPullUp)
	if _, err := newPinButtons(pins); err == nil {
		t.Fatal("expected error for missing pins")
	}
}
