//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetPeriod(period uint64) error
	Enable(enable bool)
}

// pwmBuzzer drives a passive piezo with a 50% duty square wave.
type pwmBuzzer struct {
	pin machine.Pin
	pwm pwmDevice
	ch  uint8

	configured bool
}

func newPWMBuzzer(pin machine.Pin) Buzzer {
	pwm := pwmForPin(pin)
	if pwm == nil {
		return nil
	}
	return &pwmBuzzer{pin: pin, pwm: pwm}
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (b *pwmBuzzer) Tone(hz uint32, d time.Duration) error {
	if hz == 0 {
		return nil
	}
	period := uint64(1e9) / uint64(hz)
	if !b.configured {
		if err := b.pwm.Configure(machine.PWMConfig{Period: period}); err != nil {
			return err
		}
		ch, err := b.pwm.Channel(b.pin)
		if err != nil {
			return err
		}
		b.ch = ch
		b.configured = true
	} else if err := b.pwm.SetPeriod(period); err != nil {
		return err
	}

	b.pwm.Set(b.ch, b.pwm.Top()/2)
	b.pwm.Enable(true)
	time.Sleep(d)
	return b.Silence()
}

func (b *pwmBuzzer) Silence() error {
	if !b.configured {
		return nil
	}
	b.pwm.Set(b.ch, 0)
	return nil
}
