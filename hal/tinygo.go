//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

type tinyGoHAL struct {
	logger  *uartLogger
	strip   *ws2812Strip
	buttons *pinButtons
	buzzer  Buzzer
	clock   *tinyGoClock
	sync    TimeSync
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Strip: WS2812 data on cfg.LEDPin. Buttons: active low with pull-ups.
func New(cfg Config) (HAL, error) {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	if cfg.NumLEDs <= 0 {
		return nil, fmt.Errorf("hal: invalid LED count %d", cfg.NumLEDs)
	}

	var pins [ButtonCount]GPIOPin
	for b := range pins {
		pins[b] = machinePin{pin: machine.Pin(cfg.ButtonPins[b])}
	}
	buttons, err := newPinButtons(pins)
	if err != nil {
		return nil, err
	}

	buzzer := newPWMBuzzer(machine.Pin(cfg.BuzzerPin))
	if buzzer == nil {
		logger.WriteLineString(fmt.Sprintf("buzzer: no PWM on GP%d", cfg.BuzzerPin))
		buzzer = nullBuzzer{}
	}

	return &tinyGoHAL{
		logger:  logger,
		strip:   newWS2812Strip(machine.Pin(cfg.LEDPin), cfg.NumLEDs),
		buttons: buttons,
		buzzer:  buzzer,
		clock:   newTinyGoClock(),
		sync:    nullSync{},
	}, nil
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Strip() Strip       { return h.strip }
func (h *tinyGoHAL) Buttons() Buttons   { return h.buttons }
func (h *tinyGoHAL) Buzzer() Buzzer     { return h.buzzer }
func (h *tinyGoHAL) Clock() Clock       { return h.clock }
func (h *tinyGoHAL) TimeSync() TimeSync { return h.sync }
func (h *tinyGoHAL) Network() Network   { return nullNetwork{} }
