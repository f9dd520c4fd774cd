// Package max7219 drives a MAX7219-based 8x8 LED dot matrix over three
// bit-banged GPIO lines. The wire protocol is fixed by the chip: 16-bit
// words of 4 don't-care bits, a 4-bit register address and 8 data bits,
// shifted in high bit first on the rising clock edge while LOAD is held
// low, latched on the LOAD rising edge. The don't-care bits are never
// clocked; 12 edges per word are enough.
package max7219

import (
	"dotgames/grid"
	"dotgames/periph"
)

// Register addresses on the chip.
const (
	regNoOp      = 0x0
	regColumn1   = 0x1
	regDecode    = 0x9
	regIntensity = 0xA
	regScanLimit = 0xB
	regShutdown  = 0xC
	regTest      = 0xF
)

// Device is one MAX7219 matrix.
type Device struct {
	load periph.OutputPin // chip select, active low
	clk  periph.OutputPin
	din  periph.OutputPin
}

// New returns a driver over the three control pins. Call Configure
// before first use.
func New(load, clk, din periph.OutputPin) *Device {
	return &Device{load: load, clk: clk, din: din}
}

// Configure initializes the pin levels and the chip registers: display
// on, test mode off, decode mode off, all eight columns scanned,
// intensity 12, screen cleared.
func (d *Device) Configure() {
	d.load.High()
	d.clk.Low()
	d.din.Low()

	d.Shutdown(false)
	d.Test(false)
	d.write(regDecode, 0)
	d.write(regScanLimit, 7)
	d.SetIntensity(12)
	d.Clear()
}

// write shifts one command word out to the chip.
func (d *Device) write(register, data uint8) {
	word := uint16(register)<<8 | uint16(data)
	d.load.Low()
	for shift := 4; shift < 16; shift++ {
		if word&(1<<(15-shift)) != 0 {
			d.din.High()
		} else {
			d.din.Low()
		}
		d.clk.High()
		d.clk.Low()
	}
	d.load.High()
	d.din.Low()
}

// Show writes the screen's eight column bytes to the column registers.
// Column registers are numbered 1-8; bit 7 of the data byte is the top
// row, which is exactly the grid.Screen layout.
func (d *Device) Show(s *grid.Screen) {
	for x, data := range s.Columns {
		d.write(uint8(regColumn1+x), data)
	}
}

// Clear turns off every LED by zeroing the column registers.
func (d *Device) Clear() {
	for x := 0; x < grid.Width; x++ {
		d.write(uint8(regColumn1+x), 0)
	}
}

// SetIntensity sets the LED brightness, 0 (dimmest) through 15.
// Values outside the range are undefined by the chip.
func (d *Device) SetIntensity(level uint8) {
	d.write(regIntensity, level)
}

// Shutdown turns the display off without losing register contents.
func (d *Device) Shutdown(off bool) {
	data := uint8(1)
	if off {
		data = 0
	}
	d.write(regShutdown, data)
}

// Test switches display-test mode, all LEDs at full intensity. Test
// mode overrides shutdown.
func (d *Device) Test(on bool) {
	data := uint8(0)
	if on {
		data = 1
	}
	d.write(regTest, data)
}
