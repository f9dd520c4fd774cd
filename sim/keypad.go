package sim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"dotgames/periph"
)

// holdTime approximates a spring-return stick: one key press deflects
// the axis for this long, then it snaps back to center. Terminals only
// report presses, not releases, so the spring is a timer.
const holdTime = 180 * time.Millisecond

// Axis rails and rest position of a 10-bit stick.
const (
	axisLow    = 0
	axisCenter = 512
	axisHigh   = 1023
)

// axis is one joystick axis fed from key events and read from the game
// loop. The two sides only share these atomics.
type axis struct {
	value atomic.Int64
	until atomic.Int64 // unix nanos the deflection lasts
}

func (a *axis) deflect(raw int64) {
	a.value.Store(raw)
	a.until.Store(time.Now().Add(holdTime).UnixNano())
}

func (a *axis) read() uint16 {
	if time.Now().UnixNano() > a.until.Load() {
		return axisCenter
	}
	return uint16(a.value.Load())
}

// Keypad maps terminal keys onto the joystick's electrical surface:
// arrows deflect the axes, space or enter presses the button, and
// Esc / Ctrl-C / q request shutdown. It runs the tcell event pump on
// its own goroutine; the game core stays single-threaded.
type Keypad struct {
	x, y   axis
	button axis // value unused; until carries the press

	quit     chan struct{}
	quitOnce sync.Once
}

// NewKeypad starts the event pump. onResize runs on every terminal
// resize event, after the screen has synced.
func NewKeypad(screen tcell.Screen, onResize func()) *Keypad {
	k := &Keypad{quit: make(chan struct{})}
	go k.pump(screen, onResize)
	return k
}

// Quit is closed when the player asks to leave the simulator.
func (k *Keypad) Quit() <-chan struct{} {
	return k.quit
}

func (k *Keypad) pump(screen tcell.Screen, onResize func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			k.close()
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			if onResize != nil {
				onResize()
			}
		case *tcell.EventKey:
			k.handleKey(ev)
		}
	}
}

func (k *Keypad) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.x.deflect(axisLow)
	case tcell.KeyRight:
		k.x.deflect(axisHigh)
	case tcell.KeyUp:
		k.y.deflect(axisHigh)
	case tcell.KeyDown:
		k.y.deflect(axisLow)
	case tcell.KeyEnter:
		k.button.deflect(axisHigh)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.close()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.button.deflect(axisHigh)
		case 'q':
			k.close()
		}
	}
}

func (k *Keypad) close() {
	k.quitOnce.Do(func() { close(k.quit) })
}

func (k *Keypad) pressed() bool {
	return time.Now().UnixNano() <= k.button.until.Load()
}

type axisPin struct {
	a *axis
}

func (p axisPin) Get() uint16 { return p.a.read() }

// buttonPin is the stick's push button line, active low.
type buttonPin struct {
	k *Keypad
}

func (p buttonPin) Get() bool { return !p.k.pressed() }

// XPin returns the horizontal axis channel.
func (k *Keypad) XPin() periph.AnalogPin { return axisPin{&k.x} }

// YPin returns the vertical axis channel.
func (k *Keypad) YPin() periph.AnalogPin { return axisPin{&k.y} }

// ButtonPin returns the button line, high while released.
func (k *Keypad) ButtonPin() periph.InputPin { return buttonPin{k} }
