package input

import (
	"time"

	"dotgames/periph"
)

// sampleInterval is the fixed cadence of the sampling loop. The device
// firmware ran a 950 µs delay plus read overhead; one millisecond is
// the same cadence on a hosted clock and divides poll durations evenly.
const sampleInterval = time.Millisecond

// Device is anything that can be sampled for a classified signal.
type Device interface {
	Read() (Signal, bool)
}

// Poller samples a device at a fixed cadence, either for a bounded
// duration into an overwrite-oldest history or until the first event.
// The device is owned exclusively by the poller's caller; nothing
// samples concurrently.
type Poller struct {
	device  Device
	clock   periph.Clock
	history History
}

// NewPoller wraps a device with the sampling clock.
func NewPoller(device Device, clock periph.Clock) *Poller {
	return &Poller{device: device, clock: clock}
}

// Poll clears the history, then samples for the given duration, pushing
// every classified signal. The returned history is owned by the poller
// and is valid until the next Poll call.
func (p *Poller) Poll(d time.Duration) *History {
	p.history.Clear()
	for n := d / sampleInterval; n > 0; n-- {
		if sig, ok := p.device.Read(); ok {
			p.history.Push(sig)
		}
		p.clock.Sleep(sampleInterval)
	}
	return &p.history
}

// PollUntilAny samples at the fixed cadence until a signal arrives and
// returns it. Closing stop cancels the wait; ok is false in that case.
// With a nil stop channel this blocks indefinitely, matching the
// bare-metal behavior.
func (p *Poller) PollUntilAny(stop <-chan struct{}) (Signal, bool) {
	for {
		select {
		case <-stop:
			return Signal{}, false
		default:
		}
		if sig, ok := p.device.Read(); ok {
			return sig, true
		}
		p.clock.Sleep(sampleInterval)
	}
}
