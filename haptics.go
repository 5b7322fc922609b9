package holddrag

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics emits the best-effort feedback hint fired when a long press
// promotes to a drag. Implementations must not block.
type Haptics interface {
	Pulse()
}

// HapticsFunc adapts a plain function to Haptics.
type HapticsFunc func()

// Pulse calls f.
func (f HapticsFunc) Pulse() { f() }

// VibrateHaptics vibrates the device through Ebitengine. It is a no-op on
// platforms without a vibration motor.
type VibrateHaptics struct {
	Duration  time.Duration
	Magnitude float64 // 0..1
}

// Pulse starts a short vibration.
func (v VibrateHaptics) Pulse() {
	if v.Duration <= 0 {
		return
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  v.Duration,
		Magnitude: v.Magnitude,
	})
}
