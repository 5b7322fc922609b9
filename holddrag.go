package holddrag

import (
	"math"
	"time"
)

// Gesture defaults.
const (
	DefaultLongPressDelay = 300 * time.Millisecond
	DefaultTapThreshold   = 8.0 // pixels
)

// Vec2 is a 2D vector used for points, offsets and deltas throughout the API.
// Screen coordinates have their origin at the top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MouseButton identifies a pointer button. Touch contacts report MouseButtonLeft.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// PointerID identifies one input stream. Pointer 0 is the mouse, 1-9 are
// touch contacts.
type PointerID int

const (
	maxPointers            = 10
	MousePointer PointerID = 0
)

func (id PointerID) valid() bool {
	return id >= 0 && id < maxPointers
}

// PointerEvent is one raw pointer sample delivered by a platform adapter.
type PointerEvent struct {
	PointerID PointerID
	Button    MouseButton
	Point     Vec2
	// Primary is set for the mouse and for the first touch contact of a
	// multi-touch sequence.
	Primary bool
}

// SessionState is the state of the gesture engine. Idle means no session.
type SessionState uint8

const (
	StateIdle     SessionState = iota // no session
	StateArmed                        // pressed, long-press timer pending
	StateDragging                     // long press elapsed, ghost follows the pointer
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}
