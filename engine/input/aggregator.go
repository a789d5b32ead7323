package input

import (
	"math"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// DefaultDeadzone is the gamepad stick magnitude below which stick input is ignored.
const DefaultDeadzone float32 = 0.1

// DefaultSensitivity is the radians-per-pixel scale applied to pointer-drag deltas.
const DefaultSensitivity float32 = 0.003

// EventSource is a host surface that delivers device events to registered listeners.
// Implemented by window.Window.
type EventSource interface {
	// AddInputListener registers a listener and returns a handle for removal.
	//
	// Parameters:
	//   - l: the callbacks to register
	//
	// Returns:
	//   - uuid.UUID: handle identifying the registration
	AddInputListener(l common.InputListener) uuid.UUID

	// RemoveInputListener deregisters the listener with the given handle.
	// Unknown handles are ignored.
	//
	// Parameters:
	//   - id: handle returned by AddInputListener
	RemoveInputListener(id uuid.UUID)
}

// GamepadPoller reads the left-stick state of every connected gamepad.
// Implemented by window.Window.
type GamepadPoller interface {
	// PollGamepads returns one reading per connected gamepad. May be empty.
	//
	// Returns:
	//   - []common.GamepadAxes: left-stick readings
	PollGamepads() []common.GamepadAxes
}

// Intent is the input consumed for one tick.
type Intent struct {
	// Move is the movement intent in local space: X is right, Y is forward.
	// Its length is 0 or at most 1.
	Move mgl32.Vec2
	// LookYaw and LookPitch are the target-orientation deltas in radians.
	LookYaw   float32
	LookPitch float32
}

// Aggregator tracks logical input state from raw device events and turns it into
// one normalized Intent per tick.
type Aggregator interface {
	// Open registers the aggregator's listeners on its event source. Calling Open
	// while already open is a no-op.
	Open()

	// Close removes every registered listener and drops held keys and drag state.
	// Safe to call more than once.
	Close()

	// Consume polls gamepads, builds the tick's Intent and zeroes the accumulated
	// pointer delta.
	//
	// Returns:
	//   - Intent: movement and look intent for this tick
	Consume() Intent

	// Dragging reports whether a pointer drag is active.
	//
	// Returns:
	//   - bool: true while the primary pointer button is held
	Dragging() bool

	// Sensitivity returns the radians-per-pixel look scale.
	//
	// Returns:
	//   - float32: pointer-drag sensitivity
	Sensitivity() float32
}

// aggregatorImpl is the single implementation of Aggregator.
// All fields are written by listener callbacks and read by Consume on the same thread.
type aggregatorImpl struct {
	source  EventSource
	gamepad GamepadPoller

	listenerID uuid.UUID
	open       bool

	held map[uint32]bool

	dragging     bool
	lastX, lastY float32
	dragDX       float32
	dragDY       float32

	sensitivity float32
	deadzone    float32
}

var _ Aggregator = &aggregatorImpl{}

// NewAggregator creates an input aggregator and registers it with the event source.
// A nil source yields an aggregator that only reads gamepads.
//
// Parameters:
//   - source: the device-event source, or nil
//   - options: functional options to configure the aggregator
//
// Returns:
//   - Aggregator: the newly created, open aggregator
func NewAggregator(source EventSource, options ...AggregatorOption) Aggregator {
	a := &aggregatorImpl{
		source:      source,
		held:        make(map[uint32]bool),
		sensitivity: DefaultSensitivity,
		deadzone:    DefaultDeadzone,
	}
	for _, option := range options {
		option(a)
	}
	a.Open()
	return a
}

func (a *aggregatorImpl) Open() {
	if a.open {
		return
	}
	a.open = true
	if a.source == nil {
		return
	}
	a.listenerID = a.source.AddInputListener(common.InputListener{
		OnKeyDown:     a.keyDown,
		OnKeyUp:       a.keyUp,
		OnPointerDown: a.pointerDown,
		OnPointerMove: a.pointerMove,
		OnPointerUp:   a.pointerUp,
	})
}

func (a *aggregatorImpl) Close() {
	if !a.open {
		return
	}
	a.open = false
	if a.source != nil {
		a.source.RemoveInputListener(a.listenerID)
		a.listenerID = uuid.Nil
	}
	clear(a.held)
	a.dragging = false
	a.dragDX, a.dragDY = 0, 0
}

func (a *aggregatorImpl) Consume() Intent {
	intent := Intent{
		Move:      a.moveIntent(),
		LookYaw:   -a.dragDX * a.sensitivity,
		LookPitch: -a.dragDY * a.sensitivity,
	}
	a.dragDX, a.dragDY = 0, 0
	return intent
}

func (a *aggregatorImpl) Dragging() bool {
	return a.dragging
}

func (a *aggregatorImpl) Sensitivity() float32 {
	return a.sensitivity
}

// --- internal helpers ---

// moveIntent combines the held movement keys and the strongest gamepad stick.
func (a *aggregatorImpl) moveIntent() mgl32.Vec2 {
	var move mgl32.Vec2
	if a.held[common.KeyW] || a.held[common.KeyUp] {
		move[1]++
	}
	if a.held[common.KeyS] || a.held[common.KeyDown] {
		move[1]--
	}
	if a.held[common.KeyD] || a.held[common.KeyRight] {
		move[0]++
	}
	if a.held[common.KeyA] || a.held[common.KeyLeft] {
		move[0]--
	}
	if l := move.Len(); l > 0 {
		move = move.Mul(1 / l)
	}

	if stick, ok := a.bestStick(); ok {
		// Stick-up reports negative Y.
		move = move.Add(mgl32.Vec2{stick.X, -stick.Y})
	}
	if l := move.Len(); l > 1 {
		move = move.Mul(1 / l)
	}
	return move
}

// bestStick returns the gamepad reading with the largest magnitude, if it clears the deadzone.
func (a *aggregatorImpl) bestStick() (common.GamepadAxes, bool) {
	if a.gamepad == nil {
		return common.GamepadAxes{}, false
	}
	var best common.GamepadAxes
	var bestMag float32
	for _, pad := range a.gamepad.PollGamepads() {
		mag := float32(math.Hypot(float64(pad.X), float64(pad.Y)))
		if mag > bestMag {
			best, bestMag = pad, mag
		}
	}
	return best, bestMag > a.deadzone
}

func (a *aggregatorImpl) keyDown(keyCode uint32) {
	a.held[keyCode] = true
}

func (a *aggregatorImpl) keyUp(keyCode uint32) {
	delete(a.held, keyCode)
}

func (a *aggregatorImpl) pointerDown(x, y float32) {
	a.dragging = true
	a.lastX, a.lastY = x, y
}

func (a *aggregatorImpl) pointerMove(x, y float32) {
	if !a.dragging {
		return
	}
	a.dragDX += x - a.lastX
	a.dragDY += y - a.lastY
	a.lastX, a.lastY = x, y
}

func (a *aggregatorImpl) pointerUp(_, _ float32) {
	a.dragging = false
}
