package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"
)

const (
	// DefaultDisposeAfter is how long a footstep instance may live before it is torn down.
	DefaultDisposeAfter = time.Second

	// resampleQuality is the beep resampler quality used for playback-rate changes.
	resampleQuality = 3
)

// FootstepPlayer emits spatial footstep sounds into the scene's audio graph.
type FootstepPlayer interface {
	// SetListener moves the listener (the camera) used for spatial attenuation and panning.
	//
	// Parameters:
	//   - pos: listener world position
	//   - yaw: listener yaw in radians
	SetListener(pos mgl32.Vec3, yaw float32)

	// PlayAt fires one self-disposing footstep at a world position.
	// Does nothing if the asset is missing or not ready.
	//
	// Parameters:
	//   - pos: source world position
	//   - rate: playback-rate multiplier (1 = original pitch and speed)
	PlayAt(pos mgl32.Vec3, rate float64)

	// StartLoop starts the continuous footstep loop if it is not already playing.
	//
	// Parameters:
	//   - pos: source world position
	StartLoop(pos mgl32.Vec3)

	// StopLoop stops the continuous footstep loop if one is playing.
	StopLoop()

	// Looping reports whether the continuous loop is playing.
	//
	// Returns:
	//   - bool: true while the loop is active
	Looping() bool

	// Active returns the number of footstep instances not yet disposed.
	//
	// Returns:
	//   - int: live one-shot instances
	Active() int

	// Stop silences the loop and every live instance and shuts down the disposal workers.
	// A later PlayAt starts them again.
	Stop()
}

// footstepPlayer is the beep-backed implementation of FootstepPlayer.
// PlayAt and the loop methods are called from the tick thread; disposal tasks run on the pool.
type footstepPlayer struct {
	asset *FootstepAsset
	sink  Sink
	log   *zap.Logger

	// pool and stopped are created on the first PlayAt and torn down by Stop.
	// Guarded by mu.
	pool    worker.DynamicWorkerPool
	running bool
	stopped chan struct{}

	workers       int
	disposeAfter  time.Duration
	refDistance   float32
	rolloffFactor float32

	listenerPos mgl32.Vec3
	listenerYaw float32

	mu        sync.Mutex
	instances map[int]*beep.Ctrl
	nextID    int
	active    atomic.Int32

	loop *beep.Ctrl

	warnedUnready bool
}

var _ FootstepPlayer = &footstepPlayer{}

// NewFootstepPlayer creates a footstep player.
// A nil sink or an unready asset produces a player that stays silent.
//
// Parameters:
//   - asset: the pre-loaded footstep sample (may be nil)
//   - sink: the audio output (may be nil)
//   - options: functional options to configure the player
//
// Returns:
//   - FootstepPlayer: the newly created player
func NewFootstepPlayer(asset *FootstepAsset, sink Sink, options ...FootstepPlayerOption) FootstepPlayer {
	p := &footstepPlayer{
		asset:         asset,
		sink:          sink,
		log:           zap.NewNop(),
		workers:       4,
		disposeAfter:  DefaultDisposeAfter,
		refDistance:   1,
		rolloffFactor: 1,
		instances:     make(map[int]*beep.Ctrl),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *footstepPlayer) SetListener(pos mgl32.Vec3, yaw float32) {
	p.listenerPos = pos
	p.listenerYaw = yaw
}

func (p *footstepPlayer) PlayAt(pos mgl32.Vec3, rate float64) {
	if !p.playable() {
		return
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(
		p.spatialize(p.resampled(p.asset.streamer(), rate), pos),
		beep.Callback(func() { close(done) }),
	)}

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.instances[id] = ctrl
	if !p.running {
		// Each live footstep holds a worker until it finishes or is disposed.
		p.pool = worker.NewDynamicWorkerPool(p.workers, 64, p.disposeAfter)
		p.stopped = make(chan struct{})
		p.running = true
	}
	pool, stopped := p.pool, p.stopped
	p.mu.Unlock()
	p.active.Add(1)

	p.sink.Play(ctrl)

	pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			select {
			case <-done:
			case <-stopped:
			case <-time.After(p.disposeAfter):
			}
			p.dispose(id)
			return nil, nil
		},
	})
}

func (p *footstepPlayer) StartLoop(pos mgl32.Vec3) {
	if p.loop != nil || !p.playable() {
		return
	}
	p.loop = &beep.Ctrl{Streamer: p.spatialize(
		p.resampled(beep.Loop(-1, p.asset.streamer()), 1),
		pos,
	)}
	p.sink.Play(p.loop)
}

func (p *footstepPlayer) StopLoop() {
	if p.loop == nil {
		return
	}
	loop := p.loop
	p.loop = nil
	p.sink.Do(func() {
		loop.Streamer = nil
	})
}

func (p *footstepPlayer) Looping() bool {
	return p.loop != nil
}

func (p *footstepPlayer) Active() int {
	return int(p.active.Load())
}

func (p *footstepPlayer) Stop() {
	p.StopLoop()

	p.mu.Lock()
	ids := make([]int, 0, len(p.instances))
	for id := range p.instances {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	for _, id := range ids {
		p.dispose(id)
	}

	p.mu.Lock()
	if p.running {
		p.running = false
		close(p.stopped)
		p.pool.Stop()
	}
	p.mu.Unlock()
}

// --- internal helpers ---

// playable reports whether a sound can be emitted, warning once when the asset is unready.
func (p *footstepPlayer) playable() bool {
	if p.sink == nil {
		return false
	}
	if !p.asset.Ready() {
		if !p.warnedUnready {
			p.log.Warn("footstep asset not ready, skipping footstep audio")
			p.warnedUnready = true
		}
		return false
	}
	return true
}

// dispose detaches an instance from the output. Disposing twice is a no-op.
func (p *footstepPlayer) dispose(id int) {
	p.mu.Lock()
	ctrl, ok := p.instances[id]
	delete(p.instances, id)
	p.mu.Unlock()
	if !ok {
		return
	}

	p.sink.Do(func() {
		ctrl.Streamer = nil
	})
	p.active.Add(-1)
}

// resampled scales playback rate and converts the asset rate to the sink rate in one pass.
func (p *footstepPlayer) resampled(s beep.Streamer, rate float64) beep.Streamer {
	if rate <= 0 {
		rate = 1
	}
	ratio := rate * float64(p.asset.Format().SampleRate) / float64(p.sink.SampleRate())
	if ratio == 1 {
		return s
	}
	return beep.ResampleRatio(resampleQuality, ratio, s)
}

// spatialize applies distance attenuation and stereo panning relative to the listener.
func (p *footstepPlayer) spatialize(s beep.Streamer, pos mgl32.Vec3) beep.Streamer {
	gain, pan := p.spatialParams(pos)
	return &effects.Pan{
		Streamer: newVolume(s, float64(gain)),
		Pan:      float64(pan),
	}
}

// spatialParams uses an inverse-distance model: full gain inside refDistance, falling off beyond.
// Pan is the projection of the listener-to-source direction on the listener's right axis.
func (p *footstepPlayer) spatialParams(pos mgl32.Vec3) (gain, pan float32) {
	rel := pos.Sub(p.listenerPos)
	rel[1] = 0
	dist := rel.Len()

	gain = 1
	if dist > p.refDistance {
		gain = p.refDistance / (p.refDistance + p.rolloffFactor*(dist-p.refDistance))
	}
	if dist > 1e-6 {
		_, right := common.YawBasis(p.listenerYaw)
		pan = mgl32.Clamp(rel.Normalize().Dot(right), -1, 1)
	}
	return gain, pan
}

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero gain is made silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return s
	}
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
