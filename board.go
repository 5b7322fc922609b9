package holddrag

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// OutcomeStore is the interface for optional ECS integration.
// When set on a Board, gesture outcomes are forwarded to it after the
// surface's own callback has run.
type OutcomeStore interface {
	EmitOutcome(event OutcomeEvent)
}

// OutcomeKind identifies which outcome a session produced.
type OutcomeKind uint8

const (
	OutcomeTap  OutcomeKind = iota // surface tapped
	OutcomeDrop                    // payload dropped on a new meal
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeTap:
		return "tap"
	case OutcomeDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// OutcomeEvent carries one gesture outcome.
type OutcomeEvent struct {
	Kind    OutcomeKind
	Surface string
	Payload Payload
	Target  MealID // valid for OutcomeDrop
}

// Board is the top-level object that owns the drag registry, input routing,
// drop zones, timers and ghost rendering for one screen of draggable
// surfaces.
type Board struct {
	cfg *Config
	env Env

	dispatcher *Dispatcher
	zones      *DropZones
	clock      *FrameClock
	sprites    *SpritePresenter
	poller     *Poller
	store      OutcomeStore
	logger     *log.Logger

	surfaces   map[string]*Controller
	debug      bool
	leakWarned bool
}

// NewBoard creates a board. A nil cfg uses DefaultConfig.
func NewBoard(cfg *Config) *Board {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "holddrag",
		Level:  cfg.LogLevel(),
	})
	b := &Board{
		cfg:        cfg,
		dispatcher: NewDispatcher(),
		zones:      NewDropZones(),
		clock:      NewFrameClock(),
		sprites:    NewSpritePresenter(cfg.Ghost),
		logger:     logger,
		surfaces:   make(map[string]*Controller),
	}
	b.env = Env{
		Registry:  NewRegistry(),
		Clock:     b.clock,
		Observers: b.dispatcher,
		HitTester: b.zones,
		Ghosts:    b.sprites,
		Logger:    logger,
	}
	if cfg.HapticsEnabled() {
		b.env.Haptics = VibrateHaptics{
			Duration:  time.Duration(cfg.Haptics.DurationMS) * time.Millisecond,
			Magnitude: cfg.Haptics.Magnitude,
		}
	}
	return b
}

// Config returns the board's configuration.
func (b *Board) Config() *Config { return b.cfg }

// Registry returns the shared drag registry.
func (b *Board) Registry() *Registry { return b.env.Registry }

// Dispatcher returns the pointer router. Platform adapters other than the
// Ebitengine Poller deliver events here.
func (b *Board) Dispatcher() *Dispatcher { return b.dispatcher }

// Zones returns the drop target regions.
func (b *Board) Zones() *DropZones { return b.zones }

// Clock returns the frame clock the long-press timer runs on.
func (b *Board) Clock() *FrameClock { return b.clock }

// Logger returns the board's logger.
func (b *Board) Logger() *log.Logger { return b.logger }

// Ghosts returns the sprite presenter, or nil if a custom presenter is set.
func (b *Board) Ghosts() *SpritePresenter { return b.sprites }

// AddDropZone registers a drop target region for meal.
func (b *Board) AddDropZone(meal MealID, shape HitShape, depth int) ZoneHandle {
	return b.zones.Register(meal, shape, depth)
}

// NewSurface creates a draggable surface on top of the existing ones.
// Zero gesture settings are taken from the board config. A surface with
// the same non-empty name is torn down first.
func (b *Board) NewSurface(cfg SurfaceConfig) *Controller {
	if cfg.LongPressDelay <= 0 {
		cfg.LongPressDelay = b.cfg.LongPressDelay()
	}
	if cfg.TapThreshold <= 0 {
		cfg.TapThreshold = b.cfg.Gesture.TapThreshold
	}
	name := cfg.Name
	onTap, onDrop := cfg.OnTap, cfg.OnDropResolved
	cfg.OnTap = func(p Payload) {
		if onTap != nil {
			onTap(p)
		}
		b.emit(OutcomeEvent{Kind: OutcomeTap, Surface: name, Payload: p})
	}
	cfg.OnDropResolved = func(p Payload, target MealID) {
		if onDrop != nil {
			onDrop(p, target)
		}
		b.emit(OutcomeEvent{Kind: OutcomeDrop, Surface: name, Payload: p, Target: target})
	}

	if name != "" {
		b.RemoveSurface(name)
	}
	c := NewController(&b.env, cfg)
	b.dispatcher.Attach(c)
	if name != "" {
		b.surfaces[name] = c
	}
	return c
}

// Surface returns the surface with the given name.
func (b *Board) Surface(name string) (*Controller, bool) {
	c, ok := b.surfaces[name]
	return c, ok
}

// RemoveSurface tears down the named surface. Any session it owns ends
// without an outcome. It reports whether the surface existed.
func (b *Board) RemoveSurface(name string) bool {
	c, ok := b.surfaces[name]
	if !ok {
		return false
	}
	delete(b.surfaces, name)
	b.dispatcher.Detach(c)
	return true
}

func (b *Board) emit(ev OutcomeEvent) {
	if b.store != nil {
		b.store.EmitOutcome(ev)
	}
}

// Update polls input (when a Poller is set), fires due timers and advances
// ghost animations.
func (b *Board) Update(dt time.Duration) {
	if b.poller != nil {
		b.poller.Poll(b.dispatcher)
	}
	b.advance(dt)
	if b.debug {
		b.debugCheckIdle()
	}
}

func (b *Board) advance(dt time.Duration) {
	b.clock.Advance(dt)
	if b.sprites != nil {
		b.sprites.Update(dt)
	}
}

// Draw draws live ghosts above whatever the caller has drawn.
func (b *Board) Draw(screen *ebiten.Image) {
	if b.sprites != nil {
		b.sprites.Draw(screen)
	}
}

// FrameDelta returns the duration of one tick at the current TPS.
func FrameDelta() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// SetPoller sets the Ebitengine input source polled by Update.
func (b *Board) SetPoller(p *Poller) {
	b.poller = p
}

// SetOutcomeStore sets the optional ECS bridge.
func (b *Board) SetOutcomeStore(store OutcomeStore) {
	b.store = store
}

// SetGhostPresenter replaces the ghost presenter for future drags. Board
// only updates and draws presenters of type *SpritePresenter.
func (b *Board) SetGhostPresenter(gp GhostPresenter) {
	b.env.Ghosts = gp
	b.sprites, _ = gp.(*SpritePresenter)
}

// SetClock replaces the timer facility used by future presses, e.g. with a
// LoopClock for event-driven hosts. Nil restores the frame clock.
func (b *Board) SetClock(c Clock) {
	if c == nil {
		c = b.clock
	}
	b.env.Clock = c
}

// SetHaptics replaces the drag-start feedback. Nil disables it.
func (b *Board) SetHaptics(h Haptics) {
	b.env.Haptics = h
}

// SetLogger replaces the board's logger. Nil silences gesture logging.
func (b *Board) SetLogger(l *log.Logger) {
	b.logger = l
	b.env.Logger = l
}

// SetDebugMode enables or disables debug logging of every gesture
// transition.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
	if b.logger == nil {
		return
	}
	if enabled {
		b.logger.SetLevel(log.DebugLevel)
	} else {
		b.logger.SetLevel(b.cfg.LogLevel())
	}
}

// DebugMode reports whether debug logging is on.
func (b *Board) DebugMode() bool {
	return b.debug
}
