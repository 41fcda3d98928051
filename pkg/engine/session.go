// pkg/engine/session.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/opd-ai/go-boink/pkg/arena"
	"github.com/opd-ai/go-boink/pkg/config"
	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/event"
	"github.com/opd-ai/go-boink/pkg/logging"
	"github.com/opd-ai/go-boink/pkg/physics"
	"github.com/opd-ai/go-boink/pkg/physics/chipmunk"
	"github.com/opd-ai/go-boink/pkg/telemetry"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// Status is the lifecycle stage of a session.
type Status int

const (
	StatusWaiting Status = iota
	StatusActive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DefaultTimeStep is used by Tick when the configured fixed step is zero.
const DefaultTimeStep = 1.0 / 60.0

// stepEpsilon absorbs rounding when the frame delta is an exact multiple
// of the fixed step.
const stepEpsilon = 1e-9

// ErrNilEngine is returned when NewSession is given no physics engine.
var ErrNilEngine = errors.New("engine: nil physics engine")

// Session owns one arena, one vehicle and the loop that drives them.
// It is not safe for concurrent use.
type Session struct {
	Config      *config.SessionConfig
	Engine      physics.Engine
	Arena       *arena.Arena
	Vehicle     *vehicle.Vehicle
	Mapper      *control.Mapper
	EventBus    *event.Bus
	Status      Status
	CurrentTick uint64
	ElapsedTime float64 // simulated seconds
	LastUpdate  time.Time
	StartTime   time.Time

	ctx         context.Context
	logger      *logging.Logger
	metrics     *telemetry.Metrics
	accumulator float64
	lastActions control.Actions
	solids      []SolidFrame
}

// Option customises a Session at construction.
type Option func(*Session)

// WithLogger replaces the default stderr logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMetrics replaces the instruments from the global meter provider.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithEventBus shares an existing bus instead of creating one.
func WithEventBus(b *event.Bus) Option {
	return func(s *Session) { s.EventBus = b }
}

// WithSessionID fixes the id attached to log records and session events.
func WithSessionID(id string) Option {
	return func(s *Session) { s.ctx = logging.WithSessionID(s.ctx, id) }
}

// NewSession validates cfg, then builds the arena and the vehicle in eng.
// A nil cfg uses config.DefaultConfig().
func NewSession(cfg *config.SessionConfig, eng physics.Engine, opts ...Option) (*Session, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		Config:     cfg,
		Engine:     eng,
		Mapper:     control.NewMapper(cfg.Controls),
		LastUpdate: time.Now(),
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyDefaults()

	if err := s.build(); err != nil {
		s.logger.Error(s.ctx, "session build failed", err)
		return nil, err
	}

	s.logger.Info(s.ctx, "session created",
		"arena_width", cfg.Arena.Width,
		"arena_height", cfg.Arena.Height,
		"fixed_step", cfg.Physics.FixedStep,
	)
	return s, nil
}

// NewChipmunkSession creates a session on a fresh chipmunk space tuned
// from cfg.Physics.
func NewChipmunkSession(cfg *config.SessionConfig, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	space := chipmunk.New(chipmunk.Config{Iterations: cfg.Physics.Iterations})
	return NewSession(cfg, space, opts...)
}

func (s *Session) applyDefaults() {
	if s.EventBus == nil {
		s.EventBus = event.NewEventBus()
	}
	if s.logger == nil {
		s.logger = logging.NewLoggerWithLevel(os.Stderr, s.Config.LogLevel)
	}
	if logging.GetSessionID(s.ctx) == "" {
		s.ctx = logging.WithSessionID(s.ctx, logging.GenerateSessionID())
	}
	if s.metrics == nil {
		m, err := telemetry.Global()
		if err != nil {
			s.logger.Warn(s.ctx, "metrics disabled", "error", err)
		}
		s.metrics = m
	}
}

func (s *Session) build() error {
	a, err := arena.Build(s.Engine, s.Config.Arena)
	if err != nil {
		return logging.WrapError(err, "build arena")
	}
	s.Arena = a

	v, err := vehicle.New(s.Engine, a.VehicleSpawn(), s.Config.Vehicle)
	if err != nil {
		return logging.WrapError(err, "build vehicle")
	}
	s.Vehicle = v

	for _, solid := range a.Solids() {
		s.solids = append(s.solids, SolidFrame{Name: solid.Name, Rect: solid.Rect})
	}
	return nil
}

// ID returns the session id used in logs and events.
func (s *Session) ID() string {
	return logging.GetSessionID(s.ctx)
}

// Context returns the session context carrying its id.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Logger returns the session logger.
func (s *Session) Logger() *logging.Logger {
	return s.logger
}

// Start marks the session active so Advance and Update take steps.
func (s *Session) Start() {
	if s.Status == StatusActive {
		return
	}
	s.Status = StatusActive
	s.StartTime = time.Now()
	s.LastUpdate = s.StartTime
	s.accumulator = 0
	s.logger.Info(s.ctx, "session started")
	s.EventBus.Publish(event.NewSessionEvent(event.SessionStarted, s, s.ID(), s.CurrentTick))
}

// Stop ends the session. Later Advance and Update calls do nothing.
func (s *Session) Stop() {
	if s.Status != StatusActive {
		return
	}
	s.Status = StatusEnded
	s.logger.Info(s.ctx, "session ended",
		"ticks", s.CurrentTick,
		"simulated_seconds", s.ElapsedTime,
	)
	s.EventBus.Publish(event.NewSessionEvent(event.SessionEnded, s, s.ID(), s.CurrentTick))
}

// Running reports whether the session is active.
func (s *Session) Running() bool {
	return s.Status == StatusActive
}

// TimeStep is the duration of one Tick.
func (s *Session) TimeStep() float64 {
	if s.Config.Physics.FixedStep > 0 {
		return s.Config.Physics.FixedStep
	}
	return DefaultTimeStep
}

// Tick runs one simulation iteration of TimeStep seconds: controls, then
// the physics step, then ground classification. It runs regardless of
// Status.
func (s *Session) Tick(cmds control.Commands) control.Actions {
	return s.step(s.TimeStep(), cmds)
}

// Advance consumes a frame's wall time and returns the ticks taken. The
// frame delta is clamped to MaxFrameDelta. With a positive FixedStep the
// time is accumulated and spent in whole steps, at most MaxSubSteps per
// call; otherwise one tick of the frame delta is taken.
func (s *Session) Advance(frameDelta float64, cmds control.Commands) int {
	if s.Status != StatusActive || !(frameDelta > 0) {
		return 0
	}
	phys := s.Config.Physics
	if frameDelta > phys.MaxFrameDelta {
		frameDelta = phys.MaxFrameDelta
	}

	if phys.FixedStep <= 0 {
		s.step(frameDelta, cmds)
		return 1
	}

	s.accumulator += frameDelta
	ticks := 0
	for s.accumulator+stepEpsilon >= phys.FixedStep && ticks < phys.MaxSubSteps {
		s.step(phys.FixedStep, cmds)
		s.accumulator -= phys.FixedStep
		ticks++
	}
	if s.accumulator < 0 {
		s.accumulator = 0
	}
	if s.accumulator >= phys.FixedStep {
		// behind by more than MaxSubSteps; drop the backlog
		s.logger.Debug(s.ctx, "dropping simulation backlog", "seconds", s.accumulator)
		s.accumulator = 0
	}
	return ticks
}

// Update advances by the wall time since the previous Update.
func (s *Session) Update(cmds control.Commands) int {
	return s.Advance(s.calculateDeltaTime(), cmds)
}

// calculateDeltaTime calculates the time since the last update and caps it.
func (s *Session) calculateDeltaTime() float64 {
	now := time.Now()
	deltaTime := now.Sub(s.LastUpdate).Seconds()
	s.LastUpdate = now

	if deltaTime > s.Config.Physics.MaxFrameDelta {
		deltaTime = s.Config.Physics.MaxFrameDelta
	}
	return deltaTime
}

func (s *Session) step(dt float64, cmds control.Commands) control.Actions {
	started := time.Now()

	acts := s.Mapper.Apply(s.Vehicle, cmds)
	s.Engine.Step(s.Config.Physics.Gravity, dt)

	prev := s.Vehicle.State()
	next := vehicle.Classify(s.Vehicle, s.Arena.Floor(), s.Engine)
	s.CurrentTick++
	s.ElapsedTime += dt
	s.Vehicle.SyncPosition()

	if s.Vehicle.SetState(next) {
		s.logger.Debug(s.ctx, "vehicle state changed",
			"from", prev.String(),
			"to", next.String(),
			"tick", s.CurrentTick,
		)
		s.metrics.RecordTransition(s.ctx, prev, next)
		s.EventBus.Publish(event.NewStateEvent(s, prev, next, s.CurrentTick))
	}

	s.publishActions(acts)
	s.metrics.RecordActions(s.ctx, acts)
	s.metrics.RecordTick(s.ctx, time.Since(started))
	return acts
}

// publishActions emits VehicleJumped for each jump and VehicleBoosted when
// a boost starts.
func (s *Session) publishActions(acts control.Actions) {
	if acts.Jumped {
		s.EventBus.Publish(event.NewActionEvent(event.VehicleJumped, s, s.CurrentTick))
	}
	if acts.Boosted && !s.lastActions.Boosted {
		s.EventBus.Publish(event.NewActionEvent(event.VehicleBoosted, s, s.CurrentTick))
	}
	s.lastActions = acts
}
