package presskit

import (
	"errors"
	"log/slog"
	"time"

	"github.com/yohamta/donburi"
)

// ErrNoNode is returned when an entity is created without a scene node.
var ErrNoNode = errors.New("presskit: nil node")

var discardLogger = slog.New(slog.DiscardHandler)

// Scene is the top-level object that owns the node tree, the entity world,
// the system schedule and the collaborators systems read through Frame.
type Scene struct {
	// ClearColor fills the screen before Draw renders the cameras.
	ClearColor Color

	root  *Node
	world donburi.World
	sched *Scheduler
	debug bool

	logger *slog.Logger
	sink   EventSink

	// Collaborators threaded into every Frame.
	hands   []HandSource
	session Session
	audio   Audio

	handlers    handlerRegistry
	byEntity    map[donburi.Entity]*Node
	frameEvents []ButtonEvent

	tweens     *TweenSystem
	testRunner *TestRunner
	observers  []FrameObserver
	snapshot   FrameSnapshot

	// Debug rendering.
	cameras    []*Camera
	commands   []RenderCommand
	updateFunc func() error
}

// NewScene creates a scene with a pre-created root node and the standard
// frame order: rotation, instruction visibility, tweens, calibration,
// button dispatch, finger input.
func NewScene() *Scene {
	world := donburi.NewWorld()
	s := &Scene{
		ClearColor: Color{R: 0.118, G: 0.118, B: 0.157, A: 1},
		root:       NewNode("root"),
		world:      world,
		sched:      NewScheduler(world),
		logger:     discardLogger,
		byEntity:   make(map[donburi.Entity]*Node),
		tweens:     &TweenSystem{},
	}
	buttonEvents.Subscribe(world, s.deliver)

	s.sched.Add(RotationSystem{})
	s.sched.Add(InstructionSystem{})
	s.sched.Add(s.tweens)
	s.sched.Add(&CalibrationSystem{})
	s.sched.Add(&ButtonDispatchSystem{})
	s.sched.Add(&FingerInputSystem{})
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Systems returns the frame order. The returned slice MUST NOT be mutated.
func (s *Scene) Systems() []System {
	return s.sched.Systems()
}

// SetHands replaces the hand sources read by finger input and the
// instruction system. Nil entries are allowed and skipped.
func (s *Scene) SetHands(hands ...HandSource) {
	s.hands = hands
}

// Hands returns the current hand sources. The returned slice MUST NOT be mutated.
func (s *Scene) Hands() []HandSource {
	return s.hands
}

// SetSession sets the session lifecycle collaborator.
func (s *Scene) SetSession(session Session) {
	s.session = session
}

// SetAudio sets the sound subsystem. Binding happens lazily on the first
// frame with an active session.
func (s *Scene) SetAudio(a Audio) {
	s.audio = a
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetLogger sets the structured logger systems write to. A nil logger
// discards everything.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	s.logger = l
	if s.debug {
		globalDebugLogger = l
	}
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.logger
}

// SetWarmup holds every system until d of frame time has elapsed.
func (s *Scene) SetWarmup(d time.Duration) {
	s.sched.SetWarmup(d.Seconds())
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and if no logger was set,
// every button state edge is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled && s.logger == discardLogger {
		s.logger = newDebugLogger()
	}
	globalDebugLogger = discardLogger
	if enabled {
		globalDebugLogger = s.logger
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// globalDebugLogger is the logger of the scene that last enabled debug mode.
var globalDebugLogger = discardLogger

// AddTween schedules g on the tween system. Finished groups are dropped.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens.Add(g)
}

// AddObserver registers o to receive a snapshot after every frame in which
// systems ran.
func (s *Scene) AddObserver(o FrameObserver) {
	s.observers = append(s.observers, o)
}

// Frame returns the context of the most recent step.
func (s *Scene) Frame() *Frame {
	return s.sched.Frame()
}

// Events returns the button events delivered during the last Update.
// The returned slice MUST NOT be mutated.
func (s *Scene) Events() []ButtonEvent {
	return s.frameEvents
}

// Update advances the scene by dt seconds: the test runner and injected
// poses are stepped, then every system runs once in frame order and world
// transforms are refreshed. It returns false while the warmup is running.
func (s *Scene) Update(dt float64) bool {
	s.frameEvents = s.frameEvents[:0]

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	for _, h := range s.hands {
		if hand, ok := h.(*Hand); ok && hand != nil {
			hand.stepInjected()
		}
	}

	f := s.sched.Frame()
	f.Hands = s.hands
	f.Session = s.session
	f.Audio = s.audio
	f.Logger = s.logger

	for _, cam := range s.cameras {
		cam.Update(float32(dt))
	}

	start := time.Now()
	ran := s.sched.Step(dt)
	updateWorldTransform(s.root, identityTransform, false)
	if ran {
		s.debugLogFrame(f.Index, time.Since(start))
	}

	if ran && len(s.observers) > 0 {
		s.fillSnapshot(f)
		for _, o := range s.observers {
			o.ObserveFrame(&s.snapshot)
		}
	}
	return ran
}

// handNamed returns the scene hand with the given name.
func (s *Scene) handNamed(name string) *Hand {
	for _, h := range s.hands {
		if hand, ok := h.(*Hand); ok && hand != nil && hand.Name == name {
			return hand
		}
	}
	return nil
}

// pendingInjections counts queued poses across all scene hands.
func (s *Scene) pendingInjections() int {
	n := 0
	for _, h := range s.hands {
		if hand, ok := h.(*Hand); ok && hand != nil {
			n += hand.Pending()
		}
	}
	return n
}
