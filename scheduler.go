package presskit

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Frame is the per-frame context handed to every system. It carries
// everything a system may read besides the world itself; systems never reach
// back into the Scene.
type Frame struct {
	// Delta is the time since the previous frame, in seconds.
	Delta float64
	// Elapsed is the total time stepped so far, in seconds.
	Elapsed float64
	// Index counts frames in which systems ran, starting at 1.
	Index uint64

	World   donburi.World
	Hands   []HandSource
	Session Session
	Audio   Audio
	Logger  *slog.Logger
}

// System is a per-frame procedure over the entities matching its query.
type System interface {
	Name() string
	Update(f *Frame)
}

// Scheduler runs systems in registration order on top of a donburi ECS.
// Each system observes the settled output of every system before it in the
// same frame.
type Scheduler struct {
	ecs     *ecs.ECS
	systems []System
	frame   Frame
	warmup  float64
	clock   float64
}

// NewScheduler creates a scheduler over world.
func NewScheduler(world donburi.World) *Scheduler {
	return &Scheduler{
		ecs:   ecs.NewECS(world),
		frame: Frame{World: world, Logger: discardLogger},
	}
}

// Add appends sys to the frame order.
func (s *Scheduler) Add(sys System) {
	s.systems = append(s.systems, sys)
	s.ecs.AddSystem(func(*ecs.ECS) {
		sys.Update(&s.frame)
	})
}

// Systems returns the frame order. The returned slice MUST NOT be mutated.
func (s *Scheduler) Systems() []System {
	return s.systems
}

// SetWarmup holds every system until seconds of time have been stepped.
func (s *Scheduler) SetWarmup(seconds float64) {
	s.warmup = seconds
}

// Step advances the clock by dt and runs all systems once. It returns false
// while the warmup period is still running.
func (s *Scheduler) Step(dt float64) bool {
	s.clock += dt
	if s.clock < s.warmup {
		return false
	}
	s.frame.Delta = dt
	s.frame.Elapsed = s.clock
	s.frame.Index++
	s.ecs.Update()
	return true
}

// Frame returns the context of the most recent step.
func (s *Scheduler) Frame() *Frame {
	return &s.frame
}
