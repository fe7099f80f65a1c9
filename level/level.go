package level

import (
	"errors"
	"fmt"

	"github.com/milk9111/kiccas/ecs"
	"github.com/milk9111/kiccas/physics"
)

// ErrMissingAssets is returned when a level cannot start without its map.
var ErrMissingAssets = errors.New("level: missing assets")

// Outcome is the state of a level attempt.
type Outcome int

const (
	Playing Outcome = iota
	Complete
	Dead
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Complete:
		return "complete"
	case Dead:
		return "dead"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

const (
	EventJump     ecs.EventType = "jump"
	EventStomp    ecs.EventType = "stomp"
	EventDamage   ecs.EventType = "damage"
	EventFell     ecs.EventType = "fell"
	EventBounce   ecs.EventType = "bounce"
	EventComplete ecs.EventType = "complete"
	EventDead     ecs.EventType = "dead"
)

// Level is one attempt at a level. Every attempt starts with a fresh player.
type Level struct {
	ID     int
	Spec   Spec
	Map    *physics.LevelMap
	Camera physics.Camera

	Player  *physics.Player
	Enemies *ecs.Pool[physics.Enemy]

	TicksLeft int
	Events    ecs.EventQueue

	input   physics.Input
	outcome Outcome
	systems *ecs.Scheduler[*Level]
}

// New builds level id over m. Enemies are spread along the map from
// Spec.EnemyStartX.
func New(id int, m *physics.LevelMap, spec Spec) (*Level, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: level %d has no map", ErrMissingAssets, id)
	}
	if spec.SampleStep > 0 {
		m.Step = spec.SampleStep
	}

	l := &Level{
		ID:        id,
		Spec:      spec,
		Map:       m,
		Camera:    physics.NewCamera(spec.ViewW, spec.ViewH),
		Player:    physics.NewPlayer(spec.SpawnX, spec.SpawnY, spec.PlayerW, spec.PlayerH, spec.Lives),
		Enemies:   ecs.NewPool[physics.Enemy](),
		TicksLeft: spec.TimeLimit * spec.TicksPerSecond,
	}
	if spec.CameraSmooth > 0 {
		l.Camera.Smooth = spec.CameraSmooth
	}

	for i := 0; i < spec.EnemyCount(id); i++ {
		x := spec.EnemyStartX + float64(i)*spec.EnemySpacing
		l.Enemies.Create(physics.NewEnemy(x, spec.EnemySpawnY, spec.EnemySpeed, spec.EnemyW, spec.EnemyH))
	}

	l.systems = ecs.NewScheduler[*Level](
		NewTimerSystem(),
		NewPlayerSystem(),
		NewEnemySystem(),
		NewCameraSystem(),
		NewOutcomeSystem(),
	)
	return l, nil
}

// Update runs one fixed tick with the held input and returns the outcome.
// Once the attempt has ended further calls do nothing.
func (l *Level) Update(in physics.Input) Outcome {
	if l.outcome != Playing {
		return l.outcome
	}
	l.input = in
	l.systems.Update(l)
	return l.outcome
}

func (l *Level) Outcome() Outcome { return l.outcome }

// Quit ends a running attempt without a result.
func (l *Level) Quit() {
	if l.outcome == Playing {
		l.outcome = Quit
	}
}

// Next returns the destination after the attempt: the next level id after a
// completion, 0 (the menu) otherwise.
func (l *Level) Next() int {
	if l.outcome == Complete {
		return l.ID + 1
	}
	return 0
}

// SecondsLeft is the countdown shown on the HUD.
func (l *Level) SecondsLeft() int {
	if l.Spec.TicksPerSecond <= 0 {
		return 0
	}
	return l.TicksLeft / l.Spec.TicksPerSecond
}

func (l *Level) end(o Outcome, evt ecs.EventType) {
	l.outcome = o
	l.Events.Push(ecs.Event{Type: evt})
}
