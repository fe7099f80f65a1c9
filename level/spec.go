package level

import "github.com/milk9111/kiccas/physics"

// Spec holds everything a level attempt needs besides its map.
type Spec struct {
	Tuning physics.Tuning

	SpawnX, SpawnY float64
	PlayerW        int
	PlayerH        int
	Lives          int

	EnemyBaseCount int
	EnemyMaxCount  int
	EnemyStartX    float64
	EnemySpacing   float64
	EnemySpawnY    float64
	EnemySpeed     float64
	EnemyW, EnemyH int

	TimeLimit      int // seconds
	FinishMargin   int
	ViewW, ViewH   int
	CameraSmooth   float64
	SampleStep     int
	TicksPerSecond int
}

func DefaultSpec() Spec {
	return Spec{
		Tuning: physics.DefaultTuning(),

		SpawnX:         50,
		SpawnY:         300,
		PlayerW:        50,
		PlayerH:        70,
		Lives:          3,
		EnemyBaseCount: 5,
		EnemyMaxCount:  20,
		EnemyStartX:    800,
		EnemySpacing:   500,
		EnemySpawnY:    50,
		EnemySpeed:     2,
		EnemyW:         60,
		EnemyH:         70,
		TimeLimit:      400,
		FinishMargin:   200,
		ViewW:          640,
		ViewH:          360,
		CameraSmooth:   physics.DefaultCameraSmooth,
		SampleStep:     physics.DefaultSampleStep,
		TicksPerSecond: 60,
	}
}

// EnemyCount is the number of enemies spawned for level id.
func (s Spec) EnemyCount(id int) int {
	n := s.EnemyBaseCount + id
	if s.EnemyMaxCount > 0 && n > s.EnemyMaxCount {
		n = s.EnemyMaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}
