package physics

// Tuning holds the per-tick movement constants shared by the player and
// enemies.
type Tuning struct {
	Gravity      float64
	JumpForce    float64
	MaxFallSpeed float64
	Acceleration float64
	Friction     float64
	MaxSpeed     float64

	// JumpCut multiplies upward velocity every tick the jump key is released.
	JumpCut float64
	// StompBounce and KnockbackLift are fractions of JumpForce.
	StompBounce    float64
	KnockbackLift  float64
	KnockbackSpeed float64
	StompScore     int

	// AnimThreshold, AnimFrames and PlayerAnimTicks drive the player walk
	// cycle; the Enemy* fields drive the enemy one.
	AnimThreshold      float64
	AnimFrames         int
	PlayerAnimTicks    int
	EnemyAnimTicks     int
	EnemyAnimFrames    int
	EnemyAnimThreshold float64

	RespawnX float64
	RespawnY float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      0.55,
		JumpForce:    -17.5,
		MaxFallSpeed: 12,
		Acceleration: 0.4,
		Friction:     0.3,
		MaxSpeed:     7,

		JumpCut:        0.5,
		StompBounce:    0.5,
		KnockbackLift:  0.8,
		KnockbackSpeed: 5,
		StompScore:     100,

		AnimThreshold:      0.5,
		AnimFrames:         4,
		PlayerAnimTicks:    5,
		EnemyAnimTicks:     10,
		EnemyAnimFrames:    4,
		EnemyAnimThreshold: 0.5,

		RespawnX: 100,
		RespawnY: 100,
	}
}
