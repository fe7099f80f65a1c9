package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/kiccas/level"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	SpawnX    float64       `yaml:"spawn_x"`
	SpawnY    float64       `yaml:"spawn_y"`
	RespawnX  float64       `yaml:"respawn_x"`
	RespawnY  float64       `yaml:"respawn_y"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Lives     int           `yaml:"lives"`
	Physics   PhysicsSpec   `yaml:"physics"`
	Combat    CombatSpec    `yaml:"combat"`
	Animation AnimationSpec `yaml:"animation"`
}

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpCut      float64 `yaml:"jump_cut"`
}

type CombatSpec struct {
	StompBounce    float64 `yaml:"stomp_bounce"`
	StompScore     int     `yaml:"stomp_score"`
	KnockbackLift  float64 `yaml:"knockback_lift"`
	KnockbackSpeed float64 `yaml:"knockback_speed"`
}

// AnimationSpec describes a walk cycle: Frames images, advanced every Ticks+1
// updates while the speed exceeds Threshold.
type AnimationSpec struct {
	Frames    int     `yaml:"frames"`
	Ticks     int     `yaml:"ticks"`
	Threshold float64 `yaml:"threshold"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name      string        `yaml:"name"`
	Speed     float64       `yaml:"speed"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	BaseCount int           `yaml:"base_count"`
	MaxCount  int           `yaml:"max_count"`
	StartX    float64       `yaml:"start_x"`
	Spacing   float64       `yaml:"spacing"`
	SpawnY    float64       `yaml:"spawn_y"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RulesSpec struct {
	Name           string  `yaml:"name"`
	TimeLimit      int     `yaml:"time_limit"`
	FinishMargin   int     `yaml:"finish_margin"`
	ViewWidth      int     `yaml:"view_width"`
	ViewHeight     int     `yaml:"view_height"`
	CameraSmooth   float64 `yaml:"camera_smooth"`
	SampleStep     int     `yaml:"sample_step"`
	TicksPerSecond int     `yaml:"ticks_per_second"`
}

func LoadRulesSpec() (*RulesSpec, error) {
	spec, err := LoadSpec[RulesSpec]("rules.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ThemeSpec struct {
	Name        string    `yaml:"name"`
	HUDText     YAMLColor `yaml:"hud_text"`
	MenuText    YAMLColor `yaml:"menu_text"`
	Highlight   YAMLColor `yaml:"highlight"`
	Board       YAMLColor `yaml:"board"`
	EmptySlot   YAMLColor `yaml:"empty_slot"`
	RedPiece    YAMLColor `yaml:"red_piece"`
	YellowPiece YAMLColor `yaml:"yellow_piece"`
	Background  YAMLColor `yaml:"background"`
}

func LoadThemeSpec() (*ThemeSpec, error) {
	spec, err := LoadSpec[ThemeSpec]("theme.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadLevelSpec assembles the level tuning from player.yaml, enemy.yaml and
// rules.yaml. Each file is decoded over the defaults, so a key the file leaves
// out keeps its default and a key set to 0 really is 0. On error the defaults
// are returned alongside it.
func LoadLevelSpec() (level.Spec, error) {
	spec := level.DefaultSpec()

	player := playerSpecOf(spec)
	if err := decodeSpec("player.yaml", &player); err != nil {
		return level.DefaultSpec(), err
	}
	enemy := enemySpecOf(spec)
	if err := decodeSpec("enemy.yaml", &enemy); err != nil {
		return level.DefaultSpec(), err
	}
	rules := rulesSpecOf(spec)
	if err := decodeSpec("rules.yaml", &rules); err != nil {
		return level.DefaultSpec(), err
	}

	applyPlayer(&spec, &player)
	applyEnemy(&spec, &enemy)
	applyRules(&spec, &rules)
	return spec, nil
}

// LevelSpecOr is LoadLevelSpec for reloads: a broken file leaves prev in
// place.
func LevelSpecOr(prev level.Spec) (level.Spec, error) {
	spec, err := LoadLevelSpec()
	if err != nil {
		return prev, err
	}
	return spec, nil
}

func decodeSpec(filename string, dst any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

func playerSpecOf(spec level.Spec) PlayerSpec {
	t := spec.Tuning
	return PlayerSpec{
		SpawnX:   spec.SpawnX,
		SpawnY:   spec.SpawnY,
		RespawnX: t.RespawnX,
		RespawnY: t.RespawnY,
		Width:    spec.PlayerW,
		Height:   spec.PlayerH,
		Lives:    spec.Lives,
		Physics: PhysicsSpec{
			Gravity:      t.Gravity,
			JumpForce:    t.JumpForce,
			MaxFallSpeed: t.MaxFallSpeed,
			Acceleration: t.Acceleration,
			Friction:     t.Friction,
			MaxSpeed:     t.MaxSpeed,
			JumpCut:      t.JumpCut,
		},
		Combat: CombatSpec{
			StompBounce:    t.StompBounce,
			StompScore:     t.StompScore,
			KnockbackLift:  t.KnockbackLift,
			KnockbackSpeed: t.KnockbackSpeed,
		},
		Animation: AnimationSpec{
			Frames:    t.AnimFrames,
			Ticks:     t.PlayerAnimTicks,
			Threshold: t.AnimThreshold,
		},
	}
}

func enemySpecOf(spec level.Spec) EnemySpec {
	return EnemySpec{
		Speed:     spec.EnemySpeed,
		Width:     spec.EnemyW,
		Height:    spec.EnemyH,
		BaseCount: spec.EnemyBaseCount,
		MaxCount:  spec.EnemyMaxCount,
		StartX:    spec.EnemyStartX,
		Spacing:   spec.EnemySpacing,
		SpawnY:    spec.EnemySpawnY,
		Animation: AnimationSpec{
			Frames:    spec.Tuning.EnemyAnimFrames,
			Ticks:     spec.Tuning.EnemyAnimTicks,
			Threshold: spec.Tuning.EnemyAnimThreshold,
		},
	}
}

func rulesSpecOf(spec level.Spec) RulesSpec {
	return RulesSpec{
		TimeLimit:      spec.TimeLimit,
		FinishMargin:   spec.FinishMargin,
		ViewWidth:      spec.ViewW,
		ViewHeight:     spec.ViewH,
		CameraSmooth:   spec.CameraSmooth,
		SampleStep:     spec.SampleStep,
		TicksPerSecond: spec.TicksPerSecond,
	}
}

func applyPlayer(spec *level.Spec, p *PlayerSpec) {
	t := &spec.Tuning
	spec.SpawnX, spec.SpawnY = p.SpawnX, p.SpawnY
	t.RespawnX, t.RespawnY = p.RespawnX, p.RespawnY
	spec.PlayerW, spec.PlayerH = p.Width, p.Height
	spec.Lives = p.Lives

	t.Gravity = p.Physics.Gravity
	t.JumpForce = p.Physics.JumpForce
	t.MaxFallSpeed = p.Physics.MaxFallSpeed
	t.Acceleration = p.Physics.Acceleration
	t.Friction = p.Physics.Friction
	t.MaxSpeed = p.Physics.MaxSpeed
	t.JumpCut = p.Physics.JumpCut

	t.StompBounce = p.Combat.StompBounce
	t.StompScore = p.Combat.StompScore
	t.KnockbackLift = p.Combat.KnockbackLift
	t.KnockbackSpeed = p.Combat.KnockbackSpeed

	t.AnimFrames = p.Animation.Frames
	t.PlayerAnimTicks = p.Animation.Ticks
	t.AnimThreshold = p.Animation.Threshold
}

func applyEnemy(spec *level.Spec, e *EnemySpec) {
	spec.EnemySpeed = e.Speed
	spec.EnemyW, spec.EnemyH = e.Width, e.Height
	spec.EnemyBaseCount, spec.EnemyMaxCount = e.BaseCount, e.MaxCount
	spec.EnemyStartX = e.StartX
	spec.EnemySpacing = e.Spacing
	spec.EnemySpawnY = e.SpawnY

	t := &spec.Tuning
	t.EnemyAnimFrames = e.Animation.Frames
	t.EnemyAnimTicks = e.Animation.Ticks
	t.EnemyAnimThreshold = e.Animation.Threshold
}

func applyRules(spec *level.Spec, r *RulesSpec) {
	spec.TimeLimit = r.TimeLimit
	spec.FinishMargin = r.FinishMargin
	spec.ViewW, spec.ViewH = r.ViewWidth, r.ViewHeight
	spec.CameraSmooth = r.CameraSmooth
	spec.SampleStep = r.SampleStep
	spec.TicksPerSecond = r.TicksPerSecond
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
