package ui

import "time"

// IntroPhase is a step of the intro sequence.
type IntroPhase int

const (
	PhaseLogoIn IntroPhase = iota
	PhaseLogoHold
	PhaseLogoOut
	PhaseEmblemIn
	PhaseEmblemHold
	PhaseDone
)

const (
	introStep    = 10 * time.Millisecond
	introHold    = 500 * time.Millisecond
	introFadeIn  = 2
	introFadeOut = 5
	introOpaque  = 255
)

// Intro fades the logo in and out, then fades the emblem in. Alpha changes by
// a fixed amount every 10ms of elapsed time.
type Intro struct {
	Phase IntroPhase
	Alpha int

	acc time.Duration
}

func NewIntro() *Intro {
	return &Intro{}
}

// Skip jumps to the end of the sequence.
func (in *Intro) Skip() {
	in.Phase = PhaseDone
}

func (in *Intro) Done() bool {
	return in.Phase == PhaseDone
}

// ShowingEmblem reports whether the emblem, rather than the logo, is drawn.
func (in *Intro) ShowingEmblem() bool {
	return in.Phase >= PhaseEmblemIn
}

// Update advances the sequence by dt.
func (in *Intro) Update(dt time.Duration) {
	in.acc += dt
	for !in.Done() {
		switch in.Phase {
		case PhaseLogoHold, PhaseEmblemHold:
			if in.acc < introHold {
				return
			}
			in.acc -= introHold
			in.advance()
			continue
		}
		if in.acc < introStep {
			return
		}
		in.acc -= introStep
		in.fade()
	}
}

func (in *Intro) fade() {
	switch in.Phase {
	case PhaseLogoIn, PhaseEmblemIn:
		in.Alpha += introFadeIn
		if in.Alpha >= introOpaque {
			in.Alpha = introOpaque
			in.advance()
		}
	case PhaseLogoOut:
		in.Alpha -= introFadeOut
		if in.Alpha <= 0 {
			in.Alpha = 0
			in.advance()
		}
	}
}

func (in *Intro) advance() {
	in.Phase++
	switch in.Phase {
	case PhaseLogoOut:
		in.Alpha = introOpaque
	case PhaseEmblemIn:
		in.Alpha = 0
	}
}

// Alpha01 returns Alpha scaled to [0, 1].
func (in *Intro) Alpha01() float32 {
	return float32(in.Alpha) / introOpaque
}
