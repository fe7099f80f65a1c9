package ui

import (
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/settings"
)

// Option buttons, 1-based as used by Options.Selected.
const (
	OptionNone = iota
	OptionVolume
	OptionFullscreen
	OptionBack
)

var (
	VolumeRect     = common.Rect{X: 450, Y: 50, W: 300, H: 100}
	FullscreenRect = common.Rect{X: 100, Y: 250, W: 300, H: 100}
	BackRect       = common.Rect{X: 100, Y: 450, W: 300, H: 100}
)

const (
	VolumeStep      = 10
	VolumeClickStep = 32
)

// Action is the side effect the options screen asks for.
type Action int

const (
	ActionNone Action = iota
	// ActionVolume means Volume changed and must be applied and saved.
	ActionVolume
	ActionFullscreen
	ActionBack
)

// Options is the settings screen state.
type Options struct {
	Selected    int
	Volume      int
	VolumeIndex int
	Fullscreen  bool
}

func NewOptions(volume int, fullscreen bool) *Options {
	return &Options{
		Volume:      volume,
		VolumeIndex: initialVolumeIndex(volume),
		Fullscreen:  fullscreen,
	}
}

// VolumeIndex picks one of the four volume images.
func VolumeIndex(v int) int {
	switch {
	case v == 0:
		return 0
	case v <= 42:
		return 1
	case v <= 84:
		return 2
	}
	return 3
}

// initialVolumeIndex uses slightly different thresholds than VolumeIndex when
// the screen opens; the image is corrected on the first change.
func initialVolumeIndex(v int) int {
	idx := 0
	if v > 0 {
		idx = 1
	}
	if v > 40 {
		idx = 2
	}
	if v > 80 {
		idx = 3
	}
	return idx
}

func (o *Options) Up() {
	o.Selected = Cycle(o.Selected, -1, 3)
}

func (o *Options) Down() {
	o.Selected = Cycle(o.Selected, 1, 3)
}

// Increase and Decrease step the volume while it is selected.
func (o *Options) Increase() Action {
	return o.stepVolume(VolumeStep)
}

func (o *Options) Decrease() Action {
	return o.stepVolume(-VolumeStep)
}

func (o *Options) stepVolume(delta int) Action {
	if o.Selected != OptionVolume {
		return ActionNone
	}
	o.setVolume(settings.ClampVolume(o.Volume + delta))
	return ActionVolume
}

func (o *Options) setVolume(v int) {
	o.Volume = v
	o.VolumeIndex = VolumeIndex(v)
}

// Enter activates the selected button. The volume widget does nothing on
// Enter.
func (o *Options) Enter() Action {
	switch o.Selected {
	case OptionFullscreen:
		o.Fullscreen = !o.Fullscreen
		return ActionFullscreen
	case OptionBack:
		return ActionBack
	}
	return ActionNone
}

// Hover selects the button under the mouse, or none.
func (o *Options) Hover(x, y int) {
	o.Selected = HitTest([]common.Rect{VolumeRect, FullscreenRect, BackRect}, x, y)
}

// Click handles a left click at (x, y). Clicking the volume widget adds
// VolumeClickStep and wraps to zero past the maximum.
func (o *Options) Click(x, y int) Action {
	switch HitTest([]common.Rect{VolumeRect, FullscreenRect, BackRect}, x, y) {
	case OptionFullscreen:
		o.Fullscreen = !o.Fullscreen
		return ActionFullscreen
	case OptionBack:
		return ActionBack
	case OptionVolume:
		v := o.Volume + VolumeClickStep
		if v > settings.MaxVolume {
			v = 0
		}
		o.setVolume(v)
		return ActionVolume
	}
	return ActionNone
}

// FullscreenState picks the fullscreen button image: 2 while fullscreen, 1
// while hovered, else 0.
func (o *Options) FullscreenState() int {
	if o.Fullscreen {
		return 2
	}
	if o.Selected == OptionFullscreen {
		return 1
	}
	return 0
}

func (o *Options) BackState() int {
	if o.Selected == OptionBack {
		return 1
	}
	return 0
}
