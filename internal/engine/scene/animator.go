package scene

// DefaultAnimationSpeed is the depth step per frame.
const DefaultAnimationSpeed = 0.01

// Animator moves the field slice forward each frame.
type Animator struct {
	Speed float64
}

// NewAnimator creates an animator with the given speed.
func NewAnimator(speed float64) *Animator {
	return &Animator{Speed: speed}
}

// Advance moves p one frame forward.
func (a *Animator) Advance(p *Params) {
	p.Depth += a.Speed
}
