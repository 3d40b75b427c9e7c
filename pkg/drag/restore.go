package drag

// restore is one in-flight return-to-anchor animation. The step is fixed
// when the restore starts, so the motion is linear until the final snap.
type restore struct {
	target Vec2
	step   float64
	snap   float64
	steps  int
}

func newRestore(from, to Vec2, fraction, snap float64) *restore {
	return &restore{
		target: to,
		step:   from.Distance(to) * fraction,
		snap:   snap,
	}
}

// advance moves p one step toward the target. It returns the new position
// and whether the restore is finished.
func (r *restore) advance(p Vec2) (Vec2, bool) {
	if p.Distance(r.target) <= r.snap {
		return r.target, true
	}
	r.steps++
	p = p.MoveTowards(r.target, r.step)
	if p.Distance(r.target) <= r.snap {
		return r.target, true
	}
	return p, false
}
