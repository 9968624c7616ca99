package editor

import (
	"time"

	"github.com/viterin/vek/vek32"
)

type (
	// Easing maps linear progress in [0,1] to eased progress.
	Easing func(t float32) float32

	// Setter writes an interpolated value to the animated entity. It
	// returns false if the entity no longer exists, which silently drops the
	// animation.
	Setter func(v float32) bool

	// FrameRequester is the display-refresh primitive of the host: after
	// RequestFrame, the host calls Animator.Tick once on its next frame.
	FrameRequester interface {
		RequestFrame()
	}

	// Animator interpolates float values of entities over wall-clock time.
	// All animated entities share one Animator, which steps every active
	// animation once per frame. There is at most one animation per key: a
	// new request for a key replaces the old one.
	//
	// The Animator asks its FrameRequester for a frame only while animations
	// are active, so an idle Animator costs nothing.
	Animator struct {
		// Now returns the current time; tests replace it with a fake clock.
		Now func() time.Time

		frames  FrameRequester
		entries []*animation
		index   map[any]*animation
		armed   bool

		// scratch buffers for stepping all entries at once
		froms, spans, eased, values []float32
	}

	animation struct {
		key      any
		from, to float32
		start    time.Time
		duration time.Duration
		easing   Easing
		set      Setter
		current  float32
	}
)

// EaseOutQuad decelerates towards the end: 1-(1-t)^2.
func EaseOutQuad(t float32) float32 {
	return 1 - (1-t)*(1-t)
}

func NewAnimator(frames FrameRequester) *Animator {
	return &Animator{
		Now:    time.Now,
		frames: frames,
		index:  map[any]*animation{},
	}
}

// Animate starts interpolating from from to to over duration with
// EaseOutQuad, writing each step through set. key identifies the animated
// entity and must be comparable. To redirect an animation in flight, pass
// the current value of the entity as from.
func (a *Animator) Animate(key any, from, to float32, duration time.Duration, set Setter) {
	a.AnimateWith(key, from, to, duration, EaseOutQuad, set)
}

// AnimateWith is Animate with a custom easing function.
func (a *Animator) AnimateWith(key any, from, to float32, duration time.Duration, easing Easing, set Setter) {
	a.Cancel(key)
	if duration <= 0 {
		set(to)
		return
	}
	if easing == nil {
		easing = EaseOutQuad
	}
	e := &animation{
		key:      key,
		from:     from,
		to:       to,
		start:    a.Now(),
		duration: duration,
		easing:   easing,
		set:      set,
		current:  from,
	}
	a.entries = append(a.entries, e)
	a.index[key] = e
	a.arm()
}

// Cancel stops the animation of key, leaving the entity at its current
// value. Canceling a key without an animation does nothing.
func (a *Animator) Cancel(key any) {
	e, ok := a.index[key]
	if !ok {
		return
	}
	delete(a.index, key)
	for i, o := range a.entries {
		if o == e {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			break
		}
	}
}

// Active reports whether key is currently being animated.
func (a *Animator) Active(key any) bool {
	_, ok := a.index[key]
	return ok
}

// Target returns the value the animation of key is heading to.
func (a *Animator) Target(key any) (float32, bool) {
	e, ok := a.index[key]
	if !ok {
		return 0, false
	}
	return e.to, true
}

// Value returns the value most recently written by the animation of key.
func (a *Animator) Value(key any) (float32, bool) {
	e, ok := a.index[key]
	if !ok {
		return 0, false
	}
	return e.current, true
}

// Len returns the number of active animations.
func (a *Animator) Len() int { return len(a.entries) }

// Tick advances all animations to now and writes their values. Finished
// animations, and animations whose entity is gone, are removed. If any
// animation remains active, another frame is requested.
func (a *Animator) Tick(now time.Time) {
	a.armed = false
	n := len(a.entries)
	if n == 0 {
		return
	}
	a.froms = a.froms[:0]
	a.spans = a.spans[:0]
	a.eased = a.eased[:0]
	for _, e := range a.entries {
		p := float32(now.Sub(e.start)) / float32(e.duration)
		p = min(max(p, 0), 1)
		a.froms = append(a.froms, e.from)
		a.spans = append(a.spans, e.to-e.from)
		a.eased = append(a.eased, e.easing(p))
	}
	if cap(a.values) < n {
		a.values = make([]float32, n)
	}
	values := vek32.Mul_Into(a.values[:n], a.spans, a.eased)
	vek32.Add_Inplace(values, a.froms)
	// setters may start or cancel animations, so iterate over a snapshot
	entries := append([]*animation(nil), a.entries...)
	for i, e := range entries {
		if a.index[e.key] != e {
			continue // superseded or canceled by an earlier setter
		}
		done := now.Sub(e.start) >= e.duration
		v := values[i]
		if done {
			v = e.to
		}
		e.current = v
		if !e.set(v) || done {
			a.remove(e)
		}
	}
	if len(a.entries) > 0 {
		a.arm()
	}
}

func (a *Animator) remove(e *animation) {
	if a.index[e.key] == e {
		a.Cancel(e.key)
	}
}

func (a *Animator) arm() {
	if a.armed || a.frames == nil {
		return
	}
	a.armed = true
	a.frames.RequestFrame()
}
