// Package view ties the shape chain to an animator and a canvas. It holds no
// host-specific code; the ebiten glue lives in package game.
package view

import (
	"time"

	"github.com/iburimskiy/window-line-ball/internal/anim"
	"github.com/iburimskiy/window-line-ball/internal/config"
	"github.com/iburimskiy/window-line-ball/internal/shape"
)

// PointerAction is the kind of a pointer event delivered by the host.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

// Renderer draws the current node of a chain and advances it on tap.
type Renderer struct {
	variant  config.Variant
	chain    *shape.Chain
	animator *anim.Animator
	paint    shape.Paint
}

// NewRenderer builds a fresh chain with one node per palette color.
func NewRenderer(v config.Variant, view anim.Invalidator) *Renderer {
	return &Renderer{
		variant:  v,
		chain:    shape.NewChain(len(v.Palette)),
		animator: anim.NewAnimator(view, v.Delay),
	}
}

func (r *Renderer) Variant() config.Variant { return r.variant }

func (r *Renderer) Current() int { return r.chain.Current().Index }

func (r *Renderer) Direction() int { return r.chain.Direction() }

func (r *Renderer) Animating() bool { return r.animator.Running() }

// Scale returns the animation scale of the current node.
func (r *Renderer) Scale() float64 { return r.chain.Current().State.Scale }

// Render clears the canvas and draws the current node.
func (r *Renderer) Render(cv shape.Canvas) {
	cv.Clear(r.variant.BackColor)
	r.chain.Draw(cv, r.variant, &r.paint)
}

// Advance moves the animation forward by dt. When a node finishes, the
// animator stops and the index of that node is returned with ok set.
func (r *Renderer) Advance(dt time.Duration) (settled int, ok bool) {
	gap := r.variant.ScGap()
	r.animator.Advance(dt, func() {
		idx := r.chain.Current().Index
		if res, _ := r.chain.Update(gap); res == anim.Completed {
			r.animator.Stop()
			settled, ok = idx, true
		}
	})
	return settled, ok
}

// HandleTap starts the current node and the animator. It returns false if an
// animation was already in progress.
func (r *Renderer) HandleTap() bool {
	if !r.chain.StartUpdating() {
		return false
	}
	r.animator.Start()
	return true
}

// HandleTouch reacts to pointer-down only. Every event counts as consumed.
func (r *Renderer) HandleTouch(a PointerAction) bool {
	if a == PointerDown {
		r.HandleTap()
	}
	return true
}
