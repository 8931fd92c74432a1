package treent

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transformField selects one float64 property of a Transform.
type transformField func(*Transform) *float64

func fieldX(t *Transform) *float64        { return &t.X }
func fieldY(t *Transform) *float64        { return &t.Y }
func fieldScaleX(t *Transform) *float64   { return &t.ScaleX }
func fieldScaleY(t *Transform) *float64   { return &t.ScaleY }
func fieldRotation(t *Transform) *float64 { return &t.Rotation }

// TweenGroup animates up to 4 Transform properties of a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) each frame. Values land on the node's
// Transform and are picked up by the next UpdateTree. If the target node is
// destroyed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]transformField
	target *Node
	Done   bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, to []float64, fields ...transformField) *TweenGroup {
	g := &TweenGroup{count: len(fields), target: node}
	t := node.Transform()
	if t == nil {
		g.Done = true
		return g
	}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f(t)), float32(to[i]), duration, fn)
		g.fields[i] = f
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target's Transform. If the target node has been destroyed, Done is set to
// true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	t := g.target.Transform()
	if t == nil {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i](t) = float64(val)
		if !finished {
			allDone = false
		}
	}
	t.explicit = false
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the node's X and Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []float64{toX, toY}, fieldX, fieldY)
}

// TweenScale creates a TweenGroup that animates the node's ScaleX and ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []float64{toSX, toSY}, fieldScaleX, fieldScaleY)
}

// TweenRotation creates a TweenGroup that animates the node's Rotation.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []float64{to}, fieldRotation)
}
