// Treent-demo shows draggable colored boxes routed through a treent tree.
// Press a box to bring it to the front, drag to move it, click to toggle
// its color. Losing window focus cancels any drag in progress.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	flag "github.com/spf13/pflag"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/treent"
)

const boxSize = 60

// box is the per-node drawing state kept in Node.UserData.
type box struct {
	primary, alt treent.Color
	current      bool
	dragged      bool
}

func (b *box) color() treent.Color {
	if b.current {
		return b.primary
	}
	return b.alt
}

func main() {
	fs := flag.NewFlagSet("treent-demo", flag.ContinueOnError)
	configPath := fs.StringP("config", "c", "", "YAML run config file")
	scriptPath := fs.StringP("script", "s", "", "YAML input script to replay")
	title := fs.String("title", "", "Window title")
	width := fs.Int("width", 0, "Window width")
	height := fs.Int("height", 0, "Window height")
	debug := fs.Bool("debug", false, "Log ignored tree edits and uncaptured input")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Fatal(err)
	}

	cfg := treent.RunConfig{Title: "treent demo"}
	if *configPath != "" {
		var err error
		if cfg, err = treent.LoadRunConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	// Flags override the file.
	if fs.Changed("title") {
		cfg.Title = *title
	}
	if fs.Changed("width") {
		cfg.Width = *width
	}
	if fs.Changed("height") {
		cfg.Height = *height
	}
	if fs.Changed("debug") {
		cfg.Debug = *debug
	}

	scene := treent.NewScene()
	scene.ClearColor = treent.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}

	colors := []treent.Color{
		{R: 0.9, G: 0.3, B: 0.3, A: 1},
		{R: 0.3, G: 0.7, B: 0.9, A: 1},
		{R: 0.3, G: 0.9, B: 0.5, A: 1},
	}
	altColors := []treent.Color{
		{R: 1.0, G: 0.7, B: 0.2, A: 1},
		{R: 0.8, G: 0.3, B: 0.9, A: 1},
		{R: 0.9, G: 0.9, B: 0.3, A: 1},
	}

	var tweens []*treent.TweenGroup
	for i := range colors {
		n := makeBox(scene, fmt.Sprintf("box%d", i), colors[i], altColors[i], func(g *treent.TweenGroup) {
			tweens = append(tweens, g)
		})
		n.Transform().SetPosition(float64(120+i*160), 200)
		scene.Root().AppendChild(n)
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := treent.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		scene.SetTestRunner(runner)
	}

	dt := float32(1) / float32(ebiten.DefaultTPS)
	scene.OnUpdate = func() {
		live := tweens[:0]
		for _, g := range tweens {
			g.Update(dt)
			if !g.Done {
				live = append(live, g)
			}
		}
		tweens = live
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	scene.OnDraw = func(screen *ebiten.Image) {
		// Index 0 has input priority, so it is drawn last (on top).
		kids := scene.Root().Children()
		for i := len(kids) - 1; i >= 0; i-- {
			drawBox(screen, pixel, kids[i])
		}
	}

	if err := treent.Run(scene, cfg); err != nil {
		log.Fatal(err)
	}
}

// makeBox creates a draggable, clickable node with a solid color.
func makeBox(scene *treent.Scene, name string, primary, alt treent.Color, animate func(*treent.TweenGroup)) *treent.Node {
	n := scene.NewNode(name)
	b := &box{primary: primary, alt: alt, current: true}
	n.UserData = b

	hit := treent.NewHitInteraction(treent.HitRect{Width: boxSize, Height: boxSize})
	hit.OnPress = func(treent.PointerContext) {
		b.dragged = false
		if p := n.Parent(); p != nil {
			p.SetChildIndex(n, 0)
		}
	}
	hit.OnMove = func(ctx treent.PointerContext) {
		b.dragged = true
		t := n.Transform()
		t.SetPosition(t.X+ctx.DeltaX, t.Y+ctx.DeltaY)
	}
	hit.OnRelease = func(treent.PointerContext) {
		if b.dragged {
			return
		}
		b.current = !b.current
		n.Transform().SetScale(1.2, 1.2)
		animate(treent.TweenScale(n, 1, 1, 0.25, ease.OutBack))
	}
	hit.OnCancel = func() {
		b.dragged = false
	}
	n.SetInteraction(hit)
	return n
}

func drawBox(screen, pixel *ebiten.Image, n *treent.Node) {
	b, ok := n.UserData.(*box)
	if !ok {
		return
	}
	w := n.WorldTransform().Mul(treent.Scale(boxSize, boxSize))

	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, w[0])
	op.GeoM.SetElement(1, 0, w[1])
	op.GeoM.SetElement(0, 1, w[2])
	op.GeoM.SetElement(1, 1, w[3])
	op.GeoM.SetElement(0, 2, w[4])
	op.GeoM.SetElement(1, 2, w[5])
	c := b.color()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	screen.DrawImage(pixel, &op)
}
