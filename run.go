package treent

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
	Debug     bool   `yaml:"debug"`
}

// Defaults used for zero RunConfig fields.
const (
	defaultTitle  = "treent"
	defaultWidth  = 640
	defaultHeight = 480
)

// withDefaults returns cfg with zero fields filled in.
func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}
	return cfg
}

// ParseRunConfig decodes a YAML run configuration and fills defaults.
func ParseRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("treent: parse run config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadRunConfig reads and decodes a YAML run configuration file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("treent: load run config %s: %w", path, err)
	}
	cfg, err := ParseRunConfig(data)
	if err != nil {
		return RunConfig{}, fmt.Errorf("treent: load run config %s: %w", path, err)
	}
	return cfg, nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	scene.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height}); err != nil {
		return fmt.Errorf("treent: run: %w", err)
	}
	return nil
}
