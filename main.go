package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mesh-backdrop/internal/backdrop"
	"github.com/iburimskiy/mesh-backdrop/internal/config"
)

const (
	windowWidth  = 1024
	windowHeight = 640

	// Button dimensions
	buttonWidth  = 120
	buttonHeight = 40
	buttonX      = 20
	buttonY      = 50
)

type game struct {
	cfg    config.Config
	motion backdrop.StaticMotionPreference

	override *backdrop.OverrideSignal
	scheme   *backdrop.SchemeSignal
	theme    *backdrop.Resolver

	back    *backdrop.Backdrop
	surface *backdrop.Surface

	// override cycle position: 0 none, 1 dark, 2 light
	overrideState int

	presetName string

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func newGame(cfg config.Config, reducedMotion, systemDark bool) *game {
	g := &game{
		cfg:      cfg,
		motion:   backdrop.StaticMotionPreference(reducedMotion),
		override: &backdrop.OverrideSignal{},
		scheme:   &backdrop.SchemeSignal{},
		surface:  &backdrop.Surface{},
	}
	g.scheme.SetDark(systemDark)
	g.theme = backdrop.NewResolver(g.override, g.scheme)
	g.back = backdrop.New(cfg, g.theme, g.motion, nil)
	return g
}

func (g *game) Update() error {
	// Handle button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= buttonX && mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY && mouseY <= buttonY+buttonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openPresetDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.cycleOverride()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.scheme.SetDark(!g.scheme.Dark())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Re-measure the content box every frame; a change rebuilds the backing
	// store and respawns the field before this frame integrates.
	w, h := ebiten.WindowSize()
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if g.surface.Resize(w, h, dpr) {
		g.back.Resize(float64(w), float64(h))
	}

	g.back.Step(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Backdrop first: it sits behind all foreground content.
	g.back.Render(g.surface.Canvas())
	g.surface.Compose(screen)

	g.drawButton(screen)

	status := fmt.Sprintf("theme: %s | particles: %d | reduced motion: %v",
		g.theme.Mode(), len(g.back.Particles()), g.motion.ReducedMotion())
	if g.presetName != "" {
		status += " | preset: " + g.presetName
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "T: cycle theme override, D: toggle system dark, Esc/Q: quit", 12, 26)
}

func (g *game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}

	vector.DrawFilledRect(screen, float32(buttonX), float32(buttonY), float32(buttonWidth), float32(buttonHeight), bgColor, false)
	vector.StrokeRect(screen, float32(buttonX), float32(buttonY), float32(buttonWidth), float32(buttonHeight), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Load Preset"
	textWidth := len(text) * 8 // Approximate character width
	textX := buttonX + (buttonWidth-textWidth)/2
	textY := buttonY + (buttonHeight+8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *game) cycleOverride() {
	g.overrideState = (g.overrideState + 1) % 3
	switch g.overrideState {
	case 1:
		g.override.Set(backdrop.Dark)
	case 2:
		g.override.Set(backdrop.Light)
	default:
		g.override.Clear()
	}
}

func (g *game) openPresetDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Backdrop Preset"),
		zenity.FileFilters{{
			Name:     "TOML preset",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadPreset(filename)
}

func (g *game) loadPreset(path string) error {
	cfg, err := config.LoadPreset(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.back = backdrop.New(cfg, g.theme, g.motion, nil)
	w, h := g.surface.Size()
	g.back.Resize(float64(w), float64(h))
	g.presetName = filepath.Base(path)
	g.lastErr = nil
	return nil
}

func main() {
	var (
		presetPath    = flag.String("preset", "", "TOML preset file to load at startup")
		reducedMotion = flag.Bool("reduced-motion", false, "suppress continuous motion (rendering still runs)")
		systemDark    = flag.Bool("dark", false, "start with the system scheme set to dark")
		density       = flag.Float64("density", config.DefaultDensity, "particles per unit area")
		speed         = flag.Float64("speed", config.DefaultSpeed, "spawn-time velocity multiplier")
	)
	flag.Parse()

	cfg := config.Default()
	cfg.Density = *density
	cfg.Speed = *speed
	if *presetPath != "" {
		loaded, err := config.LoadPreset(*presetPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	cfg = cfg.Normalize()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Mesh Backdrop - T: theme override, D: system dark, Esc/Q: quit")

	g := newGame(cfg, *reducedMotion, *systemDark)
	if *presetPath != "" {
		g.presetName = filepath.Base(*presetPath)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
