package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scrollstage"
)

// defaultWheelSpeed converts one wheel notch into pixels.
const defaultWheelSpeed = 60.0

// GameConfig configures the input mapping of a Game.
type GameConfig struct {
	// WheelSpeed is pixels per wheel notch. Zero means 60.
	WheelSpeed float64
	// KeyStep is pixels per frame while an arrow key is held. Zero means
	// WheelSpeed / 4.
	KeyStep float64
	// Debug shows the stats overlay. Toggle at runtime with F3.
	Debug bool
}

// Game adapts a Host (and optionally the Stage bound to it) to
// ebiten.Game. Wheel, arrow, Page Up/Down, Home and End scroll the document;
// the cursor drives hover; Escape quits.
type Game struct {
	Host  *Host
	Stage *scrollstage.Stage

	cfg     GameConfig
	overlay Overlay
}

// NewGame creates a game around host. stage may be nil.
func NewGame(host *Host, stage *scrollstage.Stage, cfg GameConfig) *Game {
	if cfg.WheelSpeed == 0 {
		cfg.WheelSpeed = defaultWheelSpeed
	}
	if cfg.KeyStep == 0 {
		cfg.KeyStep = cfg.WheelSpeed / 4
	}
	return &Game{Host: host, Stage: stage, cfg: cfg}
}

// scrollDelta maps this tick's input to a scroll delta in pixels.
func (g *Game) scrollDelta() float64 {
	_, wy := ebiten.Wheel()
	delta := -wy * g.cfg.WheelSpeed
	_, vh := g.Host.Viewport()
	page := float64(vh) * 0.9
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		delta += g.cfg.KeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		delta -= g.cfg.KeyStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		delta += page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		delta -= page
	}
	return delta
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.Stage != nil {
			g.Stage.Dispose()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.cfg.Debug = !g.cfg.Debug
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.Host.SetScroll(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.Host.SetScroll(g.Host.MaxScroll())
	default:
		if d := g.scrollDelta(); d != 0 {
			g.Host.ScrollBy(d)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.Host.Pointer(float64(mx), float64(my))

	dt := 1.0 / float64(ebiten.TPS())
	g.Host.Frame(dt)
	if g.cfg.Debug {
		g.overlay.Update(dt, g.Host, g.Stage)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Host.Draw(screen)
	if g.cfg.Debug {
		g.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game. A changed outside size becomes a resize
// notification.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Host.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
}

// Run opens a window and runs g until the window closes or Escape is
// pressed. The stage, if any, is disposed on exit.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	err := ebiten.RunGame(g)
	if g.Stage != nil {
		g.Stage.Dispose()
	}
	return err
}
