//go:build ebiten

package app

import (
	"image/color"

	"newera/internal/camera"
	"newera/internal/render"
	"newera/internal/scene"
	"newera/internal/sims/creatures"
	"newera/internal/terrain"
	"newera/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var skyColor = color.RGBA{R: 102, G: 191, B: 255, A: 255}

// Game adapts the herd and the terrain to the ebiten.Game interface.
type Game struct {
	herd    *creatures.Herd
	cam     *camera.FirstPerson
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	mesh scene.Mesh
	tris []render.ScreenTriangle

	width, height  int
	seed           int64
	lastCX, lastCY int
	cursorReady    bool
}

// New constructs a Game for the provided herd and camera.
func New(herd *creatures.Herd, cam *camera.FirstPerson, width, height int, seed int64) *Game {
	return &Game{
		herd:    herd,
		cam:     cam,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(herd),
		overlay: ui.NewOverlay(herd),
		width:   width,
		height:  height,
		seed:    seed,
	}
}

// Reset respawns the herd with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.herd.Reset(seed)
}

// Update polls input, resolves a click attack and steps the herd.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	g.updateCamera()
	g.overlay.Update()

	eye := g.cam.Position
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.hud.RecordAttack(g.herd.Attack(eye))
	}
	g.herd.Step(eye)
	return nil
}

func (g *Game) updateCamera() {
	cx, cy := ebiten.CursorPosition()
	if g.cursorReady {
		g.cam.Look(float64(cx-g.lastCX), float64(cy-g.lastCY))
	}
	g.lastCX, g.lastCY = cx, cy
	g.cursorReady = true

	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}
	sprint := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	g.cam.Move(forward, strafe, sprint)
	g.cam.Follow(terrain.GroundHeight)
}

// Draw renders the terrain, creatures and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.mesh.Build(g.cam.Position, g.herd.Entities())
	g.tris = render.Rasterize(g.tris, &g.mesh, g.cam.View(g.width, g.height))
	g.painter.Draw(screen, g.tris)
	g.hud.Draw(screen, g.cam.Position, &g.mesh)
	g.overlay.Draw(screen, g.cam.Position)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
