package render

import (
	"math"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// glyphs used when a node projects smaller than GlyphRadius
var glyphs = [engine.GeometryCount]rune{
	engine.GeometryBomb:        '●',
	engine.GeometryDart:        '↑',
	engine.GeometryBox:         '■',
	engine.GeometrySphere:      '●',
	engine.GeometryCone:        '▲',
	engine.GeometryTorus:       '○',
	engine.GeometryOctahedron:  '◆',
	engine.GeometryIcosahedron: '⬟',
	engine.GeometryMonolith:    '█',
	engine.GeometryFragment:    '▪',
	engine.GeometryFlash:       '*',
	engine.GeometrySpark:       '·',
}

// boxy geometries rasterize as rectangles instead of discs
func boxy(g engine.Geometry) bool {
	return g == engine.GeometryBox || g == engine.GeometryMonolith
}

// TerminalRenderer draws the scene and HUD into a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	scene  *Scene
	cam    *engine.CameraResource
	buf    cellBuffer

	fog   bool
	debug *status.Registry

	mu        sync.Mutex
	buttons   []button
	cursorCol int
	cursorRow int
}

type button struct {
	kind           component.WeaponKind
	col, row, span int
}

// NewTerminalRenderer binds a screen, the scene it draws and the camera it projects through
func NewTerminalRenderer(screen tcell.Screen, scene *Scene, cam *engine.CameraResource) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		scene:     scene,
		cam:       cam,
		fog:       true,
		cursorCol: -1,
		cursorRow: -1,
	}
}

// SetFog toggles depth fog
func (r *TerminalRenderer) SetFog(on bool) { r.fog = on }

// SetDebug enables the counter line drawn from reg
func (r *TerminalRenderer) SetDebug(reg *status.Registry) { r.debug = reg }

// SetCursor places the pointer glyph; negative coordinates hide it
func (r *TerminalRenderer) SetCursor(col, row int) {
	r.mu.Lock()
	r.cursorCol, r.cursorRow = col, row
	r.mu.Unlock()
}

// Viewport returns the current screen layout
func (r *TerminalRenderer) Viewport() Viewport {
	w, h := r.screen.Size()
	return Viewport{Width: w, Height: h}
}

// ButtonAt reports which weapon button, if any, covers a cell from the last Draw
func (r *TerminalRenderer) ButtonAt(col, row int) (component.WeaponKind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.buttons {
		if row == b.row && col >= b.col && col < b.col+b.span {
			return b.kind, true
		}
	}
	return 0, false
}

// Draw composes one frame: scenery, scene nodes far to near, then HUD
func (r *TerminalRenderer) Draw(hud engine.HUD) {
	vp := r.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	r.buf.resize(vp.Width, vp.Height)
	r.buf.fill(cell{Rune: ' ', Fg: core.RGBWhite, Bg: parameter.ColorSky})

	r.drawScenery(vp)
	r.drawNodes(vp)
	r.drawHUD(vp, hud)

	r.buf.flush(r.screen)
}

// fogged blends c toward the sky by view depth
func (r *TerminalRenderer) fogged(c core.RGB, depth float64) core.RGB {
	if !r.fog {
		return c
	}
	t := (depth - parameter.FogNear) / (parameter.FogFar - parameter.FogNear)
	return c.Blend(parameter.ColorSky, math.Max(0, math.Min(1, t)))
}

// drawScenery casts one ray per view cell against the floor plane
func (r *TerminalRenderer) drawScenery(vp Viewport) {
	top := vp.Top()
	rows := vp.Rows()
	for row := top; row < top+rows; row++ {
		for col := 0; col < vp.Width; col++ {
			x, y := vp.ToNDC(col, row)
			ray := r.cam.Ray(x, y)
			if ray.Y >= 0 {
				continue
			}
			t := (parameter.FloorY - r.cam.Position.Y) / ray.Y
			hit := vmath.V3FAdd(r.cam.Position, vmath.V3FScale(ray, t))
			depth := -ray.Z * t

			color := parameter.ColorGround
			width := math.Min(parameter.GridWidth*depth, parameter.GridSpacing*0.25)
			if onGrid(hit.X, width) || onGrid(hit.Z, width) {
				color = parameter.ColorGrid
			}
			if c := r.buf.at(col, row); c != nil {
				c.Bg = r.fogged(color, depth)
			}
		}
	}
}

func onGrid(v, width float64) bool {
	d := v - math.Round(v/parameter.GridSpacing)*parameter.GridSpacing
	return math.Abs(d) < width
}

type projectedNode struct {
	node     Node
	col, row float64
	radius   float64 // rows
	depth    float64
}

// drawNodes paints projected nodes with the painter's algorithm
func (r *TerminalRenderer) drawNodes(vp Viewport) {
	nodes := r.scene.Nodes()
	projs := make([]projectedNode, 0, len(nodes))
	f := r.cam.FocalScale()

	for _, n := range nodes {
		if n.Opacity <= parameter.OpacityEpsilon {
			continue
		}
		x, y, depth, ok := r.cam.Project(n.Position)
		if !ok {
			continue
		}
		col, row := vp.FromNDC(x, y)
		projs = append(projs, projectedNode{
			node:   n,
			col:    col,
			row:    row,
			radius: n.Size * n.Scale * f / depth * float64(vp.Rows()) / 2,
			depth:  depth,
		})
	}

	sort.SliceStable(projs, func(i, j int) bool {
		return projs[i].depth > projs[j].depth
	})

	for i := range projs {
		r.paintNode(vp, &projs[i])
	}
}

func (r *TerminalRenderer) paintNode(vp Viewport, p *projectedNode) {
	n := &p.node
	color := n.Color
	if n.Emissive > 0 {
		color = color.Add(parameter.ColorEmissive.Scale(math.Min(1, n.Emissive*parameter.EmissiveTint)))
	}
	color = r.fogged(color, p.depth)
	alpha := math.Min(1, n.Opacity)

	top, bottom := vp.Top(), vp.Top()+vp.Rows()

	if p.radius < parameter.GlyphRadius {
		col, row := int(math.Floor(p.col)), int(math.Floor(p.row))
		if row < top || row >= bottom {
			return
		}
		if c := r.buf.at(col, row); c != nil {
			c.Rune = glyphs[n.Geometry]
			c.Fg = c.Bg.Blend(color, alpha)
		}
		return
	}

	rx := p.radius * parameter.CellAspect
	ry := p.radius
	if n.Geometry == engine.GeometryMonolith {
		// Tall narrow slab
		rx *= 0.4
		ry *= 2
	}
	minCol := max(0, int(math.Floor(p.col-rx)))
	maxCol := min(vp.Width-1, int(math.Ceil(p.col+rx)))
	minRow := max(top, int(math.Floor(p.row-ry)))
	maxRow := min(bottom-1, int(math.Ceil(p.row+ry)))

	for row := minRow; row <= maxRow; row++ {
		dy := (float64(row) + 0.5 - p.row) / ry
		for col := minCol; col <= maxCol; col++ {
			dx := (float64(col) + 0.5 - p.col) / rx
			if boxy(n.Geometry) {
				if math.Abs(dx) > 1 || math.Abs(dy) > 1 {
					continue
				}
			} else if dx*dx+dy*dy > 1 {
				continue
			}
			c := r.buf.at(col, row)
			c.Rune = ' '
			c.Bg = c.Bg.Blend(color, alpha)
		}
	}
}
