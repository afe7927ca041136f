package render

import (
	_ "embed"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilemap/common"
	"github.com/milk9111/tilemap/tilemap"
)

//go:embed tilemap.kage
var tilemapShaderSrc []byte

// EbitenTexture is a texture backed by an ebiten image.
type EbitenTexture struct {
	Image *ebiten.Image
}

func (t *EbitenTexture) Size() (int, int) {
	if t == nil || t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// EbitenMesh keeps the quad corners the device interpolates tile quads from.
type EbitenMesh struct {
	min, max   mgl32.Vec2
	indexCount int
}

func (m *EbitenMesh) IndexCount() int {
	if m == nil {
		return 0
	}
	return m.indexCount
}

// EbitenBackend creates ebiten images and meshes.
type EbitenBackend struct{}

func (EbitenBackend) NewTexture(img image.Image) Texture {
	return &EbitenTexture{Image: ebiten.NewImageFromImage(img)}
}

func (EbitenBackend) NewMesh(mesh *tilemap.Mesh) Mesh {
	out := &EbitenMesh{indexCount: len(mesh.Indices)}
	for i, v := range mesh.Vertices {
		p := mgl32.Vec2{v.Position[0], v.Position[1]}
		if i == 0 {
			out.min, out.max = p, p
			continue
		}
		out.min = mgl32.Vec2{min(out.min.X(), p.X()), min(out.min.Y(), p.Y())}
		out.max = mgl32.Vec2{max(out.max.X(), p.X()), max(out.max.Y(), p.Y())}
	}
	return out
}

// EbitenDevice draws tile layers onto an ebiten target with the tile shader.
// The tile buffer is a fixed array of tilemap.Capacity cells; Draw expands the
// non-empty cells into one textured quad each across the mesh's extent.
type EbitenDevice struct {
	shader *ebiten.Shader
	target *ebiten.Image

	texture  *EbitenTexture
	tiles    [tilemap.Capacity]tilemap.TileCell
	tileLen  int
	uniforms Uniforms

	vertices []ebiten.Vertex
	indices  []uint16

	// DrawCalls counts Draw calls since the last Begin.
	DrawCalls int
}

// NewEbitenDevice compiles the tile shader.
func NewEbitenDevice() (*EbitenDevice, error) {
	shader, err := ebiten.NewShader(tilemapShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("render: compile tilemap shader: %w", err)
	}
	return &EbitenDevice{shader: shader}, nil
}

// Begin starts a frame that draws into target.
func (d *EbitenDevice) Begin(target *ebiten.Image) {
	d.target = target
	d.DrawCalls = 0
}

func (d *EbitenDevice) BindTexture(tex Texture) {
	t, _ := tex.(*EbitenTexture)
	d.texture = t
}

func (d *EbitenDevice) UploadTiles(cells []tilemap.TileCell) error {
	if len(cells) > tilemap.Capacity {
		return fmt.Errorf("%w: %d cells", ErrTileBufferOverflow, len(cells))
	}
	d.tileLen = copy(d.tiles[:], cells)
	return nil
}

func (d *EbitenDevice) SetUniforms(u Uniforms) {
	d.uniforms = u
}

func (d *EbitenDevice) Draw(mesh Mesh) {
	m, ok := mesh.(*EbitenMesh)
	if !ok || m == nil || d.target == nil || d.texture == nil || d.texture.Image == nil {
		return
	}
	d.DrawCalls++

	worldW, worldH := int(d.uniforms.WorldSize[0]), int(d.uniforms.WorldSize[1])
	sheetW, sheetH := int(d.uniforms.TilesheetSize[0]), int(d.uniforms.TilesheetSize[1])
	if worldW <= 0 || worldH <= 0 || sheetW <= 0 || sheetH <= 0 {
		return
	}
	texW, texH := d.texture.Size()
	targetW, targetH := d.target.Bounds().Dx(), d.target.Bounds().Dy()
	mvp := d.uniforms.Proj.Mul4(d.uniforms.View).Mul4(d.uniforms.Model)

	// corner maps a point in the mesh's [0,1] uv space to the target.
	corner := func(u, v float32) (float32, float32) {
		x := common.Lerp(m.min.X(), m.max.X(), u)
		y := common.Lerp(m.min.Y(), m.max.Y(), v)
		return common.ClipToScreen(mvp.Mul4x1(mgl32.Vec4{x, y, 0, 1}), targetW, targetH)
	}

	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i := 0; i < d.tileLen && i < worldW*worldH; i++ {
		src, ok := tileSource(d.tiles[i], texW, texH, sheetW, sheetH)
		if !ok {
			continue
		}
		uv := cellUV(i, worldW, worldH)

		base := uint16(len(d.vertices))
		bx0, by0 := corner(uv.U0, uv.V0)
		bx1, by1 := corner(uv.U1, uv.V0)
		tx0, ty0 := corner(uv.U0, uv.V1)
		tx1, ty1 := corner(uv.U1, uv.V1)
		d.vertices = append(d.vertices,
			vertex(bx0, by0, src.X0, src.Y1),
			vertex(bx1, by1, src.X1, src.Y1),
			vertex(tx0, ty0, src.X0, src.Y0),
			vertex(tx1, ty1, src.X1, src.Y0),
		)
		d.indices = append(d.indices, base, base+1, base+2, base+2, base+1, base+3)
	}
	if len(d.indices) == 0 {
		return
	}

	op := &ebiten.DrawTrianglesShaderOptions{
		Images:   [4]*ebiten.Image{d.texture.Image},
		Uniforms: map[string]any{"Opacity": float32(1)},
		Blend:    ebiten.BlendSourceOver,
	}
	d.target.DrawTrianglesShader(d.vertices, d.indices, d.shader, op)
}

// Rect is an axis-aligned rectangle in pixels or uv units.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// UVRect is the share of the mesh one map cell covers.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// tileSource returns the pixel rectangle of cell inside a texW x texH texture
// split into sheetW x sheetH cells. Atlas rows count from the bottom and image
// rows from the top. Cell sizes are fractional so a texture smaller than the
// grid, such as the placeholder, is still sampled. Empty cells and cells
// outside the sheet report false.
func tileSource(cell tilemap.TileCell, texW, texH, sheetW, sheetH int) (Rect, bool) {
	if cell.IsEmpty() || sheetW <= 0 || sheetH <= 0 || texW <= 0 || texH <= 0 {
		return Rect{}, false
	}
	if int(cell.Col) >= sheetW || int(cell.Row) >= sheetH {
		return Rect{}, false
	}
	tileW := float32(texW) / float32(sheetW)
	tileH := float32(texH) / float32(sheetH)
	x0 := float32(cell.Col) * tileW
	y0 := float32(sheetH-1-int(cell.Row)) * tileH
	return Rect{X0: x0, Y0: y0, X1: x0 + tileW, Y1: y0 + tileH}, true
}

// cellUV returns the uv extent of row-major map cell i. Map row 0 is the top
// of the quad, where v is 1.
func cellUV(i, worldW, worldH int) UVRect {
	col, row := i%worldW, i/worldW
	return UVRect{
		U0: float32(col) / float32(worldW),
		U1: float32(col+1) / float32(worldW),
		V0: float32(worldH-1-row) / float32(worldH),
		V1: float32(worldH-row) / float32(worldH),
	}
}

func vertex(dx, dy, sx, sy float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: dx, DstY: dy,
		SrcX: sx, SrcY: sy,
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
	}
}
