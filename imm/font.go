package imm

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph grid of the atlas: ASCII 32..127 in 16 columns and 6 rows.
const (
	atlasCols  = 16
	atlasRows  = 6
	firstGlyph = 32
	lastGlyph  = 127
)

// FontAtlas is a single-channel glyph texture for a monospace face.
// Pixels holds one alpha byte per texel, Width bytes per row.
type FontAtlas struct {
	Pixels []byte
	Width  int
	Height int

	CellW float32 // glyph advance in pixels
	CellH float32 // line height in pixels
}

var (
	defaultAtlas     *FontAtlas
	defaultAtlasOnce sync.Once
)

// DefaultFontAtlas returns the atlas rasterized from basicfont.Face7x13.
// It is built once and shared.
func DefaultFontAtlas() *FontAtlas {
	defaultAtlasOnce.Do(func() {
		defaultAtlas = NewFontAtlas(basicfont.Face7x13)
	})
	return defaultAtlas
}

// NewFontAtlas rasterizes the printable ASCII range of a monospace face.
func NewFontAtlas(face *basicfont.Face) *FontAtlas {
	cellW, cellH := face.Advance, face.Height
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, atlasRows*cellH))

	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		idx := ch - firstGlyph
		col, row := idx%atlasCols, idx/atlasCols
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(rune(ch)))
	}

	return &FontAtlas{
		Pixels: img.Pix,
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		CellW:  float32(cellW),
		CellH:  float32(cellH),
	}
}

// UV returns the texture coordinates of the glyph for r. Runes outside the
// atlas map to '?'.
func (a *FontAtlas) UV(r rune) (u0, v0, u1, v1 float32) {
	r = unicodeFallback(r)
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	idx := int(r - firstGlyph)
	col, row := float32(idx%atlasCols), float32(idx/atlasCols)

	w, h := float32(a.Width), float32(a.Height)
	u0 = col * a.CellW / w
	v0 = row * a.CellH / h
	u1 = (col + 1) * a.CellW / w
	v1 = (row + 1) * a.CellH / h
	return u0, v0, u1, v1
}

// MeasureText returns the size of text drawn at the given scale.
func (a *FontAtlas) MeasureText(text string, scale float32) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * a.CellW * scale, Y: a.CellH * scale}
}

// unicodeFallback maps common symbols to ASCII equivalents for the atlas.
func unicodeFallback(r rune) rune {
	if r >= firstGlyph && r <= lastGlyph {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
