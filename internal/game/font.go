package game

// Procedural 5x7 bitmap font. Like every other asset in the game the
// glyph atlas is generated at startup; no image files are shipped.

// Font atlas layout: fontGlyphOrder indexed left-to-right, top-to-bottom,
// FontAtlasCols glyphs per row, one 6x8 cell per glyph (5x7 bits + padding).
const (
	FontCellW     = 6
	FontCellH     = 8
	FontAtlasCols = 16
)

const fontGlyphOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,:;!?-+/*()[]<>=#"

// fontGlyphs holds 7 row bitmasks per glyph; bit 4 is the leftmost pixel.
var fontGlyphs = map[rune][7]uint8{
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11},
	'X': {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y': {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x06, 0x08, 0x10, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	' ': {},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	',': {0x00, 0x00, 0x00, 0x00, 0x0C, 0x04, 0x08},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
	';': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x04, 0x08},
	'!': {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	'?': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'+': {0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00},
	'/': {0x01, 0x01, 0x02, 0x04, 0x08, 0x10, 0x10},
	'*': {0x00, 0x0A, 0x04, 0x1F, 0x04, 0x0A, 0x00},
	'(': {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02},
	')': {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08},
	'[': {0x0E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0E},
	']': {0x0E, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0E},
	'<': {0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02},
	'>': {0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08},
	'=': {0x00, 0x00, 0x1F, 0x00, 0x1F, 0x00, 0x00},
	'#': {0x0A, 0x1F, 0x0A, 0x0A, 0x0A, 0x1F, 0x0A},
}

// fontAtlasRows is the number of glyph rows in the generated atlas.
func fontAtlasRows() int {
	return (len(fontGlyphOrder) + FontAtlasCols - 1) / FontAtlasCols
}

// FontAtlasSize returns the atlas texture dimensions in pixels.
func FontAtlasSize() (w, h int) {
	return FontAtlasCols * FontCellW, fontAtlasRows() * FontCellH
}

// BuildFontAtlas rasterizes all glyphs into an alpha-only RGBA pixel
// buffer (white text, alpha 0/255), ready for texture upload.
func BuildFontAtlas() []byte {
	w, h := FontAtlasSize()
	pix := make([]byte, w*h*4)
	for idx, ch := range fontGlyphOrder {
		rows, ok := fontGlyphs[ch]
		if !ok {
			continue
		}
		cellX := (idx % FontAtlasCols) * FontCellW
		cellY := (idx / FontAtlasCols) * FontCellH
		for ry, bits := range rows {
			for rx := 0; rx < 5; rx++ {
				if bits&(1<<(4-rx)) == 0 {
					continue
				}
				off := ((cellY+ry)*w + cellX + rx) * 4
				pix[off] = 255
				pix[off+1] = 255
				pix[off+2] = 255
				pix[off+3] = 255
			}
		}
	}
	return pix
}

// glyphIndex maps a rune to its atlas slot, folding lowercase letters to
// uppercase. Returns -1 for characters outside the set.
func glyphIndex(ch rune) int {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for i, g := range fontGlyphOrder {
		if g == ch {
			return i
		}
	}
	return -1
}
