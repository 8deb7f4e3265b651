package game

import "testing"

func TestEveryGlyphHasBitmapData(t *testing.T) {
	for _, ch := range fontGlyphOrder {
		if _, ok := fontGlyphs[ch]; !ok {
			t.Errorf("glyph %q listed but has no bitmap", ch)
		}
	}
}

func TestFontAtlasDimensions(t *testing.T) {
	w, h := FontAtlasSize()
	if w != FontAtlasCols*FontCellW {
		t.Errorf("atlas width: %d", w)
	}
	if h%FontCellH != 0 {
		t.Errorf("atlas height %d not cell-aligned", h)
	}
	pix := BuildFontAtlas()
	if len(pix) != w*h*4 {
		t.Fatalf("pixel buffer: got %d bytes, want %d", len(pix), w*h*4)
	}
}

func TestFontAtlasGlyphPixels(t *testing.T) {
	pix := BuildFontAtlas()
	w, _ := FontAtlasSize()

	cellOpaque := func(idx int) int {
		cellX := (idx % FontAtlasCols) * FontCellW
		cellY := (idx / FontAtlasCols) * FontCellH
		n := 0
		for y := 0; y < FontCellH; y++ {
			for x := 0; x < FontCellW; x++ {
				if pix[((cellY+y)*w+cellX+x)*4+3] == 255 {
					n++
				}
			}
		}
		return n
	}

	for i, ch := range fontGlyphOrder {
		got := cellOpaque(i)
		if ch == ' ' {
			if got != 0 {
				t.Errorf("space glyph has %d opaque pixels", got)
			}
			continue
		}
		if got == 0 {
			t.Errorf("glyph %q rasterized empty", ch)
		}
	}
}

func TestGlyphIndexFolding(t *testing.T) {
	if glyphIndex('a') != glyphIndex('A') {
		t.Error("lowercase should fold to uppercase")
	}
	if glyphIndex('A') != 0 {
		t.Errorf("glyphIndex('A') = %d", glyphIndex('A'))
	}
	if glyphIndex('~') != -1 {
		t.Error("unknown rune should map to -1")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 1); got != 3*FontCellW {
		t.Errorf("width: got %d", got)
	}
	if got := TextWidth("AB\nABCD", 1); got != 4*FontCellW {
		t.Errorf("multiline width should use the longest line: got %d", got)
	}
	if got := TextWidth("AB", 2); got != 4*FontCellW {
		t.Errorf("scaled width: got %d", got)
	}
}
