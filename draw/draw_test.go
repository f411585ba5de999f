package draw_test

import (
	"testing"

	"github.com/katalvlaran/pixkit/draw"
	"github.com/katalvlaran/pixkit/raster"
)

func mustImage(t *testing.T, w, h int) *raster.Image[uint8] {
	t.Helper()
	img, err := raster.New[uint8](w, h)
	if err != nil {
		t.Fatalf("New(%d,%d) failed: %v", w, h, err)
	}

	return img
}

// countValue returns how many pixels carry value v.
func countValue(img *raster.Image[uint8], v uint8) int {
	n := 0
	for _, p := range img.Pix {
		if p == v {
			n++
		}
	}

	return n
}

func TestLine_Horizontal(t *testing.T) {
	img := mustImage(t, 8, 5)
	out := draw.Line(img, 1, 2, 6, 2, 255)

	for x := 0; x < 8; x++ {
		want := uint8(0)
		if x >= 1 && x <= 6 {
			want = 255
		}
		if got := out.At(x, 2); got != want {
			t.Errorf("At(%d,2) = %d, want %d", x, got, want)
		}
	}
	if got := countValue(out, 255); got != 6 {
		t.Errorf("stroke covers %d pixels, want 6", got)
	}
}

func TestLine_Vertical(t *testing.T) {
	img := mustImage(t, 5, 8)
	out := draw.Line(img, 2, 6, 2, 1, 200)

	if got := countValue(out, 200); got != 6 {
		t.Errorf("stroke covers %d pixels, want 6", got)
	}
	for y := 1; y <= 6; y++ {
		if out.At(2, y) != 200 {
			t.Errorf("At(2,%d) = %d, want 200", y, out.At(2, y))
		}
	}
}

func TestLine_Diagonal(t *testing.T) {
	img := mustImage(t, 6, 6)
	out := draw.Line(img, 0, 0, 5, 5, 255)

	for i := 0; i < 6; i++ {
		if out.At(i, i) != 255 {
			t.Errorf("At(%d,%d) = %d, want 255", i, i, out.At(i, i))
		}
	}
	if got := countValue(out, 255); got != 6 {
		t.Errorf("stroke covers %d pixels, want 6", got)
	}
}

func TestLine_SinglePoint(t *testing.T) {
	img := mustImage(t, 4, 4)
	out := draw.Line(img, 2, 2, 2, 2, 9)

	if out.At(2, 2) != 9 {
		t.Errorf("At(2,2) = %d, want 9", out.At(2, 2))
	}
	if got := countValue(out, 9); got != 1 {
		t.Errorf("stroke covers %d pixels, want 1", got)
	}
}

func TestLine_ClipsOutOfBounds(t *testing.T) {
	img := mustImage(t, 4, 4)
	out := draw.Line(img, -3, 1, 7, 1, 255)

	// Only the in-bounds run along y=1 survives.
	if got := countValue(out, 255); got != 4 {
		t.Errorf("stroke covers %d pixels, want 4", got)
	}
}

func TestLine_DoesNotMutateInput(t *testing.T) {
	img := mustImage(t, 4, 4)
	_ = draw.Line(img, 0, 0, 3, 3, 255)

	if got := countValue(img, 255); got != 0 {
		t.Errorf("input mutated: %d pixels set", got)
	}
}

func TestRect_Outline(t *testing.T) {
	img := mustImage(t, 6, 6)
	out := draw.Rect(img, 1, 1, 4, 4, 255)

	// Perimeter of a 4×4 box is 12 pixels.
	if got := countValue(out, 255); got != 12 {
		t.Errorf("outline covers %d pixels, want 12", got)
	}
	if out.At(2, 2) != 0 {
		t.Errorf("interior At(2,2) = %d, want 0", out.At(2, 2))
	}
	if out.At(1, 1) != 255 || out.At(4, 4) != 255 {
		t.Error("corners not drawn")
	}
}

func TestRect_SwappedCorners(t *testing.T) {
	img := mustImage(t, 6, 6)
	a := draw.Rect(img, 4, 4, 1, 1, 255)
	b := draw.Rect(img, 1, 1, 4, 4, 255)

	if !raster.Equal(a, b) {
		t.Error("Rect is not corner-order invariant")
	}
}

func TestFillRect_Area(t *testing.T) {
	img := mustImage(t, 6, 6)
	out := draw.FillRect(img, 1, 2, 3, 4, 7)

	if got := countValue(out, 7); got != 9 {
		t.Errorf("fill covers %d pixels, want 9", got)
	}
	for y := 2; y <= 4; y++ {
		for x := 1; x <= 3; x++ {
			if out.At(x, y) != 7 {
				t.Errorf("At(%d,%d) = %d, want 7", x, y, out.At(x, y))
			}
		}
	}
}

func TestFillRect_ClipsToBuffer(t *testing.T) {
	img := mustImage(t, 4, 4)
	out := draw.FillRect(img, -2, -2, 1, 1, 255)

	if got := countValue(out, 255); got != 4 {
		t.Errorf("fill covers %d pixels, want 4", got)
	}
}

func TestText_StampsGlyphPixels(t *testing.T) {
	img := mustImage(t, 40, 20)
	out, err := draw.Text(img, 2, 2, "Hi", 255)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	if got := countValue(out, 255); got == 0 {
		t.Error("no glyph pixels stamped")
	}
	if got := countValue(img, 255); got != 0 {
		t.Errorf("input mutated: %d pixels set", got)
	}
}

func TestText_EmptyString(t *testing.T) {
	img := mustImage(t, 10, 10)
	out, err := draw.Text(img, 0, 0, "", 255)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	if !raster.Equal(out, img) {
		t.Error("empty string must be a no-op copy")
	}
}

func TestText_NilImage(t *testing.T) {
	_, err := draw.Text[uint8](nil, 0, 0, "x", 255)
	if err == nil {
		t.Fatal("expected error on nil image")
	}
}

func TestText_ClipsOutOfBounds(t *testing.T) {
	img := mustImage(t, 5, 5)
	// Most of the text box lands outside the 5×5 buffer.
	_, err := draw.Text(img, -100, -100, "clip", 255)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
}
