package raster

import "errors"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

var testFont *sfnt.Font
func init() {
	var err error
	testFont, err = sfnt.Parse(goregular.TTF)
	if err != nil { panic(err) }
}

func TestNewCanvasValidation(t *testing.T) {
	source := NewSource()
	for _, size := range [][2]int{ {0, 10}, {10, 0}, {-1, 10}, {10, -1} } {
		_, err := source.NewCanvas(size[0], size[1])
		if !errors.Is(err, ErrRasterizer) {
			t.Fatalf("NewCanvas(%d, %d): expected ErrRasterizer, got %v", size[0], size[1], err)
		}
	}

	canvas, err := source.NewCanvas(32, 16)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	defer canvas.Close()
	bounds := canvas.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 16 {
		t.Fatalf("expected 32x16 bounds, got %v", bounds)
	}
}

func TestFaceCaching(t *testing.T) {
	source := NewSource()
	canvas, err := source.NewCanvas(1, 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	defer canvas.Close()

	_, err = canvas.MeasureText(testFont, 16, 0, "hello")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	_, err = canvas.MeasureText(testFont, 16, 0, "world")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if source.CachedFaces() != 1 {
		t.Fatalf("expected 1 cached face, got %d", source.CachedFaces())
	}

	_, err = canvas.MeasureText(testFont, 32, 0, "hello")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if source.CachedFaces() != 2 {
		t.Fatalf("expected 2 cached faces, got %d", source.CachedFaces())
	}

	source.ClearCache()
	if source.CachedFaces() != 0 {
		t.Fatalf("expected empty cache, got %d", source.CachedFaces())
	}
}

func TestMeasureInvalidInputs(t *testing.T) {
	source := NewSource()
	canvas, err := source.NewCanvas(1, 1)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	defer canvas.Close()

	// rotated text is not supported
	_, err = canvas.MeasureText(testFont, 16, 45, "tilted")
	if !errors.Is(err, ErrRasterizer) {
		t.Fatalf("expected ErrRasterizer for non-zero angle, got %v", err)
	}

	// sizes must be positive
	_, err = canvas.MeasureText(testFont, 0, 0, "hello")
	if !errors.Is(err, ErrRasterizer) {
		t.Fatalf("expected ErrRasterizer for size 0, got %v", err)
	}

	// nil fonts are programmer error
	defer func() {
		if recover() == nil { t.Fatal("expected panic on nil font") }
	}()
	_, _ = canvas.MeasureText(nil, 16, 0, "hello")
}
