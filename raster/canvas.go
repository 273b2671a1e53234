package raster

import "image"
import "image/color"
import "image/draw"
import "fmt"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// The canvas implementation behind [Source]. Pixels live in an NRGBA
// buffer so fully transparent backgrounds survive a later PNG encode.
type imageCanvas struct {
	source *Source
	pixels *image.NRGBA
	closed bool
}

func newImageCanvas(source *Source, width, height int) *imageCanvas {
	return &imageCanvas {
		source: source,
		pixels: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

func (self *imageCanvas) Bounds() image.Rectangle {
	return self.pixels.Bounds()
}

func (self *imageCanvas) Fill(clr color.Color) error {
	if self.closed { return errCanvasClosed() }
	draw.Draw(self.pixels, self.pixels.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
	return nil
}

func (self *imageCanvas) MeasureText(fnt *sfnt.Font, size float64, angle float64, text string) (Box, error) {
	if self.closed { return Box{}, errCanvasClosed() }
	if angle != 0 {
		return Box{}, fmt.Errorf("%w: angle %g unsupported (only 0)", ErrRasterizer, angle)
	}
	face, err := self.source.face(fnt, size)
	if err != nil { return Box{}, err }

	// BoundString reports 26.6 bounds relative to the dot; round
	// them outwards so the box never underestimates the glyphs.
	bounds, _ := font.BoundString(face, text)
	minX, maxX := bounds.Min.X.Floor(), bounds.Max.X.Ceil()
	minY, maxY := bounds.Min.Y.Floor(), bounds.Max.Y.Ceil()
	return Box {
		LowerLeft:  image.Pt(minX, maxY),
		LowerRight: image.Pt(maxX, maxY),
		UpperRight: image.Pt(maxX, minY),
		UpperLeft:  image.Pt(minX, minY),
	}, nil
}

func (self *imageCanvas) DrawText(fnt *sfnt.Font, size float64, angle float64, x, y int, clr color.Color, text string) error {
	if self.closed { return errCanvasClosed() }
	if angle != 0 {
		return fmt.Errorf("%w: angle %g unsupported (only 0)", ErrRasterizer, angle)
	}
	face, err := self.source.face(fnt, size)
	if err != nil { return err }

	drawer := font.Drawer {
		Dst: self.pixels,
		Src: image.NewUniform(clr),
		Face: face,
		Dot: fixed.P(x, y),
	}
	drawer.DrawString(text)
	return nil
}

func (self *imageCanvas) Image() image.Image {
	return self.pixels
}

func (self *imageCanvas) Close() error {
	self.closed = true
	return nil
}

func errCanvasClosed() error {
	return fmt.Errorf("%w: operation on closed canvas", ErrRasterizer)
}
