package textbox

import "image"
import "image/color"
import "math"
import "fmt"

import "github.com/hexlike/textbox/raster"

// fakeRasterizer produces deterministic metrics so layout logic can be
// tested without shaping real glyphs: every character is size/10 px
// wide, lines are size px tall with a size/5 descent and a 1px left
// bearing. It also records every call so tests can check canvas
// lifecycle and measurement counts.
type fakeRasterizer struct {
	opened int
	closed int
	measures int
	fills []color.Color
	draws []fakeDraw
	failMeasureAt int // fail the nth measure (1-based, 0 = never)
	failDrawAt int // fail the nth draw (1-based, 0 = never)
}

type fakeDraw struct {
	text string
	size float64
	x, y int
	clr color.Color
}

type fakeCanvas struct {
	rast *fakeRasterizer
	bounds image.Rectangle
}

func (self *fakeRasterizer) NewCanvas(width, height int) (raster.Canvas, error) {
	self.opened += 1
	return &fakeCanvas{ rast: self, bounds: image.Rect(0, 0, width, height) }, nil
}

func (self *fakeCanvas) Bounds() image.Rectangle { return self.bounds }
func (self *fakeCanvas) Image() image.Image { return image.NewNRGBA(self.bounds) }
func (self *fakeCanvas) Close() error {
	self.rast.closed += 1
	return nil
}

func (self *fakeCanvas) Fill(clr color.Color) error {
	self.rast.fills = append(self.rast.fills, clr)
	return nil
}

func (self *fakeCanvas) MeasureText(fnt *Font, size, angle float64, text string) (raster.Box, error) {
	self.rast.measures += 1
	if self.rast.failMeasureAt > 0 && self.rast.measures >= self.rast.failMeasureAt {
		return raster.Box{}, fmt.Errorf("%w: fake measure failure", raster.ErrRasterizer)
	}
	return fakeMetrics(size, text), nil
}

func (self *fakeCanvas) DrawText(fnt *Font, size, angle float64, x, y int, clr color.Color, text string) error {
	self.rast.draws = append(self.rast.draws, fakeDraw{ text: text, size: size, x: x, y: y, clr: clr })
	if self.rast.failDrawAt > 0 && len(self.rast.draws) >= self.rast.failDrawAt {
		return fmt.Errorf("%w: fake draw failure", raster.ErrRasterizer)
	}
	return nil
}

func fakeMetrics(size float64, text string) raster.Box {
	width := int(math.Round(float64(len(text))*size/10))
	height := int(math.Round(size))
	descent := int(math.Round(size/5))
	bearing := 0
	if len(text) > 0 { bearing = 1 }
	return raster.Box {
		LowerLeft: image.Pt(bearing, descent),
		LowerRight: image.Pt(bearing + width, descent),
		UpperRight: image.Pt(bearing + width, descent - height),
		UpperLeft: image.Pt(bearing, descent - height),
	}
}
