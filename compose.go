package textbox

// Runs the full build: layout, canvas allocation, background fill and
// per-line text drawing. On success the finished canvas is returned
// and the caller owns its teardown ([raster.Canvas.Close]()). On any
// failure the canvas (if already allocated) is released and nothing
// is returned; no partial output exists.
func (self *Renderer) Render() (Canvas, error) {
	layout, err := self.Layout()
	if err != nil { return nil, err }

	canvas, err := self.GetRasterizer().NewCanvas(layout.Width, layout.Height)
	if err != nil { return nil, err }
	err = canvas.Fill(self.background)
	if err != nil {
		canvas.Close()
		return nil, err
	}

	for index, line := range layout.Lines {
		// y is the line's baseline: the line's bottom edge minus
		// the baseline offset (the descender room below it)
		y := self.padTop + (index + 1)*layout.LineHeight - layout.LineOffset
		err = canvas.DrawText(self.fnt, layout.FontSize, 0, line.X, y, self.textColor, line.Text)
		if err != nil {
			canvas.Close()
			return nil, err
		}
	}
	return canvas, nil
}
