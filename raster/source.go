package raster

import "fmt"
import "sync"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/opentype"

// Source is the default [Rasterizer]. It draws through golang.org/x/image:
// faces come from x/image/font/opentype, measuring uses font.BoundString
// and drawing uses font.Drawer, all at 72 DPI so sizes map 1:1 to pixels.
//
// Faces are cached per (font, size) pair, which matters because headline
// fitting probes the same font at ever-changing sizes while paragraph
// wrapping probes one size over and over.
//
// Only angle 0 is supported; measuring or drawing at any other angle
// fails with [ErrRasterizer].
type Source struct {
	mutex sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	fnt  *sfnt.Font
	size float64
}

// Creates a new [Source] with an empty face cache.
func NewSource() *Source {
	return &Source{ faces: make(map[faceKey]font.Face) }
}

// Implements [Rasterizer].
func (self *Source) NewCanvas(width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas size %dx%d", ErrRasterizer, width, height)
	}
	return newImageCanvas(self, width, height), nil
}

// Returns the number of faces currently cached. Mostly useful to keep an
// eye on memory when rendering at many different sizes.
func (self *Source) CachedFaces() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.faces)
}

// Drops every cached face.
func (self *Source) ClearCache() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.faces = make(map[faceKey]font.Face)
}

func (self *Source) face(fnt *sfnt.Font, size float64) (font.Face, error) {
	if fnt == nil { panic("can't rasterize with fnt == nil") }
	if size <= 0 {
		return nil, fmt.Errorf("%w: invalid font size %g", ErrRasterizer, size)
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	key := faceKey{ fnt: fnt, size: size }
	face, found := self.faces[key]
	if found { return face, nil }

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions {
		Size: size,
		DPI: 72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating face at size %g: %v", ErrRasterizer, size, err)
	}
	self.faces[key] = face
	return face, nil
}
