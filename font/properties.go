package font

import "errors"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// A single shared sfnt.Buffer keeps property lookups allocation-free
// in the common single-goroutine case. The buffer can't be used
// concurrently, so it's handed out only when no one else holds it;
// concurrent callers simply fall back to a nil buffer (sfnt allocates
// internally then).
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested naming-table property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font, the same name used to
// index fonts in a [Library]. If the information is missing,
// [ErrNotFound] will be returned.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font. If the information is
// missing, [ErrNotFound] will be returned.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font (most commonly one of
// Regular, Italic, Bold or Bold Italic). If the information is
// missing, [ErrNotFound] will be returned.
func GetSubfamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDSubfamily)
}

// Returns the runes in the given text that the font has no glyph for.
// Repeated runes may appear in the result multiple times too.
//
// When fonts come from user configuration, checking the text to be
// rendered with this function beforehand gives much better error
// messages than rendering tofu boxes.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
