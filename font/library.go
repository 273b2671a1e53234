package font

import "io/fs"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// A collection of fonts accessible by name.
//
// Libraries make it easy to parse fonts in bulk and keep them all in
// a single place, which is handy when one process renders text boxes
// with many different fonts. A library doesn't know about system
// fonts; only what you explicitly parse into it exists.
type Library struct {
	fonts map[string]*sfnt.Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make(map[string]*sfnt.Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
//
// Names are the full font names from the naming table, as returned by
// the parsing functions and [GetName]().
func (self *Library) GetFont(name string) *sfnt.Font {
	font, found := self.fonts[name]
	if found { return font }
	return nil
}

// An error returned by [Library.AddFont]() and the Library parsing
// functions when a font is not added due to its name already being
// present in the [Library].
var ErrAlreadyPresent = errors.New("font already present in the library")

// Adds an externally parsed font into the library and returns its
// name. If the given font is nil, the method will panic. If another
// font with the same name is already present, [ErrAlreadyPresent]
// will be returned.
func (self *Library) AddFont(font *sfnt.Font) (string, error) {
	name, err := GetName(font)
	if err != nil { return "", err }
	return name, self.addNewFont(font, name)
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) RemoveFont(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Parses the font at the given path and adds it to the library,
// returning its name. Parse failures wrap [ErrUnreadable]; name
// collisions return [ErrAlreadyPresent].
func (self *Library) ParseFromPath(path string) (string, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewFont(font, name)
}

// Walks the given directory non-recursively and adds all the .ttf and
// .otf fonts in it. Returns the number of fonts added, the number of
// fonts skipped due to their name already being present, and any
// error encountered along the way.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			if !hasValidFontExtension(path) { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// Special error that can be used with [Library.EachFont]() to break
// early while still getting a nil error back.
var ErrBreakEach = errors.New("EachFont() early break")

// Calls the given function for each font in the library, passing
// their names and content as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method stops and
// returns that error immediately, with the only exception of
// [ErrBreakEach].
func (self *Library) EachFont(eachFunc func(string, *sfnt.Font) error) error {
	for name, font := range self.fonts {
		err := eachFunc(name, font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

func (self *Library) addNewFont(font *sfnt.Font, name string) error {
	if font == nil { panic("can't add nil font to the library") }
	if self.HasFont(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}
