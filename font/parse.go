package font

import "os"
import "io"
import "io/fs"
import "errors"
import "fmt"

import "golang.org/x/image/font/sfnt"

// Returned when a font can't be parsed: the path doesn't exist, the
// extension isn't .ttf or .otf, or the data isn't a valid font. The
// failure always surfaces at parse time, never later during layout
// or rendering.
var ErrUnreadable = errors.New("font unreadable")

// Similar to [sfnt.Parse](), but also returning the font name and
// wrapping parse failures in [ErrUnreadable]. The bytes must not be
// modified while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	fontName, err := GetName(newFont)
	if err != nil { return newFont, "", err }
	return newFont, fontName, nil
}

// Attempts to parse the font at the given filepath and returns it
// along its name. Supported formats are .ttf and .otf; anything else,
// including missing or unreadable files, fails with [ErrUnreadable].
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w: invalid font path '%s'", ErrUnreadable, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", fmt.Errorf("%w: invalid font path '%s'", ErrUnreadable, path)
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	err = file.Close()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	if path[len(path) - 1] != 'f' { return false }
	if path[len(path) - 2] != 't' { return false }
	thrd := path[len(path) - 3]
	if thrd != 't' && thrd != 'o' { return false }
	return path[len(path) - 4] == '.'
}
