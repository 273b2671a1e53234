package font

import "errors"
import "os"
import "path/filepath"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/goregular"

func TestParseFromBytes(t *testing.T) {
	fnt, name, err := ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fnt == nil { t.Fatal("expected a parsed font") }
	if name != "Go Regular" {
		t.Fatalf("expected font name 'Go Regular', got %q", name)
	}

	_, _, err = ParseFromBytes([]byte("definitely not a font"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestParseFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goregular.ttf")
	err := os.WriteFile(path, goregular.TTF, 0644)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	fnt, name, err := ParseFromPath(path)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fnt == nil || name != "Go Regular" {
		t.Fatalf("unexpected result: %v, %q", fnt, name)
	}

	// bad extension
	_, _, err = ParseFromPath(filepath.Join(dir, "goregular.png"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable for bad extension, got %v", err)
	}

	// missing file
	_, _, err = ParseFromPath(filepath.Join(dir, "missing.ttf"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable for missing file, got %v", err)
	}
}

func TestParseFromFS(t *testing.T) {
	filesys := fstest.MapFS {
		"assets/goregular.ttf": &fstest.MapFile{ Data: goregular.TTF },
	}
	fnt, name, err := ParseFromFS(filesys, "assets/goregular.ttf")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if fnt == nil || name != "Go Regular" {
		t.Fatalf("unexpected result: %v, %q", fnt, name)
	}

	_, _, err = ParseFromFS(filesys, "assets/missing.ttf")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestHasValidFontExtension(t *testing.T) {
	valid := []string{"a.ttf", "a.otf", "dir/font.TTF"}
	if hasValidFontExtension(valid[2]) {
		t.Fatal("extension check is case-sensitive, .TTF should be rejected")
	}
	for _, path := range valid[:2] {
		if !hasValidFontExtension(path) {
			t.Fatalf("expected %q to be valid", path)
		}
	}
	for _, path := range []string{"", "f", ".tf", "a.txt", "a.woff", "font"} {
		if hasValidFontExtension(path) {
			t.Fatalf("expected %q to be invalid", path)
		}
	}
}
