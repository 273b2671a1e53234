// The font subpackage contains helpers to parse .ttf and .otf fonts
// and obtain information from them (name, family, etc.), alongside a
// [Library] type to manage multiple fonts by name.
//
// Renderers only need a single *sfnt.Font, so for simple programs the
// [ParseFromPath]() function is all you'll ever touch here. Libraries
// become useful when a single process renders boxes with many
// different fonts, like a templating or thumbnailing service.
package font
