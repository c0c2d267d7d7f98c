// Package display shows a composite image to the user.
//
// The pipeline stops at an in-memory raster; this package is the "show it"
// end. Two backends implement [Displayer]:
//
//   - [Viewer]: writes a temporary PNG and opens the platform image viewer
//   - [Terminal]: prints a downsampled true-color preview with half blocks
//
// [Discard] skips display entirely, and [Server] serves the composite over
// HTTP, re-rendering it on every request.
//
// None of them saves the image anywhere the user asked for; the viewer's
// temporary file only exists so an external program can open it.
package display
