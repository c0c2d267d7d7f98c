// Package raster provides the pixel surface the stripe pipeline draws on.
//
// # Overview
//
// The pipeline never touches a pixel buffer directly. It works against the
// [Surface] capability (allocate, get, set, fill, resize) so that any
// backend can be substituted: the in-memory [RGBA] surface used by the CLI,
// a recording fake in tests, or an encoder that streams pixels elsewhere.
//
// # Color Model
//
// [Color] carries real-valued channels. Intensities such as 127.5 are kept
// as-is until a surface stores them; [RGBA] then clamps each channel to
// [0, 255] and truncates toward zero.
//
// # Resampling
//
// [RGBA.Resize] scales with golang.org/x/image/draw. Nearest neighbor is the
// default, which keeps stripe edges hard. Other interpolators can be chosen
// with [WithInterpolator] and [ParseInterpolator].
package raster
