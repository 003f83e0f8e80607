// @focus: #sys { term }
// Package terminal provides the value-level cell model and direct ANSI
// encoding for termframe.
//
// Features:
//   - Tagged color variant (default / 256-palette / 24-bit RGB)
//   - Comparable Style and Cell value types
//   - Zero-alloc escape sequence emission with style coalescing
//   - Synchronized-update bracketing for tear-free frames
//   - Raster graphics protocol facts (sixel, kitty)
//   - Raw-mode unix backend with SIGWINCH resize detection
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
