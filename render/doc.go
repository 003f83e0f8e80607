// Package render implements the double-buffered frame lifecycle: a flat
// cell grid composed by a drawing callback, diffed against the previously
// flushed grid, and emitted as one batched escape-sequence write per frame.
// Raster graphics regions (sixel, kitty) are reconciled against cell state
// so images and text coexist without ghosting or partial output.
package render
