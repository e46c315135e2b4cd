// Package grid models the character-cell display surface charts draw into.
//
// A surface is a rectangle of fixed-size cells, each holding one glyph plus a
// foreground and background color. Drawing code never owns the surface; it only
// writes into the sub-rectangles it is handed.
//
// # Coordinates
//
// Cells are addressed by (column, row) with the origin in the top-left corner.
// A [Rect] is half-open: it covers columns X..X+Width-1 and rows Y..Y+Height-1.
//
// # Colors
//
// Colors are [lipgloss.TerminalColor] values, so ANSI indices, hex strings and
// adaptive colors all work as cell colors. A nil color means "terminal default".
//
// # Buffers
//
// [Buffer] is an in-memory [Surface] used by the CLI, the output sinks and the
// tests. Any other surface (a terminal screen, a TUI frame) can be plugged in by
// implementing [Surface].
package grid
