// Package viz renders sublab's terminal visuals: color themes, lipgloss
// styles, the asciigraph temperature curve, the apparatus sketch and the
// observation table. Everything here is pure string building; the bubbletea
// program in package tui decides when to draw.
package viz
