// Package theme provides the semantic color vocabulary of syntinct and the
// palettes that resolve it.
package theme

import "syntinct/internal/color"

// Theme resolves every semantic role to a color.
// Implementations are pure: the same role always yields the same color, so a
// Theme may be queried repeatedly and from several goroutines.
type Theme interface {
	CategoryColor(c Category) color.Color
	TokenColor(t Token) color.Color
	DiagnosticLevelColor(l DiagnosticLevel) color.Color
}
