// Package strings holds the small text helpers shared by the tool renderers
// and the CLI tables.
package strings
