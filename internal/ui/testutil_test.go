package ui

import "github.com/charmbracelet/x/ansi"

// stripANSI drops escape sequences so assertions can match plain text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}
