package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown on server startup.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Indigo-to-teal gradient
	s1 := termenv.String("        _   _     _                      ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  _ __ | |_| |__ | |_ ___ _ __ _ __ ___  ").Foreground(p.Color("#6d9ef9"))
	s3 := termenv.String(" | '_ \\| __| '_ \\| __/ _ \\ '__| '_ ` _ \\ ").Foreground(p.Color("#4fb3e8"))
	s4 := termenv.String(" | | | | |_| | | | ||  __/ |  | | | | | |").Foreground(p.Color("#38c4d0"))
	s5 := termenv.String(" |_| |_|\\__|_| |_|\\__\\___|_|  |_| |_| |_|").Foreground(p.Color("#2dd4bf"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
