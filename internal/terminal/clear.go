// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides utilities for terminal operations such as clearing text.
package terminal

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 80

// Width returns the width of the terminal behind fd, or DefaultWidth.
func Width(fd int) int {
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// LinesUsed returns how many terminal rows textLength characters occupy,
// plus the row the cursor moved to when the user pressed Enter.
func LinesUsed(textLength, width int) int {
	if width <= 0 {
		width = DefaultWidth
	}
	totalLines := int(math.Ceil(float64(textLength) / float64(width)))
	if totalLines < 1 {
		totalLines = 1
	}
	return totalLines + 1
}

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the
// width of the terminal behind fd, then moves up and clears each line on w.
//
// This is used to wipe echoed sensitive input, such as a reset code, once it
// has been read.
func ClearPreviousLines(w io.Writer, fd, textLength int) {
	linesToClear := LinesUsed(textLength, Width(fd))

	for i := 0; i < linesToClear; i++ {
		fmt.Fprint(w, "\r\x1b[2K") // Move to start and clear entire line
		if i < linesToClear-1 {
			fmt.Fprint(w, "\x1b[1A") // Move up one line (don't move up on last iteration)
		}
	}
}
