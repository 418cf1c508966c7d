// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour.
var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"italic":    7,
	"strike":    8,
}

// Pens is the table of colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for c := range colours {
		if c == "black" || c == "normal" {
			continue
		}
		Pens[c], _ = ColorBuild(c, "normal", "", true, false)
		DimPens[c], _ = ColorBuild(c, "normal", "", false, false)
	}

	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false, false)
	}
}

// ColorBuild creates the ANSI sequence for a pen with the specified
// foreground/background colour and attribute.
func ColorBuild(pen string, paper string, attribute string, brightPen bool, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	if pen != "" {
		col, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", target, col))
	}

	if paper != "" {
		col, ok := colours[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d%d", target, col))
	}

	if attribute != "" {
		attr, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attr))
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entirety of the current
// line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward (to
// the right for latin fonts) one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward (to
// the left for latin fonts) one character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters
// forward (positive numbers) or n characters backwards (negative
// numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
