// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

// Palette holds the colours used to draw trees and the explorer.
type Palette struct {
	Key         ui.Color
	Value       ui.Color
	LeftHeavy   ui.Color
	Even        ui.Color
	RightHeavy  ui.Color
	Branch      ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Title       ui.Color
	Success     ui.Color
	Error       ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes for plain (non-lipgloss) output. Set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

var (
	currentPalette *Palette
	detectedMode   TerminalMode
)

// detectTerminalMode guesses light or dark background from the environment.
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background".
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		switch {
		case strings.Contains(theme, "dark"):
			return TerminalModeDark
		case strings.Contains(theme, "light"):
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func lightPalette() *Palette {
	return &Palette{
		Key:         ui.ColorBlack,
		Value:       ui.Color(240),
		LeftHeavy:   ui.Color(4),
		Even:        ui.Color(2),
		RightHeavy:  ui.ColorMagenta,
		Branch:      ui.Color(8),
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Title:       ui.Color(4),
		Success:     ui.Color(2),
		Error:       ui.ColorRed,
		TextMuted:   ui.Color(240),
	}
}

func darkPalette() *Palette {
	return &Palette{
		Key:         ui.ColorWhite,
		Value:       ui.Color(245),
		LeftHeavy:   ui.Color(39),
		Even:        ui.Color(46),
		RightHeavy:  ui.Color(205),
		Branch:      ui.Color(240),
		Border:      ui.Color(240),
		BorderFocus: ui.Color(62),
		Title:       ui.Color(39),
		Success:     ui.Color(46),
		Error:       ui.Color(196),
		TextMuted:   ui.Color(243),
	}
}

// InitializeColors detects the terminal mode and picks the palette and
// ANSI escapes for it.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentPalette = lightPalette()
	} else {
		currentPalette = darkPalette()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetPalette returns the active palette, detecting it on first use.
func GetPalette() *Palette {
	if currentPalette == nil {
		InitializeColors()
	}
	return currentPalette
}

// GetANSIColors returns escapes tuned for the detected background.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// lipglossColor converts a termui palette entry to a lipgloss colour.
func lipglossColor(c ui.Color) lipgloss.Color {
	if c < 0 {
		return lipgloss.Color("")
	}
	return lipgloss.Color(strconv.Itoa(int(c)))
}
