//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// keyNames maps the accelerator key tokens the menu model uses to Fyne key
// names. Plus maps to the equals key, which is where "+" lives on common
// layouts without requiring shift bookkeeping per layout.
var keyNames = map[string]fyne.KeyName{
	"O":    fyne.KeyO,
	"S":    fyne.KeyS,
	"F":    fyne.KeyF,
	"E":    fyne.KeyE,
	"P":    fyne.KeyP,
	"L":    fyne.KeyL,
	"Q":    fyne.KeyQ,
	"Plus": fyne.KeyEqual,
	"-":    fyne.KeyMinus,
	"0":    fyne.Key0,
	",":    fyne.KeyComma,
	"?":    fyne.KeySlash,
}

// parseAccelerator converts portable "CmdOrCtrl+Shift+S" notation to a Fyne
// shortcut. Unknown tokens yield nil, which leaves the item without an
// accelerator rather than failing menu construction.
func parseAccelerator(accel string) fyne.Shortcut {
	if accel == "" {
		return nil
	}
	var mod fyne.KeyModifier
	var key fyne.KeyName
	for _, tok := range strings.Split(accel, "+") {
		switch tok {
		case "CmdOrCtrl":
			mod |= fyne.KeyModifierShortcutDefault
		case "Cmd":
			mod |= fyne.KeyModifierSuper
		case "Ctrl":
			mod |= fyne.KeyModifierControl
		case "Shift":
			mod |= fyne.KeyModifierShift
		case "Alt":
			mod |= fyne.KeyModifierAlt
		default:
			k, ok := keyNames[tok]
			if !ok {
				return nil
			}
			key = k
		}
	}
	if key == "" {
		return nil
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}
}
