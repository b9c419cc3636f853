/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package menu

import (
	"encoding/json"
	"log/slog"

	"medit/internal/bridge"
	"medit/internal/events"
	applog "medit/internal/log"
)

// eventNames maps actionable menu identifiers to the events the front end
// listens for. Fixed at compile time; identifiers outside this table (the
// app menu entries among them) dispatch nothing.
var eventNames = map[string]string{
	"file:new":          "menu:file:new",
	"file:open":         "menu:file:open",
	"file:save":         "menu:file:save",
	"file:save-as":      "menu:file:save-as",
	"file:exit":         "menu:file:exit",
	"edit:find":         "menu:edit:find",
	"view:edit-mode":    "menu:view:edit-mode",
	"view:preview-mode": "menu:view:preview-mode",
	"view:split-mode":   "menu:view:split-mode",
	"view:zoom-in":      "menu:view:zoom-in",
	"view:zoom-out":     "menu:view:zoom-out",
	"view:reset-zoom":   "menu:view:reset-zoom",
	"help:about":        "menu:help:about",
	"help:docs":         "menu:help:docs",
	"help:shortcuts":    "menu:help:shortcuts",
}

// EventName returns the outbound event for a menu identifier.
func EventName(id string) (string, bool) {
	name, ok := eventNames[id]
	return name, ok
}

// Dispatch translates a menu click into its front-end event. Unrecognized
// identifiers are silently ignored; the return value reports whether an event
// was emitted.
func Dispatch(id string, em events.Emitter) bool {
	name, ok := eventNames[id]
	if !ok {
		applog.WithComponent("menu").Debug("click ignored", slog.String("id", id))
		return false
	}
	em.Emit(name)
	return true
}

// RegisterCommands wires the menu-related commands onto the bridge.
// update_menu_labels is how the front end switches the menu language at
// runtime.
func (m *Menu) RegisterCommands(b *bridge.Bridge) {
	l := applog.WithComponent("menu")
	b.MustRegister("update_menu_labels", func(args json.RawMessage) (any, error) {
		var labels map[string]string
		if err := json.Unmarshal(args, &labels); err != nil {
			return nil, err
		}
		changed := m.UpdateLabels(labels)
		l.Info("menu relabeled", slog.Int("requested", len(labels)), slog.Int("changed", changed))
		return map[string]bool{"success": true}, nil
	})
}
