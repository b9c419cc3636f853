/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package menu owns the application menu tree: a declarative, localized model
// built once at startup and mutated only through the relabeling operation.
// The toolkit-specific rendering lives in the ui package; everything here is
// plain data so it stays testable headless.
package menu

import "sync"

// Role marks an entry the host toolkit supplies natively (clipboard actions,
// window management, quit). Role entries carry no identifier and no label of
// their own.
type Role string

const (
	RoleNone       Role = ""
	RoleUndo       Role = "undo"
	RoleRedo       Role = "redo"
	RoleCut        Role = "cut"
	RoleCopy       Role = "copy"
	RolePaste      Role = "paste"
	RoleSelectAll  Role = "select-all"
	RoleHide       Role = "hide"
	RoleHideOthers Role = "hide-others"
	RoleShowAll    Role = "show-all"
)

// Item is one entry in a submenu. Exactly one of ID, Role or Separator is
// meaningful. Accelerator uses portable "CmdOrCtrl+X" notation; the renderer
// translates it for the host toolkit.
type Item struct {
	ID          string
	Label       string
	Accelerator string
	Role        Role
	Separator   bool
}

// Submenu is one top-level menu with its entries.
type Submenu struct {
	ID    string
	Label string
	Items []*Item
}

// Labeler resolves a menu identifier to its localized display label.
// *i18n.Bundle satisfies this.
type Labeler interface {
	Label(id string) string
}

// Menu is the process-wide menu tree. Constructed once; the only writer
// afterwards is UpdateLabels.
type Menu struct {
	mu       sync.RWMutex
	Submenus []*Submenu
	items    map[string]*Item
	subs     map[string]*Submenu
	onChange func()
}

func sep() *Item        { return &Item{Separator: true} }
func role(r Role) *Item { return &Item{Role: r} }

func item(id, accel string, labels Labeler) *Item {
	return &Item{ID: id, Label: labels.Label(id), Accelerator: accel}
}

// Build assembles the platform-conditional menu tree with labels from the
// given bundle. On darwin the tree gains the extra application menu and drops
// the explicit Exit and About entries the platform supplies natively.
func Build(platform string, labels Labeler) *Menu {
	darwin := platform == "darwin"

	var submenus []*Submenu

	if darwin {
		submenus = append(submenus, &Submenu{
			ID:    "app",
			Label: labels.Label("app"),
			Items: []*Item{
				item("app:about", "", labels),
				sep(),
				item("app:preferences", "Cmd+,", labels),
				sep(),
				role(RoleHide),
				role(RoleHideOthers),
				role(RoleShowAll),
				sep(),
				item("app:quit", "Cmd+Q", labels),
			},
		})
	}

	file := &Submenu{
		ID:    "file",
		Label: labels.Label("file"),
		Items: []*Item{
			item("file:new", "", labels),
			item("file:open", "CmdOrCtrl+O", labels),
			sep(),
			item("file:save", "CmdOrCtrl+S", labels),
			item("file:save-as", "CmdOrCtrl+Shift+S", labels),
		},
	}
	if !darwin {
		file.Items = append(file.Items, sep(), item("file:exit", "", labels))
	}
	submenus = append(submenus, file)

	submenus = append(submenus, &Submenu{
		ID:    "edit",
		Label: labels.Label("edit"),
		Items: []*Item{
			role(RoleUndo),
			role(RoleRedo),
			sep(),
			role(RoleCut),
			role(RoleCopy),
			role(RolePaste),
			role(RoleSelectAll),
			sep(),
			item("edit:find", "CmdOrCtrl+F", labels),
		},
	})

	submenus = append(submenus, &Submenu{
		ID:    "view",
		Label: labels.Label("view"),
		Items: []*Item{
			item("view:edit-mode", "CmdOrCtrl+Shift+E", labels),
			item("view:preview-mode", "CmdOrCtrl+Shift+P", labels),
			item("view:split-mode", "CmdOrCtrl+Shift+L", labels),
			sep(),
			item("view:zoom-in", "CmdOrCtrl+Plus", labels),
			item("view:zoom-out", "CmdOrCtrl+-", labels),
			item("view:reset-zoom", "CmdOrCtrl+0", labels),
		},
	})

	help := &Submenu{ID: "help", Label: labels.Label("help")}
	if !darwin {
		help.Items = append(help.Items, item("help:about", "", labels))
	}
	help.Items = append(help.Items,
		item("help:docs", "", labels),
		sep(),
		item("help:shortcuts", "CmdOrCtrl+?", labels),
	)
	submenus = append(submenus, help)

	m := &Menu{
		Submenus: submenus,
		items:    make(map[string]*Item),
		subs:     make(map[string]*Submenu),
	}
	for _, sm := range submenus {
		m.subs[sm.ID] = sm
		for _, it := range sm.Items {
			if it.ID != "" {
				m.items[it.ID] = it
			}
		}
	}
	return m
}

// SetOnChange installs a hook run after every successful relabel, used by the
// renderer to refresh the native menu.
func (m *Menu) SetOnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Label returns the current display label for an identifier, or "" when the
// identifier names neither an item nor a submenu.
func (m *Menu) Label(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.items[id]; ok {
		return it.Label
	}
	if sm, ok := m.subs[id]; ok {
		return sm.Label
	}
	return ""
}

// UpdateLabels applies a bulk relabel by identifier, covering both items and
// submenus. Identifiers absent from the menu are skipped silently so front-end
// and menu-definition versions can drift without crashing. Returns the number
// of labels changed.
func (m *Menu) UpdateLabels(labels map[string]string) int {
	m.mu.Lock()
	changed := 0
	for id, label := range labels {
		if label == "" {
			continue
		}
		if it, ok := m.items[id]; ok {
			if it.Label != label {
				it.Label = label
				changed++
			}
			continue
		}
		if sm, ok := m.subs[id]; ok {
			if sm.Label != label {
				sm.Label = label
				changed++
			}
		}
	}
	fn := m.onChange
	m.mu.Unlock()

	if changed > 0 && fn != nil {
		fn()
	}
	return changed
}
