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

// Package ui is the desktop application shell: it renders the menu model into
// the native main menu, backs the dialogs picker contract with the toolkit's
// file dialogs, and wires the command bridge the web front end invokes.
package ui

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"medit/internal/bridge"
	"medit/internal/config"
	"medit/internal/dialogs"
	"medit/internal/events"
	"medit/internal/fileops"
	"medit/internal/i18n"
	applog "medit/internal/log"
	"medit/internal/menu"
)

// Run starts the desktop shell and blocks until the window closes.
// Menu construction happens before the window shows; any failure there is
// fatal since the application cannot operate without its menu.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")

	bundle, err := i18n.Load(cfg.General.Language)
	if err != nil {
		return fmt.Errorf("menu labels: %w", err)
	}
	l.Info("locale loaded", slog.String("lang", bundle.Language()))

	a := app.NewWithID("dev.medit.editor")
	w := a.NewWindow("Medit")
	w.Resize(fyne.NewSize(1100, 760))

	bus := events.NewBus()
	// The webview front-end binding subscribes here to receive menu events.
	// Until it attaches, outbound events are only logged.
	bus.SubscribeAll(func(name string) {
		l.Debug("event out", slog.String("event", name))
	})

	model := menu.Build(runtime.GOOS, bundle)
	r := newMenuRenderer(a, w, model, bus)
	w.SetMainMenu(r.main)
	model.SetOnChange(func() { fyne.Do(r.refresh) })
	l.Info("menu ready", slog.Int("submenus", len(model.Submenus)))

	br := bridge.New()
	fileops.Register(br)
	dialogs.NewService(&fynePicker{win: w}).Register(br)
	model.RegisterCommands(br)
	br.MustRegister("exit_app", func(json.RawMessage) (any, error) {
		l.Info("exit requested")
		fyne.Do(a.Quit)
		return map[string]bool{"success": true}, nil
	})
	l.Info("bridge ready", slog.Any("commands", br.Commands()))

	// Placeholder content; the webview front end renders the editor itself.
	w.SetContent(container.NewCenter(widget.NewLabel("Medit")))

	w.ShowAndRun()
	return nil
}

// menuRenderer materializes the menu model as a Fyne main menu and keeps the
// native items addressable by identifier so relabeling can refresh them.
type menuRenderer struct {
	main  *fyne.MainMenu
	menus map[string]*fyne.Menu     // submenu id -> native menu
	items map[string]*fyne.MenuItem // item id -> native item
	model *menu.Menu
}

func newMenuRenderer(a fyne.App, w fyne.Window, model *menu.Menu, bus *events.Bus) *menuRenderer {
	r := &menuRenderer{
		menus: make(map[string]*fyne.Menu),
		items: make(map[string]*fyne.MenuItem),
		model: model,
	}
	var menus []*fyne.Menu
	for _, sm := range model.Submenus {
		var items []*fyne.MenuItem
		for _, it := range sm.Items {
			ni := r.renderItem(a, w, it, bus)
			if ni != nil {
				items = append(items, ni)
			}
		}
		nm := fyne.NewMenu(sm.Label, items...)
		r.menus[sm.ID] = nm
		menus = append(menus, nm)
	}
	r.main = fyne.NewMainMenu(menus...)
	return r
}

func (r *menuRenderer) renderItem(a fyne.App, w fyne.Window, it *menu.Item, bus *events.Bus) *fyne.MenuItem {
	if it.Separator {
		return fyne.NewMenuItemSeparator()
	}
	if it.Role != menu.RoleNone {
		return r.renderRole(a, w, it.Role)
	}
	id := it.ID
	ni := fyne.NewMenuItem(it.Label, func() {
		menu.Dispatch(id, bus)
	})
	if sc := parseAccelerator(it.Accelerator); sc != nil {
		ni.Shortcut = sc
	}
	if id == "app:quit" {
		ni.IsQuit = true
	}
	r.items[id] = ni
	return ni
}

// renderRole maps toolkit-supplied entries. Clipboard and undo/redo actions
// are forwarded as typed shortcuts to the focused canvas object; the macOS
// window-management roles are omitted because the platform menu supplies them.
func (r *menuRenderer) renderRole(a fyne.App, w fyne.Window, role menu.Role) *fyne.MenuItem {
	forward := func(label string, sc fyne.Shortcut) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			if f, ok := w.Canvas().Focused().(fyne.Shortcutable); ok && f != nil {
				f.TypedShortcut(sc)
			}
		})
	}
	switch role {
	case menu.RoleUndo:
		return forward("Undo", &fyne.ShortcutUndo{})
	case menu.RoleRedo:
		return forward("Redo", &fyne.ShortcutRedo{})
	case menu.RoleCut:
		return forward("Cut", &fyne.ShortcutCut{Clipboard: a.Clipboard()})
	case menu.RoleCopy:
		return forward("Copy", &fyne.ShortcutCopy{Clipboard: a.Clipboard()})
	case menu.RolePaste:
		return forward("Paste", &fyne.ShortcutPaste{Clipboard: a.Clipboard()})
	case menu.RoleSelectAll:
		return forward("Select All", &fyne.ShortcutSelectAll{})
	default:
		// hide / hide-others / show-all come from the platform menu
		return nil
	}
}

// refresh re-applies the model's labels to the native menu. Must run on the
// UI thread.
func (r *menuRenderer) refresh() {
	for _, sm := range r.model.Submenus {
		if nm, ok := r.menus[sm.ID]; ok {
			nm.Label = r.model.Label(sm.ID)
		}
		for _, it := range sm.Items {
			if it.ID == "" {
				continue
			}
			if ni, ok := r.items[it.ID]; ok {
				ni.Label = r.model.Label(it.ID)
			}
		}
	}
	r.main.Refresh()
}

// fynePicker implements dialogs.Picker on the toolkit's file dialogs.
// It may be called from any goroutine; the dialog itself is marshaled onto
// the UI thread, and done fires from the dialog callback.
type fynePicker struct {
	win fyne.Window
}

// extensionList flattens the declared filter sets for the toolkit, which
// takes a single extension list. The all-files set stays out so it does not
// erase the restriction.
func extensionList(filters []dialogs.Filter) []string {
	var exts []string
	for _, f := range filters {
		exts = append(exts, f.Extensions...)
	}
	return exts
}

func (p *fynePicker) PickOpen(filters []dialogs.Filter, done func(path string, ok bool)) {
	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				applog.WithComponent("ui").Warn("open dialog error", slog.Any("err", err))
				done("", false)
				return
			}
			if rc == nil {
				done("", false)
				return
			}
			path := rc.URI().Path()
			_ = rc.Close()
			done(path, true)
		}, p.win)
		if exts := extensionList(filters); len(exts) > 0 {
			fd.SetFilter(fstorage.NewExtensionFileFilter(exts))
		}
		fd.Show()
	})
}

func (p *fynePicker) PickSave(filters []dialogs.Filter, defaultName string, done func(path string, ok bool)) {
	fyne.Do(func() {
		fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil {
				applog.WithComponent("ui").Warn("save dialog error", slog.Any("err", err))
				done("", false)
				return
			}
			if wc == nil {
				done("", false)
				return
			}
			path := wc.URI().Path()
			_ = wc.Close()
			done(path, true)
		}, p.win)
		if defaultName != "" {
			fd.SetFileName(defaultName)
		}
		if exts := extensionList(filters); len(exts) > 0 {
			fd.SetFilter(fstorage.NewExtensionFileFilter(exts))
		}
		fd.Show()
	})
}
