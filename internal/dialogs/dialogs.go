/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package dialogs models the native open/save file pickers. The native picker
// reports through a callback on its own thread; the command handlers here park
// on a one-shot rendezvous until that single result arrives, so the caller
// sees a plain blocking call with a three-way outcome: path, canceled, error.
package dialogs

import (
	"log/slog"
	"sync"

	applog "medit/internal/log"
)

// Result reports a picker outcome. Path is set iff the user chose a location;
// Canceled is true iff Path is absent. Closing the dialog window counts as a
// cancel, same as the Cancel button.
type Result struct {
	Path     *string `json:"path"`
	Canceled bool    `json:"canceled"`
}

// Filter restricts a picker to a set of file extensions. Empty Extensions
// means "all files".
type Filter struct {
	Name       string
	Extensions []string // with leading dot, e.g. ".md"
}

// Filter sets declared by the editor. The save dialog offers the two
// extensions actually written; the open dialog also accepts common markdown
// extension variants.
var (
	OpenFilters = []Filter{
		{Name: "Markdown", Extensions: []string{".md", ".markdown", ".mdown", ".mkd"}},
		{Name: "Text", Extensions: []string{".txt"}},
		{Name: "All Files"},
	}
	SaveFilters = []Filter{
		{Name: "Markdown", Extensions: []string{".md", ".markdown"}},
		{Name: "Text", Extensions: []string{".txt"}},
		{Name: "All Files"},
	}
)

// Picker is the native file-picker facility. The UI layer implements it on
// top of the toolkit's dialogs; tests use a fake. Implementations call done
// exactly once: ok=false means the user dismissed the picker.
type Picker interface {
	PickOpen(filters []Filter, done func(path string, ok bool))
	PickSave(filters []Filter, defaultName string, done func(path string, ok bool))
}

// Service exposes the blocking dialog calls backed by a Picker.
type Service struct {
	picker Picker
	log    *slog.Logger
}

// NewService wraps the given native picker.
func NewService(p Picker) *Service {
	return &Service{picker: p, log: applog.WithComponent("dialogs")}
}

// rendezvous bridges one callback delivery into one blocking receive.
// Single producer, single consumer, fired at most once, never reused.
type rendezvous struct {
	once sync.Once
	ch   chan Result
}

func newRendezvous() *rendezvous {
	return &rendezvous{ch: make(chan Result, 1)}
}

func (r *rendezvous) deliver(path string, ok bool) {
	r.once.Do(func() {
		if ok {
			r.ch <- Result{Path: &path}
		} else {
			r.ch <- Result{Canceled: true}
		}
	})
}

func (r *rendezvous) wait() Result { return <-r.ch }

// OpenFile presents the native open picker and blocks until the user responds.
func (s *Service) OpenFile() Result {
	rv := newRendezvous()
	s.picker.PickOpen(OpenFilters, rv.deliver)
	res := rv.wait()
	s.logOutcome("open", res)
	return res
}

// SaveFile presents the native save picker, pre-filled with defaultName when
// non-empty, and blocks until the user responds.
func (s *Service) SaveFile(defaultName string) Result {
	rv := newRendezvous()
	s.picker.PickSave(SaveFilters, defaultName, rv.deliver)
	res := rv.wait()
	s.logOutcome("save", res)
	return res
}

func (s *Service) logOutcome(kind string, res Result) {
	if res.Canceled {
		s.log.Debug("dialog canceled", slog.String("kind", kind))
		return
	}
	path := ""
	if res.Path != nil {
		path = *res.Path
	}
	s.log.Debug("dialog confirmed", slog.String("kind", kind), slog.String("path", path))
}
