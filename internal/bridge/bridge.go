/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package bridge is the command surface the web front end invokes by name.
// Commands are registered once during startup; Invoke decodes JSON arguments,
// runs the handler, and encodes the result back to JSON for the webview.
package bridge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	applog "medit/internal/log"
)

// Handler executes one named command. Args is the raw JSON argument object the
// front end supplied (may be empty). The returned value is marshaled to JSON.
// A returned error crosses the bridge as an error string, which the command
// contracts reserve for infrastructure failures; per-operation failures belong
// inside the result value itself.
type Handler func(args json.RawMessage) (any, error)

// Bridge routes front-end invocations to registered handlers.
type Bridge struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	log      *slog.Logger
}

// New returns an empty bridge.
func New() *Bridge {
	return &Bridge{
		handlers: make(map[string]Handler),
		log:      applog.WithComponent("bridge"),
	}
}

// Register binds a command name to its handler. Registering the same name
// twice is a programming error and fails loudly so startup wiring catches it.
func (b *Bridge) Register(name string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.handlers[name]; dup {
		return fmt.Errorf("command %q already registered", name)
	}
	b.handlers[name] = h
	return nil
}

// MustRegister is Register for startup wiring, panicking on duplicates.
func (b *Bridge) MustRegister(name string, h Handler) {
	if err := b.Register(name, h); err != nil {
		panic(err)
	}
}

// Commands returns the registered command names, for diagnostics.
func (b *Bridge) Commands() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.handlers))
	for n := range b.handlers {
		names = append(names, n)
	}
	return names
}

// Invoke runs the named command and returns its JSON-encoded result.
func (b *Bridge) Invoke(name string, args json.RawMessage) (json.RawMessage, error) {
	b.mu.RLock()
	h, ok := b.handlers[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}

	start := time.Now()
	v, err := h(args)
	if err != nil {
		b.log.Error("command failed", slog.String("cmd", name), slog.Any("err", err))
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result of %q: %w", name, err)
	}
	b.log.Debug("command done", slog.String("cmd", name), slog.Duration("took", time.Since(start)))
	return out, nil
}
