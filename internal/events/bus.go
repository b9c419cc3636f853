/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package events carries named, payload-free events from the native layer to
// the front end. Delivery is synchronous: one Emit call invokes every handler
// subscribed to that name exactly once before returning.
package events

import (
	"log/slog"
	"sync"

	applog "medit/internal/log"
)

// Handler receives the name of the event it was subscribed to.
type Handler func(name string)

// Emitter is the outbound side of the bus, the only part most callers need.
type Emitter interface {
	Emit(name string)
}

// Bus is a minimal subscribe/emit event bus. Subscribers are expected to be
// registered during startup; Emit may be called from any goroutine.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	catchAll []Handler
	log      *slog.Logger
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      applog.WithComponent("events"),
	}
}

// Subscribe registers a handler for one event name.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// SubscribeAll registers a handler for every event. The front-end binding uses
// this to forward all outbound events across the webview boundary.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.catchAll = append(b.catchAll, h)
}

// Emit delivers the named event to all matching handlers, synchronously.
// An event nobody listens to is not an error.
func (b *Bus) Emit(name string) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.handlers[name])+len(b.catchAll))
	hs = append(hs, b.handlers[name]...)
	hs = append(hs, b.catchAll...)
	b.mu.RUnlock()

	b.log.Debug("emit", slog.String("event", name), slog.Int("handlers", len(hs)))
	for _, h := range hs {
		h(name)
	}
}
