/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package events

import "testing"

func TestEmitDeliversToSubscriber(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe("menu:file:open", func(name string) { got = append(got, name) })
	b.Emit("menu:file:open")
	if len(got) != 1 || got[0] != "menu:file:open" {
		t.Fatalf("got %v, want one menu:file:open", got)
	}
}

func TestEmitWithoutSubscribersIsNoop(t *testing.T) {
	b := NewBus()
	b.Emit("menu:view:zoom-in") // must not panic or block
}

func TestEmitDoesNotCrossNames(t *testing.T) {
	b := NewBus()
	calls := 0
	b.Subscribe("menu:file:save", func(string) { calls++ })
	b.Emit("menu:file:open")
	if calls != 0 {
		t.Fatalf("handler for other event fired %d times", calls)
	}
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	b := NewBus()
	var got []string
	b.SubscribeAll(func(name string) { got = append(got, name) })
	b.Emit("menu:help:about")
	b.Emit("menu:view:zoom-out")
	if len(got) != 2 || got[0] != "menu:help:about" || got[1] != "menu:view:zoom-out" {
		t.Fatalf("catch-all got %v", got)
	}
}

func TestMultipleSubscribersEachCalledOnce(t *testing.T) {
	b := NewBus()
	a, c := 0, 0
	b.Subscribe("menu:edit:find", func(string) { a++ })
	b.Subscribe("menu:edit:find", func(string) { c++ })
	b.Emit("menu:edit:find")
	if a != 1 || c != 1 {
		t.Fatalf("subscriber call counts a=%d c=%d, want 1/1", a, c)
	}
}
