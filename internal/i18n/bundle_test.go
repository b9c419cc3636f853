/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package i18n

import "testing"

func TestLoadDefault(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en): %v", err)
	}
	if b.Language() != "en" {
		t.Fatalf("Language() = %q", b.Language())
	}
	if got := b.Label("file:open"); got != "Open…" {
		t.Fatalf("Label(file:open) = %q", got)
	}
}

func TestLoadChinese(t *testing.T) {
	b, err := Load("zh-CN")
	if err != nil {
		t.Fatalf("Load(zh-CN): %v", err)
	}
	if got := b.Label("file"); got != "文件" {
		t.Fatalf("Label(file) = %q", got)
	}
	if got := b.Label("view:zoom-in"); got != "放大" {
		t.Fatalf("Label(view:zoom-in) = %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	b, err := Load("xx-YY")
	if err != nil {
		t.Fatalf("Load(xx-YY): %v", err)
	}
	if b.Language() != DefaultLanguage {
		t.Fatalf("expected fallback to %q, got %q", DefaultLanguage, b.Language())
	}
}

func TestUnknownIdentifierResolvesToItself(t *testing.T) {
	b, err := Load("en")
	if err != nil {
		t.Fatalf("Load(en): %v", err)
	}
	if got := b.Label("no:such:item"); got != "no:such:item" {
		t.Fatalf("Label(no:such:item) = %q", got)
	}
}

func TestAllBundlesValidateAndCoverMenuIDs(t *testing.T) {
	langs := Languages()
	if len(langs) < 2 {
		t.Fatalf("expected at least en and zh-CN, got %v", langs)
	}
	for _, lang := range langs {
		labels, err := readBundle(lang)
		if err != nil {
			t.Fatalf("bundle %q: %v", lang, err)
		}
		for _, id := range []string{"file", "file:open", "edit:find", "view:split-mode", "help:shortcuts"} {
			if labels[id] == "" {
				t.Fatalf("bundle %q missing label for %q", lang, id)
			}
		}
	}
}
