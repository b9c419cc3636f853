/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package i18n supplies the initial menu labels from embedded JSON locale
// bundles. Bundles map menu identifiers to display labels and are validated
// against a JSON schema at load. Runtime language switching is the front
// end's job, via the update_menu_labels command.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed locales/*.json
var localeFS embed.FS

//go:embed schema.json
var schemaJSON []byte

// DefaultLanguage is the bundle every lookup falls back to.
const DefaultLanguage = "en"

// Bundle holds the labels for one language, backed by the default language
// for identifiers the bundle does not cover.
type Bundle struct {
	lang     string
	labels   map[string]string
	fallback map[string]string
}

// Load reads and validates the bundle for lang. An unknown language falls
// back to the default bundle rather than failing; a malformed bundle is an
// error because menu construction cannot proceed without labels.
func Load(lang string) (*Bundle, error) {
	def, err := readBundle(DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("load default locale: %w", err)
	}
	b := &Bundle{lang: DefaultLanguage, labels: def, fallback: def}

	lang = strings.TrimSpace(lang)
	if lang == "" || lang == DefaultLanguage {
		return b, nil
	}
	labels, err := readBundle(lang)
	if err != nil {
		if _, statErr := fs.Stat(localeFS, localePath(lang)); statErr != nil {
			// no such bundle shipped; keep the default
			return b, nil
		}
		return nil, err
	}
	b.lang = lang
	b.labels = labels
	return b, nil
}

// Language returns the language tag the bundle actually serves.
func (b *Bundle) Language() string { return b.lang }

// Label resolves a menu identifier to its display label. Unknown identifiers
// resolve through the default bundle, and finally to the identifier itself so
// a missing translation never blanks a menu entry.
func (b *Bundle) Label(id string) string {
	if s, ok := b.labels[id]; ok {
		return s
	}
	if s, ok := b.fallback[id]; ok {
		return s
	}
	return id
}

// Languages lists the bundled locale tags, sorted.
func Languages() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(langs)
	return langs
}

func localePath(lang string) string { return "locales/" + lang + ".json" }

func readBundle(lang string) (map[string]string, error) {
	data, err := localeFS.ReadFile(localePath(lang))
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", lang, err)
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate locale %q: %w", lang, err)
	}
	if !res.Valid() {
		return nil, fmt.Errorf("locale %q does not match schema: %v", lang, res.Errors())
	}
	var labels map[string]string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("decode locale %q: %w", lang, err)
	}
	return labels, nil
}
