/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package fileops

import (
	"encoding/json"

	"medit/internal/bridge"
)

type readArgs struct {
	Path string `json:"path"`
}

type writeArgs struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Register wires the file commands onto the bridge.
func Register(b *bridge.Bridge) {
	b.MustRegister("read_file", func(args json.RawMessage) (any, error) {
		var in readArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, err
		}
		return ReadFile(in.Path), nil
	})
	b.MustRegister("write_file", func(args json.RawMessage) (any, error) {
		var in writeArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, err
		}
		return WriteFile(in.Path, in.Content), nil
	})
	b.MustRegister("new_file", func(json.RawMessage) (any, error) {
		return NewFile(), nil
	})
}
