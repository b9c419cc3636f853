/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package dialogs

import (
	"encoding/json"

	"medit/internal/bridge"
)

type saveArgs struct {
	DefaultName *string `json:"default_name"`
}

// Register wires the dialog commands onto the bridge.
func (s *Service) Register(b *bridge.Bridge) {
	b.MustRegister("open_file_dialog", func(json.RawMessage) (any, error) {
		return s.OpenFile(), nil
	})
	b.MustRegister("save_file_dialog", func(args json.RawMessage) (any, error) {
		var in saveArgs
		if len(args) > 0 {
			if err := json.Unmarshal(args, &in); err != nil {
				return nil, err
			}
		}
		name := ""
		if in.DefaultName != nil {
			name = *in.DefaultName
		}
		return s.SaveFile(name), nil
	})
}
