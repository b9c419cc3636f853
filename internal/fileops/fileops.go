/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package fileops implements the flat-file commands of the editor backend:
// read_file, write_file and new_file. Files are opaque UTF-8 text blobs at
// caller-supplied paths; OS failures are folded into the result record and
// never cross the command boundary as Go errors.
package fileops

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	applog "medit/internal/log"
)

// FileResult reports the outcome of a read or write. Content is set only on a
// successful read; Error only on failure. Field names are the wire contract
// with the front end.
type FileResult struct {
	Success bool    `json:"success"`
	Content *string `json:"content"`
	Error   *string `json:"error"`
}

// NewFileResult acknowledges a new_file command.
type NewFileResult struct {
	Success bool `json:"success"`
}

func failure(err error) FileResult {
	msg := err.Error()
	return FileResult{Success: false, Error: &msg}
}

// ReadFile reads the whole file at path and returns it as text. Missing files,
// permission problems and invalid UTF-8 all surface as error strings in the
// result.
func ReadFile(path string) FileResult {
	l := applog.WithComponent("fileops")
	data, err := os.ReadFile(path)
	if err != nil {
		l.Warn("read failed", slog.String("path", path), slog.Any("err", err))
		return failure(err)
	}
	if !utf8.Valid(data) {
		l.Warn("read failed", slog.String("path", path), slog.String("err", "not valid UTF-8"))
		return failure(fmt.Errorf("read %s: content is not valid UTF-8 text", path))
	}
	content := string(data)
	l.Debug("read ok", slog.String("path", path), slog.Int("bytes", len(data)))
	return FileResult{Success: true, Content: &content}
}

// WriteFile overwrites the file at path with content, creating it if absent.
func WriteFile(path, content string) FileResult {
	l := applog.WithComponent("fileops")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		l.Warn("write failed", slog.String("path", path), slog.Any("err", err))
		return failure(err)
	}
	l.Debug("write ok", slog.String("path", path), slog.Int("bytes", len(content)))
	return FileResult{Success: true}
}

// NewFile performs no I/O. The front end clears its own editing state on the
// acknowledgement.
func NewFile() NewFileResult {
	return NewFileResult{Success: true}
}
