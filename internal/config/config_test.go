/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"testing"
)

func TestEnvOverridesLanguage(t *testing.T) {
	old := os.Getenv(EnvLanguage)
	_ = os.Setenv(EnvLanguage, "zh-CN")
	t.Cleanup(func() { _ = os.Setenv(EnvLanguage, old) })
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := cfg.General.Language, "zh-CN"; got != want {
		t.Fatalf("General.Language = %q, want %q", got, want)
	}
}

func TestDefaultsLanguageEnglish(t *testing.T) {
	cfg := Defaults()
	if cfg.General.Language != "en" {
		t.Fatalf("default language = %q, want en", cfg.General.Language)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("default logging unexpected: %#v", cfg.Logging)
	}
}

func TestMergeIncludesGeneral(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.General.Language = "zh-CN"
	src.General.Theme = "dark"
	mergeInto(&dst, &src)
	if dst.General.Language != "zh-CN" || dst.General.Theme != "dark" {
		t.Fatalf("general fields not merged: %#v", dst.General)
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := Defaults()
	src.Logging.Level = "debug"
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "C:/tmp/medit.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "C:/tmp/medit.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
}

func TestMergeKeepsDefaultsOnEmptySource(t *testing.T) {
	dst := Defaults()
	var src AppConfig
	mergeInto(&dst, &src)
	if dst.General.Language != "en" || dst.Logging.Level != "info" {
		t.Fatalf("empty source should leave defaults intact: %#v", dst)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	oldLevel := os.Getenv(EnvLogLevel)
	oldFmt := os.Getenv(EnvLogFormat)
	oldSrc := os.Getenv(EnvLogSource)
	oldFile := os.Getenv(EnvLogFile)
	_ = os.Setenv(EnvLogLevel, "error")
	_ = os.Setenv(EnvLogFormat, "json")
	_ = os.Setenv(EnvLogSource, "1")
	_ = os.Setenv(EnvLogFile, "X:/medit.log")
	t.Cleanup(func() {
		_ = os.Setenv(EnvLogLevel, oldLevel)
		_ = os.Setenv(EnvLogFormat, oldFmt)
		_ = os.Setenv(EnvLogSource, oldSrc)
		_ = os.Setenv(EnvLogFile, oldFile)
	})
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "X:/medit.log" {
		t.Fatalf("env overrides not applied: %#v", cfg.Logging)
	}
}

func TestEnvOverrideForReportsSource(t *testing.T) {
	old := os.Getenv(EnvTheme)
	_ = os.Setenv(EnvTheme, "dark")
	t.Cleanup(func() { _ = os.Setenv(EnvTheme, old) })
	name, ok := EnvOverrideFor("general.theme")
	if !ok || name != EnvTheme {
		t.Fatalf("EnvOverrideFor = %q, %v", name, ok)
	}
	if _, ok := EnvOverrideFor("no.such.key"); ok {
		t.Fatalf("unknown key should not report an override")
	}
}
