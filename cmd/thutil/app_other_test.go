// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir: %v", err)
		}
	})
}

// touch creates an empty file at path and any missing parent directories.
func touch(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// TestDefaultDictPath tests defaultDictPath.
//
// NOTE: This test changes the working directory and environment so it cannot
// be run in parallel.
func TestDefaultDictPath(t *testing.T) {
	systemPath := filepath.Join("/usr/share/mythes", defaultDictName)
	if _, err := os.Stat(systemPath); err == nil {
		t.Skipf("%s exists", systemPath)
	}

	localPath := filepath.Join("dict", defaultDictName)

	tests := []struct {
		name string

		// files are created relative to the working directory or under the
		// xdg and home directories.
		local bool
		xdg   bool
		home  bool

		// expected returns the expected path given the xdg and home
		// directories.
		expected func(xdg, home string) string
	}{
		{
			name: "none exist",
			expected: func(_, _ string) string {
				return localPath
			},
		},
		{
			name:  "local",
			local: true,
			xdg:   true,
			home:  true,
			expected: func(_, _ string) string {
				return localPath
			},
		},
		{
			name: "xdg before home",
			xdg:  true,
			home: true,
			expected: func(xdg, _ string) string {
				return filepath.Join(xdg, "mythes", defaultDictName)
			},
		},
		{
			name: "home",
			home: true,
			expected: func(_, home string) string {
				return filepath.Join(home, ".local/share/mythes", defaultDictName)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			wd := t.TempDir()
			xdg := t.TempDir()
			home := t.TempDir()
			chdir(t, wd)
			t.Setenv("XDG_DATA_HOME", xdg)
			t.Setenv("HOME", home)

			if test.local {
				touch(t, filepath.Join(wd, localPath))
			}
			if test.xdg {
				touch(t, filepath.Join(xdg, "mythes", defaultDictName))
			}
			if test.home {
				touch(t, filepath.Join(home, ".local/share/mythes", defaultDictName))
			}

			if got, want := defaultDictPath(), test.expected(xdg, home); got != want {
				t.Errorf("defaultDictPath: want: %q, got: %q", want, got)
			}
		})
	}
}
