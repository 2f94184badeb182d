// Copyright 2026 Sam Ains
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// TestOSPlatformListFiles covers extension filtering, case folding, and
// directory exclusion.
func TestOSPlatformListFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.JSON", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	p := OSPlatform{}

	got := p.ListFiles(dir, map[string]struct{}{".json": {}})
	sort.Strings(got)
	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.JSON")}
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("ListFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListFiles = %v, want %v", got, want)
		}
	}

	all := p.ListFiles(dir, nil)
	if len(all) != 3 {
		t.Fatalf("ListFiles with empty filter = %v, want 3 files", all)
	}

	if got := p.ListFiles(filepath.Join(dir, "absent"), nil); got != nil {
		t.Fatalf("ListFiles on missing dir = %v, want nil", got)
	}
}

// TestOSPlatformListDirectories verifies only directories are listed.
func TestOSPlatformListDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "child"), 0755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "file"), nil, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := OSPlatform{}.ListDirectories(dir)
	if len(got) != 1 || got[0] != filepath.Join(dir, "child") {
		t.Fatalf("ListDirectories = %v, want [%s]", got, filepath.Join(dir, "child"))
	}
}

// TestOSPlatformFileOps covers copy, mkdir, remove, exists, and mtime.
func TestOSPlatformFileOps(t *testing.T) {
	t.Parallel()

	p := OSPlatform{}
	dir := t.TempDir()

	src := filepath.Join(dir, "src.txt")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	dst := filepath.Join(dir, "dst.txt")
	if !p.CopyFile(src, dst) {
		t.Fatalf("CopyFile reported failure")
	}
	if got := ReadTextFile(dst); got != "payload" {
		t.Fatalf("copied file holds %q, want %q", got, "payload")
	}
	if p.CopyFile(filepath.Join(dir, "absent"), dst) {
		t.Fatalf("CopyFile from missing source reported success")
	}

	nested := filepath.Join(dir, "x", "y", "z")
	if p.Mkdir(nested, false) {
		t.Fatalf("non-recursive Mkdir created nested path")
	}
	if !p.Mkdir(nested, true) {
		t.Fatalf("recursive Mkdir reported failure")
	}
	if !p.Exists(nested) {
		t.Fatalf("Exists(%q) = false after Mkdir", nested)
	}

	if p.FileTimeMS(src) <= 0 {
		t.Fatalf("FileTimeMS(%q) = %d, want positive", src, p.FileTimeMS(src))
	}
	if p.FileTimeMS(filepath.Join(dir, "absent")) != 0 {
		t.Fatalf("FileTimeMS on missing path nonzero")
	}

	if p.Remove(filepath.Join(dir, "x"), false) {
		t.Fatalf("non-recursive Remove deleted non-empty directory")
	}
	if !p.Remove(filepath.Join(dir, "x"), true) {
		t.Fatalf("recursive Remove reported failure")
	}
	if p.Exists(filepath.Join(dir, "x")) {
		t.Fatalf("path still exists after recursive Remove")
	}
}
