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
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OSPlatform implements Platform directly on the local filesystem. Install
// it with SetPlatform(OSPlatform{}) when the host has no environment of its
// own to delegate to.
type OSPlatform struct{}

var _ Platform = OSPlatform{}

// ListFiles returns the regular files directly under path whose extension
// matches. Extensions are compared lowercased and include the dot, e.g.
// ".json". Returned paths are joined with path.
func (OSPlatform) ListFiles(path string, extensions map[string]struct{}) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(extensions) > 0 {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, ok := extensions[ext]; !ok {
				continue
			}
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files
}

// ListDirectories returns the directories directly under path, joined with
// path.
func (OSPlatform) ListDirectories(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(path, entry.Name()))
		}
	}
	return dirs
}

// FileTimeMS returns the modification time in milliseconds since the Unix
// epoch, or 0 when the path cannot be stat'd.
func (OSPlatform) FileTimeMS(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixMilli()
}

// CopyFile copies a regular file, creating or truncating the destination.
func (OSPlatform) CopyFile(pathFrom, pathTo string) bool {
	src, err := os.Open(pathFrom)
	if err != nil {
		return false
	}
	defer src.Close()

	dst, err := os.Create(pathTo)
	if err != nil {
		return false
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	return copyErr == nil && closeErr == nil
}

// Mkdir creates path, including parents when createFullPath is true.
func (OSPlatform) Mkdir(path string, createFullPath bool) bool {
	if createFullPath {
		return os.MkdirAll(path, 0755) == nil
	}
	return os.Mkdir(path, 0755) == nil
}

// Remove deletes path; recursive removal uses os.RemoveAll.
func (OSPlatform) Remove(path string, recursive bool) bool {
	if recursive {
		return os.RemoveAll(path) == nil
	}
	return os.Remove(path) == nil
}

// Exists reports whether path exists.
func (OSPlatform) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
