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

// Package fileutil provides best-effort file helpers for diagnostic and
// configuration plumbing. Every operation swallows errors and reports
// failure as an empty or false result; nothing here panics or returns an
// error value. Directory-level operations delegate to an injectable
// Platform strategy that may be left unset, in which case they return their
// empty defaults.
package fileutil

import (
	"os"
	"sync"
)

// ReadTextFile returns the file's contents as a string, or "" on any
// failure.
func ReadTextFile(fileName string) string {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return ""
	}
	return string(data)
}

// ReadBinaryFile returns the file's contents, or nil on any failure.
func ReadBinaryFile(fileName string) []byte {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil
	}
	return data
}

// WriteTextFile writes text to the file, creating or truncating it, and
// reports success.
func WriteTextFile(fileName, text string) bool {
	return os.WriteFile(fileName, []byte(text), 0644) == nil
}

// WriteBinaryFile writes data to the file, creating or truncating it, and
// reports success.
func WriteBinaryFile(fileName string, data []byte) bool {
	return os.WriteFile(fileName, data, 0644) == nil
}

// Platform supplies the directory-level operations the host environment
// owns. Implementations follow the package's best-effort contract: no
// errors, empty or false on failure.
type Platform interface {
	// ListFiles returns the paths of the regular files directly under path
	// whose extension (including the dot, lowercased) is in extensions. An
	// empty extensions set matches every file.
	ListFiles(path string, extensions map[string]struct{}) []string

	// ListDirectories returns the paths of the directories directly under
	// path.
	ListDirectories(path string) []string

	// FileTimeMS returns the file's modification time in milliseconds since
	// the Unix epoch, or 0 when unavailable.
	FileTimeMS(path string) int64

	// CopyFile copies a regular file and reports success.
	CopyFile(pathFrom, pathTo string) bool

	// Mkdir creates a directory, with parents when createFullPath is true,
	// and reports success.
	Mkdir(path string, createFullPath bool) bool

	// Remove deletes a file, or a whole tree when recursive is true, and
	// reports success.
	Remove(path string, recursive bool) bool

	// Exists reports whether the path exists.
	Exists(path string) bool
}

var (
	platformMu sync.Mutex
	platform   Platform
)

// SetPlatform installs the strategy behind the package-level directory
// operations, replacing any previous one. A nil platform uninstalls; the
// operations then return their empty defaults.
func SetPlatform(p Platform) {
	platformMu.Lock()
	defer platformMu.Unlock()
	platform = p
}

// currentPlatform returns the installed strategy, or nil.
func currentPlatform() Platform {
	platformMu.Lock()
	defer platformMu.Unlock()
	return platform
}

// ListFiles lists matching files under path via the installed Platform, or
// returns nil when none is installed.
func ListFiles(path string, extensions map[string]struct{}) []string {
	if p := currentPlatform(); p != nil {
		return p.ListFiles(path, extensions)
	}
	return nil
}

// ListDirectories lists directories under path via the installed Platform,
// or returns nil when none is installed.
func ListDirectories(path string) []string {
	if p := currentPlatform(); p != nil {
		return p.ListDirectories(path)
	}
	return nil
}

// FileTimeMS returns the modification time via the installed Platform, or 0
// when none is installed.
func FileTimeMS(path string) int64 {
	if p := currentPlatform(); p != nil {
		return p.FileTimeMS(path)
	}
	return 0
}

// CopyFile copies a file via the installed Platform, or reports false when
// none is installed.
func CopyFile(pathFrom, pathTo string) bool {
	if p := currentPlatform(); p != nil {
		return p.CopyFile(pathFrom, pathTo)
	}
	return false
}

// Mkdir creates a directory via the installed Platform, or reports false
// when none is installed.
func Mkdir(path string, createFullPath bool) bool {
	if p := currentPlatform(); p != nil {
		return p.Mkdir(path, createFullPath)
	}
	return false
}

// Remove deletes a path via the installed Platform, or reports false when
// none is installed.
func Remove(path string, recursive bool) bool {
	if p := currentPlatform(); p != nil {
		return p.Remove(path, recursive)
	}
	return false
}

// Exists reports existence via the installed Platform, or false when none
// is installed.
func Exists(path string) bool {
	if p := currentPlatform(); p != nil {
		return p.Exists(path)
	}
	return false
}
