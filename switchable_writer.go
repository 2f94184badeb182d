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

package tputils

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// SwitchableWriter is an io.Writer whose underlying writer can be swapped
// atomically. It backs a State's console destination: the default is
// os.Stdout, and tests (or embedders redirecting diagnostics) replace it
// with a capture buffer via SetWriter without rebuilding the State.
//
// SwitchableWriter also implements io.Closer. Close attempts to close the
// underlying writer if it is an io.Closer, then routes further writes to
// io.Discard.
type SwitchableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSwitchableWriter creates a SwitchableWriter over initialWriter. A nil
// initialWriter means io.Discard.
func NewSwitchableWriter(initialWriter io.Writer) *SwitchableWriter {
	if initialWriter == nil {
		initialWriter = io.Discard
	}
	return &SwitchableWriter{w: initialWriter}
}

// Write directs p to the current underlying writer. It is safe for
// concurrent use.
func (sw *SwitchableWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	currentWriter := sw.w
	if currentWriter == nil {
		sw.mu.Unlock()
		return 0, os.ErrClosed
	}
	n, err = currentWriter.Write(p)
	sw.mu.Unlock()
	if err != nil {
		return n, fmt.Errorf("write via switchable writer: %w", err)
	}
	return n, nil
}

// SetWriter atomically swaps the underlying writer. The previous writer is
// not closed; its lifecycle stays with the caller. A nil newWriter routes
// writes to io.Discard.
func (sw *SwitchableWriter) SetWriter(newWriter io.Writer) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if newWriter == nil {
		sw.w = io.Discard
		return
	}
	sw.w = newWriter
}

// GetCurrentWriter returns the current underlying writer. Callers should
// not hold on to it across SetWriter calls.
func (sw *SwitchableWriter) GetCurrentWriter() io.Writer {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w
}

// Flush forces the underlying writer to flush when it supports flushing,
// via either a Flush() error method or an *os.File Sync. Writers with no
// flush concept (bytes.Buffer, io.Discard) make Flush a successful no-op.
// Message delivery calls this after every console fallback write so text is
// visible immediately, which matters when the process is about to abort.
func (sw *SwitchableWriter) Flush() error {
	sw.mu.Lock()
	currentWriter := sw.w
	sw.mu.Unlock()

	switch w := currentWriter.(type) {
	case interface{ Flush() error }:
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush switchable writer: %w", err)
		}
	case *os.File:
		// Skip Sync for the standard streams; they are unbuffered and Sync
		// on a terminal fails on some platforms.
		if w != os.Stdout && w != os.Stderr {
			if err := w.Sync(); err != nil {
				return fmt.Errorf("sync switchable writer: %w", err)
			}
		}
	}
	return nil
}

// Close attempts to close the current underlying writer if it implements
// io.Closer, then sets the internal writer to io.Discard so later writes
// are dropped rather than failing. Safe for concurrent use and idempotent.
func (sw *SwitchableWriter) Close() error {
	sw.mu.Lock()
	writerToClose := sw.w
	sw.w = io.Discard
	sw.mu.Unlock()

	if c, ok := writerToClose.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close current writer: %w", err)
		}
	}
	return nil
}

// Ensure SwitchableWriter implements io.WriteCloser.
var _ io.WriteCloser = (*SwitchableWriter)(nil)
