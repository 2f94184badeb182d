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
	"bytes"
	"testing"
)

// TestSwitchableWriterSetAndGet exercises writer swapping and
// GetCurrentWriter coverage paths.
func TestSwitchableWriterSetAndGet(t *testing.T) {
	t.Parallel()

	first := &bytes.Buffer{}
	sw := NewSwitchableWriter(first)

	if got := sw.GetCurrentWriter(); got != first {
		t.Fatalf("initial writer = %v, want %v", got, first)
	}

	second := &bytes.Buffer{}
	sw.SetWriter(second)

	if _, err := sw.Write([]byte("hello")); err != nil {
		t.Fatalf("Write returned %v, want nil", err)
	}
	if second.String() != "hello" {
		t.Fatalf("second writer captured %q, want %q", second.String(), "hello")
	}

	sw.SetWriter(nil)
	if _, err := sw.Write([]byte("discarded")); err != nil {
		t.Fatalf("Write after nil SetWriter returned %v, want nil", err)
	}
	if got := sw.GetCurrentWriter(); got == nil {
		t.Fatalf("GetCurrentWriter returned nil after SetWriter(nil)")
	}
}

// TestSwitchableWriterClose closes an owned writer and routes subsequent
// writes to io.Discard.
func TestSwitchableWriterClose(t *testing.T) {
	t.Parallel()

	closer := &closableBuffer{}
	sw := NewSwitchableWriter(closer)

	if err := sw.Close(); err != nil {
		t.Fatalf("Close returned %v, want nil", err)
	}
	if !closer.closed {
		t.Fatalf("underlying writer was not closed")
	}

	if n, err := sw.Write([]byte("after-close")); err != nil || n != len("after-close") {
		t.Fatalf("Write after Close = (%d, %v), want (%d, nil)", n, err, len("after-close"))
	}
}

// TestSwitchableWriterFlush verifies flushable writers are flushed and
// plain buffers make Flush a no-op.
func TestSwitchableWriterFlush(t *testing.T) {
	t.Parallel()

	plain := NewSwitchableWriter(&bytes.Buffer{})
	if err := plain.Flush(); err != nil {
		t.Fatalf("Flush on plain buffer returned %v, want nil", err)
	}

	fw := &flushableBuffer{}
	sw := NewSwitchableWriter(fw)
	if err := sw.Flush(); err != nil {
		t.Fatalf("Flush returned %v, want nil", err)
	}
	if fw.flushes != 1 {
		t.Fatalf("underlying writer flushed %d times, want 1", fw.flushes)
	}
}

type closableBuffer struct {
	bytes.Buffer
	closed bool
}

// Close marks the buffer closed for verification.
func (c *closableBuffer) Close() error {
	c.closed = true
	return nil
}

type flushableBuffer struct {
	bytes.Buffer
	flushes int
}

// Flush counts flush requests for verification.
func (f *flushableBuffer) Flush() error {
	f.flushes++
	return nil
}
