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

import "bytes"

// MessageBuffer accumulates message text for one category and, on Sync,
// hands the accumulated text to the owning State's message callback, or
// writes it to the State's console destination and flushes it when no
// callback is installed. After each Sync the buffer is reset, so repeated
// sync points never duplicate content.
//
// MessageBuffer is not safe for concurrent use; each sink owns its own.
type MessageBuffer struct {
	state    *State
	category MessageType
	buf      bytes.Buffer
}

// NewMessageBuffer creates an empty buffer that delivers through s under
// the given category.
func NewMessageBuffer(s *State, category MessageType) *MessageBuffer {
	return &MessageBuffer{state: s, category: category}
}

// Write appends p to the accumulated text. It never fails.
func (b *MessageBuffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteString appends text to the accumulated text.
func (b *MessageBuffer) WriteString(text string) {
	b.buf.WriteString(text)
}

// Len returns the number of accumulated bytes not yet synced.
func (b *MessageBuffer) Len() int { return b.buf.Len() }

// Sync delivers the accumulated text and resets the buffer. Delivery is
// serialized with callback installation by the State's shared lock. An
// empty buffer still delivers an empty message, matching sink finalization
// of an emission nothing was written to (the appended line terminator makes
// it non-empty in practice).
func (b *MessageBuffer) Sync() {
	text := b.buf.String()
	b.buf.Reset()
	b.state.deliver(b.category, text)
}

// consoleSink is the default Sink: a MessageBuffer that finalizes by
// appending a line terminator and syncing.
type consoleSink struct {
	buf    *MessageBuffer
	closed bool
}

// Write streams p into the buffer. Writes after Close are discarded.
func (c *consoleSink) Write(p []byte) (int, error) {
	if c.closed {
		return len(p), nil
	}
	return c.buf.Write(p)
}

// Close appends the trailing line terminator and syncs the buffer.
func (c *consoleSink) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.buf.WriteString("\n")
	c.buf.Sync()
	return nil
}

// defaultFactory produces console sinks delivering through one State under
// a fixed category. It is stateless and therefore safe for concurrent
// Produce calls.
type defaultFactory struct {
	state    *State
	category MessageType
}

// Produce returns a fresh console-backed sink.
func (f defaultFactory) Produce() Sink {
	return &consoleSink{buf: NewMessageBuffer(f.state, f.category)}
}
