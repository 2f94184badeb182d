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
	"io"
	"sync"
)

// Sink is a single-use text destination for one diagnostic message. Text is
// streamed in through Write; Close finalizes the message, appending the
// trailing line terminator and delivering the accumulated text. Close must
// be called exactly once; the Emission wrapper enforces this for its owned
// sink.
type Sink interface {
	io.Writer

	// Close finalizes the sink. Writes after Close are discarded.
	Close() error
}

// SinkFactory manufactures a fresh Sink for every emission. Produce may be
// called concurrently from many goroutines, so implementations must be
// stateless or internally synchronized. Produce never returns nil and never
// returns a shared or reused Sink.
type SinkFactory interface {
	Produce() Sink
}

// SinkFactoryFunc adapts a plain function to the SinkFactory interface.
type SinkFactoryFunc func() Sink

// Produce calls f.
func (f SinkFactoryFunc) Produce() Sink { return f() }

// Manager holds exactly one SinkFactory for the warning category and one
// for the debug category, swappable at runtime. Both slots are populated
// eagerly with default console-backed factories and are never nil.
//
// A single lock makes the four operations mutually exclusive, so a produce
// racing a replace can never observe a torn factory slot. The lock is
// independent of the owning State's shared lock: sink production must not
// contend with the scope registry.
type Manager struct {
	mu      sync.Mutex
	warning SinkFactory
	debug   SinkFactory

	// Retained so a nil Set restores the slot instead of emptying it.
	defaultWarning SinkFactory
	defaultDebug   SinkFactory
}

// newManager creates a Manager whose default factories deliver through the
// given state.
func newManager(s *State) *Manager {
	dw := defaultFactory{state: s, category: MessageWarning}
	dd := defaultFactory{state: s, category: MessageDebug}
	return &Manager{
		warning:        dw,
		debug:          dd,
		defaultWarning: dw,
		defaultDebug:   dd,
	}
}

// SetWarning replaces the warning sink factory. The previous factory is
// released and never invoked again. A nil factory restores the default
// console-backed factory rather than leaving the slot empty.
func (m *Manager) SetWarning(factory SinkFactory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if factory == nil {
		factory = m.defaultWarning
	}
	m.warning = factory
}

// SetDebug replaces the debug sink factory. Semantics match SetWarning.
func (m *Manager) SetDebug(factory SinkFactory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if factory == nil {
		factory = m.defaultDebug
	}
	m.debug = factory
}

// ProduceWarning returns a fresh Sink from the current warning factory.
// Ownership passes to the caller, who must Close it exactly once.
func (m *Manager) ProduceWarning() Sink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warning.Produce()
}

// ProduceDebug returns a fresh Sink from the current debug factory.
// Ownership passes to the caller, who must Close it exactly once.
func (m *Manager) ProduceDebug() Sink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.debug.Produce()
}
