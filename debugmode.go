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

import "sync/atomic"

// scopeKey identifies one toggleable debug scope: a scope path paired with
// the channel it governs.
type scopeKey struct {
	scopePath string
	debugType DebugType
}

// DebugMode is a named, runtime-toggleable gate. A call site constructs one
// bound to a (scope path, debug type) pair and tests Enabled before doing
// debug-only work; operators flip the pair on or off at runtime through
// SetDebugModeEnabled without recompilation or restart.
//
// The gate read is a single atomic load and never takes a lock, so a
// disabled gate on a hot path costs almost nothing.
type DebugMode struct {
	state     *State
	scopePath string
	debugType DebugType
	enabled   atomic.Bool
}

// NewDebugMode constructs a gate bound to (scopePath, debugType) and
// registers it in this State's live set. If the sticky registry already has
// an entry for the pair (from an earlier SetDebugModeEnabled, even one made
// before any instance existed) the gate adopts that value; otherwise it
// starts disabled. Construction never writes the registry.
//
// Call Close when the owning component shuts down so the gate leaves the
// live set.
func (s *State) NewDebugMode(scopePath string, debugType DebugType) *DebugMode {
	m := &DebugMode{state: s, scopePath: scopePath, debugType: debugType}
	s.mu.Lock()
	s.live = append(s.live, m)
	if enabled, ok := s.registry[scopeKey{scopePath, debugType}]; ok {
		m.enabled.Store(enabled)
	}
	s.mu.Unlock()
	return m
}

// ScopePath returns the scope path this gate was constructed with.
func (m *DebugMode) ScopePath() string { return m.scopePath }

// Type returns the debug type this gate was constructed with.
func (m *DebugMode) Type() DebugType { return m.debugType }

// Enabled reports the gate's current state without side effects.
func (m *DebugMode) Enabled() bool { return m.enabled.Load() }

// Close removes exactly this instance from the live set. Other live gates
// with the same key, and the sticky registry entry, are untouched; a future
// gate for the same key still adopts the registry value. Closing an
// instance that is not in the live set is a no-op, so double Close is
// harmless.
func (m *DebugMode) Close() error {
	s := m.state
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, candidate := range s.live {
		if candidate == m {
			s.live = append(s.live[:i], s.live[i+1:]...)
			break
		}
	}
	return nil
}

// SetTable hands a large table payload to the installed table callback if
// this gate is currently enabled. Disabled gates drop the payload; so does
// an enabled gate with no callback installed. Table data is strictly
// callback-driven and never buffered for later delivery.
func (m *DebugMode) SetTable(table string) {
	if !m.enabled.Load() {
		return
	}
	s := m.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tableCB != nil {
		s.tableCB(m.scopePath, m.debugType, table)
	}
}

// SetDebugModeEnabled sets the sticky registry entry for
// (scopePath, debugType) and broadcasts the new value to every live gate
// with that key. Both happen under the shared lock before the call returns:
// a gate test that happens after the return observes the new value, as does
// any gate constructed afterwards. The registry entry outlives all
// instances, so a scope can be pre-armed before any gate exists.
func (s *State) SetDebugModeEnabled(scopePath string, debugType DebugType, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry[scopeKey{scopePath, debugType}] = enabled
	for _, m := range s.live {
		if m.scopePath == scopePath && m.debugType == debugType {
			m.enabled.Store(enabled)
		}
	}
}

// DebugModeScopePaths returns the scope paths of every currently live gate
// of the given type, one entry per instance. Registry-only entries with no
// live instance are not included. Order is unspecified.
func (s *State) DebugModeScopePaths(debugType DebugType) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.live))
	for _, m := range s.live {
		if m.debugType == debugType {
			paths = append(paths, m.scopePath)
		}
	}
	return paths
}

// NewDebugMode constructs a gate on the Default state.
func NewDebugMode(scopePath string, debugType DebugType) *DebugMode {
	return Default().NewDebugMode(scopePath, debugType)
}

// SetDebugModeEnabled toggles a scope on the Default state.
func SetDebugModeEnabled(scopePath string, debugType DebugType, enabled bool) {
	Default().SetDebugModeEnabled(scopePath, debugType, enabled)
}

// DebugModeScopePaths lists live scope paths on the Default state.
func DebugModeScopePaths(debugType DebugType) []string {
	return Default().DebugModeScopePaths(debugType)
}
