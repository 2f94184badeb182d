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
	"os"
	"sync"
)

// State is the process-wide diagnostic state: the installed message and
// table callbacks, the sticky scope registry, the set of live DebugMode
// gates, the fallback console destination, and the sink-factory Manager.
//
// One shared mutex guards the callbacks, the registry, and the live set as
// a single critical-section domain. The Manager carries its own independent
// lock because sink production is unrelated to the scope registry and
// should not contend with it. Diagnostic throughput is not performance
// critical, so the coarse shared lock favors correctness over parallelism.
//
// Most programs use the shared instance returned by Default through the
// package-level functions. Tests construct isolated instances with
// NewState.
type State struct {
	mu        sync.Mutex
	messageCB MessageCallback
	tableCB   TableCallback
	registry  map[scopeKey]bool
	live      []*DebugMode

	// console receives flushed message text when no message callback is
	// installed. Swappable so tests can capture fallback output.
	console *SwitchableWriter

	manager *Manager

	signalOnce sync.Once
}

// Option configures a State during construction via NewState.
type Option func(*options)

// options holds the configurable settings for a State. Fields are left nil
// when unset so NewState can fall back to defaults.
type options struct {
	consoleWriter  io.Writer
	warningFactory SinkFactory
	debugFactory   SinkFactory
}

// WithConsoleWriter returns an Option that sets the destination used when
// no message callback is installed. The default is os.Stdout.
func WithConsoleWriter(w io.Writer) Option {
	return func(o *options) {
		o.consoleWriter = w
	}
}

// WithWarningFactory returns an Option that installs factory as the initial
// warning sink factory, replacing the default console-backed factory.
func WithWarningFactory(factory SinkFactory) Option {
	return func(o *options) {
		o.warningFactory = factory
	}
}

// WithDebugFactory returns an Option that installs factory as the initial
// debug sink factory, replacing the default console-backed factory.
func WithDebugFactory(factory SinkFactory) Option {
	return func(o *options) {
		o.debugFactory = factory
	}
}

// NewState creates a fresh, fully independent diagnostic state. Both sink
// factory slots start populated with default console-backed factories, so
// the returned State is usable immediately.
func NewState(opts ...Option) *State {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	s := &State{
		registry: make(map[scopeKey]bool),
		console:  NewSwitchableWriter(os.Stdout),
	}
	if o.consoleWriter != nil {
		s.console.SetWriter(o.consoleWriter)
	}
	s.manager = newManager(s)
	if o.warningFactory != nil {
		s.manager.SetWarning(o.warningFactory)
	}
	if o.debugFactory != nil {
		s.manager.SetDebug(o.debugFactory)
	}
	return s
}

var (
	defaultState     *State
	defaultStateOnce sync.Once
)

// Default returns the shared process-wide State, creating it on first use.
// It lives for the remainder of the process; no teardown ordering is
// guaranteed, so code must not rely on it from other shutdown paths.
func Default() *State {
	defaultStateOnce.Do(func() {
		defaultState = NewState()
	})
	return defaultState
}

// Manager returns the sink-factory manager owned by this State.
func (s *State) Manager() *Manager { return s.manager }

// ConsoleWriter returns the swappable fallback console destination. Flushed
// message text lands here whenever no message callback is installed.
func (s *State) ConsoleWriter() *SwitchableWriter { return s.console }

// InstallMessageHandler installs callback as the receiver of all finalized
// message text, replacing any previously installed callback. A nil callback
// uninstalls, restoring console fallback.
func (s *State) InstallMessageHandler(callback MessageCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageCB = callback
}

// InstallTableCallback installs callback as the receiver of table payloads
// from enabled DebugMode gates, replacing any previously installed
// callback. A nil callback uninstalls; table data is then dropped.
func (s *State) InstallTableCallback(callback TableCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tableCB = callback
}

// deliver routes one finalized message to the installed callback, or to the
// console destination when none is installed. The shared lock serializes
// delivery against callback installation.
func (s *State) deliver(category MessageType, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.messageCB != nil {
		s.messageCB(category, text)
		return
	}
	if _, err := io.WriteString(s.console, text); err != nil {
		return
	}
	_ = s.console.Flush()
}

// InstallMessageHandler installs callback on the Default state.
func InstallMessageHandler(callback MessageCallback) {
	Default().InstallMessageHandler(callback)
}

// InstallTableCallback installs callback on the Default state.
func InstallTableCallback(callback TableCallback) {
	Default().InstallTableCallback(callback)
}
