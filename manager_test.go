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

// recordingSink is a Sink test double that captures writes and counts
// closes.
type recordingSink struct {
	buf    bytes.Buffer
	closed int
}

func (r *recordingSink) Write(p []byte) (int, error) { return r.buf.Write(p) }
func (r *recordingSink) Close() error                { r.closed++; return nil }

// recordingFactory counts Produce calls and hands out fresh sinks.
type recordingFactory struct {
	produced int
	sinks    []*recordingSink
}

func (f *recordingFactory) Produce() Sink {
	f.produced++
	sink := &recordingSink{}
	f.sinks = append(f.sinks, sink)
	return sink
}

// TestManagerUsesNewFactory verifies a swapped-in factory serves subsequent
// produces and the replaced factory is never invoked again.
func TestManagerUsesNewFactory(t *testing.T) {
	t.Parallel()

	s, _ := newTestState()
	m := s.Manager()

	old := &recordingFactory{}
	m.SetWarning(old)
	_ = m.ProduceWarning()
	if old.produced != 1 {
		t.Fatalf("old factory produced %d sinks, want 1", old.produced)
	}

	replacement := &recordingFactory{}
	m.SetWarning(replacement)
	_ = m.ProduceWarning()
	_ = m.ProduceWarning()

	if old.produced != 1 {
		t.Fatalf("replaced factory invoked again: produced %d, want 1", old.produced)
	}
	if replacement.produced != 2 {
		t.Fatalf("new factory produced %d sinks, want 2", replacement.produced)
	}
}

// TestManagerProducesFreshSinks verifies Produce never reuses an instance.
func TestManagerProducesFreshSinks(t *testing.T) {
	t.Parallel()

	s, _ := newTestState()
	m := s.Manager()
	f := &recordingFactory{}
	m.SetDebug(f)

	a := m.ProduceDebug()
	b := m.ProduceDebug()
	if a == b {
		t.Fatalf("ProduceDebug returned the same sink twice")
	}
}

// TestManagerSlotsAreIndependent verifies warning and debug slots swap
// independently.
func TestManagerSlotsAreIndependent(t *testing.T) {
	t.Parallel()

	s, buf := newTestState()
	m := s.Manager()

	custom := &recordingFactory{}
	m.SetDebug(custom)

	// Warning slot still default: text must reach the console.
	e := s.Warning()
	e.Print("still default")
	_ = e.Close()
	if got, want := buf.String(), "still default\n"; got != want {
		t.Fatalf("console received %q, want %q", got, want)
	}

	// Debug slot is custom: nothing more lands on the console.
	d := s.Debug()
	d.Print("routed elsewhere")
	_ = d.Close()
	if got := buf.String(); got != "still default\n" {
		t.Fatalf("custom debug sink leaked to console: %q", got)
	}
	if custom.produced != 1 || custom.sinks[0].closed != 1 {
		t.Fatalf("custom factory produced=%d closed=%d, want 1/1", custom.produced, custom.sinks[0].closed)
	}
	if got, want := custom.sinks[0].buf.String(), "routed elsewhere"; got != want {
		t.Fatalf("custom sink captured %q, want %q", got, want)
	}
}

// TestManagerNilRestoresDefault verifies a nil factory re-installs the
// default console-backed factory instead of emptying the slot.
func TestManagerNilRestoresDefault(t *testing.T) {
	t.Parallel()

	s, buf := newTestState()
	m := s.Manager()

	m.SetWarning(&recordingFactory{})
	m.SetWarning(nil)

	e := s.Warning()
	e.Print("back to console")
	_ = e.Close()
	if got, want := buf.String(), "back to console\n"; got != want {
		t.Fatalf("console received %q, want %q", got, want)
	}
}

// TestSinkFactoryFunc verifies the function adapter.
func TestSinkFactoryFunc(t *testing.T) {
	t.Parallel()

	s, _ := newTestState()
	sink := &recordingSink{}
	s.Manager().SetWarning(SinkFactoryFunc(func() Sink { return sink }))

	e := s.Warning()
	e.Print("via func")
	_ = e.Close()

	if got, want := sink.buf.String(), "via func"; got != want {
		t.Fatalf("sink captured %q, want %q", got, want)
	}
	if sink.closed != 1 {
		t.Fatalf("sink closed %d times, want 1", sink.closed)
	}
}
