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
	"strings"
	"sync"
)

// Emission is the scoped wrapper call sites use to build one diagnostic
// message. It owns exactly one Sink, obtained from a Manager at
// construction, accumulates streamed writes, and finalizes the sink exactly
// once on Close regardless of how many operations were streamed in.
//
// The usual shape mirrors a scoped stream:
//
//	e := tputils.Warning()
//	defer e.Close()
//	e.Print("loaded ", n, " entries")
//
// Emission must not be copied; ownership of the sink is exclusive, and a
// copy would produce two finalizers for one logical message.
type Emission struct {
	sink      Sink
	closeOnce sync.Once
	closeErr  error
}

// NewEmission wraps sink in an Emission, taking ownership of it. The sink
// must not be closed or written to by anyone else afterwards.
func NewEmission(sink Sink) *Emission {
	return &Emission{sink: sink}
}

// Warning starts a warning emission backed by this State's Manager.
func (s *State) Warning() *Emission {
	return NewEmission(s.manager.ProduceWarning())
}

// Debug starts a debug emission backed by this State's Manager.
func (s *State) Debug() *Emission {
	return NewEmission(s.manager.ProduceDebug())
}

// Write streams raw bytes into the owned sink.
func (e *Emission) Write(p []byte) (int, error) {
	return e.sink.Write(p)
}

// Print streams its operands into the message the way fmt.Print would and
// returns the Emission for chaining.
func (e *Emission) Print(args ...any) *Emission {
	fmt.Fprint(e.sink, args...)
	return e
}

// Printf streams a formatted operand into the message and returns the
// Emission for chaining.
func (e *Emission) Printf(format string, args ...any) *Emission {
	fmt.Fprintf(e.sink, format, args...)
	return e
}

// Close finalizes the owned sink: the message gains its trailing line
// terminator and is delivered to the installed callback or the console
// destination. Only the first call has any effect; later calls return the
// first call's error. Writes after Close are discarded.
func (e *Emission) Close() error {
	e.closeOnce.Do(func() {
		e.closeErr = e.sink.Close()
	})
	return e.closeErr
}

// Warning starts a warning emission on the Default state.
func Warning() *Emission { return Default().Warning() }

// Debug starts a debug emission on the Default state.
func Debug() *Emission { return Default().Debug() }

// Warningf emits one complete formatted warning message: produce, write,
// finalize.
func Warningf(format string, args ...any) {
	e := Warning()
	e.Printf(format, args...)
	_ = e.Close()
}

// Debugf emits one complete formatted debug message.
func Debugf(format string, args ...any) {
	e := Debug()
	e.Printf(format, args...)
	_ = e.Close()
}

// Seq renders a slice as "( item item … )" for inclusion in diagnostic
// messages. An empty slice renders as "( )".
func Seq[T any](items []T) string {
	var sb strings.Builder
	sb.WriteString("( ")
	for _, item := range items {
		fmt.Fprint(&sb, item)
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
	return sb.String()
}
