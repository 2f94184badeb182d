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

// MessageType identifies which of the two fixed diagnostic categories a
// finalized message belongs to.
type MessageType int

const (
	// MessageWarning marks text produced through the warning path.
	MessageWarning MessageType = iota
	// MessageDebug marks text produced through the debug path.
	MessageDebug
)

// String returns the lowercase name of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageWarning:
		return "warning"
	case MessageDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// DebugType selects which channel a DebugMode gate governs. Console gates
// guard ordinary streamed debug output; Table gates guard large blobs
// delivered whole through the table callback.
type DebugType int

const (
	// DebugTypeConsole is the default channel for streamed debug output.
	DebugTypeConsole DebugType = iota
	// DebugTypeTable is the channel for large single-chunk table payloads.
	DebugTypeTable
)

// String returns the lowercase name of the debug type.
func (t DebugType) String() string {
	switch t {
	case DebugTypeConsole:
		return "console"
	case DebugTypeTable:
		return "table"
	default:
		return "unknown"
	}
}

// MessageCallback receives the finalized text of every flushed emission,
// tagged with its category. At most one is installed per State; installing a
// new one replaces the old.
//
// The callback is invoked while the State's shared lock is held so that no
// flush can observe a callback mid-replacement. It must therefore not call
// back into the owning State (installing handlers, constructing or toggling
// DebugMode gates) or it will deadlock.
type MessageCallback func(category MessageType, text string)

// TableCallback receives large table payloads from enabled DebugMode gates.
// The same single-installation and re-entrancy rules as MessageCallback
// apply.
type TableCallback func(scopePath string, debugType DebugType, table string)
