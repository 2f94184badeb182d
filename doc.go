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

// Package tputils is a process-wide diagnostic message routing core.
// Arbitrary code points emit warning and debug messages and large table
// blobs; pluggable sink factories decide how each message is materialized;
// and named debug scopes can be enabled or disabled at runtime without
// recompilation or restart, including scopes whose gates already exist.
//
// # Emitting messages
//
// An [Emission] is the unit call sites work with: it owns one [Sink]
// produced by the [Manager], accumulates streamed writes, and finalizes the
// message exactly once on Close, appending the trailing line terminator:
//
//	e := tputils.Warning()
//	defer e.Close()
//	e.Print("unexpected cache miss for ", key)
//
// One-shot helpers cover the common case:
//
//	tputils.Warningf("unexpected cache miss for %q", key)
//
// Finalized text goes to the installed [MessageCallback] when one exists,
// otherwise to a default console stream.
//
// # Gating debug work
//
// A [DebugMode] binds a call site to a named scope. The gate test is a
// single atomic load, so disabled scopes cost almost nothing:
//
//	dm := tputils.NewDebugMode("render.pipeline", tputils.DebugTypeConsole)
//	defer dm.Close()
//	...
//	if dm.Enabled() {
//	    tputils.Debugf("pass %d: %s", i, tputils.Seq(batches))
//	}
//
// Operators flip scopes live with [SetDebugModeEnabled]; the change reaches
// every existing gate for that scope before the call returns, and the
// sticky registry pre-arms gates constructed later. A [ScopeConfig] file
// applies the same toggles at boot.
//
// # State and test isolation
//
// All of the above lives on a [State]: callbacks, scope registry, live
// gates, the console destination, and the sink-factory [Manager]. The
// package-level functions operate on the shared instance from [Default];
// tests build isolated instances with [NewState] and capture fallback
// output via [WithConsoleWriter].
//
// # Subpackages
//
//   - [github.com/SamAins/tp-utils/fileutil] offers best-effort file
//     helpers with an injectable platform strategy.
//   - [github.com/SamAins/tp-utils/jsonutil] offers best-effort JSON file
//     helpers built on gjson/sjson.
package tputils
