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

//go:build unix

package tputils

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// InstallSignalHandler arranges for SIGABRT to emit one warning message
// containing the signal number followed by a stack trace, both routed
// through this State's warning path. Repeated calls install at most one
// observer per State.
//
// Go delivers the signal to an ordinary goroutine rather than running a
// handler in async-signal context, which removes most of the classic
// signal-safety hazard of locking inside a handler. Two caveats remain and
// are accepted rather than solved: delivery is asynchronous, so a process
// that exits immediately after raising SIGABRT may terminate before the
// trace is emitted; and the emission takes the State's locks, so a message
// callback that blocks can stall the observer. Best-effort only.
func (s *State) InstallSignalHandler() {
	s.signalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, unix.SIGABRT)
		go func() {
			for sig := range ch {
				num := 0
				if n, ok := sig.(unix.Signal); ok {
					num = int(n)
				}
				e := s.Warning()
				e.Print("Signal caught: ", num)
				_ = e.Close()
				s.PrintStackTrace()
			}
		}()
	})
}

// InstallSignalHandler installs the SIGABRT observer on the Default state.
func InstallSignalHandler() {
	Default().InstallSignalHandler()
}
