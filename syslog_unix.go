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
	"fmt"
	"log/syslog"
	"os"
)

// InstallDefaultMessageHandler installs a message callback that forwards
// finalized messages to the system log, tagged "tputils", with warnings at
// warning priority and debug text at debug priority. If the system log is
// unavailable the current callback configuration is left untouched and a
// note is written to stderr.
func (s *State) InstallDefaultMessageHandler() {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, "tputils")
	if err != nil {
		fmt.Fprintf(os.Stderr, "[tputils] WARNING: system log unavailable: %v\n", err)
		return
	}
	s.InstallMessageHandler(func(category MessageType, text string) {
		switch category {
		case MessageWarning:
			_ = w.Warning(text)
		default:
			_ = w.Debug(text)
		}
	})
}

// InstallDefaultMessageHandler installs the system-log callback on the
// Default state.
func InstallDefaultMessageHandler() {
	Default().InstallDefaultMessageHandler()
}
