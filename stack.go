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
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// maxStackFrames bounds how many frames a captured trace may carry.
const maxStackFrames = 64

var stackPCPool = sync.Pool{
	New: func() any {
		buf := make([]uintptr, maxStackFrames)
		return &buf
	},
}

// PrintStackTrace captures the calling goroutine's stack and emits it
// through this State's warning path, so the trace lands wherever warnings
// land: the installed message callback or the console destination.
func (s *State) PrintStackTrace() {
	trace := captureStack(skipInternalStackFrame)
	if trace == "" {
		return
	}
	e := s.Warning()
	e.Print(trace)
	_ = e.Close()
}

// PrintStackTrace captures the calling goroutine's stack and emits it as a
// warning on the Default state.
func PrintStackTrace() {
	Default().PrintStackTrace()
}

// captureStack captures the current goroutine stack, trimming leading
// frames that match skipFn, and returns the formatted trace. An empty
// string means no frames could be captured.
func captureStack(skipFn func(string) bool) string {
	bufPtr := stackPCPool.Get().(*[]uintptr)
	pcs := (*bufPtr)[:cap(*bufPtr)]

	n := runtime.Callers(0, pcs)
	if n == 0 {
		stackPCPool.Put(bufPtr)
		return ""
	}
	pcs = pcs[:n]

	if skipFn == nil {
		skipFn = skipInternalStackFrame
	}
	trimmed := trimStackPCs(pcs, skipFn)
	if len(trimmed) == 0 {
		trimmed = pcs
	}

	stack := formatPCsToStackString(trimmed)
	stackPCPool.Put(bufPtr)
	return stack
}

// formatPCsToStackString formats program counters into a standard Go stack
// trace string, skipping runtime exit frames.
func formatPCsToStackString(pcs []uintptr) string {
	if len(pcs) == 0 {
		return ""
	}

	header := currentGoroutineHeader()

	var sb strings.Builder
	if header != "" {
		sb.Grow(len(header) + len(pcs)*64)
		sb.WriteString(header)
		sb.WriteByte('\n')
	} else {
		sb.Grow(len(pcs) * 64)
	}

	var intBuf [20]byte
	frames := runtime.CallersFrames(pcs)
	frameCount := 0

	for {
		frame, more := frames.Next()

		if frame.PC == 0 {
			break
		}

		if frame.Function == "runtime.goexit" || frame.Function == "" {
			if !more {
				break
			}
			continue
		}

		sb.WriteString(frame.Function)
		sb.WriteByte('\n')
		sb.WriteByte('\t')
		sb.WriteString(frame.File)
		sb.WriteByte(':')

		lineBytes := strconv.AppendInt(intBuf[:0], int64(frame.Line), 10)
		sb.Write(lineBytes)

		if frame.PC != 0 && frame.Entry != 0 {
			var offset uintptr
			if frame.PC >= frame.Entry {
				offset = frame.PC - frame.Entry
			}
			if offset > 0 {
				sb.WriteString(" +0x")
				hexBytes := strconv.AppendUint(intBuf[:0], uint64(offset), 16)
				sb.Write(hexBytes)
			}
		}

		sb.WriteByte('\n')

		frameCount++
		if !more || frameCount >= maxStackFrames {
			break
		}
	}

	return sb.String()
}

// trimStackPCs removes leading frames that match skipFn while preserving
// the remainder.
func trimStackPCs(pcs []uintptr, skipFn func(string) bool) []uintptr {
	skip := 0
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.PC == 0 {
			break
		}
		if !skipFn(frame.Function) {
			break
		}
		skip++
		if !more {
			break
		}
	}
	if skip == 0 {
		return pcs
	}
	if skip >= len(pcs) {
		return nil
	}
	return pcs[skip:]
}

// skipInternalStackFrame reports whether a frame belongs to this library or
// runtime internals and should be hidden from presented traces.
func skipInternalStackFrame(funcName string) bool {
	if funcName == "" {
		return false
	}
	if strings.HasPrefix(funcName, "runtime.") {
		return true
	}
	if strings.HasPrefix(funcName, "github.com/SamAins/tp-utils.") ||
		strings.HasPrefix(funcName, "github.com/SamAins/tp-utils/") {
		return true
	}
	return false
}

// currentGoroutineHeader returns the goroutine header emitted by
// runtime.Stack.
func currentGoroutineHeader() string {
	const fallbackHeader = "goroutine 0 [running]:"

	var buf [128]byte
	n := runtime.Stack(buf[:], false)
	if n <= 0 {
		return fallbackHeader
	}

	header := string(buf[:n])
	if idx := strings.IndexByte(header, '\n'); idx >= 0 {
		header = header[:idx]
	}
	header = strings.TrimSuffix(header, "\r")
	header = strings.TrimSpace(header)
	if header == "" {
		return fallbackHeader
	}
	return header
}
