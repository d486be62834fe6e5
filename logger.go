// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import (
	"fmt"
	"io"
)

// LogLevel controls the frequency and type of Logger output.
type LogLevel int

const (
	// LogNoop no output is generated.
	LogNoop LogLevel = -1
	// LogEval print IncSolver's merges over violated constraints and its
	// unsatisfiable flags.
	LogEval LogLevel = 0
	// LogTrace additionally print every batch merge, equality activation
	// and block split (with the split edge's Lagrange multiplier).
	LogTrace LogLevel = 1
)

// Logger handles diagnostic output for Solver and IncSolver.
// The writer must be safe to write to from a single goroutine (the
// solver never logs concurrently, but a shared writer may be used
// across multiple solver instances by the caller).
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func (l *Logger) enable(level LogLevel) bool {
	return l != nil && l.Out != nil && l.Level >= level
}

func (l *Logger) log(format string, a ...any) {
	if len(a) > 0 {
		_, _ = fmt.Fprintf(l.Out, format, a...)
	} else {
		_, _ = fmt.Fprint(l.Out, format)
	}
}
