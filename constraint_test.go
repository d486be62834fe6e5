// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "testing"

func TestConstraintSlackUnassigned(t *testing.T) {
	l := NewVariable(0, 1)
	r := NewVariable(0, 1)
	c := NewConstraint(l, r, 10)

	if got, want := c.Slack(), -10.0; got != want {
		t.Fatalf("Slack() = %v, want %v", got, want)
	}
	if c.Active() {
		t.Fatal("Active() = true before any merge")
	}
}

func TestNewEqualityConstraint(t *testing.T) {
	l := NewVariable(0, 1)
	r := NewVariable(10, 1)
	c := NewEqualityConstraint(l, r, 2)

	if !c.Equality {
		t.Fatal("Equality = false, want true")
	}
	if got, want := c.Slack(), 8.0; got != want {
		t.Fatalf("Slack() = %v, want %v", got, want)
	}
}
