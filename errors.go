// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Causes wrapped by ElaborationError.
//
var (
	ErrElaborated     = errors.New("already elaborated")
	ErrUnconnected    = errors.New("terminal not connected")
	ErrEmptyComposite = errors.New("composite component has no subcomponents")
	ErrForeignWire    = errors.New("wire does not belong to this netlist")
)

// An ElaborationError is returned when a component tree cannot be turned into
// a netlist. Simulation must not proceed.
//
type ElaborationError struct {
	Component string
	Terminal  string // empty unless Err is ErrUnconnected or ErrForeignWire
	Err       error
}

func (e *ElaborationError) Error() string {
	var b strings.Builder
	b.WriteString("elaborate ")
	b.WriteString(e.Component)
	if e.Terminal != "" {
		b.WriteRune('.')
		b.WriteString(e.Terminal)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap returns the underlying error.
//
func (e *ElaborationError) Unwrap() error { return e.Err }

// A ContentionError reports wires on which two drivers of equal, maximum
// strength disagree after the circuit has settled. The wires still hold the
// value of the first registered driver.
//
type ContentionError struct {
	Wires []Wire
}

func (e *ContentionError) Error() string {
	return "driver contention on " + wireList(e.Wires)
}

// A NonConvergenceError is returned when the round limit is reached while
// the circuit is still changing.
//
type NonConvergenceError struct {
	Rounds  int
	Changed []Wire // wires that changed in the last round
	States  map[Wire]WireState
}

func (e *NonConvergenceError) Error() string {
	return "circuit did not settle after " + strconv.Itoa(e.Rounds) + " rounds; still changing: " + wireList(e.Changed)
}

// An InvalidStrengthError is returned by Netlist.Drive for strengths below HiZ.
//
type InvalidStrengthError struct {
	Driver   Driver
	Strength int
}

func (e *InvalidStrengthError) Error() string {
	return "invalid drive strength " + strconv.Itoa(e.Strength) + " for driver " + strconv.Itoa(int(e.Driver))
}

func wireList(ws []Wire) string {
	ws = append([]Wire(nil), ws...)
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
	var b strings.Builder
	for i, w := range ws {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(w.String())
	}
	return b.String()
}

func elabError(c Component, terminal string, err error) error {
	return &ElaborationError{Component: c.Name(), Terminal: terminal, Err: err}
}
