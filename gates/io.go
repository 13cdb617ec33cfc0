// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sw "github.com/db47h/switchsim"
	"github.com/pkg/errors"
)

// ErrNilFunc is the cause of the ElaborationError returned for an Output
// without a function.
//
var ErrNilFunc = errors.New("nil output function")

// Input is a primitive signal source driving Out from Go code every round.
// It can also be released to leave Out floating, which allows several
// inputs to share a bus.
//
//	Outputs: Out
//	Function: Out = f() or the last value given to Set
//
type Input struct {
	Out sw.Wire
	// Strength is the drive strength, read at elaboration. Defaults to
	// switchsim.Strong.
	Strength int

	f        func() bool
	value    bool
	floating bool
	strength int
	d        sw.Driver
	done     bool
}

// NewInput returns an input driving a newly allocated wire.
//
func NewInput(nl *sw.Netlist) *Input {
	return InputOn(nl.NewWire(false))
}

// InputOn returns an input driving w.
//
func InputOn(w sw.Wire) *Input {
	return &Input{Out: w, Strength: sw.Strong, d: -1}
}

// InputFunc returns an input driving w with the value returned by f.
//
func InputFunc(w sw.Wire, f func() bool) *Input {
	in := InputOn(w)
	in.f = f
	return in
}

// Set drives v from the next round on.
//
func (in *Input) Set(v bool) {
	in.value, in.floating = v, false
}

// Float releases the output from the next round on.
//
func (in *Input) Float() { in.floating = true }

// Value returns the value set by the last call to Set.
//
func (in *Input) Value() bool { return in.value }

// Name returns "IN".
//
func (in *Input) Name() string { return "IN" }

// Elaborate allocates the output driver.
//
func (in *Input) Elaborate(nl *sw.Netlist) error {
	if in.done {
		return &sw.ElaborationError{Component: in.Name(), Err: sw.ErrElaborated}
	}
	if err := sw.CheckTerminal(nl, in, "out", in.Out); err != nil {
		return err
	}
	in.done = true
	in.d = nl.Connection(in.Out)
	if err := nl.Drive(in.d, false, in.Strength); err != nil {
		return &sw.ElaborationError{Component: in.Name(), Err: err}
	}
	nl.Release(in.d)
	in.strength = in.Strength
	return nil
}

// Subcomponents returns nil.
//
func (in *Input) Subcomponents() []sw.Component { return nil }

// OwnWires returns Out.
//
func (in *Input) OwnWires() []sw.Wire { return []sw.Wire{in.Out} }

// IsPrimitive returns true.
//
func (in *Input) IsPrimitive() bool { return true }

// Evaluate drives the output.
//
func (in *Input) Evaluate(nl *sw.Netlist) {
	if in.floating {
		nl.Release(in.d)
		return
	}
	v := in.value
	if in.f != nil {
		v = in.f()
	}
	nl.Force(in.d, v, in.strength)
}

// Inputs returns nil.
//
func (in *Input) Inputs() []sw.Wire { return nil }

// Outputs returns Out.
//
func (in *Input) Outputs() []sw.Wire { return []sw.Wire{in.Out} }

// Pull is a resistor weakly pulling a wire to a fixed level. Any explicit
// drive overrides it.
//
type Pull struct {
	W     sw.Wire
	Level bool

	d    sw.Driver
	done bool
}

// PullUp returns a pull-up resistor on w.
//
func PullUp(w sw.Wire) *Pull { return &Pull{W: w, Level: true, d: -1} }

// PullDown returns a pull-down resistor on w.
//
func PullDown(w sw.Wire) *Pull { return &Pull{W: w, d: -1} }

// Name returns "PULLUP" or "PULLDOWN".
//
func (p *Pull) Name() string {
	if p.Level {
		return "PULLUP"
	}
	return "PULLDOWN"
}

// Elaborate allocates the driver.
//
func (p *Pull) Elaborate(nl *sw.Netlist) error {
	if p.done {
		return &sw.ElaborationError{Component: p.Name(), Err: sw.ErrElaborated}
	}
	if err := sw.CheckTerminal(nl, p, "w", p.W); err != nil {
		return err
	}
	p.done = true
	p.d = nl.Connection(p.W)
	return nil
}

// Subcomponents returns nil.
//
func (p *Pull) Subcomponents() []sw.Component { return nil }

// OwnWires returns W.
//
func (p *Pull) OwnWires() []sw.Wire { return []sw.Wire{p.W} }

// IsPrimitive returns true.
//
func (p *Pull) IsPrimitive() bool { return true }

// Evaluate pulls W to Level.
//
func (p *Pull) Evaluate(nl *sw.Netlist) { nl.Pull(p.d, p.Level) }

// Output is a primitive sink calling a function with the state of In every
// round. The function sees the state resolved at the end of the previous
// round and may be called from a worker goroutine.
//
//	Inputs: In
//
type Output struct {
	In   sw.Wire
	f    func(sw.WireState)
	done bool
}

// OutputFunc returns an output calling f with the state of w. f must not be
// nil.
//
func OutputFunc(w sw.Wire, f func(sw.WireState)) *Output {
	return &Output{In: w, f: f}
}

// Name returns "OUT".
//
func (o *Output) Name() string { return "OUT" }

// Elaborate checks the input terminal and the output function.
//
func (o *Output) Elaborate(nl *sw.Netlist) error {
	if o.done {
		return &sw.ElaborationError{Component: o.Name(), Err: sw.ErrElaborated}
	}
	if err := sw.CheckTerminal(nl, o, "in", o.In); err != nil {
		return err
	}
	if o.f == nil {
		return &sw.ElaborationError{Component: o.Name(), Err: ErrNilFunc}
	}
	o.done = true
	return nil
}

// Subcomponents returns nil.
//
func (o *Output) Subcomponents() []sw.Component { return nil }

// OwnWires returns In.
//
func (o *Output) OwnWires() []sw.Wire { return []sw.Wire{o.In} }

// IsPrimitive returns true.
//
func (o *Output) IsPrimitive() bool { return true }

// Evaluate calls the output function.
//
func (o *Output) Evaluate(nl *sw.Netlist) { o.f(nl.State(o.In)) }

// Inputs returns In.
//
func (o *Output) Inputs() []sw.Wire { return []sw.Wire{o.In} }

// Outputs returns nil.
//
func (o *Output) Outputs() []sw.Wire { return nil }
