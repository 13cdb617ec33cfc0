// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

import (
	"math"
	"strconv"
)

// Drive strengths.
//
const (
	// HiZ is the strength of a released driver. A wire with no driver above
	// HiZ floats at its bias value.
	HiZ = -1
	// Weak is the strength of a pull resistor.
	Weak = 0
	// Strong is the default strength of an explicit drive.
	Strong = 1
	// RailStrength is the fixed strength of the Ground and Supply rails.
	RailStrength = math.MaxInt32
)

// A Wire is a handle to an electrical node in a Netlist.
//
type Wire int

// NoWire is the handle of an unconnected terminal.
//
const NoWire Wire = -1

// Rails. Every Netlist pre-allocates them.
//
const (
	Ground Wire = iota
	Supply
	railCount
)

func (w Wire) String() string {
	switch w {
	case NoWire:
		return "<nc>"
	case Ground:
		return "GND"
	case Supply:
		return "VCC"
	}
	return "w" + strconv.Itoa(int(w))
}

// A Driver is a handle to one source of value and strength on a Wire. The
// wire owns its storage, the component that got it from Connection writes it.
//
type Driver int

// WireState is the resolved state of a wire.
//
type WireState struct {
	Value    bool
	Strength int
}

// IsHiZ returns true if no driver is actively driving the wire.
//
func (s WireState) IsHiZ() bool { return s.Strength < 0 }

func (s WireState) String() string {
	v := "0"
	if s.Value {
		v = "1"
	}
	switch {
	case s.Strength < 0:
		return v + "(z)"
	case s.Strength >= RailStrength:
		return v + "(rail)"
	}
	return v + "(" + strconv.Itoa(s.Strength) + ")"
}

type wire struct {
	WireState
	bias    bool
	rail    bool
	drivers []Driver
}

type driver struct {
	value    bool
	strength int
	w        Wire
}

// Netlist is the flat storage for all wires and drivers of a circuit.
// Components reference wires and drivers by handle only.
//
type Netlist struct {
	wires   []wire
	drivers []driver
	frozen  bool
}

// NewNetlist returns a new empty netlist with the Ground and Supply rails
// already allocated.
//
func NewNetlist() *Netlist {
	nl := &Netlist{wires: make([]wire, railCount, 64)}
	nl.wires[Ground] = wire{WireState: WireState{false, RailStrength}, rail: true}
	nl.wires[Supply] = wire{WireState: WireState{true, RailStrength}, rail: true, bias: true}
	return nl
}

// NewWire allocates a new floating wire with the given bias.
//
func (nl *Netlist) NewWire(bias bool) Wire {
	w := Wire(len(nl.wires))
	nl.wires = append(nl.wires, wire{WireState: WireState{bias, HiZ}, bias: bias})
	return w
}

// NewWires allocates n floating wires biased low.
//
func (nl *Netlist) NewWires(n int) []Wire {
	ws := make([]Wire, n)
	for i := range ws {
		ws[i] = nl.NewWire(false)
	}
	return ws
}

// Len returns the number of wires in the netlist, rails included.
//
func (nl *Netlist) Len() int { return len(nl.wires) }

// Has returns true if w is a wire of nl.
//
func (nl *Netlist) Has(w Wire) bool { return w >= 0 && int(w) < len(nl.wires) }

// Connection allocates a new released driver on w and registers it.
// Connection panics once a Circuit has been built on nl: the topology is fixed
// before simulation starts.
//
func (nl *Netlist) Connection(w Wire) Driver {
	if nl.frozen {
		panic("connection to " + w.String() + " after elaboration")
	}
	if !nl.Has(w) {
		panic("connection to unknown wire " + w.String())
	}
	d := Driver(len(nl.drivers))
	nl.drivers = append(nl.drivers, driver{strength: HiZ, w: w})
	nl.wires[w].drivers = append(nl.wires[w].drivers, d)
	return d
}

// Drive sets the value and strength of driver d.
//
func (nl *Netlist) Drive(d Driver, value bool, strength int) error {
	if strength < HiZ {
		return &InvalidStrengthError{Driver: d, Strength: strength}
	}
	nl.Force(d, value, strength)
	return nil
}

// Force sets the value and strength of driver d like Drive. A strength below
// HiZ releases the driver.
//
func (nl *Netlist) Force(d Driver, value bool, strength int) {
	if strength < HiZ {
		value, strength = false, HiZ
	}
	p := &nl.drivers[d]
	p.value, p.strength = value, strength
}

// Pull drives d weakly.
//
func (nl *Netlist) Pull(d Driver, value bool) {
	p := &nl.drivers[d]
	p.value, p.strength = value, Weak
}

// Release stops driving d.
//
func (nl *Netlist) Release(d Driver) {
	p := &nl.drivers[d]
	p.value, p.strength = false, HiZ
}

// Connect makes d adopt the currently resolved state of w.
//
func (nl *Netlist) Connect(d Driver, w Wire) {
	p, s := &nl.drivers[d], nl.wires[w].WireState
	p.value, p.strength = s.Value, s.Strength
}

// Driving returns the current value and strength of driver d.
//
func (nl *Netlist) Driving(d Driver) (value bool, strength int) {
	p := nl.drivers[d]
	return p.value, p.strength
}

// Drivers returns the drivers of w in registration order.
//
func (nl *Netlist) Drivers(w Wire) []Driver { return nl.wires[w].drivers }

// Value returns the resolved value of w.
//
func (nl *Netlist) Value(w Wire) bool { return nl.wires[w].Value }

// Strength returns the resolved strength of w.
//
func (nl *Netlist) Strength(w Wire) int { return nl.wires[w].Strength }

// IsHiZ returns true if w is not driven.
//
func (nl *Netlist) IsHiZ(w Wire) bool { return nl.wires[w].Strength < 0 }

// Bias returns the default value of w.
//
func (nl *Netlist) Bias(w Wire) bool { return nl.wires[w].bias }

// IsRail returns true if w is Ground, Supply or any other fixed wire.
//
func (nl *Netlist) IsRail(w Wire) bool { return nl.wires[w].rail }

// State returns the resolved state of w.
//
func (nl *Netlist) State(w Wire) WireState { return nl.wires[w].WireState }

// Commit resolves w from its drivers. It reports whether the resolved state
// changed and whether two drivers at the winning strength disagree.
//
// Released drivers never take part. Among the strongest drivers, the first
// registered one supplies the value. Rails never change.
//
func (nl *Netlist) Commit(w Wire) (changed, contention bool) {
	p := &nl.wires[w]
	if p.rail {
		return false, false
	}
	s := resolve(p.bias, p.drivers, nl.drivers, &contention)
	changed = s != p.WireState
	p.WireState = s
	return changed, contention
}

func resolve(bias bool, ds []Driver, drivers []driver, contention *bool) WireState {
	best := WireState{bias, HiZ}
	for _, d := range ds {
		dr := &drivers[d]
		switch {
		case dr.strength < best.Strength || dr.strength == HiZ:
		case dr.strength > best.Strength:
			best = WireState{dr.value, dr.strength}
			*contention = false
		case dr.value != best.Value:
			*contention = true
		}
	}
	return best
}

func (nl *Netlist) freeze() { nl.frozen = true }
