// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

// Kind is a transistor channel type.
//
type Kind int

// Transistor kinds.
//
const (
	NChannel Kind = iota
	PChannel
)

func (k Kind) String() string {
	if k == PChannel {
		return "PMOS"
	}
	return "NMOS"
}

// Conducts returns true if a transistor of kind k with the given gate and
// source levels connects its drain to its source.
//
// An N-channel transistor conducts when its gate is above its source, a
// P-channel one when its gate is below its source.
//
func Conducts(k Kind, gate, source bool) bool {
	if k == PChannel {
		return !gate && source
	}
	return gate && !source
}

// A Transistor is a pass switch between its Source and Drain terminals,
// controlled by its Gate. When conducting, its drain driver copies the
// resolved state of the source wire; otherwise it is released.
//
// The terminals must be set before elaboration.
//
type Transistor struct {
	Kind   Kind
	Gate   Wire
	Source Wire
	Drain  Wire

	drain Driver
	done  bool
}

// NewNChannel returns an unconnected N-channel transistor.
//
func NewNChannel() *Transistor {
	return &Transistor{Kind: NChannel, Gate: NoWire, Source: NoWire, Drain: NoWire, drain: -1}
}

// NewPChannel returns an unconnected P-channel transistor.
//
func NewPChannel() *Transistor {
	return &Transistor{Kind: PChannel, Gate: NoWire, Source: NoWire, Drain: NoWire, drain: -1}
}

// Name returns "NMOS" or "PMOS".
//
func (t *Transistor) Name() string { return t.Kind.String() }

// Elaborate checks the terminals and allocates the drain driver.
//
func (t *Transistor) Elaborate(nl *Netlist) error {
	if t.done {
		return elabError(t, "", ErrElaborated)
	}
	for _, term := range [...]struct {
		name string
		w    Wire
	}{{"gate", t.Gate}, {"source", t.Source}, {"drain", t.Drain}} {
		if err := CheckTerminal(nl, t, term.name, term.w); err != nil {
			return err
		}
	}
	t.done = true
	t.drain = nl.Connection(t.Drain)
	return nil
}

// Subcomponents returns nil.
//
func (t *Transistor) Subcomponents() []Component { return nil }

// OwnWires returns the gate, source and drain wires.
//
func (t *Transistor) OwnWires() []Wire { return []Wire{t.Gate, t.Source, t.Drain} }

// IsPrimitive returns true.
//
func (t *Transistor) IsPrimitive() bool { return true }

// Evaluate updates the drain driver from the previous round's gate and source
// states.
//
func (t *Transistor) Evaluate(nl *Netlist) {
	if Conducts(t.Kind, nl.Value(t.Gate), nl.Value(t.Source)) {
		nl.Connect(t.drain, t.Source)
	} else {
		nl.Release(t.drain)
	}
}
