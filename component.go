// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

import "github.com/pkg/errors"

// A Component is a node in a circuit hierarchy.
//
// Elaborate finalizes the component's terminal connections, allocating
// drivers and internal wires in nl, then elaborates each subcomponent exactly
// once. It must be called only once per component.
//
// Evaluate is called once per simulation round on primitive components. It
// must only read resolved wire states and only write the drivers the component
// allocated during elaboration. Composite components implement it as a no-op.
//
type Component interface {
	Name() string
	Elaborate(nl *Netlist) error
	// Subcomponents returns the direct children.
	Subcomponents() []Component
	// OwnWires returns the wires this component itself introduces or uses
	// as terminals, not those of its children.
	OwnWires() []Wire
	IsPrimitive() bool
	Evaluate(nl *Netlist)
}

// Composite provides the bookkeeping shared by components that only wire
// subcomponents together. It is meant to be embedded:
//
//	type Buffer struct {
//		switchsim.Composite
//		In, Out switchsim.Wire
//		a, b    *gates.Inverter
//	}
//
//	func (b *Buffer) Elaborate(nl *switchsim.Netlist) error {
//		if err := b.Begin(); err != nil {
//			return err
//		}
//		mid := nl.NewWire(false)
//		b.a.In, b.a.Out, b.b.In, b.b.Out = b.In, mid, mid, b.Out
//		return b.Finish(nl, b.a, b.b)
//	}
//
type Composite struct {
	Label string
	done  bool
}

// Name returns the component's label.
//
func (c *Composite) Name() string { return c.Label }

// IsPrimitive returns false.
//
func (c *Composite) IsPrimitive() bool { return false }

// Evaluate does nothing.
//
func (c *Composite) Evaluate(*Netlist) {}

// Elaborated returns true once Begin has succeeded.
//
func (c *Composite) Elaborated() bool { return c.done }

// Begin marks the start of elaboration. It returns an ElaborationError if
// the component has already been elaborated.
//
func (c *Composite) Begin() error {
	if c.done {
		return &ElaborationError{Component: c.Label, Err: ErrElaborated}
	}
	c.done = true
	return nil
}

// Finish elaborates subs in order. A composite without subcomponents is an
// elaboration error.
//
func (c *Composite) Finish(nl *Netlist, subs ...Component) error {
	if len(subs) == 0 {
		return &ElaborationError{Component: c.Label, Err: ErrEmptyComposite}
	}
	for _, s := range subs {
		if err := s.Elaborate(nl); err != nil {
			return errors.Wrap(err, c.Label)
		}
	}
	return nil
}

// CheckTerminal returns an ElaborationError if w is not a connected wire of nl.
//
func CheckTerminal(nl *Netlist, c Component, terminal string, w Wire) error {
	if w == NoWire {
		return elabError(c, terminal, ErrUnconnected)
	}
	if !nl.Has(w) {
		return elabError(c, terminal, ErrForeignWire)
	}
	return nil
}

// Walk returns c followed by the depth-first expansion of its subcomponents.
//
func Walk(c Component) []Component {
	var out []Component
	var walk func(Component)
	walk = func(c Component) {
		out = append(out, c)
		for _, s := range c.Subcomponents() {
			walk(s)
		}
	}
	walk(c)
	return out
}

// Wires returns the distinct wires used anywhere in the tree rooted at c,
// in first seen order.
//
func Wires(c Component) []Wire {
	seen := make(map[Wire]struct{})
	var out []Wire
	for _, s := range Walk(c) {
		for _, w := range s.OwnWires() {
			if w == NoWire {
				continue
			}
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				out = append(out, w)
			}
		}
	}
	return out
}

// Primitives returns the components of the tree rooted at c that have
// per-round behavior.
//
func Primitives(c Component) []Component {
	var out []Component
	for _, s := range Walk(c) {
		if s.IsPrimitive() {
			out = append(out, s)
		}
	}
	return out
}
