// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

// A Group is a composite that only holds other components, typically the
// parts of a test bench and the inputs driving them.
//
type Group struct {
	Composite
	Parts []Component
}

// NewGroup returns a group of the given parts.
//
func NewGroup(name string, parts ...Component) *Group {
	return &Group{Composite: Composite{Label: name}, Parts: parts}
}

// Elaborate elaborates every part.
//
func (g *Group) Elaborate(nl *Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	return g.Finish(nl, g.Parts...)
}

// Subcomponents returns the parts.
//
func (g *Group) Subcomponents() []Component { return g.Parts }

// OwnWires returns nil.
//
func (g *Group) OwnWires() []Wire { return nil }
