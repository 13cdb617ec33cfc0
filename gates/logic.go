// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sw "github.com/db47h/switchsim"
)

// And is an N-input AND gate: a NAND gate followed by an inverter.
//
//	Inputs: In[n]
//	Outputs: Out
//	Function: Out = In[0] && In[1] && ... && In[n-1]
//
type And struct {
	sw.Composite
	In   []sw.Wire
	Out  sw.Wire
	nand *Nand
	not  *Inverter
	mid  sw.Wire
}

func newAnd(n int) *And {
	return &And{Composite: sw.Composite{Label: "AND"}, In: unconnected(n), Out: sw.NoWire, nand: newNand(n), not: newInverter(), mid: sw.NoWire}
}

// NewAnd returns an n-input AND gate with newly allocated terminals.
// It panics if n < 1.
//
func NewAnd(nl *sw.Netlist, n int) *And {
	g := newAnd(n)
	g.In, g.Out = nl.NewWires(n), nl.NewWire(false)
	return g
}

// Elaborate wires the NAND gate into the inverter.
//
func (g *And) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	g.mid = nl.NewWire(false)
	g.nand.In, g.nand.Out = g.In, g.mid
	g.not.In, g.not.Out = g.mid, g.Out
	return g.Finish(nl, g.nand, g.not)
}

// Subcomponents returns the NAND gate and the inverter.
//
func (g *And) Subcomponents() []sw.Component { return []sw.Component{g.nand, g.not} }

// OwnWires returns the inputs, the output and the wire between both gates.
//
func (g *And) OwnWires() []sw.Wire { return ownWires(g.In, g.Out, []sw.Wire{g.mid}) }

// Inputs returns In.
//
func (g *And) Inputs() []sw.Wire { return g.In }

// Outputs returns Out.
//
func (g *And) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Or is an N-input OR gate: a NOR gate followed by an inverter.
//
//	Inputs: In[n]
//	Outputs: Out
//	Function: Out = In[0] || In[1] || ... || In[n-1]
//
type Or struct {
	sw.Composite
	In  []sw.Wire
	Out sw.Wire
	nor *Nor
	not *Inverter
	mid sw.Wire
}

func newOr(n int) *Or {
	return &Or{Composite: sw.Composite{Label: "OR"}, In: unconnected(n), Out: sw.NoWire, nor: newNor(n), not: newInverter(), mid: sw.NoWire}
}

// NewOr returns an n-input OR gate with newly allocated terminals.
// It panics if n < 1.
//
func NewOr(nl *sw.Netlist, n int) *Or {
	g := newOr(n)
	g.In, g.Out = nl.NewWires(n), nl.NewWire(false)
	return g
}

// Elaborate wires the NOR gate into the inverter.
//
func (g *Or) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	g.mid = nl.NewWire(false)
	g.nor.In, g.nor.Out = g.In, g.mid
	g.not.In, g.not.Out = g.mid, g.Out
	return g.Finish(nl, g.nor, g.not)
}

// Subcomponents returns the NOR gate and the inverter.
//
func (g *Or) Subcomponents() []sw.Component { return []sw.Component{g.nor, g.not} }

// OwnWires returns the inputs, the output and the wire between both gates.
//
func (g *Or) OwnWires() []sw.Wire { return ownWires(g.In, g.Out, []sw.Wire{g.mid}) }

// Inputs returns In.
//
func (g *Or) Inputs() []sw.Wire { return g.In }

// Outputs returns Out.
//
func (g *Or) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Xor is a 2-input XOR gate built as AND(OR(a, b), NAND(a, b)).
//
//	Inputs: A, B
//	Outputs: Out
//	Function: Out = A && !B || !A && B
//
type Xor struct {
	sw.Composite
	A, B, Out sw.Wire
	or        *Or
	nand      *Nand
	and       *And
	orAB      sw.Wire
	nandAB    sw.Wire
}

func newXor() *Xor {
	return &Xor{
		Composite: sw.Composite{Label: "XOR"},
		A:         sw.NoWire,
		B:         sw.NoWire,
		Out:       sw.NoWire,
		or:        newOr(2),
		nand:      newNand(2),
		and:       newAnd(2),
		orAB:      sw.NoWire,
		nandAB:    sw.NoWire,
	}
}

// NewXor returns a XOR gate with newly allocated terminals.
//
func NewXor(nl *sw.Netlist) *Xor {
	g := newXor()
	g.A, g.B, g.Out = nl.NewWire(false), nl.NewWire(false), nl.NewWire(false)
	return g
}

// Elaborate wires the OR and NAND gates into the AND gate.
//
func (g *Xor) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkPins(nl, g, g.A, g.B, g.Out); err != nil {
		return err
	}
	g.orAB, g.nandAB = nl.NewWire(false), nl.NewWire(false)
	g.or.In, g.or.Out = []sw.Wire{g.A, g.B}, g.orAB
	g.nand.In, g.nand.Out = []sw.Wire{g.A, g.B}, g.nandAB
	g.and.In, g.and.Out = []sw.Wire{g.orAB, g.nandAB}, g.Out
	return g.Finish(nl, g.or, g.nand, g.and)
}

// Subcomponents returns the OR, NAND and AND gates.
//
func (g *Xor) Subcomponents() []sw.Component { return []sw.Component{g.or, g.nand, g.and} }

// OwnWires returns A, B, Out and the two intermediate wires.
//
func (g *Xor) OwnWires() []sw.Wire { return []sw.Wire{g.A, g.B, g.Out, g.orAB, g.nandAB} }

// Inputs returns A and B.
//
func (g *Xor) Inputs() []sw.Wire { return []sw.Wire{g.A, g.B} }

// Outputs returns Out.
//
func (g *Xor) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Xnor is a 2-input XNOR gate: a XOR gate followed by an inverter.
//
//	Inputs: A, B
//	Outputs: Out
//	Function: Out = A && B || !A && !B
//
type Xnor struct {
	sw.Composite
	A, B, Out sw.Wire
	xor       *Xor
	not       *Inverter
	mid       sw.Wire
}

// NewXnor returns a XNOR gate with newly allocated terminals.
//
func NewXnor(nl *sw.Netlist) *Xnor {
	return &Xnor{
		Composite: sw.Composite{Label: "XNOR"},
		A:         nl.NewWire(false),
		B:         nl.NewWire(false),
		Out:       nl.NewWire(false),
		xor:       newXor(),
		not:       newInverter(),
		mid:       sw.NoWire,
	}
}

// Elaborate wires the XOR gate into the inverter.
//
func (g *Xnor) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkPins(nl, g, g.A, g.B, g.Out); err != nil {
		return err
	}
	g.mid = nl.NewWire(false)
	g.xor.A, g.xor.B, g.xor.Out = g.A, g.B, g.mid
	g.not.In, g.not.Out = g.mid, g.Out
	return g.Finish(nl, g.xor, g.not)
}

// Subcomponents returns the XOR gate and the inverter.
//
func (g *Xnor) Subcomponents() []sw.Component { return []sw.Component{g.xor, g.not} }

// OwnWires returns A, B, Out and the wire between both gates.
//
func (g *Xnor) OwnWires() []sw.Wire { return []sw.Wire{g.A, g.B, g.Out, g.mid} }

// Inputs returns A and B.
//
func (g *Xnor) Inputs() []sw.Wire { return []sw.Wire{g.A, g.B} }

// Outputs returns Out.
//
func (g *Xnor) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Buffer is two inverters in series.
//
//	Inputs: In
//	Outputs: Out
//	Function: Out = In
//
type Buffer struct {
	sw.Composite
	In, Out sw.Wire
	a, b    *Inverter
	mid     sw.Wire
}

// NewBuffer returns a buffer with newly allocated terminals.
//
func NewBuffer(nl *sw.Netlist) *Buffer {
	return &Buffer{
		Composite: sw.Composite{Label: "BUF"},
		In:        nl.NewWire(false),
		Out:       nl.NewWire(false),
		a:         newInverter(),
		b:         newInverter(),
		mid:       sw.NoWire,
	}
}

// Elaborate chains both inverters.
//
func (g *Buffer) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	g.mid = nl.NewWire(false)
	g.a.In, g.a.Out = g.In, g.mid
	g.b.In, g.b.Out = g.mid, g.Out
	return g.Finish(nl, g.a, g.b)
}

// Subcomponents returns both inverters.
//
func (g *Buffer) Subcomponents() []sw.Component { return []sw.Component{g.a, g.b} }

// OwnWires returns In, Out and the wire between both inverters.
//
func (g *Buffer) OwnWires() []sw.Wire { return []sw.Wire{g.In, g.Out, g.mid} }

// Inputs returns In.
//
func (g *Buffer) Inputs() []sw.Wire { return []sw.Wire{g.In} }

// Outputs returns Out.
//
func (g *Buffer) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

func checkPins(nl *sw.Netlist, c sw.Component, a, b, out sw.Wire) error {
	for _, t := range [...]struct {
		name string
		w    sw.Wire
	}{{"a", a}, {"b", b}, {"out", out}} {
		if err := sw.CheckTerminal(nl, c, t.name, t.w); err != nil {
			return err
		}
	}
	return nil
}
