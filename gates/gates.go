// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gates provides CMOS logic gates built from switchsim transistors.
//
// Every gate is a composite component. Its terminals are plain wire handles
// that can be reassigned before elaboration in order to connect gates
// together:
//
//	nl := switchsim.NewNetlist()
//	nand := gates.NewNand(nl, 2)
//	not := gates.NewInverter(nl)
//	not.In = nand.Out
//
package gates

import (
	"strconv"

	sw "github.com/db47h/switchsim"
)

// A Part is a component with named input and output terminals.
//
type Part interface {
	sw.Component
	Inputs() []sw.Wire
	Outputs() []sw.Wire
}

func unconnected(n int) []sw.Wire {
	ws := make([]sw.Wire, n)
	for i := range ws {
		ws[i] = sw.NoWire
	}
	return ws
}

func checkTerminals(nl *sw.Netlist, c sw.Component, name string, ws ...sw.Wire) error {
	for i, w := range ws {
		t := name
		if len(ws) > 1 {
			t += "[" + strconv.Itoa(i) + "]"
		}
		if err := sw.CheckTerminal(nl, c, t, w); err != nil {
			return err
		}
	}
	return nil
}

// Inverter is a NOT gate: one P-channel transistor pulls Out up to the
// supply, one N-channel transistor pulls it down to ground.
//
//	Inputs: In
//	Outputs: Out
//	Function: Out = !In
//
type Inverter struct {
	sw.Composite
	In, Out sw.Wire
	p, n    *sw.Transistor
}

func newInverter() *Inverter {
	return &Inverter{
		Composite: sw.Composite{Label: "NOT"},
		In:        sw.NoWire,
		Out:       sw.NoWire,
		p:         sw.NewPChannel(),
		n:         sw.NewNChannel(),
	}
}

// NewInverter returns an inverter with newly allocated In and Out wires.
//
func NewInverter(nl *sw.Netlist) *Inverter {
	g := newInverter()
	g.In, g.Out = nl.NewWire(false), nl.NewWire(false)
	return g
}

// Elaborate connects both transistors to In and Out.
//
func (g *Inverter) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	g.p.Gate, g.p.Source, g.p.Drain = g.In, sw.Supply, g.Out
	g.n.Gate, g.n.Source, g.n.Drain = g.In, sw.Ground, g.Out
	return g.Finish(nl, g.p, g.n)
}

// Subcomponents returns the two transistors.
//
func (g *Inverter) Subcomponents() []sw.Component { return []sw.Component{g.p, g.n} }

// OwnWires returns In and Out.
//
func (g *Inverter) OwnWires() []sw.Wire { return []sw.Wire{g.In, g.Out} }

// Inputs returns In.
//
func (g *Inverter) Inputs() []sw.Wire { return []sw.Wire{g.In} }

// Outputs returns Out.
//
func (g *Inverter) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Nand is an N-input NAND gate: P-channel transistors in parallel between
// the supply and Out, N-channel transistors in series between Out and ground.
//
//	Inputs: In[n]
//	Outputs: Out
//	Function: Out = !(In[0] && In[1] && ... && In[n-1])
//
type Nand struct {
	sw.Composite
	In       []sw.Wire
	Out      sw.Wire
	internal []sw.Wire
	trs      []sw.Component
}

func newNand(n int) *Nand {
	if n < 1 {
		panic("NAND gate with " + strconv.Itoa(n) + " inputs")
	}
	return &Nand{Composite: sw.Composite{Label: "NAND"}, In: unconnected(n), Out: sw.NoWire}
}

// NewNand returns an n-input NAND gate with newly allocated terminals.
// It panics if n < 1.
//
func NewNand(nl *sw.Netlist, n int) *Nand {
	g := newNand(n)
	g.In, g.Out = nl.NewWires(n), nl.NewWire(false)
	return g
}

// Elaborate builds the transistor network.
//
func (g *Nand) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	for _, in := range g.In {
		p := sw.NewPChannel()
		p.Gate, p.Source, p.Drain = in, sw.Supply, g.Out
		g.trs = append(g.trs, p)
	}
	src := sw.Ground
	for i, in := range g.In {
		n := sw.NewNChannel()
		n.Gate, n.Source = in, src
		if i < len(g.In)-1 {
			src = nl.NewWire(false)
			g.internal = append(g.internal, src)
			n.Drain = src
		} else {
			n.Drain = g.Out
		}
		g.trs = append(g.trs, n)
	}
	return g.Finish(nl, g.trs...)
}

// Subcomponents returns the transistors, P-channel ones first.
//
func (g *Nand) Subcomponents() []sw.Component { return g.trs }

// OwnWires returns the inputs, the output and the wires between series
// transistors.
//
func (g *Nand) OwnWires() []sw.Wire { return ownWires(g.In, g.Out, g.internal) }

// Inputs returns In.
//
func (g *Nand) Inputs() []sw.Wire { return g.In }

// Outputs returns Out.
//
func (g *Nand) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Nor is an N-input NOR gate: P-channel transistors in series between the
// supply and Out, N-channel transistors in parallel between Out and ground.
//
//	Inputs: In[n]
//	Outputs: Out
//	Function: Out = !(In[0] || In[1] || ... || In[n-1])
//
type Nor struct {
	sw.Composite
	In       []sw.Wire
	Out      sw.Wire
	internal []sw.Wire
	trs      []sw.Component
}

func newNor(n int) *Nor {
	if n < 1 {
		panic("NOR gate with " + strconv.Itoa(n) + " inputs")
	}
	return &Nor{Composite: sw.Composite{Label: "NOR"}, In: unconnected(n), Out: sw.NoWire}
}

// NewNor returns an n-input NOR gate with newly allocated terminals.
// It panics if n < 1.
//
func NewNor(nl *sw.Netlist, n int) *Nor {
	g := newNor(n)
	g.In, g.Out = nl.NewWires(n), nl.NewWire(false)
	return g
}

// Elaborate builds the transistor network.
//
func (g *Nor) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	src := sw.Supply
	for i, in := range g.In {
		p := sw.NewPChannel()
		p.Gate, p.Source = in, src
		if i < len(g.In)-1 {
			src = nl.NewWire(false)
			g.internal = append(g.internal, src)
			p.Drain = src
		} else {
			p.Drain = g.Out
		}
		g.trs = append(g.trs, p)
	}
	for _, in := range g.In {
		n := sw.NewNChannel()
		n.Gate, n.Source, n.Drain = in, sw.Ground, g.Out
		g.trs = append(g.trs, n)
	}
	return g.Finish(nl, g.trs...)
}

// Subcomponents returns the transistors, P-channel ones first.
//
func (g *Nor) Subcomponents() []sw.Component { return g.trs }

// OwnWires returns the inputs, the output and the wires between series
// transistors.
//
func (g *Nor) OwnWires() []sw.Wire { return ownWires(g.In, g.Out, g.internal) }

// Inputs returns In.
//
func (g *Nor) Inputs() []sw.Wire { return g.In }

// Outputs returns Out.
//
func (g *Nor) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

func ownWires(in []sw.Wire, out sw.Wire, internal []sw.Wire) []sw.Wire {
	ws := make([]sw.Wire, 0, len(in)+len(internal)+1)
	ws = append(ws, in...)
	ws = append(ws, out)
	return append(ws, internal...)
}
