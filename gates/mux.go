// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	sw "github.com/db47h/switchsim"
)

// TGate is a transmission gate: an N-channel and a P-channel transistor in
// parallel between In and Out, with complementary gates. An N-channel switch
// only passes a low source and a P-channel one a high source; together they
// pass both levels.
//
//	Inputs: In, En, EnN
//	Outputs: Out
//	Function: if En && !EnN { Out = In } else { Out floats }
//
type TGate struct {
	sw.Composite
	In, En, EnN, Out sw.Wire
	n, p             *sw.Transistor
}

func newTGate() *TGate {
	return &TGate{
		Composite: sw.Composite{Label: "TGATE"},
		In:        sw.NoWire,
		En:        sw.NoWire,
		EnN:       sw.NoWire,
		Out:       sw.NoWire,
		n:         sw.NewNChannel(),
		p:         sw.NewPChannel(),
	}
}

// NewTGate returns a transmission gate with newly allocated terminals.
//
func NewTGate(nl *sw.Netlist) *TGate {
	g := newTGate()
	ws := nl.NewWires(4)
	g.In, g.En, g.EnN, g.Out = ws[0], ws[1], ws[2], ws[3]
	return g
}

// Elaborate connects both switches.
//
func (g *TGate) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "en", g.En, g.EnN); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out); err != nil {
		return err
	}
	g.n.Gate, g.n.Source, g.n.Drain = g.En, g.In, g.Out
	g.p.Gate, g.p.Source, g.p.Drain = g.EnN, g.In, g.Out
	return g.Finish(nl, g.n, g.p)
}

// Subcomponents returns both transistors.
//
func (g *TGate) Subcomponents() []sw.Component { return []sw.Component{g.n, g.p} }

// OwnWires returns In, En, EnN and Out.
//
func (g *TGate) OwnWires() []sw.Wire { return []sw.Wire{g.In, g.En, g.EnN, g.Out} }

// Inputs returns In, En and EnN.
//
func (g *TGate) Inputs() []sw.Wire { return []sw.Wire{g.In, g.En, g.EnN} }

// Outputs returns Out.
//
func (g *TGate) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// Mux is a multiplexer made of two transmission gates sharing their output.
//
//	Inputs: A, B, Sel
//	Outputs: Out
//	Function: if Sel { Out = B } else { Out = A }
//
type Mux struct {
	sw.Composite
	A, B, Sel, Out sw.Wire
	not            *Inverter
	ta, tb         *TGate
	selN           sw.Wire
}

// NewMux returns a multiplexer with newly allocated terminals.
//
func NewMux(nl *sw.Netlist) *Mux {
	ws := nl.NewWires(4)
	return &Mux{
		Composite: sw.Composite{Label: "MUX"},
		A:         ws[0],
		B:         ws[1],
		Sel:       ws[2],
		Out:       ws[3],
		not:       newInverter(),
		ta:        newTGate(),
		tb:        newTGate(),
		selN:      sw.NoWire,
	}
}

// Elaborate enables one transmission gate per value of Sel.
//
func (g *Mux) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkPins(nl, g, g.A, g.B, g.Out); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "sel", g.Sel); err != nil {
		return err
	}
	g.selN = nl.NewWire(false)
	g.not.In, g.not.Out = g.Sel, g.selN
	g.ta.In, g.ta.En, g.ta.EnN, g.ta.Out = g.A, g.selN, g.Sel, g.Out
	g.tb.In, g.tb.En, g.tb.EnN, g.tb.Out = g.B, g.Sel, g.selN, g.Out
	return g.Finish(nl, g.not, g.ta, g.tb)
}

// Subcomponents returns the inverter and both transmission gates.
//
func (g *Mux) Subcomponents() []sw.Component { return []sw.Component{g.not, g.ta, g.tb} }

// OwnWires returns A, B, Sel, Out and the inverted selector.
//
func (g *Mux) OwnWires() []sw.Wire { return []sw.Wire{g.A, g.B, g.Sel, g.Out, g.selN} }

// Inputs returns A, B and Sel.
//
func (g *Mux) Inputs() []sw.Wire { return []sw.Wire{g.A, g.B, g.Sel} }

// Outputs returns Out.
//
func (g *Mux) Outputs() []sw.Wire { return []sw.Wire{g.Out} }

// DMux is a demultiplexer.
//
//	Inputs: In, Sel
//	Outputs: A, B
//	Function: if Sel { A = 0; B = In } else { A = In; B = 0 }
//
type DMux struct {
	sw.Composite
	In, Sel, A, B sw.Wire
	not           *Inverter
	a, b          *And
	selN          sw.Wire
}

// NewDMux returns a demultiplexer with newly allocated terminals.
//
func NewDMux(nl *sw.Netlist) *DMux {
	ws := nl.NewWires(4)
	return &DMux{
		Composite: sw.Composite{Label: "DMUX"},
		In:        ws[0],
		Sel:       ws[1],
		A:         ws[2],
		B:         ws[3],
		not:       newInverter(),
		a:         newAnd(2),
		b:         newAnd(2),
		selN:      sw.NoWire,
	}
}

// Elaborate gates In with Sel and its complement.
//
func (g *DMux) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "in", g.In); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "sel", g.Sel); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.A, g.B); err != nil {
		return err
	}
	g.selN = nl.NewWire(false)
	g.not.In, g.not.Out = g.Sel, g.selN
	g.a.In, g.a.Out = []sw.Wire{g.In, g.selN}, g.A
	g.b.In, g.b.Out = []sw.Wire{g.In, g.Sel}, g.B
	return g.Finish(nl, g.not, g.a, g.b)
}

// Subcomponents returns the inverter and both AND gates.
//
func (g *DMux) Subcomponents() []sw.Component { return []sw.Component{g.not, g.a, g.b} }

// OwnWires returns In, Sel, A, B and the inverted selector.
//
func (g *DMux) OwnWires() []sw.Wire { return []sw.Wire{g.In, g.Sel, g.A, g.B, g.selN} }

// Inputs returns In and Sel.
//
func (g *DMux) Inputs() []sw.Wire { return []sw.Wire{g.In, g.Sel} }

// Outputs returns A and B.
//
func (g *DMux) Outputs() []sw.Wire { return []sw.Wire{g.A, g.B} }
