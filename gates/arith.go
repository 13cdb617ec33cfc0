// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"

	sw "github.com/db47h/switchsim"
)

// HalfAdder returns the sum and carry of two bits.
//
//	Inputs: A, B
//	Outputs: S, C
//	Function: S = lsb(A + B)
//	          C = msb(A + B)
//
type HalfAdder struct {
	sw.Composite
	A, B, S, C sw.Wire
	xor        *Xor
	and        *And
}

func newHalfAdder() *HalfAdder {
	return &HalfAdder{
		Composite: sw.Composite{Label: "HADD"},
		A:         sw.NoWire,
		B:         sw.NoWire,
		S:         sw.NoWire,
		C:         sw.NoWire,
		xor:       newXor(),
		and:       newAnd(2),
	}
}

// NewHalfAdder returns a half adder with newly allocated terminals.
//
func NewHalfAdder(nl *sw.Netlist) *HalfAdder {
	g := newHalfAdder()
	g.A, g.B, g.S, g.C = nl.NewWire(false), nl.NewWire(false), nl.NewWire(false), nl.NewWire(false)
	return g
}

// Elaborate feeds A and B to a XOR and an AND gate.
//
func (g *HalfAdder) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkPins(nl, g, g.A, g.B, g.S); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "c", g.C); err != nil {
		return err
	}
	g.xor.A, g.xor.B, g.xor.Out = g.A, g.B, g.S
	g.and.In, g.and.Out = []sw.Wire{g.A, g.B}, g.C
	return g.Finish(nl, g.xor, g.and)
}

// Subcomponents returns the XOR and AND gates.
//
func (g *HalfAdder) Subcomponents() []sw.Component { return []sw.Component{g.xor, g.and} }

// OwnWires returns A, B, S and C.
//
func (g *HalfAdder) OwnWires() []sw.Wire { return []sw.Wire{g.A, g.B, g.S, g.C} }

// Inputs returns A and B.
//
func (g *HalfAdder) Inputs() []sw.Wire { return []sw.Wire{g.A, g.B} }

// Outputs returns S and C.
//
func (g *HalfAdder) Outputs() []sw.Wire { return []sw.Wire{g.S, g.C} }

// FullAdder adds three bits.
//
//	Inputs: A, B, Cin
//	Outputs: S, Cout
//	Function: S = lsb(A + B + Cin)
//	          Cout = msb(A + B + Cin)
//
type FullAdder struct {
	sw.Composite
	A, B, Cin, S, Cout sw.Wire
	h0, h1             *HalfAdder
	or                 *Or
	s0, c0, c1         sw.Wire
}

func newFullAdder() *FullAdder {
	return &FullAdder{
		Composite: sw.Composite{Label: "FADD"},
		A:         sw.NoWire,
		B:         sw.NoWire,
		Cin:       sw.NoWire,
		S:         sw.NoWire,
		Cout:      sw.NoWire,
		h0:        newHalfAdder(),
		h1:        newHalfAdder(),
		or:        newOr(2),
		s0:        sw.NoWire,
		c0:        sw.NoWire,
		c1:        sw.NoWire,
	}
}

// NewFullAdder returns a full adder with newly allocated terminals.
//
func NewFullAdder(nl *sw.Netlist) *FullAdder {
	g := newFullAdder()
	ws := nl.NewWires(5)
	g.A, g.B, g.Cin, g.S, g.Cout = ws[0], ws[1], ws[2], ws[3], ws[4]
	return g
}

// Elaborate chains two half adders and ORs their carries.
//
func (g *FullAdder) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkPins(nl, g, g.A, g.B, g.S); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "cin", g.Cin); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "cout", g.Cout); err != nil {
		return err
	}
	g.s0, g.c0, g.c1 = nl.NewWire(false), nl.NewWire(false), nl.NewWire(false)
	g.h0.A, g.h0.B, g.h0.S, g.h0.C = g.A, g.B, g.s0, g.c0
	g.h1.A, g.h1.B, g.h1.S, g.h1.C = g.s0, g.Cin, g.S, g.c1
	g.or.In, g.or.Out = []sw.Wire{g.c0, g.c1}, g.Cout
	return g.Finish(nl, g.h0, g.h1, g.or)
}

// Subcomponents returns both half adders and the OR gate.
//
func (g *FullAdder) Subcomponents() []sw.Component { return []sw.Component{g.h0, g.h1, g.or} }

// OwnWires returns the terminals and the wires between half adders.
//
func (g *FullAdder) OwnWires() []sw.Wire {
	return []sw.Wire{g.A, g.B, g.Cin, g.S, g.Cout, g.s0, g.c0, g.c1}
}

// Inputs returns A, B and Cin.
//
func (g *FullAdder) Inputs() []sw.Wire { return []sw.Wire{g.A, g.B, g.Cin} }

// Outputs returns S and Cout.
//
func (g *FullAdder) Outputs() []sw.Wire { return []sw.Wire{g.S, g.Cout} }

// Adder is a ripple carry adder. Bit 0 is the least significant.
//
//	Inputs: A[bits], B[bits]
//	Outputs: Out[bits], C
//	Function: Out = lsb(A + B), C = carry out
//
type Adder struct {
	sw.Composite
	A, B, Out []sw.Wire
	C         sw.Wire
	h         *HalfAdder
	f         []*FullAdder
	carry     []sw.Wire
}

// NewAdder returns an adder of the given width with newly allocated
// terminals. It panics if bits < 1.
//
func NewAdder(nl *sw.Netlist, bits int) *Adder {
	if bits < 1 {
		panic(strconv.Itoa(bits) + " bits adder")
	}
	g := &Adder{
		Composite: sw.Composite{Label: "ADD" + strconv.Itoa(bits)},
		A:         nl.NewWires(bits),
		B:         nl.NewWires(bits),
		Out:       nl.NewWires(bits),
		C:         nl.NewWire(false),
		h:         newHalfAdder(),
	}
	for i := 1; i < bits; i++ {
		g.f = append(g.f, newFullAdder())
	}
	return g
}

// Elaborate chains the adders from the least significant bit up.
//
func (g *Adder) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "a", g.A...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "b", g.B...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "out", g.Out...); err != nil {
		return err
	}
	if err := checkTerminals(nl, g, "c", g.C); err != nil {
		return err
	}
	bits := len(g.A)
	carry := g.C
	if bits > 1 {
		carry = nl.NewWire(false)
		g.carry = append(g.carry, carry)
	}
	g.h.A, g.h.B, g.h.S, g.h.C = g.A[0], g.B[0], g.Out[0], carry
	for i, f := range g.f {
		bit := i + 1
		f.A, f.B, f.Cin, f.S = g.A[bit], g.B[bit], carry, g.Out[bit]
		if bit == bits-1 {
			carry = g.C
		} else {
			carry = nl.NewWire(false)
			g.carry = append(g.carry, carry)
		}
		f.Cout = carry
	}
	return g.Finish(nl, g.Subcomponents()...)
}

// Subcomponents returns the half adder followed by the full adders.
//
func (g *Adder) Subcomponents() []sw.Component {
	cs := []sw.Component{g.h}
	for _, f := range g.f {
		cs = append(cs, f)
	}
	return cs
}

// OwnWires returns the terminals and the carry chain.
//
func (g *Adder) OwnWires() []sw.Wire {
	ws := make([]sw.Wire, 0, 3*len(g.A)+1+len(g.carry))
	ws = append(ws, g.A...)
	ws = append(ws, g.B...)
	ws = append(ws, g.Out...)
	ws = append(ws, g.C)
	return append(ws, g.carry...)
}

// Inputs returns A followed by B.
//
func (g *Adder) Inputs() []sw.Wire {
	return append(append([]sw.Wire(nil), g.A...), g.B...)
}

// Outputs returns Out followed by C.
//
func (g *Adder) Outputs() []sw.Wire {
	return append(append([]sw.Wire(nil), g.Out...), g.C)
}
