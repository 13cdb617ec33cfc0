// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"

	sw "github.com/db47h/switchsim"
)

// SRLatch is a set/reset latch made of two cross-coupled NAND gates. Set and
// reset are active low; holding both high keeps the stored bit.
//
//	Inputs: SetN, ResetN
//	Outputs: Q, QN
//	Function: SetN=0 => Q=1; ResetN=0 => Q=0; both 1 => hold
//
type SRLatch struct {
	sw.Composite
	SetN, ResetN sw.Wire
	Q, QN        sw.Wire
	q, qn        *Nand
}

// NewSRLatch returns a latch with newly allocated terminals.
//
func NewSRLatch(nl *sw.Netlist) *SRLatch {
	ws := nl.NewWires(4)
	return &SRLatch{
		Composite: sw.Composite{Label: "SRLATCH"},
		SetN:      ws[0],
		ResetN:    ws[1],
		Q:         ws[2],
		QN:        ws[3],
		q:         newNand(2),
		qn:        newNand(2),
	}
}

// Elaborate cross-couples both NAND gates.
//
func (l *SRLatch) Elaborate(nl *sw.Netlist) error {
	if err := l.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, l, "in", l.SetN, l.ResetN); err != nil {
		return err
	}
	if err := checkTerminals(nl, l, "out", l.Q, l.QN); err != nil {
		return err
	}
	l.q.In, l.q.Out = []sw.Wire{l.SetN, l.QN}, l.Q
	l.qn.In, l.qn.Out = []sw.Wire{l.ResetN, l.Q}, l.QN
	return l.Finish(nl, l.q, l.qn)
}

// Subcomponents returns both NAND gates.
//
func (l *SRLatch) Subcomponents() []sw.Component { return []sw.Component{l.q, l.qn} }

// OwnWires returns SetN, ResetN, Q and QN.
//
func (l *SRLatch) OwnWires() []sw.Wire { return []sw.Wire{l.SetN, l.ResetN, l.Q, l.QN} }

// Inputs returns SetN and ResetN.
//
func (l *SRLatch) Inputs() []sw.Wire { return []sw.Wire{l.SetN, l.ResetN} }

// Outputs returns Q and QN.
//
func (l *SRLatch) Outputs() []sw.Wire { return []sw.Wire{l.Q, l.QN} }

// Ring is a closed chain of inverters: inverter i drives W[(i+1)%n] from
// W[i]. A ring of odd length never settles.
//
type Ring struct {
	sw.Composite
	W   []sw.Wire
	inv []*Inverter
}

// NewRing returns a ring of n inverters. It panics if n < 1.
//
func NewRing(nl *sw.Netlist, n int) *Ring {
	if n < 1 {
		panic("ring of " + strconv.Itoa(n) + " inverters")
	}
	r := &Ring{Composite: sw.Composite{Label: "RING" + strconv.Itoa(n)}, W: nl.NewWires(n)}
	for i := 0; i < n; i++ {
		r.inv = append(r.inv, newInverter())
	}
	return r
}

// Elaborate closes the loop.
//
func (r *Ring) Elaborate(nl *sw.Netlist) error {
	if err := r.Begin(); err != nil {
		return err
	}
	if err := checkTerminals(nl, r, "w", r.W...); err != nil {
		return err
	}
	for i, inv := range r.inv {
		inv.In, inv.Out = r.W[i], r.W[(i+1)%len(r.W)]
	}
	return r.Finish(nl, r.Subcomponents()...)
}

// Subcomponents returns the inverters.
//
func (r *Ring) Subcomponents() []sw.Component {
	cs := make([]sw.Component, len(r.inv))
	for i, inv := range r.inv {
		cs[i] = inv
	}
	return cs
}

// OwnWires returns the wires between inverters.
//
func (r *Ring) OwnWires() []sw.Wire { return r.W }

// Inputs returns nil.
//
func (r *Ring) Inputs() []sw.Wire { return nil }

// Outputs returns the wires between inverters.
//
func (r *Ring) Outputs() []sw.Wire { return r.W }
