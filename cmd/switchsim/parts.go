// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"sort"
	"strconv"
	"strings"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/gates"
	"github.com/pkg/errors"
)

type partInfo struct {
	desc    string
	inputs  []string
	outputs []string
	build   func(nl *sw.Netlist) gates.Part
}

func names(prefix string, n int) []string {
	ns := make([]string, n)
	for i := range ns {
		ns[i] = prefix + strconv.Itoa(i)
	}
	return ns
}

func nInput(desc string, n int, build func(nl *sw.Netlist, n int) gates.Part) partInfo {
	return partInfo{
		desc:    desc,
		inputs:  names("in", n),
		outputs: []string{"out"},
		build:   func(nl *sw.Netlist) gates.Part { return build(nl, n) },
	}
}

func ring(n int) partInfo {
	return partInfo{
		desc:    strconv.Itoa(n) + "-inverter ring",
		outputs: names("w", n),
		build:   func(nl *sw.Netlist) gates.Part { return gates.NewRing(nl, n) },
	}
}

var library = map[string]partInfo{
	"not": {"inverter", []string{"in"}, []string{"out"},
		func(nl *sw.Netlist) gates.Part { return gates.NewInverter(nl) }},
	"buf": {"buffer (two inverters)", []string{"in"}, []string{"out"},
		func(nl *sw.Netlist) gates.Part { return gates.NewBuffer(nl) }},
	"nand2": nInput("2-input NAND", 2, func(nl *sw.Netlist, n int) gates.Part { return gates.NewNand(nl, n) }),
	"nand3": nInput("3-input NAND", 3, func(nl *sw.Netlist, n int) gates.Part { return gates.NewNand(nl, n) }),
	"nor2":  nInput("2-input NOR", 2, func(nl *sw.Netlist, n int) gates.Part { return gates.NewNor(nl, n) }),
	"nor3":  nInput("3-input NOR", 3, func(nl *sw.Netlist, n int) gates.Part { return gates.NewNor(nl, n) }),
	"and2":  nInput("2-input AND", 2, func(nl *sw.Netlist, n int) gates.Part { return gates.NewAnd(nl, n) }),
	"and3":  nInput("3-input AND", 3, func(nl *sw.Netlist, n int) gates.Part { return gates.NewAnd(nl, n) }),
	"or2":   nInput("2-input OR", 2, func(nl *sw.Netlist, n int) gates.Part { return gates.NewOr(nl, n) }),
	"or3":   nInput("3-input OR", 3, func(nl *sw.Netlist, n int) gates.Part { return gates.NewOr(nl, n) }),
	"xor": {"2-input XOR", []string{"a", "b"}, []string{"out"},
		func(nl *sw.Netlist) gates.Part { return gates.NewXor(nl) }},
	"xnor": {"2-input XNOR", []string{"a", "b"}, []string{"out"},
		func(nl *sw.Netlist) gates.Part { return gates.NewXnor(nl) }},
	"srlatch": {"SR latch, active low set and reset", []string{"setn", "resetn"}, []string{"q", "qn"},
		func(nl *sw.Netlist) gates.Part { return gates.NewSRLatch(nl) }},
	"mux": {"multiplexer (transmission gates)", []string{"a", "b", "sel"}, []string{"out"},
		func(nl *sw.Netlist) gates.Part { return gates.NewMux(nl) }},
	"dmux": {"demultiplexer", []string{"in", "sel"}, []string{"a", "b"},
		func(nl *sw.Netlist) gates.Part { return gates.NewDMux(nl) }},
	"hadd": {"half adder", []string{"a", "b"}, []string{"s", "c"},
		func(nl *sw.Netlist) gates.Part { return gates.NewHalfAdder(nl) }},
	"fadd": {"full adder", []string{"a", "b", "cin"}, []string{"s", "cout"},
		func(nl *sw.Netlist) gates.Part { return gates.NewFullAdder(nl) }},
	"add4": {"4-bit ripple carry adder", append(names("a", 4), names("b", 4)...), append(names("out", 4), "c"),
		func(nl *sw.Netlist) gates.Part { return gates.NewAdder(nl, 4) }},
	"ring3": ring(3),
	"ring4": ring(4),
	"ring5": ring(5),
}

func partNames() []string {
	ns := make([]string, 0, len(library))
	for n := range library {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

func lookup(name string) (partInfo, error) {
	p, ok := library[name]
	if !ok {
		return partInfo{}, errors.Errorf("unknown part %q; run 'switchsim list' for the available parts", name)
	}
	return p, nil
}

// bench is a part driven by one input per terminal.
type bench struct {
	info   partInfo
	part   gates.Part
	inputs []*gates.Input
	c      *sw.Circuit
}

func newBench(info partInfo, opts ...sw.Option) (*bench, error) {
	nl := sw.NewNetlist()
	b := &bench{info: info, part: info.build(nl)}
	parts := []sw.Component{b.part}
	for _, w := range b.part.Inputs() {
		in := gates.InputOn(w)
		b.inputs = append(b.inputs, in)
		parts = append(parts, in)
	}
	c, err := sw.NewCircuit(nl, sw.NewGroup(b.part.Name(), parts...), opts...)
	if err != nil {
		return nil, err
	}
	b.c = c
	return b, nil
}

func (b *bench) set(vs []bool) {
	for i, v := range vs {
		b.inputs[i].Set(v)
	}
}

func (b *bench) outputs() []sw.WireState {
	nl := b.c.Netlist()
	outs := b.part.Outputs()
	ss := make([]sw.WireState, len(outs))
	for i, w := range outs {
		ss[i] = nl.State(w)
	}
	return ss
}

// parseAssignments parses name=value pairs against the part's input names.
// Inputs not assigned are low.
func parseAssignments(info partInfo, as []string) ([]bool, error) {
	vs := make([]bool, len(info.inputs))
	for _, a := range as {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, errors.Errorf("invalid assignment %q, expected name=value", a)
		}
		idx := -1
		for i, n := range info.inputs {
			if n == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, errors.Errorf("part has no input %q", name)
		}
		v, err := strconv.ParseBool(val)
		if err != nil {
			return nil, errors.Wrapf(err, "input %s", name)
		}
		vs[idx] = v
	}
	return vs, nil
}
