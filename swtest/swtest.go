// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package swtest provides utility functions for testing switchsim parts.
//
package swtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/gates"
	"github.com/pkg/errors"
)

// A BuildFn creates a part with its own terminals in nl.
//
type BuildFn func(nl *sw.Netlist) gates.Part

// maximum number of inputs tested exhaustively.
const maxExhaustive = 12

// A Bench wraps a part with one Input per input terminal.
//
type Bench struct {
	Part   gates.Part
	C      *sw.Circuit
	inputs []*gates.Input
}

// NewBench builds a part, drives each of its inputs and elaborates the whole.
// Options are passed to NewCircuit.
//
func NewBench(build BuildFn, opts ...sw.Option) (*Bench, error) {
	nl := sw.NewNetlist()
	p := build(nl)
	b := &Bench{Part: p}
	parts := []sw.Component{p}
	for _, w := range p.Inputs() {
		in := gates.InputOn(w)
		b.inputs = append(b.inputs, in)
		parts = append(parts, in)
	}
	c, err := sw.NewCircuit(nl, sw.NewGroup("bench:"+p.Name(), parts...), opts...)
	if err != nil {
		return nil, err
	}
	b.C = c
	return b, nil
}

// Apply sets the inputs, runs the circuit for at most maxRounds rounds and
// returns the output values.
//
func (b *Bench) Apply(maxRounds int, in []bool) ([]bool, *sw.Result, error) {
	if len(in) != len(b.inputs) {
		return nil, nil, errors.Errorf("got %d input values for %d inputs", len(in), len(b.inputs))
	}
	for i, v := range in {
		b.inputs[i].Set(v)
	}
	res, err := b.C.Run(maxRounds)
	outs := b.Part.Outputs()
	vs := make([]bool, len(outs))
	nl := b.C.Netlist()
	for i, w := range outs {
		vs[i] = nl.Value(w)
	}
	return vs, res, err
}

// Dispose releases the bench's circuit.
//
func (b *Bench) Dispose() { b.C.Dispose() }

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

// vectors returns the input vectors to test for n inputs: all of them, first
// input as the most significant bit, up to maxExhaustive inputs, random
// ones otherwise.
func vectors(n int) [][]bool {
	if n <= maxExhaustive {
		vs := make([][]bool, 1<<uint(n))
		for i := range vs {
			v := make([]bool, n)
			for k := range v {
				v[k] = i&(1<<uint(n-1-k)) != 0
			}
			vs[i] = v
		}
		return vs
	}
	vs := make([][]bool, 0, 1<<maxExhaustive+2)
	lo, hi := make([]bool, n), make([]bool, n)
	for k := range hi {
		hi[k] = true
	}
	vs = append(vs, lo, hi)
	for i := 0; i < 1<<maxExhaustive; i++ {
		v := make([]bool, n)
		for k := range v {
			v[k] = randBool()
		}
		vs = append(vs, v)
	}
	return vs
}

func boolString(vs []bool) string {
	var b strings.Builder
	for _, v := range vs {
		if v {
			b.WriteRune('1')
		} else {
			b.WriteRune('0')
		}
	}
	return b.String()
}

// TruthTable checks the outputs of the part returned by build against fn for
// every input combination. fn receives the input values in Inputs order and
// returns the expected outputs in Outputs order. Each combination must settle
// within maxRounds rounds without contention.
//
func TruthTable(t *testing.T, maxRounds int, build BuildFn, fn func(in []bool) []bool) {
	t.Helper()

	b, err := NewBench(build)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Dispose()

	start := time.Now()
	vs := vectors(len(b.Part.Inputs()))
	for _, in := range vs {
		got, res, err := b.Apply(maxRounds, in)
		if err != nil {
			t.Fatalf("%s: input %s: %v", b.Part.Name(), boolString(in), err)
		}
		ex := fn(in)
		if len(ex) != len(got) {
			t.Fatalf("%s: expected %d outputs, part has %d", b.Part.Name(), len(ex), len(got))
		}
		for i := range ex {
			if ex[i] != got[i] {
				t.Fatalf("%s: input %s: expected output[%d] = %v, got %v (settled in %d rounds)",
					b.Part.Name(), boolString(in), i, ex[i], got[i], res.Rounds)
			}
		}
	}
	t.Logf("%s: %d components. %d vectors, %d steps in %v", b.Part.Name(), b.C.Size(), len(vs), b.C.Steps(), time.Since(start))
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same number of inputs and outputs.
//
func ComparePart(t *testing.T, maxRounds int, part1, part2 BuildFn) {
	t.Helper()

	b1, err := NewBench(part1)
	if err != nil {
		t.Fatal(err)
	}
	defer b1.Dispose()
	b2, err := NewBench(part2)
	if err != nil {
		t.Fatal(err)
	}
	defer b2.Dispose()

	if n1, n2 := len(b1.Part.Inputs()), len(b2.Part.Inputs()); n1 != n2 {
		t.Fatalf("%s has %d inputs, %s has %d", b1.Part.Name(), n1, b2.Part.Name(), n2)
	}
	if n1, n2 := len(b1.Part.Outputs()), len(b2.Part.Outputs()); n1 != n2 {
		t.Fatalf("%s has %d outputs, %s has %d", b1.Part.Name(), n1, b2.Part.Name(), n2)
	}

	for _, in := range vectors(len(b1.Part.Inputs())) {
		o1, _, err := b1.Apply(maxRounds, in)
		if err != nil {
			t.Fatalf("%s: input %s: %v", b1.Part.Name(), boolString(in), err)
		}
		o2, _, err := b2.Apply(maxRounds, in)
		if err != nil {
			t.Fatalf("%s: input %s: %v", b2.Part.Name(), boolString(in), err)
		}
		for i := range o1 {
			if o1[i] != o2[i] {
				t.Fatalf("input %s: %s output[%d] = %v, %s output[%d] = %v",
					boolString(in), b1.Part.Name(), i, o1[i], b2.Part.Name(), i, o2[i])
			}
		}
	}
}
