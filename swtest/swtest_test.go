package swtest_test

import (
	"testing"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/gates"
	"github.com/db47h/switchsim/swtest"
)

// customOr is an OR gate built from three NAND gates.
type customOr struct {
	sw.Composite
	A, B, Out sw.Wire
	na, nb, o *gates.Nand
	notA      sw.Wire
	notB      sw.Wire
}

func newCustomOr(nl *sw.Netlist) gates.Part {
	return &customOr{
		Composite: sw.Composite{Label: "custom_or"},
		A:         nl.NewWire(false),
		B:         nl.NewWire(false),
		Out:       nl.NewWire(false),
		na:        gates.NewNand(nl, 2),
		nb:        gates.NewNand(nl, 2),
		o:         gates.NewNand(nl, 2),
		notA:      sw.NoWire,
		notB:      sw.NoWire,
	}
}

func (g *customOr) Elaborate(nl *sw.Netlist) error {
	if err := g.Begin(); err != nil {
		return err
	}
	g.notA, g.notB = g.na.Out, g.nb.Out
	g.na.In = []sw.Wire{g.A, g.A}
	g.nb.In = []sw.Wire{g.B, g.B}
	g.o.In, g.o.Out = []sw.Wire{g.notA, g.notB}, g.Out
	return g.Finish(nl, g.na, g.nb, g.o)
}

func (g *customOr) Subcomponents() []sw.Component { return []sw.Component{g.na, g.nb, g.o} }
func (g *customOr) OwnWires() []sw.Wire            { return []sw.Wire{g.A, g.B, g.Out, g.notA, g.notB} }
func (g *customOr) Inputs() []sw.Wire              { return []sw.Wire{g.A, g.B} }
func (g *customOr) Outputs() []sw.Wire             { return []sw.Wire{g.Out} }

func TestComparePart(t *testing.T) {
	swtest.ComparePart(t, 20,
		func(nl *sw.Netlist) gates.Part { return gates.NewOr(nl, 2) },
		newCustomOr)
}

func TestTruthTable(t *testing.T) {
	swtest.TruthTable(t, 20, newCustomOr, func(in []bool) []bool {
		return []bool{in[0] || in[1]}
	})
}

func TestBench(t *testing.T) {
	b, err := swtest.NewBench(func(nl *sw.Netlist) gates.Part { return gates.NewInverter(nl) }, sw.WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Dispose()
	out, res, err := b.Apply(10, []bool{false})
	if err != nil {
		t.Fatal(err)
	}
	if !out[0] {
		t.Fatal("expected inverter output high for a low input")
	}
	// the output is computed from the input's bias during the first round.
	if !res.Stable || res.Rounds != 1 || res.Steps != 2 {
		t.Fatalf("expected stable after 1 round, got %+v", res)
	}
	out, res, err = b.Apply(10, []bool{true})
	if err != nil {
		t.Fatal(err)
	}
	if out[0] || res.Rounds != 2 {
		t.Fatalf("expected low output after 2 rounds, got %v after %d", out[0], res.Rounds)
	}
	if _, _, err = b.Apply(10, []bool{true, true}); err == nil {
		t.Fatal("expected an error for extra input values")
	}
}
