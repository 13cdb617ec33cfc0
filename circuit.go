// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package switchsim

import (
	"log/slog"
	"sync"

	"github.com/db47h/switchsim/internal/logging"
	"github.com/pkg/errors"
)

// DefaultMaxRounds is the round limit used by Run when given a limit <= 0.
//
const DefaultMaxRounds = 100

// An Option configures a Circuit.
//
type Option func(*Circuit)

// WithWorkers sets the number of goroutines used to evaluate components and
// resolve wires each round. Values <= 1 run everything on the calling
// goroutine.
//
func WithWorkers(n int) Option {
	return func(c *Circuit) { c.workers = n }
}

// WithLogger sets the logger. Per-round records are emitted at trace level.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Circuit) {
		if l != nil {
			c.log = l
		}
	}
}

// Round is the outcome of a single evaluate/resolve pass.
//
type Round struct {
	Changed     []Wire // wires whose resolved state changed
	Contentions []Wire // wires with disagreeing drivers at the winning strength
}

// Result is the outcome of Run.
//
type Result struct {
	// Stable is true if the last executed round changed nothing.
	Stable bool
	// Rounds is the number of the last round that changed a wire; 0 if the
	// circuit was already stable.
	Rounds int
	// Steps is the number of rounds executed, including the final one that
	// confirmed stability.
	Steps int
	// States holds the resolved state of every wire in the circuit.
	States map[Wire]WireState
	// Contentions lists the wires in contention during the last round.
	Contentions []Wire
	// Transient lists, in first seen order, every wire that was in
	// contention during any round of the run, the last one included.
	Transient []Wire
}

// Circuit is a runnable simulation of an elaborated component tree.
//
type Circuit struct {
	nl    *Netlist
	root  Component
	prims []Component
	wires []Wire
	steps int

	workers  int
	log      *slog.Logger
	ws       []*worker
	parallel bool
	wg       sync.WaitGroup
}

type phase int

const (
	phaseEvaluate phase = iota
	phaseResolve
)

// a worker owns a slice of the primitives and a slice of the wires.
// Within a phase, no two workers write the same driver or wire.
type worker struct {
	prims []Component
	wires []Wire
	pc    chan phase
	r     Round
}

func (w *worker) run(c *Circuit, p phase) {
	switch p {
	case phaseEvaluate:
		for _, cp := range w.prims {
			cp.Evaluate(c.nl)
		}
	case phaseResolve:
		w.r.Changed = w.r.Changed[:0]
		w.r.Contentions = w.r.Contentions[:0]
		for _, wr := range w.wires {
			changed, contention := c.nl.Commit(wr)
			if changed {
				w.r.Changed = append(w.r.Changed, wr)
			}
			if contention {
				w.r.Contentions = append(w.r.Contentions, wr)
			}
		}
	}
}

func (w *worker) loop(c *Circuit) {
	for p := range w.pc {
		w.run(c, p)
		c.wg.Done()
	}
	c.wg.Done()
}

// NewCircuit elaborates root into nl and returns a circuit ready to run.
// root must not have been elaborated before. A netlist can back only one
// circuit; no connection can be added to it afterwards.
//
// Callers must call Dispose once the circuit is no longer needed when using
// more than one worker.
//
func NewCircuit(nl *Netlist, root Component, opts ...Option) (*Circuit, error) {
	if root == nil {
		return nil, errors.New("nil root component")
	}
	if nl.frozen {
		return nil, errors.New("netlist already backs a circuit")
	}
	c := &Circuit{nl: nl, root: root, workers: 1, log: logging.Discard()}
	for _, o := range opts {
		o(c)
	}
	if err := root.Elaborate(nl); err != nil {
		return nil, errors.Wrap(err, "failed to elaborate "+root.Name())
	}
	nl.freeze()
	c.prims = Primitives(root)
	c.wires = Wires(root)

	c.ws = split(c.prims, c.wires, c.workers)
	if len(c.ws) > 1 {
		c.parallel = true
		for _, w := range c.ws {
			w.pc = make(chan phase, 1)
			go w.loop(c)
		}
	}
	c.log.Debug("circuit elaborated", "root", root.Name(), "primitives", len(c.prims), "wires", len(c.wires), "workers", len(c.ws))
	return c, nil
}

func split(prims []Component, wires []Wire, n int) []*worker {
	if n < 1 {
		n = 1
	}
	ws := make([]*worker, n)
	for i := range ws {
		ws[i] = &worker{}
	}
	ps := chunk(len(prims), n)
	for i := range ws {
		ws[i].prims = prims[:ps]
		prims = prims[ps:]
		if len(prims) < ps {
			ps = len(prims)
		}
	}
	wc := chunk(len(wires), n)
	for i := range ws {
		ws[i].wires = wires[:wc]
		wires = wires[wc:]
		if len(wires) < wc {
			wc = len(wires)
		}
	}
	return ws
}

func chunk(l, n int) int {
	size := l / n
	if size*n < l {
		size++
	}
	return size
}

// Dispose stops worker goroutines.
//
// The circuit can still be run afterwards, on the calling goroutine.
//
func (c *Circuit) Dispose() {
	if !c.parallel {
		return
	}
	c.parallel = false
	c.wg.Add(len(c.ws))
	for _, w := range c.ws {
		close(w.pc)
	}
	c.wg.Wait()
}

func (c *Circuit) phase(p phase) {
	if !c.parallel {
		for _, w := range c.ws {
			w.run(c, p)
		}
		return
	}
	c.wg.Add(len(c.ws))
	for _, w := range c.ws {
		w.pc <- p
	}
	c.wg.Wait()
}

// Step runs one round: every primitive is evaluated against the previous
// round's wire states, then every wire is resolved.
//
func (c *Circuit) Step() Round {
	c.phase(phaseEvaluate)
	c.phase(phaseResolve)
	c.steps++
	var r Round
	for _, w := range c.ws {
		r.Changed = append(r.Changed, w.r.Changed...)
		r.Contentions = append(r.Contentions, w.r.Contentions...)
	}
	return r
}

// Run steps the circuit until a round changes no wire or maxRounds rounds
// have been executed.
//
// A *NonConvergenceError is returned if the circuit is still changing after
// maxRounds rounds, a *ContentionError if it is stable but some wires are
// driven both ways at the same strength. The Result is valid in all cases.
//
func (c *Circuit) Run(maxRounds int) (*Result, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	res := &Result{}
	trace := logging.TraceEnabled(c.log)
	var r Round
	seen := make(map[Wire]struct{})
	for i := 1; i <= maxRounds; i++ {
		r = c.Step()
		res.Steps = i
		for _, w := range r.Contentions {
			if _, ok := seen[w]; !ok {
				seen[w] = struct{}{}
				res.Transient = append(res.Transient, w)
			}
		}
		if trace {
			logging.Trace(c.log, "round", "step", c.steps, "changed", len(r.Changed), "contentions", wireList(r.Contentions))
		}
		if len(r.Changed) == 0 {
			res.Stable = true
			break
		}
		res.Rounds = i
	}
	res.States = c.States()
	res.Contentions = r.Contentions
	c.log.Debug("run", "stable", res.Stable, "rounds", res.Rounds, "steps", res.Steps, "contentions", len(res.Contentions), "transient", len(res.Transient))

	if !res.Stable {
		return res, &NonConvergenceError{Rounds: maxRounds, Changed: r.Changed, States: res.States}
	}
	if len(r.Contentions) > 0 {
		return res, &ContentionError{Wires: r.Contentions}
	}
	return res, nil
}

// States returns the resolved state of every wire in the circuit.
//
func (c *Circuit) States() map[Wire]WireState {
	m := make(map[Wire]WireState, len(c.wires))
	for _, w := range c.wires {
		m[w] = c.nl.State(w)
	}
	return m
}

// Netlist returns the netlist backing c.
//
func (c *Circuit) Netlist() *Netlist { return c.nl }

// Root returns the root component.
//
func (c *Circuit) Root() Component { return c.root }

// Wires returns the distinct wires of the circuit.
//
func (c *Circuit) Wires() []Wire { return c.wires }

// Steps returns the number of rounds executed since c was created.
//
func (c *Circuit) Steps() int { return c.steps }

// Size returns the number of primitive components in the circuit.
//
func (c *Circuit) Size() int { return len(c.prims) }
