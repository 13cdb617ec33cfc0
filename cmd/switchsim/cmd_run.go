// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	sw "github.com/db47h/switchsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runReport struct {
	Part        string            `json:"part"`
	Inputs      map[string]bool   `json:"inputs"`
	Outputs     map[string]string `json:"outputs"`
	Stable      bool              `json:"stable"`
	Rounds      int               `json:"rounds"`
	Steps       int               `json:"steps"`
	Contentions []string          `json:"contentions,omitempty"`
	Transient   []string          `json:"transient,omitempty"`
	Error       string            `json:"error,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <part>",
		Short: "Run a part until it settles and print its outputs",
		Example: `  switchsim run nand2 -s in0=1 -s in1=1
  switchsim run ring3 --max-rounds 20 --log-level trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			sets, _ := cmd.Flags().GetStringArray("set")

			info, err := lookup(args[0])
			if err != nil {
				return err
			}
			vs, err := parseAssignments(info, sets)
			if err != nil {
				return err
			}
			b, err := newBench(info, circuitOptions(cmd, cfg)...)
			if err != nil {
				return err
			}
			defer b.c.Dispose()

			b.set(vs)
			res, runErr := b.c.Run(cfg.Sim.MaxRounds)
			rep := report(args[0], b, vs, res, runErr)
			if jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(rep); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), b, rep)
			}
			return errors.Wrap(runErr, args[0])
		},
	}
	cmd.Flags().StringArrayP("set", "s", nil, "Set an input: name=value (repeatable)")
	return cmd
}

func report(name string, b *bench, vs []bool, res *sw.Result, err error) *runReport {
	rep := &runReport{
		Part:    name,
		Inputs:  make(map[string]bool, len(vs)),
		Outputs: make(map[string]string),
		Stable:  res.Stable,
		Rounds:  res.Rounds,
		Steps:   res.Steps,
	}
	for i, v := range vs {
		rep.Inputs[b.info.inputs[i]] = v
	}
	for i, s := range b.outputs() {
		rep.Outputs[b.info.outputs[i]] = s.String()
	}
	for _, w := range res.Contentions {
		rep.Contentions = append(rep.Contentions, w.String())
	}
	for _, w := range res.Transient {
		rep.Transient = append(rep.Transient, w.String())
	}
	if err != nil {
		rep.Error = err.Error()
	}
	return rep
}

func printReport(w io.Writer, b *bench, rep *runReport) {
	var in []string
	for _, n := range b.info.inputs {
		in = append(in, fmt.Sprintf("%s=%v", n, rep.Inputs[n]))
	}
	fmt.Fprintf(w, "%s(%s)\n", rep.Part, strings.Join(in, ", "))
	for _, n := range b.info.outputs {
		fmt.Fprintf(w, "  %-6s %s\n", n, rep.Outputs[n])
	}
	if rep.Stable {
		fmt.Fprintf(w, "stable after %d rounds (%d steps, %d primitives)\n", rep.Rounds, rep.Steps, b.c.Size())
	} else {
		fmt.Fprintf(w, "not stable after %d steps (%d primitives)\n", rep.Steps, b.c.Size())
	}
	if len(rep.Contentions) > 0 {
		fmt.Fprintf(w, "contention on %s\n", strings.Join(rep.Contentions, ", "))
	} else if len(rep.Transient) > 0 {
		fmt.Fprintf(w, "transient contention on %s\n", strings.Join(rep.Transient, ", "))
	}
}
