// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	sw "github.com/db47h/switchsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// maximum number of inputs of a printed truth table.
const maxTableInputs = 8

type tableRow struct {
	Inputs  []bool   `json:"inputs"`
	Outputs []string `json:"outputs"`
	Rounds  int      `json:"rounds"`
	Error   string   `json:"error,omitempty"`
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <part>",
		Short: "Print the truth table of a part",
		Long: `Print the truth table of a part. Input combinations are applied in
ascending binary order on the same circuit, so that stateful parts like
latches show their behavior for that sequence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			info, err := lookup(args[0])
			if err != nil {
				return err
			}
			n := len(info.inputs)
			if n > maxTableInputs {
				return errors.Errorf("%s has %d inputs, tables are limited to %d", args[0], n, maxTableInputs)
			}
			b, err := newBench(info, circuitOptions(cmd, cfg)...)
			if err != nil {
				return err
			}
			defer b.c.Dispose()

			var rows []tableRow
			for i := 0; i < 1<<uint(n); i++ {
				vs := make([]bool, n)
				for k := range vs {
					vs[k] = i&(1<<uint(n-1-k)) != 0
				}
				b.set(vs)
				res, err := b.c.Run(cfg.Sim.MaxRounds)
				row := tableRow{Inputs: vs, Rounds: res.Rounds}
				for _, s := range b.outputs() {
					row.Outputs = append(row.Outputs, cell(s))
				}
				if err != nil {
					row.Error = err.Error()
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(rows)
			}
			fmt.Fprintf(out, "%s | %s | rounds\n", strings.Join(info.inputs, " "), strings.Join(info.outputs, " "))
			for _, r := range rows {
				var cells []string
				for k, v := range r.Inputs {
					cells = append(cells, pad(cell(sw.WireState{Value: v, Strength: sw.Strong}), len(info.inputs[k])))
				}
				cells = append(cells, "|")
				for k, o := range r.Outputs {
					cells = append(cells, pad(o, len(info.outputs[k])))
				}
				cells = append(cells, "|", fmt.Sprint(r.Rounds))
				if r.Error != "" {
					cells = append(cells, " # "+r.Error)
				}
				fmt.Fprintln(out, strings.Join(cells, " "))
			}
			return nil
		},
	}
}

// cell renders a wire state as 0, 1 or z for a floating wire.
func cell(s sw.WireState) string {
	switch {
	case s.IsHiZ():
		return "z"
	case s.Value:
		return "1"
	}
	return "0"
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
