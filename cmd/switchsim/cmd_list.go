// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			if jsonOut {
				type entry struct {
					Name        string   `json:"name"`
					Description string   `json:"description"`
					Inputs      []string `json:"inputs"`
					Outputs     []string `json:"outputs"`
				}
				var es []entry
				for _, n := range partNames() {
					p := library[n]
					es = append(es, entry{n, p.desc, p.inputs, p.outputs})
				}
				return json.NewEncoder(out).Encode(es)
			}
			for _, n := range partNames() {
				p := library[n]
				fmt.Fprintf(out, "%-8s %-36s in: %s  out: %s\n", n, p.desc,
					strings.Join(p.inputs, ","), strings.Join(p.outputs, ","))
			}
			return nil
		},
	}
}
