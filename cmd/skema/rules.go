package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/skema/dsl"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [FAMILY...]",
		Short: "List the built-in rules by family",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := dsl.Registry()
			byFamily := map[string][]string{}
			for _, name := range reg.Names() {
				owner, _ := reg.Owner(name)
				byFamily[owner] = append(byFamily[owner], name)
			}
			families := reg.Families()
			if len(args) > 0 {
				families = args
			}
			for _, f := range families {
				names, ok := byFamily[f]
				if !ok {
					return fmt.Errorf("unknown rule family %q", f)
				}
				fmt.Fprintf(a.stdout, "%s: %s\n", f, strings.Join(names, ", "))
			}
			fmt.Fprintf(a.stdout, "types: %s\n", strings.Join(dsl.BaseTypes(), ", "))
			return nil
		},
	}
}
