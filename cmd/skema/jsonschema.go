package main

import (
	"fmt"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/skema"
)

func newJSONSchemaCmd(a *app) *cobra.Command {
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "jsonschema --schema FILE",
		Short: "Export a schema file as a JSON Schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSchema(schemaPath)
			if err != nil {
				return fmt.Errorf("schema %s: %w", schemaPath, err)
			}
			doc, err := skema.Document(s)
			if err != nil {
				return err
			}
			b, err := j.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
