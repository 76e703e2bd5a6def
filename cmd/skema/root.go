package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/schemafile"
	"github.com/reoring/skema/source"
)

// app carries what every subcommand shares.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	lang     string
	verbose  bool
	maxBytes int64
	logger   *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "skema",
		Short:         "Validate documents against declarative schemas",
		Long:          `skema compiles YAML or JSON schema files into rule pipelines and checks documents against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.lang, "lang", "", "message language (en, ja); empty keeps the default")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every parse to stderr")
	pf.Int64Var(&a.maxBytes, "max-bytes", source.DefaultMaxBytes, "maximum size of any single input; negative disables the limit")

	root.AddCommand(
		newValidateCmd(a),
		newJSONSchemaCmd(a),
		newRulesCmd(a),
		newVersionCmd(a),
	)
	return root
}

// loadSchema compiles the schema file at path.
func (a *app) loadSchema(path string) (skema.Schema[any], error) {
	f, err := os.Open(path)
	if err != nil {
		return skema.Schema[any]{}, err
	}
	defer f.Close()
	s, err := schemafile.Load(f, source.Options{Name: path, MaxBytes: a.maxBytes})
	if err != nil {
		return skema.Schema[any]{}, err
	}
	a.logger.Debug("schema loaded", "schema", path, "base", s.Name(), "rules", len(s.Rules()))
	return s, nil
}

// language resolves --lang to a catalog tag, or "" for the process default.
func (a *app) language() string {
	if a.lang == "" {
		return ""
	}
	return i18n.Normalize(a.lang)
}
