package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	j "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/reoring/skema"
	"github.com/reoring/skema/metrics"
	"github.com/reoring/skema/source"
)

// errInvalid is returned when at least one document failed validation.
var errInvalid = errors.New("validation failed")

type validateOpts struct {
	schema     string
	format     string
	collectAll bool
	metrics    bool
}

func newValidateCmd(a *app) *cobra.Command {
	var o validateOpts
	cmd := &cobra.Command{
		Use:   "validate --schema FILE [INPUT...]",
		Short: "Check documents against a schema file",
		Long: `Reads each INPUT (or stdin when none is given) as JSON or YAML and parses it
with the schema. Valid documents print their parsed value; invalid ones print
one line per issue. The command fails when any document is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.schema, "schema", "s", "", "schema file (YAML or JSON)")
	f.StringVarP(&o.format, "format", "f", "auto", "input format: auto, json or yaml")
	f.BoolVar(&o.collectAll, "collect-all", false, "report every failing array element instead of the first")
	f.BoolVar(&o.metrics, "metrics", false, "print Prometheus metrics to stderr when done")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, o validateOpts, args []string) error {
	format, err := source.ParseFormat(o.format)
	if err != nil {
		return err
	}
	s, err := a.loadSchema(o.schema)
	if err != nil {
		return fmt.Errorf("schema %s: %w", o.schema, err)
	}

	collector := metrics.NewCollector("skema")
	parser := collector.WrapNamed(o.schema, s)

	ctx := skema.WithLanguage(cmd.Context(), a.language())
	ctx = skema.WithCollectAll(ctx, o.collectAll)

	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := 0
	for _, name := range args {
		ok, err := a.validateOne(ctx, parser, name, format)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}

	if o.metrics {
		if err := writeMetrics(a.stderr, collector); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", errInvalid, failed, len(args))
	}
	return nil
}

// validateOne parses a single input. The boolean reports validity; the error
// is reserved for I/O problems and misconfigured schemas.
func (a *app) validateOne(ctx context.Context, p skema.Parser, name string, format source.Format) (bool, error) {
	var r io.Reader = a.stdin
	label := "<stdin>"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return false, err
		}
		defer f.Close()
		r, label = f, name
	}
	doc, err := source.Read(r, source.Options{Format: format, Name: name, MaxBytes: a.maxBytes})
	if err != nil {
		return false, fmt.Errorf("%s: %w", label, err)
	}

	start := time.Now()
	out, err := p.ParseAny(ctx, doc)
	a.logger.Debug("parsed", "schema", p.Name(), "input", label, "outcome", metrics.Outcome(err), "elapsed", time.Since(start))
	if err != nil {
		iss, ok := skema.AsIssues(err)
		if !ok {
			a.logger.Error("schema error", "input", label, "error", err)
			return false, err
		}
		a.logger.Info("invalid", "input", label, "issues", len(iss))
		for _, it := range iss {
			fmt.Fprintf(a.stdout, "%s: %s %s: %s\n", label, it.Path, it.Code, it.Message)
		}
		return false, nil
	}
	b, err := j.Marshal(out)
	if err != nil {
		return false, fmt.Errorf("%s: encode result: %w", label, err)
	}
	fmt.Fprintf(a.stdout, "%s: ok %s\n", label, b)
	return true, nil
}

func writeMetrics(w io.Writer, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
