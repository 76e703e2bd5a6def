package metrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/metrics"
)

func TestWrap_CountsOutcomes(t *testing.T) {
	c := metrics.NewCollector("skema")
	p := c.Wrap(dsl.String().Min(2).Schema)
	ctx := context.Background()

	_, err := p.ParseAny(ctx, "ok")
	require.NoError(t, err)
	_, err = p.ParseAny(ctx, "fine")
	require.NoError(t, err)
	_, err = p.ParseAny(ctx, "x")
	require.Error(t, err)

	want := `
# HELP skema_parses_total Parse calls by schema and outcome.
# TYPE skema_parses_total counter
skema_parses_total{outcome="invalid",schema="string"} 1
skema_parses_total{outcome="ok",schema="string"} 2
# HELP skema_issues_total Validation issues by schema and issue code.
# TYPE skema_issues_total counter
skema_issues_total{code="too_short",schema="string"} 1
`
	err = testutil.CollectAndCompare(c, strings.NewReader(want), "skema_parses_total", "skema_issues_total")
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CollectAndCount(c, "skema_parse_duration_seconds"))
}

func TestWrap_DelegatesNameAndSchema(t *testing.T) {
	c := metrics.NewCollector("")
	inner := dsl.Email().Schema
	p := c.WrapNamed("signup_email", inner)

	assert.Equal(t, "string", p.Name())
	doc, err := p.JSONSchema()
	require.NoError(t, err)
	assert.Equal(t, "email", doc.Format)
}

func TestCollector_Registers(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := metrics.NewCollector("skema")
	require.NoError(t, reg.Register(c))

	c.Observe("manual", time.Millisecond, nil)
	n, err := testutil.GatherAndCount(reg, "skema_parses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeOK, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeInvalid, metrics.Outcome(skema.Issues{{Code: skema.CodeCustom}}))
	assert.Equal(t, metrics.OutcomeInternal, metrics.Outcome(&skema.InternalError{Err: skema.ErrUnknownRule}))
	assert.Equal(t, metrics.OutcomeInternal, metrics.Outcome(errors.New("boom")))
}
