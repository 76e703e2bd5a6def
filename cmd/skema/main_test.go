package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nameSchema = `
type: string
array: true
rules:
  - trim
  - min: 2
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_ValidAndInvalid(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "names.yaml", nameSchema)
	good := writeFile(t, dir, "good.json", `[" ada ", "bob"]`)
	bad := writeFile(t, dir, "bad.yaml", "- ada\n- x\n")

	out, _, err := run(t, "", "validate", "--schema", schema, good)
	require.NoError(t, err)
	assert.Equal(t, good+`: ok ["ada","bob"]`+"\n", out)

	out, _, err = run(t, "", "validate", "--schema", schema, good, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalid))
	assert.Contains(t, out, bad+": /1 too_short: must have a minimum length of 2")
}

func TestValidate_StdinCollectAllAndMetrics(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "names.yaml", nameSchema)

	out, errOut, err := run(t, `["a","ok","b"]`, "validate", "-s", schema, "--collect-all", "--metrics")
	require.Error(t, err)
	assert.Contains(t, out, "<stdin>: /0 too_short")
	assert.Contains(t, out, "<stdin>: /2 too_short")
	assert.Contains(t, errOut, `skema_parses_total{outcome="invalid",schema="`+schema+`"} 1`)
	assert.Contains(t, errOut, `skema_issues_total{code="too_short",schema="`+schema+`"} 2`)
}

func TestValidate_Language(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "s.yaml", "type: string\n")

	out, _, err := run(t, "42", "validate", "-s", schema, "--lang", "ja-JP", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, out, "<stdin>: / invalid_type: 文字列である必要があります")
}

func TestValidate_MissingSchemaFlag(t *testing.T) {
	_, _, err := run(t, "", "validate")
	require.Error(t, err)
}

func TestJSONSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "names.yaml", nameSchema)

	out, _, err := run(t, "", "jsonschema", "--schema", schema)
	require.NoError(t, err)
	assert.Contains(t, out, `"$schema"`)
	assert.Contains(t, out, `"type": "array"`)
	assert.Contains(t, out, `"minLength": 2`)
}

func TestRules(t *testing.T) {
	_, _, err := run(t, "", "rules", "string", "codec")
	require.Error(t, err, "codec rules are not part of the dsl registry")

	out, _, err := run(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "core: refine, transform\n")
	assert.Contains(t, out, "enum: enum\n")
	assert.Contains(t, out, "types: ")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "skema version "))
}
