package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemalift/lifter"
)

const testDoc = `
openapi: 3.0.0
info:
  title: Drafts
  version: 1.0.0
paths:
  /drafts/{id}:
    get:
      operationId: getDraft
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: object
                properties:
                  title:
                    type: string
`

func TestHandleLift_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "api.yaml")
	out := filepath.Join(dir, "lifted.yaml")
	require.NoError(t, os.WriteFile(in, []byte(testDoc), 0o644))

	require.NoError(t, handleLift([]string{"-o", out, "-q", in}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#/components/schemas/getDraft.Drafts.One")
}

func TestHandleLift_ArgumentValidation(t *testing.T) {
	err := handleLift([]string{"-q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one input file")

	err = handleLift([]string{"-q", "a.yaml", "b.yaml"})
	require.Error(t, err)
}

func TestHandleLift_MissingFile(t *testing.T) {
	err := handleLift([]string{"-q", filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &lifter.LiftResult{
		Registered: []lifter.RegisteredSchema{
			{Name: "getDraft.Drafts.One", Contexts: []string{"getDraft 200 /drafts/{id}"}},
		},
		Renames: []lifter.Rename{{From: "a.B.C", To: "a.C"}},
	})
	out := buf.String()
	assert.Contains(t, out, "Registered 1 schema(s)")
	assert.Contains(t, out, "getDraft.Drafts.One (1 usage(s))")
	assert.Contains(t, out, "a.B.C -> a.C")
}
