package mcpserver

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liftableDoc = `
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

func TestHandleLift_Content(t *testing.T) {
	res, out, err := handleLift(context.Background(), nil, liftInput{
		Spec:            specInput{Content: liftableDoc},
		IncludeDocument: true,
	})
	require.NoError(t, err)
	assert.Nil(t, res, "unexpected tool error result")

	assert.Equal(t, 1, out.RegisteredCount)
	require.Len(t, out.Registered, 1)
	assert.Equal(t, "getDraft.Drafts.One", out.Registered[0].Name)
	assert.Equal(t, "yaml", out.Format)
	assert.Contains(t, out.Document, "#/components/schemas/getDraft.Drafts.One")
}

func TestHandleLift_DryRunOmitsDocument(t *testing.T) {
	res, out, err := handleLift(context.Background(), nil, liftInput{
		Spec:            specInput{Content: liftableDoc},
		DryRun:          true,
		IncludeDocument: true,
	})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, 1, out.RegisteredCount)
	assert.Empty(t, out.Document)
}

func TestHandleLift_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifted.yaml")
	res, out, err := handleLift(context.Background(), nil, liftInput{
		Spec:   specInput{Content: liftableDoc},
		Output: path,
	})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, path, out.WrittenTo)
	assert.FileExists(t, path)
}

func TestHandleLift_InvalidDocument(t *testing.T) {
	res, _, err := handleLift(context.Background(), nil, liftInput{
		Spec: specInput{Content: "openapi: 2.0.0\npaths: {}\n"},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestLiftSource_Validation(t *testing.T) {
	_, err := liftSource(specInput{})
	assert.Error(t, err)

	_, err = liftSource(specInput{File: "a.yaml", Content: "openapi: 3.0.0"})
	assert.Error(t, err)

	opt, err := liftSource(specInput{File: "a.yaml"})
	require.NoError(t, err)
	assert.NotNil(t, opt)
}

func TestSanitizeError(t *testing.T) {
	err := errors.New("failed to read /home/user/secret/api.yaml: no such file")
	assert.NotContains(t, sanitizeError(err), "/home/user")
	assert.Contains(t, sanitizeError(err), "<path>")
	assert.Equal(t, "", sanitizeError(nil))
}
