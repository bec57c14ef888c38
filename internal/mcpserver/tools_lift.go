package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemalift/lifter"
	"github.com/erraggy/schemalift/parser"
)

// specInput represents the two ways a document can be provided to the lift
// tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI 3.x file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI 3.x document content (JSON or YAML)"`
}

type liftInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OpenAPI document to lift"`
	DryRun          bool      `json:"dry_run,omitempty"          jsonschema:"Report registered names and renames without producing the rewritten document"`
	IncludeDocument bool      `json:"include_document,omitempty" jsonschema:"Include the full rewritten document in the output"`
	Output          string    `json:"output,omitempty"           jsonschema:"File path to write the rewritten document. If omitted the document is returned inline when include_document is true."`
}

type registeredSchema struct {
	Name     string   `json:"name"`
	Contexts []string `json:"contexts"`
}

type liftOutput struct {
	RegisteredCount int                `json:"registered_count"`
	Registered      []registeredSchema `json:"registered,omitempty"`
	Renames         []lifter.Rename    `json:"renames,omitempty"`
	Format          string             `json:"format"`
	WrittenTo       string             `json:"written_to,omitempty"`
	Document        string             `json:"document,omitempty"`
}

func handleLift(_ context.Context, _ *mcp.CallToolRequest, input liftInput) (*mcp.CallToolResult, liftOutput, error) {
	opt, err := liftSource(input.Spec)
	if err != nil {
		return errResult(err), liftOutput{}, nil
	}

	result, err := lifter.LiftWithOptions(opt)
	if err != nil {
		return errResult(err), liftOutput{}, nil
	}

	output := liftOutput{
		RegisteredCount: len(result.Registered),
		Format:          string(result.SourceFormat),
	}
	for _, reg := range result.Registered {
		output.Registered = append(output.Registered, registeredSchema{
			Name:     reg.Name,
			Contexts: reg.Contexts,
		})
	}
	output.Renames = result.Renames

	needsDocument := !input.DryRun && (input.Output != "" || input.IncludeDocument)
	if needsDocument {
		data, err := parser.Marshal(result.Document, result.SourceFormat)
		if err != nil {
			return errResult(err), liftOutput{}, nil
		}
		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, 0o644); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), liftOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}

// liftSource translates the MCP spec input into a lifter option, handling
// the two input modes (file, content).
func liftSource(spec specInput) (lifter.LiftOption, error) {
	switch {
	case spec.File != "" && spec.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	case spec.File != "":
		return lifter.WithFilePath(spec.File), nil
	case spec.Content != "":
		return lifter.WithBytes([]byte(spec.Content), ""), nil
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}
