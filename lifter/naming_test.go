package lifter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeName(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{
			name: "success response keeps no status segment",
			ctx:  Context{Operation: "getDraft", Status: "200", Path: []string{"v1", "proposals", "drafts", "{id}"}},
			want: "getDraft.V1.Proposals.Drafts.One",
		},
		{
			name: "request payload",
			ctx:  Context{Operation: "createEstimate", Payload: true, Path: []string{"estimates"}},
			want: "createEstimate.Payload.Estimates",
		},
		{
			name: "non-2xx status becomes a segment",
			ctx:  Context{Operation: "getJob", Status: "404", Path: []string{"jobs"}},
			want: "getJob.404.Jobs",
		},
		{
			name: "default response becomes a segment",
			ctx:  Context{Operation: "getJob", Status: "default", Path: []string{"jobs"}},
			want: "getJob.Default.Jobs",
		},
		{
			name: "2XX wildcard keeps no status segment",
			ctx:  Context{Operation: "getJob", Status: "2XX", Path: []string{"jobs"}},
			want: "getJob.Jobs",
		},
		{
			name: "id segments normalize to One",
			ctx:  Context{Operation: "getJob", Status: "200", Path: []string{"jobs", "{jobId}"}},
			want: "getJob.Jobs.One",
		},
		{
			name: "bare id normalizes to One",
			ctx:  Context{Operation: "getJob", Status: "200", Path: []string{"jobs", "{id}"}},
			want: "getJob.Jobs.One",
		},
		{
			name: "property names title-cased on camel boundaries",
			ctx:  Context{Operation: "listJobs", Status: "200", Path: []string{"jobs", "lineItems"}},
			want: "listJobs.Jobs.LineItems",
		},
		{
			name: "kebab segments title-cased",
			ctx:  Context{Operation: "listJobs", Status: "200", Path: []string{"cost-centers"}},
			want: "listJobs.CostCenters",
		},
		{
			name: "array item marker",
			ctx:  Context{Operation: "listJobs", Status: "200", Path: []string{"jobs", ArrayItemSegment}},
			want: "listJobs.Jobs.ArrayItem",
		},
		{
			name: "operation identity stays verbatim",
			ctx:  Context{Operation: "get", Status: "200", Path: []string{"jobs"}},
			want: "get.Jobs",
		},
		{
			name: "empty path elements skipped",
			ctx:  Context{Operation: "op", Status: "200", Path: []string{"", "jobs", ""}},
			want: "op.Jobs",
		},
		{
			name: "empty context falls back",
			ctx:  Context{},
			want: "UnnamedSchema",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synthesizeName(tt.ctx))
		})
	}
}

func TestSynthesizeName_Deterministic(t *testing.T) {
	ctx := Context{Operation: "getDraft", Status: "200", Path: []string{"v1", "drafts", "{id}"}}
	first := synthesizeName(ctx)
	for range 10 {
		assert.Equal(t, first, synthesizeName(ctx))
	}
}

func TestContextChild_NoAliasing(t *testing.T) {
	parent := Context{Operation: "op", Path: []string{"a"}}
	left := parent.Child("b")
	right := parent.Child("c")

	assert.Equal(t, []string{"a"}, parent.Path)
	assert.Equal(t, []string{"a", "b"}, left.Path)
	assert.Equal(t, []string{"a", "c"}, right.Path)
	assert.Equal(t, 2, left.Depth())
}

func TestContextString(t *testing.T) {
	resp := Context{Operation: "getDraft", Status: "200", Path: []string{"v1", "drafts"}}
	assert.Equal(t, "getDraft 200 /v1/drafts", resp.String())

	payload := Context{Operation: "createDraft", Payload: true, Path: []string{"v1", "drafts"}}
	assert.Equal(t, "createDraft payload /v1/drafts", payload.String())
}
