package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"drafts", "Drafts"},
		{"line-items", "LineItems"},
		{"lineItems", "LineItems"},
		{"line_items", "LineItems"},
		{"{draftId}", "DraftId"},
		{"{id}", "Id"},
		{"v2", "V2"},
		{"api.v2", "ApiV2"},
		{"already", "Already"},
		{"Estimate", "Estimate"},
		{"cost estimate", "CostEstimate"},
		{"weird!!chars", "Weirdchars"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleSegment(tt.input))
		})
	}
}
