package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRecord_Grouped(t *testing.T) {
	tests := []struct {
		name    string
		groupID string
		grouped bool
	}{
		{"empty group is ungrouped", "", false},
		{"pid set", "home", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PageRecord{GroupID: tt.groupID}
			assert.Equal(t, tt.grouped, p.Grouped())
		})
	}
}

func TestPageRecord_GroupedIgnoresMeta(t *testing.T) {
	// Only the indexed GroupID counts, not the raw metadata.
	p := &PageRecord{Meta: PageMetadata{GroupID: "home"}}
	assert.False(t, p.Grouped())
}
