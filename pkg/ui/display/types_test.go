package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyResultSummary(t *testing.T) {
	tests := []struct {
		name string
		res  ApplyResult
		want string
	}{
		{
			name: "new root",
			res:  ApplyResult{Root: "/data/fauna", Tree: "fauna", Mode: "create", Created: 12},
			want: "created 12 entries under new root /data/fauna",
		},
		{
			name: "dry run",
			res:  ApplyResult{Root: "/r", Tree: "t", Mode: "create", Created: 1, DryRun: true},
			want: "would create 1 entry under new root /r",
		},
		{
			name: "filled in",
			res:  ApplyResult{Root: "/data", Tree: "fauna", Mode: "verify", Created: 2},
			want: "created 2 entries missing under /data",
		},
		{
			name: "in sync",
			res:  ApplyResult{Root: "/data", Tree: "fauna", Mode: "verify"},
			want: "/data matches fauna",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.Summary())
		})
	}
}
