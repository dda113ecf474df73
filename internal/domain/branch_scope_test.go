package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBranchScope(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantAll     bool
		wantBranch  string
		wantDisplay string
		wantErr     bool
	}{
		{name: "empty selects all", input: "", wantAll: true, wantDisplay: "all branches"},
		{name: "all keyword", input: "all", wantAll: true, wantDisplay: "all branches"},
		{name: "all flag", input: "--all", wantAll: true, wantDisplay: "all branches"},
		{name: "named branch", input: "main", wantBranch: "main", wantDisplay: "main"},
		{name: "branch with slash", input: "feature/login", wantBranch: "feature/login", wantDisplay: "feature/login"},
		{name: "surrounding whitespace trimmed", input: "  develop ", wantBranch: "develop", wantDisplay: "develop"},
		{name: "option injection rejected", input: "--output=/tmp/x", wantErr: true},
		{name: "single dash rejected", input: "-p", wantErr: true},
		{name: "inner whitespace rejected", input: "a b", wantErr: true},
		{name: "double dot rejected", input: "feature..x", wantErr: true},
		{name: "lock suffix rejected", input: "main.lock", wantErr: true},
		{name: "revision syntax rejected", input: "main~1", wantErr: true},
		{name: "reflog syntax rejected", input: "main@{1}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ParseBranchScope(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBranchScope)
				assert.True(t, IsInputError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, scope.IsAll())
			assert.Equal(t, tt.wantBranch, scope.Branch())
			assert.Equal(t, tt.wantDisplay, scope.Display())
		})
	}
}

func TestBranchScopeValue(t *testing.T) {
	assert.Equal(t, "--all", AllBranches().Value())
	assert.Equal(t, "main", SingleBranch("main").Value())
}
