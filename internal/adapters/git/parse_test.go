package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantAdded   int
		wantDeleted int
	}{
		{name: "empty", output: "", wantAdded: 0, wantDeleted: 0},
		{
			name:        "text files summed",
			output:      "10\t2\tmain.go\n5\t0\tREADME.md\n",
			wantAdded:   15,
			wantDeleted: 2,
		},
		{
			name:        "binary files count zero",
			output:      "-\t-\tlogo.png\n3\t1\tmain.go\n",
			wantAdded:   3,
			wantDeleted: 1,
		},
		{
			name:        "blank lines between commits ignored",
			output:      "\n1\t1\ta.go\n\n\n2\t2\tb.go\n",
			wantAdded:   3,
			wantDeleted: 3,
		},
		{
			name:        "unparsable fields count zero",
			output:      "abc\t4\tweird.go\n7\txyz\tother.go\n",
			wantAdded:   7,
			wantDeleted: 4,
		},
		{
			name:        "renames keep counts",
			output:      "4\t1\tsrc/{old => new}/file.go\n",
			wantAdded:   4,
			wantDeleted: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, deleted := parseNumstat(tt.output)

			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 12, parseCount("12\n"))
	assert.Equal(t, 0, parseCount("-"))
	assert.Equal(t, 0, parseCount(""))
	assert.Equal(t, 0, parseCount("-4"))
}

func TestParseRefNames(t *testing.T) {
	output := "refs/heads/main\nrefs/heads/feature/login\nrefs/remotes/origin/HEAD\nrefs/remotes/origin/main\nrefs/remotes/origin/release\nrefs/remotes/upstream/feature/login\nrefs/remotes/broken\n"

	assert.Equal(t, []string{"main", "feature/login", "release"}, parseRefNames(output))
}

func TestParseRefNamesEmpty(t *testing.T) {
	assert.Equal(t, []string{}, parseRefNames(""))
}

func TestParseAuthors(t *testing.T) {
	output := "bob\nalice\n\nbob\n  carol  \nalice\n"

	assert.Equal(t, []string{"alice", "bob", "carol"}, parseAuthors(output))
}

func TestParseRefTargets(t *testing.T) {
	output := "refs/heads/main\nrefs/remotes/origin/HEAD\nrefs/remotes/origin/main\nrefs/remotes/origin/feature\nrefs/remotes/upstream/feature\nrefs/remotes/upstream/release\nrefs/heads/release\n"

	assert.Equal(t, map[string]string{
		"main":    "refs/heads/main",
		"feature": "refs/remotes/origin/feature",
		"release": "refs/heads/release",
	}, parseRefTargets(output))
}

func TestParseLineCount(t *testing.T) {
	assert.Equal(t, 0, parseLineCount(""))
	assert.Equal(t, 3, parseLineCount("a1\n\nb2\nc3\n"))
}
