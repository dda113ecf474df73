package git

import (
	"sort"
	"strconv"
	"strings"
)

// parseNumstat sums the added and deleted columns of `git log --numstat` output.
// Binary entries ("-") and unparsable fields count as zero.
func parseNumstat(output string) (added, deleted int) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			fields = strings.Fields(line)
		}
		if len(fields) < 2 {
			continue
		}
		added += parseCount(fields[0])
		deleted += parseCount(fields[1])
	}
	return added, deleted
}

// parseCount converts a numeric field, mapping "-" and garbage to zero
func parseCount(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseRefNames converts `git for-each-ref --format=%(refname)` output to short
// branch names. Remote prefixes are stripped, HEAD is dropped, and duplicates keep
// their first position so local branches come first.
func parseRefNames(output string) []string {
	seen := make(map[string]struct{})
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		name, ok := shortRefName(strings.TrimSpace(line))
		if !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		branches = append(branches, name)
	}
	return branches
}

// parseRefTargets maps each short branch name to the full ref git log can resolve.
// A local head wins over remote-tracking refs of the same name; among remotes the
// first listed wins.
func parseRefTargets(output string) map[string]string {
	targets := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		ref := strings.TrimSpace(line)
		name, ok := shortRefName(ref)
		if !ok {
			continue
		}
		current, exists := targets[name]
		if !exists || (strings.HasPrefix(ref, "refs/heads/") && !strings.HasPrefix(current, "refs/heads/")) {
			targets[name] = ref
		}
	}
	return targets
}

// shortRefName strips refs/heads/ or refs/remotes/<remote>/ from ref
func shortRefName(ref string) (string, bool) {
	var name string
	switch {
	case strings.HasPrefix(ref, "refs/heads/"):
		name = strings.TrimPrefix(ref, "refs/heads/")
	case strings.HasPrefix(ref, "refs/remotes/"):
		rest := strings.TrimPrefix(ref, "refs/remotes/")
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", false
		}
		name = rest[slash+1:]
	default:
		return "", false
	}
	if name == "" || name == "HEAD" {
		return "", false
	}
	return name, true
}

// parseLineCount counts non-empty lines, one per commit in `git log --format=%H` output
func parseLineCount(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// parseAuthors returns distinct, non-empty author names sorted ascending
func parseAuthors(output string) []string {
	seen := make(map[string]struct{})
	authors := []string{}
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		authors = append(authors, name)
	}
	sort.Strings(authors)
	return authors
}
