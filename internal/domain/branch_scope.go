package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// AllBranchesValue is the wire value selecting every branch
const AllBranchesValue = "--all"

// BranchScope selects which part of the history is analyzed: every branch or a single named one
type BranchScope struct {
	branch string
}

// AllBranches returns the scope covering every branch
func AllBranches() BranchScope {
	return BranchScope{}
}

// SingleBranch returns a scope limited to one branch. Use ParseBranchScope for untrusted input.
func SingleBranch(name string) BranchScope {
	return BranchScope{branch: name}
}

// ParseBranchScope converts user input into a BranchScope.
// Empty, "all" and "--all" select every branch. Names starting with "-" are rejected
// so they can never be mistaken for git options.
func ParseBranchScope(value string) (BranchScope, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "all", AllBranchesValue:
		return AllBranches(), nil
	}
	if err := validateBranchName(value); err != nil {
		return BranchScope{}, fmt.Errorf("%w: %q: %v", ErrInvalidBranchScope, value, err)
	}
	return SingleBranch(value), nil
}

// gitProhibitedChars are characters git-check-ref-format refuses in ref names
var gitProhibitedChars = regexp.MustCompile(`[\s~^:?*\[\\]`)

// validateBranchName applies git's ref naming rules to a branch name.
// A leading '-' is refused so the name can never be parsed as an option.
func validateBranchName(name string) error {
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-'")
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "/") {
		return fmt.Errorf("branch name cannot start with '.' or '/'")
	}
	if strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot end with '.lock', '.' or '/'")
	}
	if strings.Contains(name, "..") || strings.Contains(name, "//") || strings.Contains(name, "@{") {
		return fmt.Errorf("branch name cannot contain '..', '//' or '@{'")
	}
	if name == "@" {
		return fmt.Errorf("branch name cannot be '@'")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("branch name cannot contain control characters")
		}
	}
	if gitProhibitedChars.MatchString(name) {
		return fmt.Errorf("branch name cannot contain whitespace or any of ~ ^ : ? * [ \\")
	}
	return nil
}

// IsAll reports whether the scope covers every branch
func (s BranchScope) IsAll() bool {
	return s.branch == ""
}

// Branch returns the branch name, empty for the all-branches scope
func (s BranchScope) Branch() string {
	return s.branch
}

// Value returns the wire representation ("--all" or the branch name)
func (s BranchScope) Value() string {
	if s.IsAll() {
		return AllBranchesValue
	}
	return s.branch
}

// Display returns the human readable form
func (s BranchScope) Display() string {
	if s.IsAll() {
		return "all branches"
	}
	return s.branch
}

func (s BranchScope) String() string {
	return s.Display()
}
