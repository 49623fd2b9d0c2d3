package neovim

import (
	"fmt"
	"strings"

	appErrors "syntinct/internal/errors"
)

// Validate checks that every link target is itself in the table and that
// following links from any group ends at a value. It is a consistency check
// for tests and the check command; New never produces a table that fails it.
func (t *Theme) Validate() error {
	entries := t.Entries()

	for _, e := range entries {
		target, ok := e.Highlight.Target()
		if !ok {
			continue
		}
		if _, exists := t.highlights[target]; !exists {
			return danglingLinkError(e.Name, target)
		}
	}

	visited := make(map[Name]bool)
	onStack := make(map[Name]bool)

	var visit func(n Name, stack []string) error
	visit = func(n Name, stack []string) error {
		if onStack[n] {
			return cyclicLinkError(append(stack, n.String()))
		}
		if visited[n] {
			return nil
		}
		onStack[n] = true
		stack = append(stack, n.String())
		if target, ok := t.highlights[n].Target(); ok {
			if err := visit(target, stack); err != nil {
				return err
			}
		}
		onStack[n] = false
		visited[n] = true
		return nil
	}

	for _, e := range entries {
		if err := visit(e.Name, nil); err != nil {
			return err
		}
	}
	return nil
}

func danglingLinkError(from, to Name) error {
	return appErrors.New(appErrors.CodeDanglingLink,
		fmt.Sprintf("%s links to %s, which is not defined", from, to), nil)
}

func cyclicLinkError(path []string) error {
	return appErrors.New(appErrors.CodeCyclicLink,
		"cyclic link detected: "+strings.Join(path, " -> "), nil)
}
