package trie

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// MaxEditBudget is the largest edit budget FindByEditDistance accepts.
// Work grows exponentially with the budget.
const MaxEditBudget = 4

// editSearch carries the state shared by one FindByEditDistance call.
type editSearch struct {
	found map[string]struct{}
}

// FindByEditDistance returns the stored words reachable from query by
// spending exactly budget paid edits (insertion, deletion, substitution)
// interleaved with any number of free exact letter matches. The result is
// a sorted set.
//
// Once the budget is spent, the rest of the query must match a stored
// continuation exactly.
func (t *Trie) FindByEditDistance(query string, budget int) ([]string, error) {
	if budget < 0 || budget > MaxEditBudget {
		return nil, fmt.Errorf("budget %d: %w", budget, ErrBudgetOutOfRange)
	}
	q := []rune(strings.ToLower(query))
	if len(q) > MaxWordLength {
		return nil, fmt.Errorf("query %q: %w", query, ErrWordTooLong)
	}

	s := &editSearch{found: make(map[string]struct{})}
	s.search(t.root, q, "", budget)

	words := lo.Keys(s.found)
	sort.Strings(words)
	return words, nil
}

func (s *editSearch) accept(word string) {
	if word != "" {
		s.found[word] = struct{}{}
	}
}

// search explores n with rest still to be consumed and budget edits left.
// Depth is bounded by len(rest)+budget.
func (s *editSearch) search(n *Node, rest []rune, stem string, budget int) {
	if budget == 0 {
		if n.hasWord(rest) {
			s.accept(stem + string(rest))
		}
		return
	}

	// free exact continuation
	if len(rest) > 0 {
		if child := n.children[rest[0]]; child != nil {
			s.search(child, rest[1:], stem+string(rest[0]), budget)
		}
	}

	for _, r := range n.sortedSymbols() {
		child := n.children[r]
		// insertion: the word has a letter the query lacks
		s.search(child, rest, stem+string(r), budget-1)
		// substitution: consume a query letter for whatever the child holds
		if len(rest) > 0 {
			s.search(child, rest[1:], stem+string(r), budget-1)
		}
	}

	// deletion: the current query letter is extraneous
	switch {
	case len(rest) >= 2:
		if child := n.children[rest[1]]; child != nil {
			s.search(child, rest[2:], stem+string(rest[1]), budget-1)
		}
	case len(rest) == 1:
		if n.terminal {
			s.accept(stem)
		}
	}
}
