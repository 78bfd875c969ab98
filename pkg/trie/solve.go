package trie

import (
	"strings"

	"github.com/samber/lo"
)

type solveFrame struct {
	node      *Node
	stem      string
	hasCenter bool
}

// SolveDefault runs Solve with the first letter of letters as the center.
func (t *Trie) SolveDefault(letters string) ([]string, error) {
	set := []rune(strings.ToLower(letters))
	if len(set) == 0 {
		return nil, ErrNoLetters
	}
	return t.Solve(letters, set[0])
}

// Solve returns, in sorted order, every stored word spelled only with
// letters that contains center at least once. Letters may repeat in a
// word; duplicates in letters are ignored.
func (t *Trie) Solve(letters string, center rune) ([]string, error) {
	set := lo.Uniq([]rune(strings.ToLower(letters)))
	if len(set) == 0 {
		return nil, ErrNoLetters
	}
	center = []rune(strings.ToLower(string(center)))[0]
	if !lo.Contains(set, center) {
		return nil, ErrCenterNotInLetters
	}

	allowed := make(map[rune]struct{}, len(set))
	for _, r := range set {
		allowed[r] = struct{}{}
	}

	var words []string
	stack := []solveFrame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.terminal && f.hasCenter {
			words = append(words, f.stem)
		}
		symbols := f.node.sortedSymbols()
		for i := len(symbols) - 1; i >= 0; i-- {
			r := symbols[i]
			if _, ok := allowed[r]; !ok {
				continue
			}
			stack = append(stack, solveFrame{
				node:      f.node.children[r],
				stem:      f.stem + string(r),
				hasCenter: f.hasCenter || r == center,
			})
		}
	}
	return words, nil
}
