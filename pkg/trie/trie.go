// Package trie is the core of beedazzle: a scored prefix tree and the two
// searches that run over it, letter-set solving and edit-budget fuzzy lookup.
//
// A Trie has no internal locking. Mutations (Insert, AdjustScore and the
// accept/reject helpers) must not run while a traversal is in progress.
package trie

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// MinimumScore is the lowest score a word may have and still be exported.
	MinimumScore = -2
	// MaxWordLength caps the letters in a stored word or query, which bounds
	// traversal depth.
	MaxWordLength = 64
)

// Trie owns the root node of the vocabulary.
type Trie struct {
	root  *Node
	words int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode(0)}
}

// Root exposes the root node for read-only walks.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.words
}

// IsEmpty reports whether nothing was ever inserted.
func (t *Trie) IsEmpty() bool {
	return len(t.root.children) == 0
}

// Insert stores word with score, creating any missing nodes. Inserting an
// existing word overwrites its score. The empty word is ignored.
func (t *Trie) Insert(word string, score int) error {
	if word == "" {
		return nil
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return fmt.Errorf("insert %q: %w", word, ErrWordTooLong)
	}

	cur := t.root
	for _, r := range strings.ToLower(word) {
		next := cur.children[r]
		if next == nil {
			next = newNode(r)
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		t.words++
	}
	cur.terminal = true
	cur.score = score
	return nil
}

func (t *Trie) lookup(word string) *Node {
	end := t.root.walk([]rune(strings.ToLower(word)))
	if end == nil || !end.terminal {
		return nil
	}
	return end
}

// Contains reports whether word is stored, whatever its score.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	return t.lookup(word) != nil
}

// Score returns the score of a stored word.
func (t *Trie) Score(word string) (int, bool) {
	n := t.lookup(word)
	if n == nil {
		return 0, false
	}
	return n.score, true
}

// AdjustScore adds delta to the score of a stored word.
func (t *Trie) AdjustScore(word string, delta int) error {
	n := t.lookup(word)
	if n == nil {
		return fmt.Errorf("adjust %q: %w", word, ErrNotFound)
	}
	n.score += delta
	return nil
}

// AcceptWord stores word if needed and raises its score by one.
func (t *Trie) AcceptWord(word string) error {
	if !t.Contains(word) {
		log.Debugf("accepting new word %q", word)
		if err := t.Insert(word, 0); err != nil {
			return err
		}
	}
	return t.AdjustScore(word, 1)
}

// RejectWord lowers the score of a stored word by one. It never inserts.
func (t *Trie) RejectWord(word string) error {
	return t.AdjustScore(word, -1)
}

type frame struct {
	node *Node
	stem string
}

// visit calls fn for every terminal node in depth-first, symbol order.
// The walk keeps its own stack so long words do not grow the call stack.
func (t *Trie) visit(fn func(stem string, n *Node)) {
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.terminal {
			fn(f.stem, f.node)
		}
		symbols := f.node.sortedSymbols()
		for i := len(symbols) - 1; i >= 0; i-- {
			r := symbols[i]
			stack = append(stack, frame{node: f.node.children[r], stem: f.stem + string(r)})
		}
	}
}

// Export returns every word whose score is at least MinimumScore.
func (t *Trie) Export() map[string]int {
	out := make(map[string]int, t.words)
	t.visit(func(stem string, n *Node) {
		if n.score >= MinimumScore {
			out[stem] = n.score
		}
	})
	return out
}

// Dump returns every stored word in sorted order, ignoring scores.
func (t *Trie) Dump() []string {
	out := make([]string, 0, t.words)
	t.visit(func(stem string, _ *Node) {
		out = append(out, stem)
	})
	return out
}
