package trie

import "sort"

// Node is a single letter in the trie. A node owns its children and
// carries a score only when it ends a word.
type Node struct {
	symbol   rune
	children map[rune]*Node
	terminal bool
	score    int
}

func newNode(symbol rune) *Node {
	return &Node{
		symbol:   symbol,
		children: make(map[rune]*Node),
	}
}

// Symbol returns the letter stored at n, or 0 for the root.
func (n *Node) Symbol() rune {
	return n.symbol
}

// Terminal reports whether a word ends at n.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Score is only meaningful when Terminal is true.
func (n *Node) Score() int {
	return n.score
}

// Child returns the child for symbol, or nil.
func (n *Node) Child(symbol rune) *Node {
	return n.children[symbol]
}

// sortedSymbols returns the child keys in ascending order so traversals
// produce stable output.
func (n *Node) sortedSymbols() []rune {
	symbols := make([]rune, 0, len(n.children))
	for r := range n.children {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// walk follows path from n and returns the node it ends on, or nil.
func (n *Node) walk(path []rune) *Node {
	cur := n
	for _, r := range path {
		cur = cur.children[r]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// hasWord reports whether suffix, read from n, ends on a terminal.
func (n *Node) hasWord(suffix []rune) bool {
	end := n.walk(suffix)
	return end != nil && end.terminal
}
