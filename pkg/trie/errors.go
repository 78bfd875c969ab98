package trie

import "errors"

var (
	// ErrNotFound is returned when a score change targets a word that is not stored.
	ErrNotFound = errors.New("trie: word not found")
	// ErrWordTooLong is returned for words or queries over MaxWordLength letters.
	ErrWordTooLong = errors.New("trie: word too long")
	// ErrNoLetters is returned by Solve for an empty letter set.
	ErrNoLetters = errors.New("trie: empty letter set")
	// ErrCenterNotInLetters is returned when the mandatory letter is missing from the set.
	ErrCenterNotInLetters = errors.New("trie: center letter not in letter set")
	// ErrBudgetOutOfRange is returned for edit budgets outside [0, MaxEditBudget].
	ErrBudgetOutOfRange = errors.New("trie: edit budget out of range")
)
