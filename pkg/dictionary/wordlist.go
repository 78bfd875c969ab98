package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/log"
)

// ImportWordList inserts each valid line of r with score 0. Lines are
// normalized first; those shorter than minLen or holding non-letters are
// skipped. It returns the number of words inserted.
func ImportWordList(t *trie.Trie, r io.Reader, minLen int) (int, error) {
	scanner := bufio.NewScanner(r)
	added, skipped := 0, 0
	for scanner.Scan() {
		word := utils.NormalizeWord(scanner.Text())
		if !utils.IsValidWord(word, minLen) {
			skipped++
			continue
		}
		if err := t.Insert(word, 0); err != nil {
			log.Debugf("Skipping word list entry: %v", err)
			skipped++
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read word list: %w", err)
	}
	log.Debugf("Word list import: %d added, %d skipped", added, skipped)
	return added, nil
}

// ReadWordListFile imports the word list at path.
func ReadWordListFile(t *trie.Trie, path string, minLen int) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer file.Close()
	return ImportWordList(t, file, minLen)
}
