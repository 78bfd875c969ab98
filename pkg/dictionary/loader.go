package dictionary

import (
	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/log"
)

// Options controls where Load looks for words.
type Options struct {
	SnapshotPath  string
	WordListPath  string
	MinWordLength int
}

// Load builds the trie used for a session. The snapshot is read first;
// when it is missing or empty the word list seeds the trie instead. A
// malformed snapshot is returned as an error.
func Load(opts Options) (*trie.Trie, error) {
	t := trie.New()

	if opts.SnapshotPath != "" {
		if _, err := ReadSnapshotFile(t, opts.SnapshotPath); err != nil {
			return nil, err
		}
	}
	if !t.IsEmpty() {
		return t, nil
	}

	if opts.WordListPath == "" || !utils.FileExists(opts.WordListPath) {
		log.Warnf("No snapshot or word list found, running with empty dict...")
		return t, nil
	}
	n, err := ReadWordListFile(t, opts.WordListPath, opts.MinWordLength)
	if err != nil {
		return nil, err
	}
	log.Debugf("Seeded %d words from word list %s", n, opts.WordListPath)
	return t, nil
}
