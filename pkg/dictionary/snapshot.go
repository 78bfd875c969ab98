// Package dictionary moves vocabularies in and out of a trie: score
// snapshots (JSON or msgpack) and plain word lists.
package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the flat word -> score form of a trie.
type Snapshot map[string]int

// DecodeSnapshot reads a whole snapshot from r.
func DecodeSnapshot(r io.Reader, format FileFormat) (Snapshot, error) {
	snap := Snapshot{}
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("decode json snapshot: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
			return nil, fmt.Errorf("decode msgpack snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %s", format)
	}
	return snap, nil
}

// EncodeSnapshot writes snap to w. Keys are written in sorted order.
func EncodeSnapshot(w io.Writer, snap Snapshot, format FileFormat) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(snap)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return enc.Encode(map[string]int(snap))
	default:
		return fmt.Errorf("unsupported snapshot format: %s", format)
	}
}

// ImportSnapshot inserts every entry of r into t and returns how many were read.
func ImportSnapshot(t *trie.Trie, r io.Reader, format FileFormat) (int, error) {
	snap, err := DecodeSnapshot(r, format)
	if err != nil {
		return 0, err
	}
	for word, score := range snap {
		if err := t.Insert(word, score); err != nil {
			return 0, fmt.Errorf("import snapshot: %w", err)
		}
	}
	return len(snap), nil
}

// ReadSnapshotFile imports the snapshot at path into t. A missing file is
// not an error and imports nothing.
func ReadSnapshotFile(t *trie.Trie, path string) (int, error) {
	format, err := DetectSnapshotFormat(path)
	if err != nil {
		return 0, err
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No snapshot at %s, starting empty", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer file.Close()

	n, err := ImportSnapshot(t, file, format)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d words from snapshot %s", n, path)
	return n, nil
}

// SaveSnapshot overwrites path with the exportable contents of t.
func SaveSnapshot(t *trie.Trie, path string) error {
	format, err := DetectSnapshotFormat(path)
	if err != nil {
		return err
	}
	snap := Snapshot(t.Export())
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap, format); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	log.Debugf("Saved %d words to snapshot %s", len(snap), path)
	return nil
}
