package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func sampleTrie(t *testing.T) *trie.Trie {
	t.Helper()
	tr := trie.New()
	for w, s := range map[string]int{"cat": 2, "cats": 0, "car": -3, "honey": 7} {
		require.NoError(t, tr.Insert(w, s))
	}
	return tr
}

func TestDetectFileFormat(t *testing.T) {
	testCases := []struct {
		name string
		want FileFormat
	}{
		{"words.json", FormatJSON},
		{"WORDS.JSON", FormatJSON},
		{"scores.msgpack", FormatMsgpack},
		{"scores.mpk", FormatMsgpack},
		{"words_alpha.txt", FormatText},
	}
	for _, tc := range testCases {
		got, err := DetectFileFormat(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	_, err := DetectFileFormat("words.csv")
	assert.Error(t, err)
	_, err = DetectSnapshotFormat("words.txt")
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, format := range []FileFormat{FormatJSON, FormatMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			tr := sampleTrie(t)
			var buf bytes.Buffer
			require.NoError(t, EncodeSnapshot(&buf, Snapshot(tr.Export()), format))

			rebuilt := trie.New()
			n, err := ImportSnapshot(rebuilt, &buf, format)
			require.NoError(t, err)
			assert.Equal(t, 3, n)
			assert.Equal(t, tr.Export(), rebuilt.Export())
			assert.False(t, rebuilt.Contains("car"))
		})
	}
}

func TestDecodeSnapshotJSON(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(`{"cat":2,"cats":0,"car":-3}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, Snapshot{"cat": 2, "cats": 0, "car": -3}, snap)

	tr := trie.New()
	_, err = ImportSnapshot(tr, strings.NewReader(`{"cat":2,"cats":0,"car":-3}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"cat": 2, "cats": 0}, tr.Export())
	assert.True(t, tr.Contains("car"))
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	for _, body := range []string{`{"cat": "two"}`, `["cat"]`, `{"cat": 1`, `{"cat": 1.5}`} {
		_, err := DecodeSnapshot(strings.NewReader(body), FormatJSON)
		assert.Error(t, err, body)
	}
	_, err := DecodeSnapshot(strings.NewReader("\xc1"), FormatMsgpack)
	assert.Error(t, err)
	_, err = DecodeSnapshot(strings.NewReader("{}"), FormatText)
	assert.Error(t, err)
}

func TestSnapshotFiles(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is empty", func(t *testing.T) {
		tr := trie.New()
		n, err := ReadSnapshotFile(tr, filepath.Join(dir, "absent.json"))
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.True(t, tr.IsEmpty())
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
		_, err := ReadSnapshotFile(trie.New(), path)
		assert.Error(t, err)
	})

	t.Run("save overwrites", func(t *testing.T) {
		path := filepath.Join(dir, "words.msgpack")
		tr := sampleTrie(t)
		require.NoError(t, SaveSnapshot(tr, path))

		require.NoError(t, tr.RejectWord("honey"))
		require.NoError(t, tr.AcceptWord("comb"))
		require.NoError(t, SaveSnapshot(tr, path))

		loaded := trie.New()
		_, err := ReadSnapshotFile(loaded, path)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"cat": 2, "cats": 0, "honey": 6, "comb": 1}, loaded.Export())
	})

	t.Run("json output is sorted", func(t *testing.T) {
		path := filepath.Join(dir, "sorted.json")
		require.NoError(t, SaveSnapshot(sampleTrie(t), path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\"cat\":2,\"cats\":0,\"honey\":7}\n", string(data))
	})
}

func TestImportWordList(t *testing.T) {
	input := "Apple\nbee\n  honey  \ndon't\nCafé\n\nstinger\nHONEY\n42abc\n"
	tr := trie.New()
	n, err := ImportWordList(tr, strings.NewReader(input), 4)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"apple", "cafe", "honey", "stinger"}, tr.Dump())
	assert.Equal(t, 4, tr.Len())
	for _, s := range tr.Export() {
		assert.Zero(t, s)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(listPath, []byte("hive\nqueen\nbee\n"), 0644))
	snapPath := filepath.Join(dir, "words.json")

	t.Run("falls back to word list", func(t *testing.T) {
		tr, err := Load(Options{SnapshotPath: snapPath, WordListPath: listPath, MinWordLength: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"hive", "queen"}, tr.Dump())
	})

	t.Run("prefers snapshot", func(t *testing.T) {
		require.NoError(t, os.WriteFile(snapPath, []byte(`{"drone":3}`), 0644))
		tr, err := Load(Options{SnapshotPath: snapPath, WordListPath: listPath, MinWordLength: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"drone"}, tr.Dump())
	})

	t.Run("empty snapshot falls back", func(t *testing.T) {
		require.NoError(t, os.WriteFile(snapPath, []byte(`{}`), 0644))
		tr, err := Load(Options{SnapshotPath: snapPath, WordListPath: listPath, MinWordLength: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"bee", "hive", "queen"}, tr.Dump())
	})

	t.Run("malformed snapshot is fatal", func(t *testing.T) {
		require.NoError(t, os.WriteFile(snapPath, []byte(`{"drone":`), 0644))
		_, err := Load(Options{SnapshotPath: snapPath, WordListPath: listPath, MinWordLength: 4})
		assert.Error(t, err)
	})

	t.Run("nothing available", func(t *testing.T) {
		tr, err := Load(Options{SnapshotPath: filepath.Join(dir, "none.json")})
		require.NoError(t, err)
		assert.True(t, tr.IsEmpty())
	})
}
