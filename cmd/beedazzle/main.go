// Copyright 2025 The Beedazzle Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the beedazzle CLI, a helper for letter-set word
puzzles such as the NYT Spelling Bee.

Beedazzle keeps a scored vocabulary in a trie. Scores move up when a puzzle
accepts a word and down when it does not, so the vocabulary learns which
words the puzzle actually allows. Words scored below -2 are dropped from the
snapshot on the next save but stay searchable for the running session.

# Usage

Solve a puzzle; the first letter is the mandatory center letter:

	beedazzle -letters tacbeli

Pick a different center letter:

	beedazzle -letters tacbeli -center b

Find stored words one paid edit away from a query:

	beedazzle -query speling -edit 1

Confirm each solution interactively, then save the scores:

	beedazzle -letters tacbeli -play

Review a finished puzzle by typing the words it accepted:

	beedazzle -letters tacbeli -retro

# Data

The vocabulary is read from a JSON snapshot ({"word": score, ...}) or a
.msgpack snapshot. When the snapshot is missing or empty, a plain word list
seeds the trie with every word of at least min_word_length letters.

# Configuration

Runtime configuration lives in a TOML file, created with defaults when
missing:

	[dict]
	snapshot_path = "data/words.json"
	wordlist_path = "data/words_alpha.txt"
	min_word_length = 4

	[search]
	max_edit_budget = 2
	default_edit_budget = 1

	[cli]
	history_file = ""
	color = true

	[log]
	level = "warn"
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/bastiangx/beedazzle/internal/cli"
	"github.com/bastiangx/beedazzle/internal/logger"
	"github.com/bastiangx/beedazzle/internal/utils"
	"github.com/bastiangx/beedazzle/pkg/config"
	"github.com/bastiangx/beedazzle/pkg/dictionary"
	"github.com/bastiangx/beedazzle/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.0.0"
	AppName = "beedazzle"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and sessions together; the work itself
// lives in the packages it calls.
func main() {
	sigHandler()
	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	letters := flag.String("letters", "", "Puzzle letters; the first is the center unless -center is set")
	center := flag.String("center", "", "Mandatory center letter")
	query := flag.String("query", "", "Query for edit-budget search")
	edit := flag.Int("edit", -1, "Paid edits for -query (default from config)")
	play := flag.Bool("play", false, "Confirm each solved word interactively")
	retro := flag.Bool("retro", false, "Enter the words a finished puzzle accepted")
	snapshotPath := flag.String("snapshot", "", "Snapshot file (.json or .msgpack), overrides config")
	wordListPath := flag.String("words", "", "Word list used when the snapshot is empty, overrides config")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup("warn", *debugMode)
	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.Log.Level, *debugMode)
	log.Debugf("Using config: %s", config.GetActiveConfigPath(usedPath))

	if *snapshotPath != "" {
		cfg.Dict.SnapshotPath = *snapshotPath
	}
	if *wordListPath != "" {
		cfg.Dict.WordListPath = *wordListPath
	}

	if *letters == "" && *query == "" {
		fmt.Fprintf(os.Stderr, "%s: one of -letters or -query is required\n", AppName)
		flag.Usage()
		os.Exit(2)
	}
	if (*play || *retro) && *letters == "" {
		log.Fatal("-play and -retro need -letters")
	}

	words, err := dictionary.Load(dictionary.Options{
		SnapshotPath:  cfg.Dict.SnapshotPath,
		WordListPath:  cfg.Dict.WordListPath,
		MinWordLength: cfg.Dict.MinWordLength,
	})
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debug("Dictionary ready", "words", words.Len())

	if *query != "" {
		budget := *edit
		if budget < 0 {
			budget = cfg.Search.DefaultEditBudget
		}
		if budget > cfg.Search.MaxEditBudget {
			log.Fatalf("Edit budget %d exceeds configured max_edit_budget %d", budget, cfg.Search.MaxEditBudget)
		}
		found, err := words.FindByEditDistance(*query, budget)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		printWords(found)
	}

	if *letters == "" {
		return
	}
	if !utils.IsValidLetters(*letters) {
		log.Fatalf("Invalid letters: %q", *letters)
	}
	centerLetter, _ := utf8.DecodeRuneInString(*letters)
	if *center != "" {
		centerLetter, _ = utf8.DecodeRuneInString(*center)
	}

	solved, err := words.Solve(*letters, centerLetter)
	if err != nil {
		log.Fatalf("Solve failed: %v", err)
	}

	if !*play && !*retro {
		printWords(solved)
		return
	}

	// readline takes over the terminal in interactive mode
	rl, err := cli.NewReadline(os.Stdin, os.Stdout, cfg.CLI.HistoryFile)
	if err != nil {
		log.Fatalf("Failed to open prompt: %v", err)
	}
	defer rl.Close()
	session := cli.NewSession(words, rl, os.Stdout, cfg.CLI.Color)

	var stats cli.Stats
	if *play {
		stats, err = session.Play(solved)
	} else {
		stats, err = session.Retrospective(*letters, centerLetter)
	}
	if errors.Is(err, cli.ErrAborted) {
		log.Warn("Session interrupted")
	} else if err != nil {
		log.Fatalf("Session failed: %v", err)
	}
	log.Info("Session done", "accepted", stats.Accepted, "rejected", stats.Rejected)

	if err := dictionary.SaveSnapshot(words, cfg.Dict.SnapshotPath); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}
}

func printWords(words []string) {
	for _, w := range words {
		fmt.Println(w)
	}
	log.Debugf("%d words", len(words))
}

// printVersion shows the version banner.
func printVersion() {
	l := logger.New("")
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["max_word"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ Beedazzle ] Spelling Bee helper")
	l.Print("", "version", Version)
	l.Print("", "max_word", trie.MaxWordLength)
	l.Print("")
	l.Print("use -h or --help to see available options")
}
