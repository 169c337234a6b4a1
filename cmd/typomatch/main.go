// Copyright 2025 The typomatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the typo matching server and CLI [DBG] application.

typomatch decides which entries of a candidate collection are plausible typo
variants of an input word, using Levenshtein distance under a length-scaled
edit budget with shrink/expand length bounds. It can operate as a
MessagePack IPC server for integration with text editors, or as a CLI
application for testing and debugging.

# Usage

Start the server against a dictionary file:

	typomatch -dict data/dict.bin

Run in CLI mode with a fixed typo budget and debug logging:

	typomatch -c -dict words.txt -level 2 -d

# Configuration

Runtime configuration is managed through a TOML file:

	[match]
	typo_level = 0       # 0 scales the budget with sqrt(input length)
	shrink_bound = 1
	expand_bound = 4
	all_completions = true

	[server]
	min_input = 1
	max_input = 60

The config file is automatically created with defaults if it doesn't exist.
Config ops over IPC persist their changes back to the same file.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
best-match query:

	{"id": "req1", "op": "try", "q": "foobor"}

and receive the selected candidate with its rune length:

	{"id": "req1", "w": "foobar", "n": 6, "f": true, "t": 120}

The "all" op returns the full accepted set, gated by the all_completions
toggle. See the server package for the message catalogue.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/typomatch/internal/cli"
	"github.com/bastiangx/typomatch/pkg/complete"
	"github.com/bastiangx/typomatch/pkg/config"
	"github.com/bastiangx/typomatch/pkg/dictionary"
	"github.com/bastiangx/typomatch/pkg/server"
	"github.com/bastiangx/typomatch/pkg/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.2.0"
	AppName = "typomatch"
	gh      = "https://github.com/bastiangx/typomatch"
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

// main wires config, dictionary and engine together and hands off to the
// server or the CLI loop.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a config.toml (defaults to the user config dir)")
	dictPath := flag.String("dict", "", "Dictionary file (.bin or .txt); overrides the config path")
	level := flag.Int("level", -1, "Fixed typo budget (0 scales with word length; -1 keeps config value)")
	shrink := flag.Int("shrink", -1, "Max runes a candidate may be shorter than the input (-1 keeps config value)")
	expand := flag.Int("expand", -1, "Max runes a candidate may be longer than the input (-1 keeps config value)")
	showLimit := flag.Int("limit", 24, "Max candidates to display in CLI mode")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - matches raw inputs (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// flag overrides are session-only, never persisted
	if *level >= 0 {
		appConfig.Match.TypoLevel = *level
	}
	if *shrink >= 0 {
		appConfig.Match.ShrinkBound = *shrink
	}
	if *expand >= 0 {
		appConfig.Match.ExpandBound = *expand
	}

	dictFile := appConfig.Dict.Path
	if *dictPath != "" {
		dictFile = *dictPath
	}

	var src source.Source = source.NewTrieSource()
	if dictFile != "" {
		table, err := dictionary.Load(dictFile)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		log.Debugf("Loaded %d words from (%s)", len(table), dictFile)
		src = dictionary.BuildTrie(table)
	} else {
		log.Warn("No dictionary specified, running with an empty candidate set...")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		engine := complete.NewEngine(appConfig.MatchOptions())
		inputHandler := cli.NewInputHandler(engine, src,
			appConfig.Server.MinInput, appConfig.Server.MaxInput, *showLimit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(src, appConfig, activePath)
	showStartupInfo(dictFile)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ typomatch ] typo-tolerant matching for completion tables")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictFile string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("dictionary: ( %s )", dictFile)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
