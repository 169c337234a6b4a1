// Package cli handles cmd line input and matching output for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/typomatch/internal/utils"
	"github.com/bastiangx/typomatch/pkg/complete"
	"github.com/bastiangx/typomatch/pkg/match"
	"github.com/bastiangx/typomatch/pkg/source"
	"github.com/charmbracelet/log"
)

// InputHandler processes words from stdin and prints their typo matches
// against the loaded dictionary. Flags control input length bounds,
// a display limit and input filtering.
type InputHandler struct {
	engine    *complete.Engine
	src       source.Source
	minLength int
	maxLength int
	showLimit int
	noFilter  bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *complete.Engine, src source.Source, minLength, maxLength, showLimit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:    engine,
		src:       src,
		minLength: minLength,
		maxLength: maxLength,
		showLimit: showLimit,
		noFilter:  noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("typomatch CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see its typo matches (Ctrl+C to exit):")

	for {
		log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput runs a single word through the engine and prints the best
// match plus the accepted set with edit distances.
func (h *InputHandler) handleInput(word string) {
	if len(word) < h.minLength {
		log.Errorf("Input too short: %s", word)
		return
	}
	if len(word) > h.maxLength {
		log.Errorf("Input too long: %s", word)
		return
	}

	if !h.noFilter {
		if !utils.IsValidInput(word) {
			log.Infof("No results for input: '%s'", word)
			return
		}
	} else {
		log.Debug("Input filtering disabled - matching all raw entries")
	}

	start := time.Now()
	best, err := h.engine.BestMatch(word, h.src, nil)
	if err != nil {
		log.Errorf("best match for '%s': %v", word, err)
		return
	}
	matches, err := h.engine.AllMatches(word, h.src, nil)
	if err != nil {
		log.Errorf("all matches for '%s': %v", word, err)
		return
	}
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for input '%s'", elapsed, word)

	if best == nil {
		log.Warnf("No match found for input: '%s'", word)
		return
	}

	clBest := fmt.Sprintf("\033[38;5;75m%s\033[0m", best.Word)
	log.Printf("best: %s (length %d)", clBest, best.Length)

	if len(matches) > h.showLimit && h.showLimit > 0 {
		matches = matches[:h.showLimit]
	}
	log.Printf("%d accepted candidates for '%s':", len(matches), word)
	for i, m := range matches {
		log.Printf("%2d. %-32s (distance: %d)", i+1, m, match.Distance(word, m))
	}
}
