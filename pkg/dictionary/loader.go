// Package dictionary reads and writes word/frequency dictionaries that back
// trie candidate sources.
//
// Binary format: 4 byte little-endian entry count header, then per entry a
// 2 byte word length, the word bytes, and a 4 byte frequency.
package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/typomatch/pkg/source"
	"github.com/charmbracelet/log"
)

// LoadBinaryFile reads a binary dictionary into a frequency table.
func LoadBinaryFile(filename string) (source.FreqTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("closing file: %v", err)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filename, err)
	}
	if info.Size() < 4 {
		return nil, fmt.Errorf("dictionary file too small: %s", filename)
	}

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return nil, fmt.Errorf("reading entry count: %w", err)
	}
	log.Debugf("Total entries in binary dictionary: %d", totalEntries)

	table := make(source.FreqTable, totalEntries)
	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return nil, fmt.Errorf("reading word bytes: %w", err)
		}
		word := string(wordBytes)

		var freq uint32
		if err := binary.Read(reader, binary.LittleEndian, &freq); err != nil {
			return nil, fmt.Errorf("reading frequency for word %s: %w", word, err)
		}
		if freq == 0 {
			freq = 1
		}
		table[word] = int(freq)
	}

	log.Debugf("Loaded %d entries from binary dictionary: %s", len(table), filename)
	return table, nil
}

// LoadTextFile reads a plain text dictionary, one `word [frequency]` per
// line. Missing frequencies default to 1; blank lines and #-comments are
// skipped.
func LoadTextFile(filename string) (source.FreqTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("closing file: %v", err)
		}
	}()

	table := make(source.FreqTable)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		freq := 1
		if len(fields) > 1 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Warnf("Skipping bad frequency %q for word %s", fields[1], fields[0])
			} else {
				freq = parsed
			}
		}
		table[fields[0]] = freq
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return table, nil
}

// Load picks the loader from the file extension: .txt is text, everything
// else the binary format.
func Load(filename string) (source.FreqTable, error) {
	if strings.HasSuffix(filename, ".txt") {
		return LoadTextFile(filename)
	}
	return LoadBinaryFile(filename)
}

// BuildTrie builds a trie candidate source from a frequency table.
func BuildTrie(table source.FreqTable) *source.TrieSource {
	trie := source.NewTrieSource()
	for word, freq := range table {
		trie.Add(word, freq)
	}
	return trie
}

// SaveBinaryFile writes a frequency table in the binary format.
func SaveBinaryFile(table source.FreqTable, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Errorf("closing binary file: %v", err)
		}
	}()

	writer := bufio.NewWriter(file)
	defer func() {
		if err := writer.Flush(); err != nil {
			log.Errorf("flushing writer: %v", err)
		}
	}()

	if err := binary.Write(writer, binary.LittleEndian, int32(len(table))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for word, freq := range table {
		if err := binary.Write(writer, binary.LittleEndian, uint16(len(word))); err != nil {
			return fmt.Errorf("writing word length: %w", err)
		}
		if _, err := writer.WriteString(word); err != nil {
			return fmt.Errorf("writing word %s: %w", word, err)
		}
		if err := binary.Write(writer, binary.LittleEndian, uint32(freq)); err != nil {
			return fmt.Errorf("writing frequency for word %s: %w", word, err)
		}
	}
	return nil
}
