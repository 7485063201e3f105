package dic

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	gflag "github.com/az-ai-labs/gohunspell/flag"

	"github.com/az-ai-labs/gohunspell/internal/zipreader"
)

// ReadFile parses the .dic file at path, using flagEncoding and aliasFlags
// (the .aff file's FLAG encoding and AF table) to decode each entry's flag
// column.
func ReadFile(path string, flagEncoding gflag.Encoding, aliasFlags [][]gflag.Flag) (*Dic, error) {
	rc, err := zipreader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dic: %w", err)
	}
	defer rc.Close()
	return Read(rc, flagEncoding, aliasFlags)
}

// Read parses a .dic document from r: a count line followed by that many
// "stem[/flags] [morphological data...]" lines. Grounded on the .dic
// handling implied by spyll.hunspell.dictionary.Dictionary.from_files
// (a DicReader paired with AffReader's AF table and FLAG encoding).
func Read(r io.Reader, flagEncoding gflag.Encoding, aliasFlags [][]gflag.Flag) (*Dic, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return New(nil), nil
	}
	first := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "\xef\xbb\xbf")
	count, err := strconv.Atoi(strings.Fields(first)[0])
	if err != nil {
		return nil, fmt.Errorf("dic: bad word count line %q: %w", first, err)
	}

	words := make([]*Word, 0, count)
	for scanner.Scan() {
		ln := strings.TrimSpace(scanner.Text())
		if ln == "" {
			continue
		}
		// Morphological data fields (if any) follow the stem/flags column
		// separated by whitespace; LOOKUP doesn't need them (spec.md Non-
		// goal: morphological output), so only the first field is parsed.
		fields := strings.Fields(ln)
		stem, flagField := splitStemFlags(fields[0])

		var set gflag.Set
		if n, ok := aliasIndex(flagField); ok && len(aliasFlags) > 0 {
			if n < 1 || n > len(aliasFlags) {
				return nil, fmt.Errorf("dic: alias flag index %d out of range (AF table has %d entries)", n, len(aliasFlags))
			}
			set = gflag.NewSet(aliasFlags[n-1]...)
		} else {
			set, err = gflag.Decode(flagField, flagEncoding)
			if err != nil {
				return nil, fmt.Errorf("dic: %w", err)
			}
		}

		words = append(words, &Word{Stem: stem, Flags: set})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dic: %w", err)
	}

	return New(words), nil
}

func splitStemFlags(field string) (stem, flags string) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		return field[:i], field[i+1:]
	}
	return field, ""
}

// aliasIndex reports whether flagField is purely numeric (an AF table
// reference) and, if so, its 1-based index.
func aliasIndex(flagField string) (int, bool) {
	if flagField == "" {
		return 0, false
	}
	for _, r := range flagField {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(flagField)
	if err != nil {
		return 0, false
	}
	return n, true
}
