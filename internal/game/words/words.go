// Package words supplies the text typed in a race.
//
// Word lists come from the embedded default list, a plain text file with
// whitespace-separated words, or a JSON document where a gjson path
// selects an array of strings.
package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tidwall/gjson"
)

// DefaultJSONPath is the gjson path used when none is configured.
const DefaultJSONPath = "words"

//go:embed words.txt
var defaultList []byte

var (
	// ErrEmptyList is returned when a source yields no words.
	ErrEmptyList = errors.New("words: empty word list")

	// ErrGraphemeWidth is returned when a word holds a grapheme that does
	// not take exactly one terminal column.
	ErrGraphemeWidth = errors.New("words: grapheme is not one column wide")
)

// WidthError names the word and grapheme that cannot be typed in a race.
type WidthError struct {
	Word     string
	Grapheme string
	Width    int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("words: %q in %q is %d columns wide", e.Grapheme, e.Word, e.Width)
}

func (e *WidthError) Unwrap() error {
	return ErrGraphemeWidth
}

// CheckWidths returns a *WidthError for the first word holding a grapheme
// that is not exactly one column wide.
func CheckWidths(list []string) error {
	for _, word := range list {
		state := -1
		for rest := word; len(rest) > 0; {
			var cluster string
			var width int
			cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if width != 1 {
				return &WidthError{Word: word, Grapheme: cluster, Width: width}
			}
		}
	}
	return nil
}

// Default returns the embedded word list.
func Default() []string {
	list, _ := ParseText(bytes.NewReader(defaultList))
	return list
}

// ParseText reads whitespace-separated words.
func ParseText(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// ParseJSON selects the string array at path in a JSON document.
// Non-string elements are skipped; each string may hold several words.
func ParseJSON(data []byte, path string) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("words: invalid JSON")
	}
	if path == "" {
		path = DefaultJSONPath
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("words: path %q not found", path)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("words: path %q is %s, not an array", path, res.Type)
	}

	var out []string
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			out = append(out, strings.Fields(v.String())...)
		}
		return true
	})
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// Load reads a word list from fsys. Files ending in .json are parsed
// with ParseJSON at jsonPath, everything else with ParseText. Every word
// must pass CheckWidths.
func Load(fsys fs.FS, name, jsonPath string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("loading word list %s: %w", name, err)
	}

	var list []string
	if strings.EqualFold(filepath.Ext(name), ".json") {
		list, err = ParseJSON(data, jsonPath)
	} else {
		list, err = ParseText(bytes.NewReader(data))
	}
	if err == nil {
		err = CheckWidths(list)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return list, nil
}

// Generator draws random words from a list.
type Generator struct {
	list []string
	rng  *rand.Rand
}

// NewGenerator creates a generator over list. A nil rng uses a randomly
// seeded source.
func NewGenerator(list []string, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{list: list, rng: rng}
}

// Size returns the number of words in the list.
func (g *Generator) Size() int {
	return len(g.list)
}

// Generate returns n words chosen uniformly at random, with repetition.
// It returns nil if the list is empty or n is not positive.
func (g *Generator) Generate(n int) []string {
	if n <= 0 || len(g.list) == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.list[g.rng.IntN(len(g.list))]
	}
	return out
}
