// Package natsort orders strings the way people read them: runs of digits
// compare by numeric value, so "frame2" sorts before "frame10".
package natsort

import (
	"regexp"
	"sort"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Chunk is one element of a Key: either a text run or a digit run.
type Chunk struct {
	Text  string
	IsNum bool
}

// Key is the sort key of a string. Text and number chunks alternate,
// starting and ending with a (possibly empty) text chunk.
type Key []Chunk

// KeyOf splits s around its digit runs. A string without digits yields a
// single text chunk.
func KeyOf(s string) Key {
	locs := digitRun.FindAllStringIndex(s, -1)
	key := make(Key, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		key = append(key, Chunk{Text: s[pos:loc[0]]})
		key = append(key, Chunk{Text: s[loc[0]:loc[1]], IsNum: true})
		pos = loc[1]
	}
	return append(key, Chunk{Text: s[pos:]})
}

// Compare returns -1, 0 or +1 comparing a with b element-wise. A key that
// is a prefix of the other sorts first.
func Compare(a, b Key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareChunk(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareChunk(a, b Chunk) int {
	switch {
	case a.IsNum && b.IsNum:
		return compareDigits(a.Text, b.Text)
	case a.IsNum:
		return -1
	case b.IsNum:
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

// compareDigits compares two digit strings by value without converting,
// so runs longer than an int64 still order correctly.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(KeyOf(a), KeyOf(b)) < 0
}

// Sort sorts names in ascending natural order. Names with equal keys
// ("7" and "007") keep their relative order.
func Sort(names []string) {
	keys := make(map[string]Key, len(names))
	for _, n := range names {
		if _, ok := keys[n]; !ok {
			keys[n] = KeyOf(n)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return Compare(keys[names[i]], keys[names[j]]) < 0
	})
}
