package matching

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

const minKeywordLen = 4

var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Normalize lowercases, collapses whitespace and trims. Compatibility forms
// (full-width letters, ligatures) are folded first.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ExtractKeywords returns the normalized word tokens longer than three
// characters, in order of appearance. Duplicates are kept.
func ExtractKeywords(text string) []string {
	tokens := wordRegex.FindAllString(Normalize(text), -1)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= minKeywordLen {
			out = append(out, tok)
		}
	}
	return out
}

// TopKeywords returns up to n distinct keywords, most frequent first. Ties
// keep the order of first appearance.
func TopKeywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	counts := map[string]int{}
	var order []string
	for _, kw := range ExtractKeywords(text) {
		if counts[kw] == 0 {
			order = append(order, kw)
		}
		counts[kw]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// SplitSkills turns a comma separated skill string into normalized names.
func SplitSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := Normalize(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Ratio is a normalized edit-distance similarity in [0,1].
func Ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

type stringSet map[string]struct{}

func newStringSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s stringSet) add(items ...string) {
	for _, it := range items {
		if it != "" {
			s[it] = struct{}{}
		}
	}
}

func (s stringSet) has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s stringSet) intersects(other stringSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if big.has(k) {
			return true
		}
	}
	return false
}

func (s stringSet) countIn(other stringSet) int {
	n := 0
	for k := range s {
		if other.has(k) {
			n++
		}
	}
	return n
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SynonymTable is the admin maintained skill -> synonyms mapping, keyed by
// the normalized skill.
type SynonymTable map[string][]string

// NewSynonymTable normalizes keys and values of raw rows.
func NewSynonymTable(rows map[string][]string) SynonymTable {
	t := make(SynonymTable, len(rows))
	for skill, syns := range rows {
		key := Normalize(skill)
		if key == "" {
			continue
		}
		for _, s := range syns {
			if n := Normalize(s); n != "" {
				t[key] = append(t[key], n)
			}
		}
	}
	return t
}

// Expand returns the skills together with every synonym found for them.
// Skills without an entry contribute only themselves.
func (t SynonymTable) Expand(skills []string) []string {
	return t.expand(skills).sorted()
}

func (t SynonymTable) expand(skills []string) stringSet {
	out := newStringSet()
	for _, s := range skills {
		key := Normalize(s)
		out.add(key)
		out.add(t[key]...)
	}
	return out
}
