package jargon

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// Resolver normalizes platform jargon, acronyms, and compound phrases found
// in free-text feature descriptions. The seed tables are fixed; the
// dictionary can be extended explicitly via AddTerm or ImportDictionary but
// is never mutated during resolution.
type Resolver struct {
	dictionary map[string]string
	acronyms   map[string]string
	compounds  map[string]string

	// compiled word-boundary patterns, keyed by dictionary term
	patterns map[string]*regexp.Regexp
}

var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

// NewResolver creates a resolver seeded with the platform jargon dictionary
func NewResolver() *Resolver {
	r := &Resolver{
		dictionary: buildJargonDictionary(),
		acronyms:   buildAcronymTable(),
		compounds:  buildCompoundTable(),
		patterns:   make(map[string]*regexp.Regexp),
	}
	for term := range r.dictionary {
		r.patterns[term] = compileTermPattern(term)
	}
	return r
}

// compileTermPattern builds a case-insensitive word-boundary pattern so a
// term never matches as a substring of an unrelated longer word.
func compileTermPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Resolve finds jargon terms, acronyms, and compound phrases in text and
// returns a map of matched term to definition. Pure: no state is mutated.
func (r *Resolver) Resolve(text string) map[string]string {
	resolved := make(map[string]string)

	for term, definition := range r.dictionary {
		if r.patterns[term].MatchString(text) {
			resolved[term] = definition
		}
	}

	// Acronyms and compounds merge in without overwriting earlier matches.
	for term, definition := range r.findAcronyms(text) {
		if _, ok := resolved[term]; !ok {
			resolved[term] = definition
		}
	}
	for term, definition := range r.findCompounds(text) {
		if _, ok := resolved[term]; !ok {
			resolved[term] = definition
		}
	}

	return resolved
}

// findAcronyms scans for all-caps tokens of length 2-6 known to the acronym table
func (r *Resolver) findAcronyms(text string) map[string]string {
	found := make(map[string]string)
	for _, match := range acronymPattern.FindAllString(text, -1) {
		if definition, ok := r.acronyms[match]; ok {
			found[match] = definition
		}
	}
	return found
}

// findCompounds scans for fixed multi-word phrases. These are multi-token, so
// a case-insensitive substring match is sufficient.
func (r *Resolver) findCompounds(text string) map[string]string {
	found := make(map[string]string)
	textLower := strings.ToLower(text)
	for compound, definition := range r.compounds {
		if strings.Contains(textLower, compound) {
			found[compound] = definition
		}
	}
	return found
}

// Annotate inserts each matched term's definition in parentheses immediately
// after its occurrences and returns the annotated copy. The input text is
// never mutated. Terms are applied in sorted order so output is reproducible.
func (r *Resolver) Annotate(text string, matches map[string]string) string {
	terms := make([]string, 0, len(matches))
	for term := range matches {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	annotated := text
	for _, term := range terms {
		pattern, ok := r.patterns[term]
		if !ok {
			pattern = compileTermPattern(term)
		}
		replacement := term + " (" + matches[term] + ")"
		annotated = pattern.ReplaceAllLiteralString(annotated, replacement)
	}
	return annotated
}

// AddTerm adds a custom jargon term to the dictionary
func (r *Resolver) AddTerm(term, definition string) {
	term = strings.ToLower(term)
	r.dictionary[term] = definition
	r.patterns[term] = compileTermPattern(term)
}

// Len returns the number of dictionary terms (acronyms and compounds excluded)
func (r *Resolver) Len() int {
	return len(r.dictionary)
}

// ExportDictionary writes the jargon dictionary as JSON
func (r *Resolver) ExportDictionary(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.dictionary); err != nil {
		return fmt.Errorf("failed to export jargon dictionary: %w", err)
	}
	return nil
}

// ImportDictionary merges custom jargon terms from a JSON object of
// term -> definition
func (r *Resolver) ImportDictionary(reader io.Reader) error {
	var custom map[string]string
	if err := json.NewDecoder(reader).Decode(&custom); err != nil {
		return fmt.Errorf("failed to import jargon dictionary: %w", err)
	}
	for term, definition := range custom {
		r.AddTerm(term, definition)
	}
	return nil
}
