package corpus

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vectorizer is a bounded-vocabulary TF-IDF vectorizer. Fit once over the
// corpus; Transform maps any text onto the fitted vocabulary, ignoring terms
// unseen at fit time. All produced vectors are L2-normalized so cosine
// similarity reduces to a dot product.
type Vectorizer struct {
	maxFeatures int
	vocabulary  map[string]int // term -> column index
	idf         []float64
	fitted      bool
}

var errNotFitted = errors.New("vectorizer not fitted")

// NewVectorizer creates a vectorizer with the given feature cap
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// tokenize lowercases, splits on non-alphanumeric runes, and drops stopwords
// and single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Fit builds the vocabulary and IDF weights from the corpus documents. The
// vocabulary is capped at maxFeatures terms, keeping the most frequent terms
// with alphabetical tie-break.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return errors.New("cannot fit vectorizer on empty corpus")
	}

	totalCounts := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			totalCounts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCounts[terms[i]] != totalCounts[terms[j]] {
			return totalCounts[terms[i]] > totalCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	// Columns are assigned alphabetically within the selected terms so the
	// layout does not depend on map iteration order.
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF, keeps terms present in every document from zeroing out.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	v.fitted = true
	return nil
}

// Transform maps text into the fitted TF-IDF space. Terms outside the fitted
// vocabulary are ignored, not an error.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, errNotFitted
	}

	vector := make([]float64, len(v.vocabulary))
	for _, tok := range tokenize(text) {
		if col, ok := v.vocabulary[tok]; ok {
			vector[col]++
		}
	}
	for i := range vector {
		vector[i] *= v.idf[i]
	}

	normalize(vector)
	return vector, nil
}

// NumFeatures returns the fitted vocabulary size
func (v *Vectorizer) NumFeatures() int {
	return len(v.vocabulary)
}

// normalize scales a vector to unit L2 norm in place
func normalize(vector []float64) {
	var norm float64
	for _, val := range vector {
		norm += val * val
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for i := range vector {
		vector[i] /= norm
	}
}

// dot computes the dot product of two equal-length vectors. For normalized
// vectors this is the cosine similarity.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
