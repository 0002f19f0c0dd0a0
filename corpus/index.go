package corpus

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"geocompliance-backend/models"
)

const (
	// DefaultMaxFeatures caps the TF-IDF vocabulary size
	DefaultMaxFeatures = 1000

	// DefaultThreshold is the minimum cosine similarity for a retrieval hit
	DefaultThreshold = 0.1

	// DefaultMaxResults bounds the number of regulations returned per query
	DefaultMaxResults = 5
)

// Index holds the regulation corpus and its vector-space retriever. Build it
// once at startup; afterwards it is read-only and safe to share across
// concurrent queries without locking.
type Index struct {
	regulations []models.Regulation
	vectorizer  *Vectorizer
	vectors     [][]float64
	isBuilt     bool
}

// NewIndex creates an empty, unbuilt index
func NewIndex() *Index {
	return &Index{
		vectorizer: NewVectorizer(DefaultMaxFeatures),
	}
}

// combinedText concatenates the searchable fields of a regulation
func combinedText(reg models.Regulation) string {
	return fmt.Sprintf("%s %s %s %s",
		reg.Name,
		reg.Description,
		strings.Join(reg.KeyObligations, " "),
		strings.Join(reg.Scope, " "),
	)
}

// validateRecord rejects malformed regulation records before indexing
func validateRecord(reg models.Regulation) error {
	if reg.ID == "" {
		return fmt.Errorf("regulation has empty id")
	}
	if reg.Name == "" {
		return fmt.Errorf("regulation %s has empty name", reg.ID)
	}
	if reg.Jurisdiction == "" {
		return fmt.Errorf("regulation %s has empty jurisdiction", reg.ID)
	}
	return nil
}

// Build fits the vector-space index over the given records. The corpus order
// is preserved and used as the retrieval tie-break. An empty record set
// leaves the index unbuilt, which is not an error: queries simply return
// nothing.
func (idx *Index) Build(records []models.Regulation) error {
	if idx.isBuilt {
		return fmt.Errorf("corpus index already built")
	}
	if len(records) == 0 {
		log.Println("Warning: building corpus index with no records, all queries will return empty")
		return nil
	}

	docs := make([]string, 0, len(records))
	for _, reg := range records {
		if err := validateRecord(reg); err != nil {
			return fmt.Errorf("corpus build failed: %w", err)
		}
		docs = append(docs, combinedText(reg))
	}

	if err := idx.vectorizer.Fit(docs); err != nil {
		return fmt.Errorf("corpus build failed: %w", err)
	}

	idx.vectors = make([][]float64, len(docs))
	for i, doc := range docs {
		vector, err := idx.vectorizer.Transform(doc)
		if err != nil {
			return fmt.Errorf("corpus build failed: %w", err)
		}
		idx.vectors[i] = vector
	}

	idx.regulations = make([]models.Regulation, len(records))
	copy(idx.regulations, records)
	idx.isBuilt = true

	log.Printf("Regulation corpus index built with %d regulations, %d features",
		len(idx.regulations), idx.vectorizer.NumFeatures())
	return nil
}

// Retrieve returns the regulations ranked by cosine similarity to the query
// text, keeping those at or above threshold, truncated to maxResults. Ties
// keep corpus insertion order. An unbuilt or empty index returns an empty
// list, never an error.
func (idx *Index) Retrieve(query string, threshold float64, maxResults int) []models.Regulation {
	if !idx.isBuilt || len(idx.regulations) == 0 {
		return []models.Regulation{}
	}

	queryVector, err := idx.vectorizer.Transform(query)
	if err != nil {
		return []models.Regulation{}
	}

	type hit struct {
		index      int
		similarity float64
	}
	hits := make([]hit, 0, len(idx.regulations))
	for i, vector := range idx.vectors {
		if sim := dot(queryVector, vector); sim >= threshold {
			hits = append(hits, hit{index: i, similarity: sim})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].similarity > hits[j].similarity
	})
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	results := make([]models.Regulation, 0, len(hits))
	for _, h := range hits {
		reg := idx.regulations[h.index] // copy; the corpus record stays untouched
		reg.SimilarityScore = h.similarity
		results = append(results, reg)
	}
	return results
}

// IsBuilt reports whether the index has been built
func (idx *Index) IsBuilt() bool {
	return idx.isBuilt
}

// Regulations returns a copy of the corpus records in insertion order
func (idx *Index) Regulations() []models.Regulation {
	out := make([]models.Regulation, len(idx.regulations))
	copy(out, idx.regulations)
	return out
}

// GetByID returns the regulation with the given id, or nil
func (idx *Index) GetByID(id string) *models.Regulation {
	for _, reg := range idx.regulations {
		if reg.ID == id {
			found := reg
			return &found
		}
	}
	return nil
}

// Jurisdictions returns the sorted, deduplicated jurisdictions in the corpus
func (idx *Index) Jurisdictions() []string {
	seen := make(map[string]bool)
	var jurisdictions []string
	for _, reg := range idx.regulations {
		if !seen[reg.Jurisdiction] {
			seen[reg.Jurisdiction] = true
			jurisdictions = append(jurisdictions, reg.Jurisdiction)
		}
	}
	sort.Strings(jurisdictions)
	return jurisdictions
}
