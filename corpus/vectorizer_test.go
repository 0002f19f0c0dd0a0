package corpus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("The quick-brown fox, a 9 lives cat and IT")

	assert.Equal(t, []string{"quick", "brown", "fox", "lives", "cat"}, tokens)
}

func TestFitRejectsEmptyCorpus(t *testing.T) {
	v := NewVectorizer(100)

	assert.Error(t, v.Fit(nil))
}

func TestTransformBeforeFitFails(t *testing.T) {
	v := NewVectorizer(100)

	_, err := v.Transform("anything")
	assert.ErrorIs(t, err, errNotFitted)
}

func TestTransformProducesUnitVectors(t *testing.T) {
	v := NewVectorizer(100)
	require.NoError(t, v.Fit([]string{
		"children privacy protection online",
		"content moderation transparency obligations",
	}))

	vec, err := v.Transform("children privacy obligations")
	require.NoError(t, err)

	var norm float64
	for _, val := range vec {
		norm += val * val
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestTransformIgnoresUnseenTerms(t *testing.T) {
	v := NewVectorizer(100)
	require.NoError(t, v.Fit([]string{"children privacy protection"}))

	vec, err := v.Transform("zebras quarks xylophones")
	require.NoError(t, err)

	for _, val := range vec {
		assert.Zero(t, val)
	}
}

func TestFitCapsVocabulary(t *testing.T) {
	v := NewVectorizer(2)
	require.NoError(t, v.Fit([]string{
		"alpha alpha alpha beta beta gamma",
	}))

	// The two most frequent terms survive the cap
	assert.Equal(t, 2, v.NumFeatures())
	_, hasAlpha := v.vocabulary["alpha"]
	_, hasBeta := v.vocabulary["beta"]
	assert.True(t, hasAlpha)
	assert.True(t, hasBeta)
}

func TestFitCapTieBreaksAlphabetically(t *testing.T) {
	v := NewVectorizer(1)
	require.NoError(t, v.Fit([]string{"zulu apple"}))

	_, hasApple := v.vocabulary["apple"]
	assert.True(t, hasApple)
	assert.Equal(t, 1, v.NumFeatures())
}

func TestTransformIsDeterministic(t *testing.T) {
	docs := []string{
		"parental consent requirements for minors",
		"age verification and data privacy",
		"content moderation reporting duties",
	}
	v := NewVectorizer(100)
	require.NoError(t, v.Fit(docs))

	first, err := v.Transform("age verification for minors")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := v.Transform("age verification for minors")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
