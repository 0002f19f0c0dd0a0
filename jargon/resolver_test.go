package jargon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDictionaryTerm(t *testing.T) {
	r := NewResolver()

	resolved := r.Resolve("The feature enables curfew mode for accounts in Utah")

	require.Contains(t, resolved, "curfew mode")
	assert.Equal(t, "time-based usage restrictions", resolved["curfew mode"])
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	r := NewResolver()

	resolved := r.Resolve("Jellybean flags each MINOR USER for review")

	assert.Contains(t, resolved, "jellybean")
	assert.Contains(t, resolved, "minor user")
}

func TestResolveRespectsWordBoundaries(t *testing.T) {
	r := NewResolver()

	// "minority users" must not match the term "minor user"
	resolved := r.Resolve("Survey results from minority users in the region")
	assert.NotContains(t, resolved, "minor user")

	resolved = r.Resolve("Each minor user requires parental consent")
	assert.Contains(t, resolved, "minor user")
}

func TestResolveAcronyms(t *testing.T) {
	r := NewResolver()

	resolved := r.Resolve("Store PII behind the API with SSL")

	assert.Equal(t, "personally identifiable information", resolved["PII"])
	assert.Equal(t, "application programming interface", resolved["API"])
	assert.Equal(t, "secure sockets layer", resolved["SSL"])
}

func TestResolveIgnoresUnknownAcronyms(t *testing.T) {
	r := NewResolver()

	resolved := r.Resolve("The ZZZZ subsystem handles routing")

	assert.NotContains(t, resolved, "ZZZZ")
}

func TestResolveCompoundPhrases(t *testing.T) {
	r := NewResolver()

	resolved := r.Resolve("Train a Machine Learning Model on the data pipeline output")

	assert.Contains(t, resolved, "machine learning model")
	assert.Contains(t, resolved, "data pipeline")
}

func TestResolveDoesNotOverwriteEarlierMatches(t *testing.T) {
	r := NewResolver()
	r.AddTerm("data pipeline", "custom definition")

	resolved := r.Resolve("Feeds the data pipeline nightly")

	// The dictionary entry wins over the compound table entry
	assert.Equal(t, "custom definition", resolved["data pipeline"])
}

func TestResolveEmptyText(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.Resolve(""))
}

func TestAnnotateInsertsDefinitions(t *testing.T) {
	r := NewResolver()
	text := "Enable curfew mode for teens"

	resolved := r.Resolve(text)
	annotated := r.Annotate(text, resolved)

	assert.Contains(t, annotated, "curfew mode (time-based usage restrictions)")
	// Input is untouched
	assert.Equal(t, "Enable curfew mode for teens", text)
}

func TestAnnotateIsDeterministic(t *testing.T) {
	r := NewResolver()
	text := "Jellybean applies curfew mode to every minor user via an age gate"
	resolved := r.Resolve(text)

	first := r.Annotate(text, resolved)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Annotate(text, resolved))
	}
}

func TestAnnotateWithNoMatches(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "plain text", r.Annotate("plain text", map[string]string{}))
}

func TestAddTermLowercasesKey(t *testing.T) {
	r := NewResolver()
	r.AddTerm("SnowCap", "child safety filter")

	resolved := r.Resolve("Snowcap blocks flagged uploads")
	assert.Equal(t, "child safety filter", resolved["snowcap"])
}

func TestExportImportDictionaryRoundTrip(t *testing.T) {
	r := NewResolver()
	r.AddTerm("redline", "internal escalation path")

	var buf strings.Builder
	require.NoError(t, r.ExportDictionary(&buf))

	fresh := NewResolver()
	require.NoError(t, fresh.ImportDictionary(strings.NewReader(buf.String())))

	resolved := fresh.Resolve("escalate via redline")
	assert.Equal(t, "internal escalation path", resolved["redline"])
}

func TestImportDictionaryRejectsMalformedJSON(t *testing.T) {
	r := NewResolver()

	err := r.ImportDictionary(strings.NewReader("{not json"))
	assert.Error(t, err)
}
