package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertSearch(t *testing.T) {
	tr := New()
	assert.True(t, tr.IsEmpty())

	assert.True(t, tr.Insert("apple"))
	assert.False(t, tr.Insert("apple")) // duplicate
	assert.True(t, tr.Insert("app"))
	assert.True(t, tr.Insert("apply"))

	assert.True(t, tr.Search("apple"))
	assert.True(t, tr.Search("app"))
	assert.False(t, tr.Search("appl"))
	assert.False(t, tr.Search("banana"))
	assert.Equal(t, 3, tr.WordCount())
}

func TestRejectsInvalidInput(t *testing.T) {
	tr := New()
	assert.False(t, tr.Insert(""))
	assert.False(t, tr.Insert("Apple"))
	assert.False(t, tr.Insert("app le"))
	assert.False(t, tr.Insert("caf\xc3\xa9"))
	assert.Equal(t, 0, tr.WordCount())

	assert.False(t, tr.Delete(""))
	assert.False(t, tr.Delete("Nope"))
}

func TestPrefixQueries(t *testing.T) {
	tr := New()
	for _, w := range []string{"car", "card", "care", "dog"} {
		tr.Insert(w)
	}
	tr.Insert("card") // duplicate must not inflate counts

	assert.True(t, tr.StartsWith("car"))
	assert.True(t, tr.StartsWith("ca"))
	assert.False(t, tr.StartsWith("cat"))

	assert.Equal(t, 3, tr.CountPrefix("car"))
	assert.Equal(t, 1, tr.CountPrefix("card"))
	assert.Equal(t, 1, tr.CountPrefix("d"))
	assert.Equal(t, 0, tr.CountPrefix("x"))
	assert.Equal(t, 4, tr.CountPrefix(""))
}

func TestDelete(t *testing.T) {
	tr := New()
	tr.Insert("app")
	tr.Insert("apple")

	assert.True(t, tr.Delete("apple"))
	assert.False(t, tr.Delete("apple"))
	assert.True(t, tr.Search("app"))
	assert.Equal(t, 1, tr.WordCount())
	assert.Equal(t, 1, tr.CountPrefix("ap"))
	assert.False(t, tr.StartsWith("appl"))

	// Deleting a word that is a prefix keeps the longer word reachable.
	tr.Insert("apple")
	assert.True(t, tr.Delete("app"))
	assert.True(t, tr.Search("apple"))
	assert.False(t, tr.Search("app"))
	assert.True(t, tr.StartsWith("app"))
}

func TestWordsAndAutocomplete(t *testing.T) {
	tr := New()
	for _, w := range []string{"banana", "band", "bandana", "apple", "bat"} {
		tr.Insert(w)
	}

	assert.Equal(t, []string{"apple", "banana", "band", "bandana", "bat"}, tr.Words())
	assert.Equal(t, []string{"banana", "band", "bandana", "bat"}, tr.Autocomplete("ba"))
	assert.Equal(t, []string{"band", "bandana"}, tr.Autocomplete("band"))
	assert.Nil(t, tr.Autocomplete("z"))
	assert.Empty(t, New().Words())
}

func TestLongestCommonPrefix(t *testing.T) {
	tr := New()
	assert.Equal(t, "", tr.LongestCommonPrefix())

	tr.Insert("flower")
	tr.Insert("flow")
	tr.Insert("flight")
	assert.Equal(t, "fl", tr.LongestCommonPrefix())

	tr.Clear()
	tr.Insert("interspecies")
	tr.Insert("interstellar")
	assert.Equal(t, "inters", tr.LongestCommonPrefix())

	tr.Clear()
	tr.Insert("solo")
	assert.Equal(t, "solo", tr.LongestCommonPrefix())

	tr.Insert("something")
	assert.Equal(t, "so", tr.LongestCommonPrefix())
}

func TestSearchWildcard(t *testing.T) {
	tr := New()
	tr.Insert("bad")
	tr.Insert("dad")
	tr.Insert("mad")

	assert.True(t, tr.SearchWildcard("bad"))
	assert.True(t, tr.SearchWildcard(".ad"))
	assert.True(t, tr.SearchWildcard("b.."))
	assert.True(t, tr.SearchWildcard("..."))
	assert.False(t, tr.SearchWildcard("b"))
	assert.False(t, tr.SearchWildcard("....")) // too long
	assert.False(t, tr.SearchWildcard(".at"))
}

func TestClear(t *testing.T) {
	tr := New()
	tr.Insert("alpha")
	tr.Insert("beta")
	tr.Clear()

	assert.True(t, tr.IsEmpty())
	assert.False(t, tr.Search("alpha"))
	assert.True(t, tr.Insert("alpha"))
	assert.Equal(t, 1, tr.WordCount())
}
