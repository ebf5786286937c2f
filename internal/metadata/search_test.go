package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"isccgen/internal/metadata"
)

func mustParse(t *testing.T, doc string) *metadata.Node {
	t.Helper()
	node, err := metadata.Parse([]byte(doc))
	require.NoError(t, err)
	return node
}

func TestSearchDirectScalarMatch(t *testing.T) {
	node := mustParse(t, `{"meta":{"dc:title":"Hello"}}`)
	require.Equal(t, []string{"Hello"}, metadata.Search(node, "title"))
}

func TestSearchHuntModeDescent(t *testing.T) {
	node := mustParse(t, `{"meta":{"title":{"nested":"World"}}}`)
	require.Equal(t, []string{"World"}, metadata.Search(node, "title"))
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	node := mustParse(t, `{"meta":{"author":"Ann","pages":[1,2,{"x":"y"}]}}`)
	got := metadata.Search(node, "title")
	require.NotNil(t, got)
	require.Empty(t, got)
	require.Equal(t, "", metadata.Title(node))
}

func TestSearchPreservesDocumentOrder(t *testing.T) {
	node := mustParse(t, `{"z_title":"Last","a":{"dc:title":"  Padded  "},"title":["One",{"deep":"Two"},""]}`)
	require.Equal(t, []string{"Last", "Padded", "One", "Two"}, metadata.Search(node, "title"))
	require.Equal(t, "Last", metadata.Title(node))
}

func TestSearchIsCaseSensitive(t *testing.T) {
	node := mustParse(t, `{"Title":"Upper","dc:TITLE":"Shout"}`)
	require.Empty(t, metadata.Search(node, "title"))
}

func TestSearchEmptyScalarFallsThroughToNothing(t *testing.T) {
	node := mustParse(t, `{"title":"   ","pdf:docinfo:title":null,"x":{"title":7}}`)
	require.Equal(t, []string{"7"}, metadata.Search(node, "title"))
}

func TestSearchHuntOnlyCollectsStrings(t *testing.T) {
	node := mustParse(t, `{"title":{"n":1,"b":true,"s":"kept","arr":["a",2]}}`)
	require.Equal(t, []string{"kept", "a"}, metadata.Search(node, "title"))
}

func TestSearchIsPure(t *testing.T) {
	node := mustParse(t, `{"title":"Once"}`)
	first := metadata.Search(node, "title")
	first[0] = "mutated"
	require.Equal(t, []string{"Once"}, metadata.Search(node, "title"))
}

func TestSearchScalarAndArrayRoots(t *testing.T) {
	require.Empty(t, metadata.Search(mustParse(t, `"title"`), "title"))
	require.Equal(t, []string{"T"}, metadata.Search(mustParse(t, `[{"title":"T"}]`), "title"))
	require.Empty(t, metadata.Search(nil, "title"))
}
