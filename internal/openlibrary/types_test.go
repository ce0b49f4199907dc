package openlibrary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextUnmarshalBothShapes(t *testing.T) {
	var plain Text
	require.NoError(t, json.Unmarshal([]byte(`"a plain description"`), &plain))
	assert.Equal(t, "a plain description", plain.String())

	var wrapped Text
	require.NoError(t, json.Unmarshal([]byte(`{"type":"/type/text","value":"a wrapped description"}`), &wrapped))
	assert.Equal(t, "a wrapped description", wrapped.String())
}

func TestTextUnmarshalInvalid(t *testing.T) {
	var text Text
	assert.Error(t, json.Unmarshal([]byte(`42`), &text))
}

func TestWorkDescriptionShapes(t *testing.T) {
	var plain Work
	require.NoError(t, json.Unmarshal([]byte(`{"key":"/works/OL1W","title":"A","description":"plain"}`), &plain))
	assert.Equal(t, "plain", plain.Description.String())

	var wrapped Work
	require.NoError(t, json.Unmarshal([]byte(`{"key":"/works/OL2W","title":"B","description":{"type":"/type/text","value":"wrapped"}}`), &wrapped))
	assert.Equal(t, "wrapped", wrapped.Description.String())
}
