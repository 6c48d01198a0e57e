package readarr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"string id", `{"goodreadsId": "98310"}`, "98310"},
		{"numeric id", `{"goodreadsId": 98310}`, "98310"},
		{"null id", `{"goodreadsId": null}`, ""},
		{"absent id", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Edition
			require.NoError(t, json.Unmarshal([]byte(tt.input), &e))
			assert.Equal(t, tt.want, e.GoodreadsID.String())
		})
	}
}

func TestEdition_Identifier_PreferenceOrder(t *testing.T) {
	e := Edition{
		GoodreadsID: "gr-1",
		EditionID:   "ed-1",
		ID:          "raw-1",
	}
	assert.Equal(t, "gr-1", e.Identifier())

	e.ForeignEditionID = "fe-1"
	assert.Equal(t, "fe-1", e.Identifier())

	empty := Edition{}
	assert.Equal(t, "", empty.Identifier())
}

func TestAuthor_Complete(t *testing.T) {
	assert.False(t, (&Author{}).Complete())
	assert.False(t, (&Author{AuthorName: "Frank Herbert"}).Complete())
	assert.False(t, (&Author{ForeignAuthorID: "herbert-f"}).Complete())
	assert.True(t, (&Author{AuthorName: "Frank Herbert", ForeignAuthorID: "herbert-f"}).Complete())

	var nilAuthor *Author
	assert.False(t, nilAuthor.Complete())
}
