package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStringDistinguishesAbsentNullAndValue(t *testing.T) {
	type body struct {
		ImageURL OptionalString `json:"imageUrl"`
	}

	var absent body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.ImageURL.Present)

	var null body
	require.NoError(t, json.Unmarshal([]byte(`{"imageUrl": null}`), &null))
	assert.True(t, null.ImageURL.Present)
	assert.Nil(t, null.ImageURL.Value)

	var set body
	require.NoError(t, json.Unmarshal([]byte(`{"imageUrl": "https://cdn/m.png"}`), &set))
	assert.True(t, set.ImageURL.Present)
	require.NotNil(t, set.ImageURL.Value)
	assert.Equal(t, "https://cdn/m.png", *set.ImageURL.Value)
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}
