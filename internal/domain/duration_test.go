package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimDuration_Catalogue(t *testing.T) {
	cases := map[string]int{
		"week":   7,
		"month":  30,
		"3month": 90,
		"year":   365,
	}
	for label, want := range cases {
		days, err := ParseSimDuration(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, days, label)
	}
}

func TestParseSimDuration_InvalidToken(t *testing.T) {
	_, err := ParseSimDuration("fortnight")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortnight")
}
