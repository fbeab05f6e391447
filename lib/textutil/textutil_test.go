package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  За­да­ние  12 ", "Задание 12"},
		{"a b", "a b"},
		{"one\n\ttwo   three", "one two three"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "quadraticequations", NormalizeName("  Quadratic  Equations \n"))
}
