package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Main Dishes":     "main-dishes",
		"Desserts":        "desserts",
		"  Hot & Spicy  ": "hot-spicy",
		"Café-Style":      "café-style",
		"--":              "",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), "input %q", in)
	}
}
