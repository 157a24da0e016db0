package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorChoice(t *testing.T) {
	cases := []struct {
		in   string
		want ColorChoice
	}{
		{"", Auto},
		{"auto", Auto},
		{"always", Always},
		{"always-ansi", AlwaysANSI},
		{"NEVER", Never},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColorChoice(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseColorChoice("sometimes")
	assert.ErrorIs(t, err, ErrUnknownColorChoice)
	assert.Contains(t, err.Error(), `"sometimes"`)
	assert.Contains(t, err.Error(), "always|always-ansi|auto|never")
}

func TestColorChoiceString(t *testing.T) {
	for _, s := range ColorChoices {
		c, err := ParseColorChoice(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
}

func TestResolve(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	w, useColor := Never.Resolve(f)
	assert.False(t, useColor)
	assert.Same(t, f, w)

	w, useColor = AlwaysANSI.Resolve(f)
	assert.True(t, useColor)
	assert.Same(t, f, w)

	_, useColor = Always.Resolve(f)
	assert.True(t, useColor)

	// a regular file is never a terminal
	w, useColor = Auto.Resolve(f)
	assert.False(t, useColor)
	assert.Same(t, f, w)
}

func TestResolveAutoHonorsEnvironment(t *testing.T) {
	old := getenv
	defer func() { getenv = old }()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	getenv = func(string) string { return "" }
	_, useColor := Auto.Resolve(f)
	assert.False(t, useColor, "not a terminal")

	getenv = func(k string) string {
		if k == "NO_COLOR" {
			return "1"
		}
		return ""
	}
	_, useColor = Always.Resolve(f)
	assert.True(t, useColor, "explicit choices ignore NO_COLOR")
}
