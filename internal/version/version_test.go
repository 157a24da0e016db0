package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	assert.Equal(t, "dev (commit unknown, built unknown)", String())

	Version, Commit, Date = "v1.2.0", "abc123", "2026-01-02"
	assert.Equal(t, "v1.2.0 (commit abc123, built 2026-01-02)", String())
}
