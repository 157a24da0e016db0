package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/synadia-labs/bits.go/internal/version.Version=...
	Commit  = "unknown" // -X github.com/synadia-labs/bits.go/internal/version.Commit=...
	Date    = "unknown" // -X github.com/synadia-labs/bits.go/internal/version.Date=...
)

// String returns the line printed by --version.
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
