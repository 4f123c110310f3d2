package version

// Version is the soundctl release, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/soundboard/internal/version.Version=...".
var Version = "0.1.0"
