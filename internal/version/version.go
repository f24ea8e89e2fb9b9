package version

// Version is the dicgen release string. Overridable at build time via
// -ldflags "-X dicgen/internal/version.Version=...".
var Version = "0.3.0"
