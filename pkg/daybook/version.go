// Package daybook holds module-level metadata.
package daybook

// Version is the daybook release version.
const Version = "v0.1.0"
