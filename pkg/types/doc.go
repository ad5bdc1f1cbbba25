// Package types defines the entity types, the Store interface, and the
// standard errors for the Daybook journaling engine.
package types
