// Package types defines the entity kinds, enumerations, and standard
// errors for the channelstore configuration store.
package types
