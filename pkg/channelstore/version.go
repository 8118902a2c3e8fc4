// Package channelstore exposes module-level metadata.
package channelstore

// Version is the channelstore release version.
const Version = "0.1.0"
