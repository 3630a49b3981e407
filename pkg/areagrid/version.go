// Package areagrid exposes module-level metadata.
package areagrid

// Version is the areagrid release version.
const Version = "0.1.0"
