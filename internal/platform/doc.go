package platform

// Package platform contains OS/platform integration: config directory
// lookup, Android detection and filesystem helpers.
