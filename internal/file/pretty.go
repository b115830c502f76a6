//go:build !release

package file

// prettyDefault is used when the config does not set pretty.
const prettyDefault = true
