//go:build release

package file

const prettyDefault = false
