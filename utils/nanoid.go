// Package utils provides small shared helpers.
package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet string = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	length   int    = 22
)

// NanoID generates an id with the default alphabet and length.
func NanoID() string {
	return gonanoid.MustGenerate(alphabet, length)
}
