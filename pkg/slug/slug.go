// Package slug generates the short identifiers invitations are addressed by.
package slug

import "math/rand"

// Alphabet is the candidate character set: 36 symbols, so the default length
// spans 36^5 (about 60 million) possible slugs.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of characters in a generated slug.
const Length = 5

// Generate returns a random slug, each character drawn independently and
// uniformly from Alphabet. Uniqueness is not guaranteed here; the invitation
// service checks candidates against the store and the unique index has the
// final word.
func Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}
