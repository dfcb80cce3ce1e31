// Package names generates short random names used to fill demo tables.
package names

import "math/rand/v2"

const (
	letters = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"

	minLetters = 4
	maxLetters = 9
)

// Generate returns a name made of a capital letter, 4 to 9 lowercase
// letters and a trailing digit, such as "Kxqvbe7".
func Generate(r *rand.Rand) string {
	n := minLetters + r.IntN(maxLetters-minLetters+1)
	b := make([]byte, 0, n+2)
	b = append(b, letters[r.IntN(len(letters))]-'a'+'A')
	for range n {
		b = append(b, letters[r.IntN(len(letters))])
	}
	b = append(b, digits[r.IntN(len(digits))])
	return string(b)
}
