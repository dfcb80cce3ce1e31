package names

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^[A-Z][a-z]{4,9}[0-9]$`)

func TestGenerate(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	lengths := make(map[int]bool)
	for range 1000 {
		name := Generate(r)
		require.Regexp(t, namePattern, name)
		lengths[len(name)] = true
	}
	for n := 6; n <= 11; n++ {
		require.True(t, lengths[n], "no name of length %d", n)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for range 10 {
		require.Equal(t, Generate(a), Generate(b))
	}
}
