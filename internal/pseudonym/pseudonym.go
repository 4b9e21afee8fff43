package pseudonym

import (
	"fmt"
	"math/rand"
)

var (
	adjectives = []string{
		"Kind", "Brave", "Calm", "Bright", "Gentle", "Swift", "Quiet", "Happy",
		"Clever", "Cozy", "Daring", "Eager", "Fair", "Fuzzy", "Glad", "Humble",
		"Jolly", "Lucky", "Mellow", "Noble", "Patient", "Sunny", "Warm", "Wise",
	}
	animals = []string{
		"Fox", "Otter", "Koala", "Panda", "Hawk", "Dolphin", "Robin", "Lynx",
		"Badger", "Beaver", "Bison", "Crane", "Deer", "Falcon", "Heron", "Ibis",
		"Lemur", "Moose", "Owl", "Puffin", "Raven", "Seal", "Swan", "Wren",
	}
)

// Generator produces display names such as "KindFox123".
type Generator interface {
	Generate() string
}

type randomGenerator struct {
	intN func(n int) int
}

// NewGenerator returns a generator backed by math/rand.
func NewGenerator() Generator {
	return &randomGenerator{intN: rand.Intn}
}

// Generate returns an adjective, an animal and a three digit number.
func (g *randomGenerator) Generate() string {
	return fmt.Sprintf("%s%s%d",
		adjectives[g.intN(len(adjectives))],
		animals[g.intN(len(animals))],
		100+g.intN(900),
	)
}
