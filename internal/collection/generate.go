package collection

import (
	"fmt"
	"math/rand"
	"strings"
)

var words = strings.Fields(`
	alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike november oscar papa quebec romeo
	sierra tango uniform victor whiskey xray yankee zulu amber basalt cobalt dune ember fjord granite harbor iris jade
	kelp lantern meadow nectar onyx pebble quartz river saffron thistle umber velvet willow zephyr
`)

// Generate returns n records with deterministic titles and bodies for the seed. Body lengths vary so that items
// wrap to different heights when expanded
func Generate(n int, seed int64) []*Record {
	return GenerateFrom(0, n, seed)
}

// GenerateFrom is Generate with ids and titles numbered from start, for appending to an existing collection
func GenerateFrom(start, n int, seed int64) []*Record {
	rng := rand.New(rand.NewSource(seed))
	records := make([]*Record, max(0, n))
	for i := range records {
		num := start + i
		records[i] = NewRecord(fmt.Sprintf("item-%d", num), map[string]any{
			FieldTitle: fmt.Sprintf("%05d %s", num, phrase(rng, 2+rng.Intn(4))),
			FieldBody:  phrase(rng, 5+rng.Intn(60)),
		})
	}
	return records
}

func phrase(rng *rand.Rand, n int) string {
	res := make([]string, n)
	for i := range res {
		res[i] = words[rng.Intn(len(words))]
	}
	return strings.Join(res, " ")
}
