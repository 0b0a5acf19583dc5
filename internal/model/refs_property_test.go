package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRefRoundTrip verifies decode(encode(p)) == p for every rooted path.
func TestRefRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(p)) = p", prop.ForAll(
		func(tail []int) bool {
			p := append(Path{0}, tail...)
			got, err := DecodeRef(EncodeRef(p))
			if err != nil {
				return false
			}
			return reflect.DeepEqual(got, p)
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.Property("refs with a non-zero root never decode", prop.ForAll(
		func(root int, tail []int) bool {
			p := append(Path{root}, tail...)
			_, err := DecodeRef(EncodeRef(p))
			return err != nil
		},
		gen.IntRange(1, 1<<20),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("strings without the n prefix never decode", prop.ForAll(
		func(s string) bool {
			if strings.HasPrefix(s, "n") {
				return true
			}
			_, err := DecodeRef(s)
			return err != nil
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
