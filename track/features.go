package track

import (
	"fmt"
	"math/bits"
	"strings"
)

// flag is the constraint for the small closed feature enums of each aggregate.
type flag interface {
	~uint8
	fmt.Stringer
}

// Features is a set of feature flags stored as a bitset
type Features[F flag] uint64

func (s Features[F]) Has(f F) bool {
	return s&(1<<uint(f)) != 0
}

// With returns a copy of the set that includes f
func (s Features[F]) With(f F) Features[F] {
	return s | 1<<uint(f)
}

func (s Features[F]) Len() int {
	return bits.OnesCount64(uint64(s))
}

// List returns the enabled flags in declaration order
func (s Features[F]) List() []F {
	var result []F
	for i := 0; i < 64; i++ {
		if s&(1<<uint(i)) != 0 {
			result = append(result, F(i))
		}
	}
	return result
}

func (s Features[F]) String() string {
	names := make([]string, 0, s.Len())
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// groupBase carries the feature set every group builder shares.
type groupBase[F flag] struct {
	features Features[F]
}

func (g *groupBase[F]) enable(f F) {
	g.features = g.features.With(f)
}

// Features returns the flags enabled so far
func (g *groupBase[F]) Features() Features[F] {
	return g.features
}

// requireFeature hands out field when feature is enabled. Enabling a feature
// that owns a field always initializes it, so a nil field here is a bug.
func requireFeature[F flag, T any](features Features[F], feature F, field *T) (*T, error) {
	if !features.Has(feature) {
		return nil, &MissingFeatureFlagError{Feature: feature}
	}
	if field == nil {
		panic(fmt.Sprintf("BUG: feature data should have been initialized for %v", feature))
	}
	return field, nil
}

// checkFeature verifies that an attribute is present iff its feature is enabled.
func checkFeature[F flag](features Features[F], feature F, present bool, attribute string) error {
	enabled := features.Has(feature)
	if enabled && !present {
		return &MissingAttributeError{Attribute: attribute}
	}
	if !enabled && present {
		return &MissingFeatureFlagError{Feature: feature}
	}
	return nil
}
