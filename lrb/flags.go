package lrb

import (
	"fmt"
	"strings"
)

// ModFlags is the per-entry flag byte of the mod table
type ModFlags uint8

const (
	ModRequired ModFlags = 1 << iota
	ModPhysics
	ModCamera
	ModScenery
	ModExtraData
)

var flagNames = []struct {
	flag ModFlags
	name string
}{
	{ModRequired, "REQUIRED"},
	{ModPhysics, "PHYSICS"},
	{ModCamera, "CAMERA"},
	{ModScenery, "SCENERY"},
	{ModExtraData, "EXTRA_DATA"},
}

func (f ModFlags) Has(flag ModFlags) bool {
	return f&flag == flag
}

func (f ModFlags) String() string {
	var names []string
	for _, n := range flagNames {
		if f.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "|")
}

// Warning reports an optional mod the registry could not interpret
type Warning struct {
	Name           string
	Version        uint16
	AffectsPhysics bool
	AffectsCamera  bool
	AffectsScenery bool
}

func newWarning(name string, version uint16, flags ModFlags) Warning {
	return Warning{
		Name:           name,
		Version:        version,
		AffectsPhysics: flags.Has(ModPhysics),
		AffectsCamera:  flags.Has(ModCamera),
		AffectsScenery: flags.Has(ModScenery),
	}
}

func (w Warning) String() string {
	var affects []string
	if w.AffectsPhysics {
		affects = append(affects, "physics")
	}
	if w.AffectsCamera {
		affects = append(affects, "camera")
	}
	if w.AffectsScenery {
		affects = append(affects, "scenery")
	}
	if len(affects) == 0 {
		return fmt.Sprintf("unsupported mod %s v%d", w.Name, w.Version)
	}
	return fmt.Sprintf("unsupported mod %s v%d (affects %s)", w.Name, w.Version, strings.Join(affects, ", "))
}
