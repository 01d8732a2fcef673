package track

import (
	"fmt"
	"slices"
)

type RiderFeature uint8

const (
	RiderFeatureStartVelocity RiderFeature = iota
	RiderFeatureStartAngle
	RiderFeatureRemount
)

func (f RiderFeature) String() string {
	switch f {
	case RiderFeatureStartVelocity:
		return "StartVelocity"
	case RiderFeatureStartAngle:
		return "StartAngle"
	case RiderFeatureRemount:
		return "Remount"
	}
	return fmt.Sprintf("RiderFeature(%d)", uint8(f))
}

type Rider struct {
	startPosition Vec2
	startVelocity *Vec2
	startAngle    *float64
	canRemount    *bool
}

func (r Rider) StartPosition() Vec2 {
	return r.startPosition
}

func (r Rider) StartVelocity() (Vec2, bool) {
	return optional(r.startVelocity)
}

func (r Rider) StartAngle() (float64, bool) {
	return optional(r.startAngle)
}

func (r Rider) CanRemount() (bool, bool) {
	return optional(r.canRemount)
}

func (r Rider) String() string {
	return fmt.Sprintf("Rider: start:%v", r.startPosition)
}

type RiderBuilder struct {
	rider       Rider
	hasPosition bool
}

func (b *RiderBuilder) StartPosition(position Vec2) *RiderBuilder {
	b.rider.startPosition = position
	b.hasPosition = true
	return b
}

func (b *RiderBuilder) StartVelocity(velocity Vec2) *RiderBuilder {
	b.rider.startVelocity = &velocity
	return b
}

func (b *RiderBuilder) StartAngle(angle float64) *RiderBuilder {
	b.rider.startAngle = &angle
	return b
}

func (b *RiderBuilder) CanRemount(remount bool) *RiderBuilder {
	b.rider.canRemount = &remount
	return b
}

func (b *RiderBuilder) build() (Rider, error) {
	if !b.hasPosition {
		return Rider{}, &UninitializedFieldError{Entity: "Rider", Field: "start_position"}
	}
	return b.rider, nil
}

type RiderGroup struct {
	features Features[RiderFeature]
	riders   []Rider
}

func (g *RiderGroup) Features() Features[RiderFeature] {
	return g.features
}

func (g *RiderGroup) Riders() []Rider {
	return slices.Clone(g.riders)
}

type RiderGroupBuilder struct {
	groupBase[RiderFeature]
	riders []*RiderBuilder
}

func (b *RiderGroupBuilder) EnableFeature(feature RiderFeature) *RiderGroupBuilder {
	b.enable(feature)
	return b
}

func (b *RiderGroupBuilder) AddRider() *RiderBuilder {
	rb := &RiderBuilder{}
	b.riders = append(b.riders, rb)
	return rb
}

func (b *RiderGroupBuilder) Riders() []*RiderBuilder {
	return b.riders
}

func (b *RiderGroupBuilder) Build() (*RiderGroup, error) {
	group := &RiderGroup{
		features: b.features,
		riders:   make([]Rider, 0, len(b.riders)),
	}
	for i, rb := range b.riders {
		rider, err := rb.build()
		if err == nil {
			err = checkFeature(b.features, RiderFeatureStartVelocity, rider.startVelocity != nil, "start_velocity")
		}
		if err == nil {
			err = checkFeature(b.features, RiderFeatureStartAngle, rider.startAngle != nil, "start_angle")
		}
		if err == nil {
			err = checkFeature(b.features, RiderFeatureRemount, rider.canRemount != nil, "can_remount")
		}
		if err != nil {
			return nil, subError("rider_group", "riders", i, err)
		}
		group.riders = append(group.riders, rider)
	}
	return group, nil
}
