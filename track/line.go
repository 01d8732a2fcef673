package track

import "fmt"

type lineBase struct {
	id uint32
	p1 Vec2
	p2 Vec2
}

func (l lineBase) ID() uint32 {
	return l.id
}

func (l lineBase) Endpoints() (Vec2, Vec2) {
	return l.p1, l.p2
}

// physicsLine holds the attributes shared by lines the rider interacts with.
type physicsLine struct {
	lineBase
	flipped        bool
	leftExtension  bool
	rightExtension bool
}

func (l physicsLine) Flipped() bool {
	return l.flipped
}

func (l physicsLine) LeftExtension() bool {
	return l.leftExtension
}

func (l physicsLine) RightExtension() bool {
	return l.rightExtension
}

type StandardLine struct {
	physicsLine
}

func (l StandardLine) String() string {
	return fmt.Sprintf("StandardLine: Id:%d %v-%v", l.id, l.p1, l.p2)
}

type AccelerationLine struct {
	physicsLine
	multiplier *float64
}

func (l AccelerationLine) Multiplier() (float64, bool) {
	return optional(l.multiplier)
}

func (l AccelerationLine) String() string {
	return fmt.Sprintf("AccelerationLine: Id:%d %v-%v", l.id, l.p1, l.p2)
}

type SceneryLine struct {
	lineBase
	width *float64
}

func (l SceneryLine) Width() (float64, bool) {
	return optional(l.width)
}

func (l SceneryLine) String() string {
	return fmt.Sprintf("SceneryLine: Id:%d %v-%v", l.id, l.p1, l.p2)
}

type StandardLineBuilder struct {
	line StandardLine
}

func (b *StandardLineBuilder) ID(id uint32) *StandardLineBuilder {
	b.line.id = id
	return b
}

func (b *StandardLineBuilder) Endpoints(p1, p2 Vec2) *StandardLineBuilder {
	b.line.p1, b.line.p2 = p1, p2
	return b
}

func (b *StandardLineBuilder) Flipped(flipped bool) *StandardLineBuilder {
	b.line.flipped = flipped
	return b
}

func (b *StandardLineBuilder) LeftExtension(ext bool) *StandardLineBuilder {
	b.line.leftExtension = ext
	return b
}

func (b *StandardLineBuilder) RightExtension(ext bool) *StandardLineBuilder {
	b.line.rightExtension = ext
	return b
}

func (b *StandardLineBuilder) build() StandardLine {
	return b.line
}

type AccelerationLineBuilder struct {
	line AccelerationLine
}

func (b *AccelerationLineBuilder) ID(id uint32) *AccelerationLineBuilder {
	b.line.id = id
	return b
}

func (b *AccelerationLineBuilder) Endpoints(p1, p2 Vec2) *AccelerationLineBuilder {
	b.line.p1, b.line.p2 = p1, p2
	return b
}

func (b *AccelerationLineBuilder) Flipped(flipped bool) *AccelerationLineBuilder {
	b.line.flipped = flipped
	return b
}

func (b *AccelerationLineBuilder) LeftExtension(ext bool) *AccelerationLineBuilder {
	b.line.leftExtension = ext
	return b
}

func (b *AccelerationLineBuilder) RightExtension(ext bool) *AccelerationLineBuilder {
	b.line.rightExtension = ext
	return b
}

// Multiplier requires LineFeatureAccelerationMultiplier on the owning group.
func (b *AccelerationLineBuilder) Multiplier(multiplier float64) *AccelerationLineBuilder {
	b.line.multiplier = &multiplier
	return b
}

func (b *AccelerationLineBuilder) build() AccelerationLine {
	return b.line
}

type SceneryLineBuilder struct {
	line SceneryLine
}

func (b *SceneryLineBuilder) ID(id uint32) *SceneryLineBuilder {
	b.line.id = id
	return b
}

func (b *SceneryLineBuilder) Endpoints(p1, p2 Vec2) *SceneryLineBuilder {
	b.line.p1, b.line.p2 = p1, p2
	return b
}

// Width requires LineFeatureSceneryWidth on the owning group.
func (b *SceneryLineBuilder) Width(width float64) *SceneryLineBuilder {
	b.line.width = &width
	return b
}

func (b *SceneryLineBuilder) build() SceneryLine {
	return b.line
}
