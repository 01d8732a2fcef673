package track

import (
	"fmt"
	"slices"
)

type LineFeature uint8

const (
	LineFeatureSceneryWidth LineFeature = iota
	LineFeatureAccelerationMultiplier
	// LineFeatureSinglePrecisionSceneryWidth marks widths that were stored as
	// float32. It is not checked by Build and no format sets it.
	LineFeatureSinglePrecisionSceneryWidth
)

func (f LineFeature) String() string {
	switch f {
	case LineFeatureSceneryWidth:
		return "SceneryWidth"
	case LineFeatureAccelerationMultiplier:
		return "AccelerationMultiplier"
	case LineFeatureSinglePrecisionSceneryWidth:
		return "SinglePrecisionSceneryWidth"
	}
	return fmt.Sprintf("LineFeature(%d)", uint8(f))
}

type LineGroup struct {
	features          Features[LineFeature]
	standardLines     []StandardLine
	accelerationLines []AccelerationLine
	sceneryLines      []SceneryLine
}

func (g *LineGroup) Features() Features[LineFeature] {
	return g.features
}

func (g *LineGroup) StandardLines() []StandardLine {
	return slices.Clone(g.standardLines)
}

func (g *LineGroup) AccelerationLines() []AccelerationLine {
	return slices.Clone(g.accelerationLines)
}

func (g *LineGroup) SceneryLines() []SceneryLine {
	return slices.Clone(g.sceneryLines)
}

// Len is the number of lines of every type
func (g *LineGroup) Len() int {
	return len(g.standardLines) + len(g.accelerationLines) + len(g.sceneryLines)
}

type LineGroupBuilder struct {
	groupBase[LineFeature]
	standardLines     []*StandardLineBuilder
	accelerationLines []*AccelerationLineBuilder
	sceneryLines      []*SceneryLineBuilder
}

func (b *LineGroupBuilder) EnableFeature(feature LineFeature) *LineGroupBuilder {
	b.enable(feature)
	return b
}

func (b *LineGroupBuilder) AddStandardLine(id uint32, p1, p2 Vec2, flipped, leftExtension, rightExtension bool) *StandardLineBuilder {
	lb := &StandardLineBuilder{}
	lb.ID(id).Endpoints(p1, p2).Flipped(flipped).LeftExtension(leftExtension).RightExtension(rightExtension)
	b.standardLines = append(b.standardLines, lb)
	return lb
}

func (b *LineGroupBuilder) StandardLines() []*StandardLineBuilder {
	return b.standardLines
}

func (b *LineGroupBuilder) AddAccelerationLine(id uint32, p1, p2 Vec2, flipped, leftExtension, rightExtension bool) *AccelerationLineBuilder {
	lb := &AccelerationLineBuilder{}
	lb.ID(id).Endpoints(p1, p2).Flipped(flipped).LeftExtension(leftExtension).RightExtension(rightExtension)
	b.accelerationLines = append(b.accelerationLines, lb)
	return lb
}

func (b *LineGroupBuilder) AccelerationLines() []*AccelerationLineBuilder {
	return b.accelerationLines
}

func (b *LineGroupBuilder) AddSceneryLine(id uint32, p1, p2 Vec2) *SceneryLineBuilder {
	lb := &SceneryLineBuilder{}
	lb.ID(id).Endpoints(p1, p2)
	b.sceneryLines = append(b.sceneryLines, lb)
	return lb
}

func (b *LineGroupBuilder) SceneryLines() []*SceneryLineBuilder {
	return b.sceneryLines
}

func (b *LineGroupBuilder) Build() (*LineGroup, error) {
	group := &LineGroup{
		features:          b.features,
		standardLines:     make([]StandardLine, 0, len(b.standardLines)),
		accelerationLines: make([]AccelerationLine, 0, len(b.accelerationLines)),
		sceneryLines:      make([]SceneryLine, 0, len(b.sceneryLines)),
	}
	ids := make(map[uint32]struct{}, len(b.standardLines)+len(b.accelerationLines)+len(b.sceneryLines))
	unique := func(id uint32) error {
		if _, ok := ids[id]; ok {
			return &DuplicateIDError{Kind: "line", ID: id}
		}
		ids[id] = struct{}{}
		return nil
	}

	for i, lb := range b.standardLines {
		line := lb.build()
		if err := unique(line.id); err != nil {
			return nil, subError("line_group", "standard_lines", i, err)
		}
		group.standardLines = append(group.standardLines, line)
	}

	for i, lb := range b.accelerationLines {
		line := lb.build()
		if err := unique(line.id); err != nil {
			return nil, subError("line_group", "acceleration_lines", i, err)
		}
		err := checkFeature(b.features, LineFeatureAccelerationMultiplier, line.multiplier != nil, "multiplier")
		if err != nil {
			return nil, subError("line_group", "acceleration_lines", i, err)
		}
		group.accelerationLines = append(group.accelerationLines, line)
	}

	for i, lb := range b.sceneryLines {
		line := lb.build()
		if err := unique(line.id); err != nil {
			return nil, subError("line_group", "scenery_lines", i, err)
		}
		err := checkFeature(b.features, LineFeatureSceneryWidth, line.width != nil, "width")
		if err != nil {
			return nil, subError("line_group", "scenery_lines", i, err)
		}
		group.sceneryLines = append(group.sceneryLines, line)
	}
	return group, nil
}
