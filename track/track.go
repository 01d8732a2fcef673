// Package track holds the canonical in-memory model of a track and the
// feature-gated builders that assemble it.
//
// Optional attributes and groups are guarded by feature flags. A builder only
// produces a value when every gated field is present exactly when its flag is
// enabled; Build reports the first violation otherwise. Built values are
// immutable.
package track

import "fmt"

type TrackFeature uint8

const (
	TrackFeatureLayers TrackFeature = iota
	TrackFeatureRiderProperties
	TrackFeatureBackgroundColorTriggers
	TrackFeatureLineColorTriggers
	TrackFeatureCameraZoomTriggers
	TrackFeatureLegacyCameraZoomTriggers
	// The physics markers below own no group. No reader or writer in this
	// module maps them to a format field; they only travel in Features.
	TrackFeatureLRARemount
	TrackFeatureLegacyFakie
	TrackFeatureZeroFrictionRiders
	TrackFeatureZeroVelocityStartRiders
	TrackFeatureRemountRiders
)

func (f TrackFeature) String() string {
	switch f {
	case TrackFeatureLayers:
		return "Layers"
	case TrackFeatureRiderProperties:
		return "RiderProperties"
	case TrackFeatureBackgroundColorTriggers:
		return "BackgroundColorTriggers"
	case TrackFeatureLineColorTriggers:
		return "LineColorTriggers"
	case TrackFeatureCameraZoomTriggers:
		return "CameraZoomTriggers"
	case TrackFeatureLegacyCameraZoomTriggers:
		return "LegacyCameraZoomTriggers"
	case TrackFeatureLRARemount:
		return "LRARemount"
	case TrackFeatureLegacyFakie:
		return "LegacyFakie"
	case TrackFeatureZeroFrictionRiders:
		return "ZeroFrictionRiders"
	case TrackFeatureZeroVelocityStartRiders:
		return "ZeroVelocityStartRiders"
	case TrackFeatureRemountRiders:
		return "RemountRiders"
	}
	return fmt.Sprintf("TrackFeature(%d)", uint8(f))
}

type Track struct {
	features              Features[TrackFeature]
	metadata              Metadata
	lineGroup             *LineGroup
	layerGroup            *LayerGroup
	riderGroup            *RiderGroup
	backgroundColorGroup  *BackgroundColorGroup
	lineColorGroup        *LineColorGroup
	cameraZoomGroup       *CameraZoomGroup
	legacyCameraZoomGroup *LegacyCameraZoomGroup
}

func (t *Track) Features() Features[TrackFeature] {
	return t.features
}

func (t *Track) Metadata() Metadata {
	return t.metadata
}

func (t *Track) LineGroup() *LineGroup {
	return t.lineGroup
}

func (t *Track) LayerGroup() (*LayerGroup, bool) {
	return t.layerGroup, t.layerGroup != nil
}

func (t *Track) RiderGroup() (*RiderGroup, bool) {
	return t.riderGroup, t.riderGroup != nil
}

func (t *Track) BackgroundColorGroup() (*BackgroundColorGroup, bool) {
	return t.backgroundColorGroup, t.backgroundColorGroup != nil
}

func (t *Track) LineColorGroup() (*LineColorGroup, bool) {
	return t.lineColorGroup, t.lineColorGroup != nil
}

func (t *Track) CameraZoomGroup() (*CameraZoomGroup, bool) {
	return t.cameraZoomGroup, t.cameraZoomGroup != nil
}

func (t *Track) LegacyCameraZoomGroup() (*LegacyCameraZoomGroup, bool) {
	return t.legacyCameraZoomGroup, t.legacyCameraZoomGroup != nil
}

func (t *Track) String() string {
	return fmt.Sprintf("Track: %q features:%v lines:%d", t.metadata.title, t.features, t.lineGroup.Len())
}

// TrackBuilder is owned by a single format reader for its whole lifetime and
// is not safe for concurrent use.
type TrackBuilder struct {
	groupBase[TrackFeature]
	metadata              *MetadataBuilder
	lineGroup             *LineGroupBuilder
	layerGroup            *LayerGroupBuilder
	riderGroup            *RiderGroupBuilder
	backgroundColorGroup  *BackgroundColorGroupBuilder
	lineColorGroup        *LineColorGroupBuilder
	cameraZoomGroup       *CameraZoomGroupBuilder
	legacyCameraZoomGroup *LegacyCameraZoomGroupBuilder
}

// NewTrackBuilder returns an empty builder. The zero value is also ready to use.
func NewTrackBuilder() *TrackBuilder {
	return &TrackBuilder{}
}

// EnableFeature is idempotent. Features that own a group create it empty.
func (b *TrackBuilder) EnableFeature(feature TrackFeature) *TrackBuilder {
	switch feature {
	case TrackFeatureLayers:
		if b.layerGroup == nil {
			b.layerGroup = &LayerGroupBuilder{}
		}
	case TrackFeatureRiderProperties:
		if b.riderGroup == nil {
			b.riderGroup = &RiderGroupBuilder{}
		}
	case TrackFeatureBackgroundColorTriggers:
		if b.backgroundColorGroup == nil {
			b.backgroundColorGroup = &BackgroundColorGroupBuilder{name: "background_color_group"}
		}
	case TrackFeatureLineColorTriggers:
		if b.lineColorGroup == nil {
			b.lineColorGroup = &LineColorGroupBuilder{name: "line_color_group"}
		}
	case TrackFeatureCameraZoomTriggers:
		if b.cameraZoomGroup == nil {
			b.cameraZoomGroup = &CameraZoomGroupBuilder{name: "camera_zoom_group"}
		}
	case TrackFeatureLegacyCameraZoomTriggers:
		if b.legacyCameraZoomGroup == nil {
			b.legacyCameraZoomGroup = &LegacyCameraZoomGroupBuilder{name: "legacy_camera_zoom_group"}
		}
	}
	b.enable(feature)
	return b
}

func (b *TrackBuilder) Metadata() *MetadataBuilder {
	if b.metadata == nil {
		b.metadata = NewMetadataBuilder()
	}
	return b.metadata
}

func (b *TrackBuilder) LineGroup() *LineGroupBuilder {
	if b.lineGroup == nil {
		b.lineGroup = &LineGroupBuilder{}
	}
	return b.lineGroup
}

func (b *TrackBuilder) LayerGroup() (*LayerGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureLayers, b.layerGroup)
}

func (b *TrackBuilder) RiderGroup() (*RiderGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureRiderProperties, b.riderGroup)
}

func (b *TrackBuilder) BackgroundColorGroup() (*BackgroundColorGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureBackgroundColorTriggers, b.backgroundColorGroup)
}

func (b *TrackBuilder) LineColorGroup() (*LineColorGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureLineColorTriggers, b.lineColorGroup)
}

func (b *TrackBuilder) CameraZoomGroup() (*CameraZoomGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureCameraZoomTriggers, b.cameraZoomGroup)
}

func (b *TrackBuilder) LegacyCameraZoomGroup() (*LegacyCameraZoomGroupBuilder, error) {
	return requireFeature(b.features, TrackFeatureLegacyCameraZoomTriggers, b.legacyCameraZoomGroup)
}

// buildOptional checks that group exists iff feature is enabled and builds it.
func buildOptional[B any, G any](features Features[TrackFeature], feature TrackFeature, field string, builder *B, build func(*B) (*G, error)) (*G, error) {
	if err := checkFeature(features, feature, builder != nil, field); err != nil {
		return nil, err
	}
	if builder == nil {
		return nil, nil
	}
	group, err := build(builder)
	if err != nil {
		return nil, subError("track", field, -1, err)
	}
	return group, nil
}

// Build validates the accumulated state and returns the finished track.
// The accumulated state is not consumed, so Build may be called again.
func (b *TrackBuilder) Build() (t *Track, err error) {
	t = &Track{features: b.features}

	t.metadata, err = b.Metadata().Build()
	if err == nil {
		err = checkFeature(b.features, TrackFeatureZeroVelocityStartRiders, t.metadata.zeroVelocityStartRiders, "zero_velocity_start_riders")
	}
	if err != nil {
		return nil, subError("track", "metadata", -1, err)
	}
	t.lineGroup, err = b.LineGroup().Build()
	if err != nil {
		return nil, subError("track", "line_group", -1, err)
	}

	t.layerGroup, err = buildOptional(b.features, TrackFeatureLayers, "layer_group", b.layerGroup, (*LayerGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	t.riderGroup, err = buildOptional(b.features, TrackFeatureRiderProperties, "rider_group", b.riderGroup, (*RiderGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	t.backgroundColorGroup, err = buildOptional(b.features, TrackFeatureBackgroundColorTriggers, "background_color_group", b.backgroundColorGroup, (*BackgroundColorGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	t.lineColorGroup, err = buildOptional(b.features, TrackFeatureLineColorTriggers, "line_color_group", b.lineColorGroup, (*LineColorGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	t.cameraZoomGroup, err = buildOptional(b.features, TrackFeatureCameraZoomTriggers, "camera_zoom_group", b.cameraZoomGroup, (*CameraZoomGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	t.legacyCameraZoomGroup, err = buildOptional(b.features, TrackFeatureLegacyCameraZoomTriggers, "legacy_camera_zoom_group", b.legacyCameraZoomGroup, (*LegacyCameraZoomGroupBuilder).Build)
	if err != nil {
		return nil, err
	}
	return t, nil
}
