package track_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ddvk/lrtrack/track"
)

func TestEmptyTrackBuild(t *testing.T) {
	tr, err := track.NewTrackBuilder().Build()
	require.NoError(t, err)

	require.Equal(t, 0, tr.Features().Len())
	require.Equal(t, 0, tr.LineGroup().Len())

	md := tr.Metadata()
	require.Equal(t, "", md.Title())
	require.Equal(t, track.GridVersion62, md.GridVersion())
	require.Equal(t, track.DefaultStartGravity, md.StartGravity())
	require.Equal(t, track.DefaultStartZoom, md.StartZoom())
	require.Equal(t, track.DefaultStartBackgroundColor, md.StartBackgroundColor())
	_, ok := md.Artist()
	require.False(t, ok)

	_, ok = tr.LayerGroup()
	require.False(t, ok)
	_, ok = tr.RiderGroup()
	require.False(t, ok)
	_, ok = tr.BackgroundColorGroup()
	require.False(t, ok)
	_, ok = tr.LineColorGroup()
	require.False(t, ok)
	_, ok = tr.CameraZoomGroup()
	require.False(t, ok)
	_, ok = tr.LegacyCameraZoomGroup()
	require.False(t, ok)
}

func TestOptionalGroupAccessorsRequireFeature(t *testing.T) {
	b := track.NewTrackBuilder()

	accessors := map[track.TrackFeature]func() error{
		track.TrackFeatureLayers: func() error {
			_, err := b.LayerGroup()
			return err
		},
		track.TrackFeatureRiderProperties: func() error {
			_, err := b.RiderGroup()
			return err
		},
		track.TrackFeatureBackgroundColorTriggers: func() error {
			_, err := b.BackgroundColorGroup()
			return err
		},
		track.TrackFeatureLineColorTriggers: func() error {
			_, err := b.LineColorGroup()
			return err
		},
		track.TrackFeatureCameraZoomTriggers: func() error {
			_, err := b.CameraZoomGroup()
			return err
		},
		track.TrackFeatureLegacyCameraZoomTriggers: func() error {
			_, err := b.LegacyCameraZoomGroup()
			return err
		},
	}

	for feature, access := range accessors {
		err := access()
		var flag *track.MissingFeatureFlagError
		require.ErrorAs(t, err, &flag, feature.String())
		require.Equal(t, feature, flag.Feature)

		b.EnableFeature(feature)
		require.NoError(t, access(), feature.String())
	}

	tr, err := b.Build()
	require.NoError(t, err)
	_, ok := tr.LayerGroup()
	require.True(t, ok)
	_, ok = tr.RiderGroup()
	require.True(t, ok)
	_, ok = tr.BackgroundColorGroup()
	require.True(t, ok)
	_, ok = tr.LineColorGroup()
	require.True(t, ok)
	_, ok = tr.CameraZoomGroup()
	require.True(t, ok)
	_, ok = tr.LegacyCameraZoomGroup()
	require.True(t, ok)
}

func TestEnableFeatureIsIdempotent(t *testing.T) {
	b := track.NewTrackBuilder()
	b.EnableFeature(track.TrackFeatureRiderProperties)
	riders, err := b.RiderGroup()
	require.NoError(t, err)
	riders.AddRider().StartPosition(track.NewVec2(0, 0))

	b.EnableFeature(track.TrackFeatureRiderProperties)
	again, err := b.RiderGroup()
	require.NoError(t, err)
	require.Same(t, riders, again)
	require.Len(t, again.Riders(), 1)
	require.Equal(t, 1, b.Features().Len())
}

func TestTrackBuildWrapsGroupErrors(t *testing.T) {
	b := track.NewTrackBuilder()
	b.EnableFeature(track.TrackFeatureLayers)
	layers, err := b.LayerGroup()
	require.NoError(t, err)
	layers.AddLayer(1, 0).Name("unflagged")

	tr, err := b.Build()
	require.Nil(t, tr)
	require.ErrorIs(t, err, track.ErrMissingFeatureFlag)

	var sub *track.SubBuilderError
	require.ErrorAs(t, err, &sub)
	require.Equal(t, "track", sub.Group)
	require.Equal(t, "layer_group", sub.Field)
	require.EqualError(t, err, "track.layer_group: layer_group.layers[0]: expected feature to be registered: Name")
}

func TestTrackBuildRejectsInvalidGridVersion(t *testing.T) {
	b := track.NewTrackBuilder()
	b.Metadata().GridVersion(track.GridVersion(9))

	_, err := b.Build()
	require.ErrorIs(t, err, track.ErrInvalidValue)
}

func populatedBuilder(t *testing.T) *track.TrackBuilder {
	t.Helper()
	b := track.NewTrackBuilder()
	b.Metadata().
		Title("Hill").
		Artist("someone").
		GridVersion(track.GridVersion61).
		StartPosition(track.NewVec2(5, -5)).
		Duration(1200).
		ZeroVelocityStartRiders(true)
	b.EnableFeature(track.TrackFeatureZeroVelocityStartRiders)

	lines := b.LineGroup().EnableFeature(track.LineFeatureAccelerationMultiplier)
	lines.AddStandardLine(1, origin, right, false, true, true)
	lines.AddAccelerationLine(2, right, origin, true, false, false).Multiplier(3)
	lines.AddSceneryLine(3, origin, right)

	b.EnableFeature(track.TrackFeatureRiderProperties)
	riders, err := b.RiderGroup()
	require.NoError(t, err)
	riders.EnableFeature(track.RiderFeatureStartAngle)
	riders.AddRider().StartPosition(track.NewVec2(0, 0)).StartAngle(10)

	b.EnableFeature(track.TrackFeatureCameraZoomTriggers)
	zoom, err := b.CameraZoomGroup()
	require.NoError(t, err)
	zoom.AddTrigger().Trigger(track.FrameBoundsTrigger{Start: 0, End: 40}).Event(track.CameraZoomEvent{Zoom: 8})
	return b
}

func TestTrackBuildIsRepeatable(t *testing.T) {
	b := populatedBuilder(t)

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NotSame(t, first, second)

	md := first.Metadata()
	require.Equal(t, "Hill", md.Title())
	duration, ok := md.Duration()
	require.True(t, ok)
	require.Equal(t, uint32(1200), duration)
	require.True(t, first.Features().Has(track.TrackFeatureZeroVelocityStartRiders))
	require.Equal(t, 3, first.LineGroup().Len())

	zoom, ok := first.CameraZoomGroup()
	require.True(t, ok)
	require.Equal(t, 8.0, zoom.Triggers()[0].Event().Zoom)
}

func TestTrackBuildRequiresZeroStartAgreement(t *testing.T) {
	featureOnly := track.NewTrackBuilder()
	featureOnly.EnableFeature(track.TrackFeatureZeroVelocityStartRiders)
	_, err := featureOnly.Build()
	require.ErrorIs(t, err, track.ErrMissingAttribute)

	metadataOnly := track.NewTrackBuilder()
	metadataOnly.Metadata().ZeroVelocityStartRiders(true)
	_, err = metadataOnly.Build()
	require.ErrorIs(t, err, track.ErrMissingFeatureFlag)
}

func TestTrackMarkerFeaturesOwnNoGroup(t *testing.T) {
	b := track.NewTrackBuilder()
	for _, f := range []track.TrackFeature{
		track.TrackFeatureLRARemount,
		track.TrackFeatureLegacyFakie,
		track.TrackFeatureZeroFrictionRiders,
		track.TrackFeatureRemountRiders,
	} {
		b.EnableFeature(f)
	}

	tr, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 4, tr.Features().Len())
	require.True(t, tr.Features().Has(track.TrackFeatureLegacyFakie))
	_, ok := tr.RiderGroup()
	require.False(t, ok)
}
