package track

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeaturesBitset(t *testing.T) {
	var set Features[LayerFeature]
	require.False(t, set.Has(LayerFeatureName))
	require.Equal(t, 0, set.Len())

	set = set.With(LayerFeatureFolders).With(LayerFeatureName).With(LayerFeatureFolders)
	require.True(t, set.Has(LayerFeatureName))
	require.True(t, set.Has(LayerFeatureFolders))
	require.False(t, set.Has(LayerFeatureVisible))
	require.Equal(t, 2, set.Len())
	require.Equal(t, []LayerFeature{LayerFeatureName, LayerFeatureFolders}, set.List())
	require.Equal(t, "{Name, Folders}", set.String())
}

func TestRequireFeature(t *testing.T) {
	field := &[]int{}

	_, err := requireFeature(Features[LayerFeature](0), LayerFeatureFolders, field)
	var missing *MissingFeatureFlagError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, LayerFeatureFolders, missing.Feature)
	require.True(t, errors.Is(err, ErrMissingFeatureFlag))

	got, err := requireFeature(Features[LayerFeature](0).With(LayerFeatureFolders), LayerFeatureFolders, field)
	require.NoError(t, err)
	require.Same(t, field, got)
}

func TestRequireFeatureUninitializedFieldPanics(t *testing.T) {
	var field *[]int
	require.PanicsWithValue(t, "BUG: feature data should have been initialized for Folders", func() {
		_, _ = requireFeature(Features[LayerFeature](0).With(LayerFeatureFolders), LayerFeatureFolders, field)
	})
}

func TestCheckFeature(t *testing.T) {
	enabled := Features[RiderFeature](0).With(RiderFeatureStartAngle)
	disabled := Features[RiderFeature](0)

	require.NoError(t, checkFeature(enabled, RiderFeatureStartAngle, true, "start_angle"))
	require.NoError(t, checkFeature(disabled, RiderFeatureStartAngle, false, "start_angle"))

	err := checkFeature(enabled, RiderFeatureStartAngle, false, "start_angle")
	var missingAttr *MissingAttributeError
	require.ErrorAs(t, err, &missingAttr)
	require.Equal(t, "start_angle", missingAttr.Attribute)
	require.ErrorIs(t, err, ErrMissingAttribute)

	err = checkFeature(disabled, RiderFeatureStartAngle, true, "start_angle")
	var missingFlag *MissingFeatureFlagError
	require.ErrorAs(t, err, &missingFlag)
	require.Equal(t, RiderFeatureStartAngle, missingFlag.Feature)
}

func TestSubBuilderErrorKeepsCause(t *testing.T) {
	cause := &MissingAttributeError{Attribute: "width"}
	err := subError("line_group", "scenery_lines", 3, cause)
	require.EqualError(t, err, "line_group.scenery_lines[3]: expected attribute to be set because feature was enabled: width")
	require.ErrorIs(t, err, ErrMissingAttribute)

	err = subError("track", "line_group", -1, err)
	require.EqualError(t, err, "track.line_group: line_group.scenery_lines[3]: expected attribute to be set because feature was enabled: width")
	var attr *MissingAttributeError
	require.ErrorAs(t, err, &attr)
	require.Same(t, cause, attr)
}
