package trackjson_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ddvk/lrtrack/track"
	"github.com/ddvk/lrtrack/trackjson"
)

const document = `{
  "label": "Jump",
  "creator": "someone",
  "version": "6.1",
  "startPosition": {"x": 1, "y": -2},
  "duration": 400,
  "zeroStart": true,
  "bgR": 10,
  "lines": [
    {"id": 1, "type": 0, "x1": 0, "y1": 0, "x2": 10, "y2": 0, "flipped": true, "extended": 2},
    {"id": 2, "type": 1, "x1": 10, "y1": 0, "x2": 20, "y2": 0, "leftExtended": true, "rightExtended": false, "multiplier": 2},
    {"id": 3, "type": 2, "x1": 0, "y1": 5, "x2": 20, "y2": 5}
  ],
  "linesArray": [
    [0, 4, 20, 0, 30, 0, 3, 0],
    [2, 5, 20, 5, 30, 5]
  ],
  "layers": [
    {"id": 0, "name": "Base", "visible": true},
    {"id": 1, "name": "Group", "visible": false, "size": 1},
    {"id": 2, "name": "Inner", "visible": true, "folderId": 1}
  ],
  "riders": [
    {"startPosition": {"x": 0, "y": 0}, "startVelocity": {"x": 0.4, "y": 0}, "remountable": true}
  ],
  "triggers": [
    {"ID": 1, "zoom": true, "target": 2, "frames": 40},
    {"ID": 2, "zoom": false, "target": 9, "frames": 1}
  ],
  "gameTriggers": [
    {"triggerType": 0, "start": 0, "end": 10, "zoomTarget": 3},
    {"triggerType": 1, "start": 10, "end": 20, "backgroundRed": 1, "backgroundGreen": 2, "backgroundBlue": 3},
    {"triggerType": 2, "start": 20, "end": 30, "lineRed": 255, "lineGreen": 0, "lineBlue": 0}
  ]
}`

func TestReadDocument(t *testing.T) {
	tr, err := trackjson.Read([]byte(document))
	require.NoError(t, err)

	md := tr.Metadata()
	require.Equal(t, "Jump", md.Title())
	require.Equal(t, track.GridVersion61, md.GridVersion())
	require.Equal(t, track.NewVec2(1, -2), md.StartPosition())
	require.Equal(t, track.DefaultStartGravity, md.StartGravity())
	require.Equal(t, track.NewRGBColor(10, 245, 249), md.StartBackgroundColor())
	require.True(t, md.ZeroVelocityStartRiders())
	artist, ok := md.Artist()
	require.True(t, ok)
	require.Equal(t, "someone", artist)

	lines := tr.LineGroup()
	require.Equal(t, 5, lines.Len())
	std := lines.StandardLines()
	require.Len(t, std, 2)
	require.True(t, std[0].Flipped())
	require.False(t, std[0].LeftExtension())
	require.True(t, std[0].RightExtension())
	require.Equal(t, uint32(4), std[1].ID())
	require.True(t, std[1].LeftExtension())
	require.False(t, std[1].Flipped())

	multiplier, ok := lines.AccelerationLines()[0].Multiplier()
	require.True(t, ok)
	require.Equal(t, 2.0, multiplier)

	layers, ok := tr.LayerGroup()
	require.True(t, ok)
	require.Len(t, layers.Layers(), 2)
	folders, ok := layers.LayerFolders()
	require.True(t, ok)
	require.Len(t, folders, 1)
	folder, _ := layers.Layers()[1].FolderID()
	require.Equal(t, track.FolderID{ID: 1, Valid: true}, folder)
	folder, _ = layers.Layers()[0].FolderID()
	require.False(t, folder.Valid)

	riders, ok := tr.RiderGroup()
	require.True(t, ok)
	remount, ok := riders.Riders()[0].CanRemount()
	require.True(t, ok)
	require.True(t, remount)

	legacy, ok := tr.LegacyCameraZoomGroup()
	require.True(t, ok)
	require.Len(t, legacy.Triggers(), 1)

	bg, ok := tr.BackgroundColorGroup()
	require.True(t, ok)
	require.Equal(t, "#010203", bg.Triggers()[0].Event().Color.Hex())

	lc, ok := tr.LineColorGroup()
	require.True(t, ok)
	require.Equal(t, track.FrameBoundsTrigger{Start: 20, End: 30}, lc.Triggers()[0].Trigger())
}

func TestReadRejectsInvalidData(t *testing.T) {
	cases := map[string]struct {
		doc  string
		name string
	}{
		"grid version": {
			doc:  `{"version": "5.0", "startPosition": {"x": 0, "y": 0}}`,
			name: "grid version",
		},
		"line type": {
			doc:  `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "lines": [{"id": 1, "type": 7}]}`,
			name: "line type",
		},
		"trigger type": {
			doc:  `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "gameTriggers": [{"triggerType": 4}]}`,
			name: "triggers 0 type",
		},
		"missing trigger color": {
			doc:  `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "gameTriggers": [{"triggerType": 2, "lineRed": 1, "lineGreen": 1}]}`,
			name: "line blue",
		},
		"color out of range": {
			doc:  `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "lineG": 300}`,
			name: "lineG",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := trackjson.Read([]byte(tc.doc))
			require.ErrorIs(t, err, trackjson.ErrInvalidData)

			var invalid *trackjson.InvalidDataError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.name, invalid.Name)
		})
	}
}

func TestReadInconsistentMultipliersFailsBuild(t *testing.T) {
	doc := `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "lines": [
		{"id": 1, "type": 1, "multiplier": 1},
		{"id": 2, "type": 1}
	]}`
	_, err := trackjson.Read([]byte(doc))
	require.ErrorIs(t, err, track.ErrMissingAttribute)
}

func TestWriteReadRoundTrip(t *testing.T) {
	original, err := trackjson.Read([]byte(document))
	require.NoError(t, err)

	data, err := trackjson.Write(original)
	require.NoError(t, err)

	decoded, err := trackjson.Read(data)
	require.NoError(t, err)

	require.Equal(t, original.Metadata(), decoded.Metadata())
	require.Equal(t, original.Features(), decoded.Features())
	require.Equal(t, original.LineGroup().AccelerationLines(), decoded.LineGroup().AccelerationLines())
	require.Equal(t, original.LineGroup().SceneryLines(), decoded.LineGroup().SceneryLines())

	layers, _ := original.LayerGroup()
	decodedLayers, _ := decoded.LayerGroup()
	require.Equal(t, layers.Layers(), decodedLayers.Layers())

	bg, _ := original.BackgroundColorGroup()
	decodedBg, _ := decoded.BackgroundColorGroup()
	if diff := cmp.Diff(bg.Triggers()[0].Event(), decodedBg.Triggers()[0].Event()); diff != "" {
		t.Errorf("background event mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteKeepsAbsentAttributesAbsent(t *testing.T) {
	b := track.NewTrackBuilder()
	b.EnableFeature(track.TrackFeatureLayers).EnableFeature(track.TrackFeatureRiderProperties)
	layers, err := b.LayerGroup()
	require.NoError(t, err)
	layers.AddLayer(7, 0)
	riders, err := b.RiderGroup()
	require.NoError(t, err)
	riders.AddRider().StartPosition(track.NewVec2(1, 2))
	original, err := b.Build()
	require.NoError(t, err)

	data, err := trackjson.Write(original)
	require.NoError(t, err)
	require.NotContains(t, string(data), "visible")
	require.NotContains(t, string(data), "startVelocity")

	decoded, err := trackjson.Read(data)
	require.NoError(t, err)

	decodedLayers, ok := decoded.LayerGroup()
	require.True(t, ok)
	require.Equal(t, 0, decodedLayers.Features().Len())
	_, ok = decodedLayers.Layers()[0].Visible()
	require.False(t, ok)
	_, ok = decodedLayers.Layers()[0].Name()
	require.False(t, ok)

	decodedRiders, ok := decoded.RiderGroup()
	require.True(t, ok)
	require.Equal(t, 0, decodedRiders.Features().Len())
	_, ok = decodedRiders.Riders()[0].StartVelocity()
	require.False(t, ok)
	require.Equal(t, original.Features(), decoded.Features())
}

func TestReadLayerWithoutVisibilityFailsWhenOthersHaveIt(t *testing.T) {
	doc := `{"version": "6.2", "startPosition": {"x": 0, "y": 0}, "layers": [
		{"id": 0, "visible": true},
		{"id": 1}
	]}`
	_, err := trackjson.Read([]byte(doc))
	require.ErrorIs(t, err, track.ErrMissingAttribute)
}
