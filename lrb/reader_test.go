package lrb_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ddvk/lrtrack/lrb"
	"github.com/ddvk/lrtrack/track"
)

type entry struct {
	name    string
	version uint16
	flags   lrb.ModFlags
	payload []byte
}

// container lays out a header, the table and then the payloads
func container(t *testing.T, entries ...entry) []byte {
	t.Helper()
	tableSize := 3 + 1 + 2
	for _, e := range entries {
		tableSize += 1 + len(e.name) + 2 + 1
		if e.flags.Has(lrb.ModExtraData) {
			tableSize += 16
		}
	}

	s := lrb.NewSerializer()
	s.PutBytes([]byte("LRB"))
	s.PutByte(0)
	s.PutShort(uint16(len(entries)))
	offset := uint64(tableSize)
	for _, e := range entries {
		require.NoError(t, s.PutString8(e.name))
		s.PutShort(e.version)
		s.PutByte(byte(e.flags))
		if e.flags.Has(lrb.ModExtraData) {
			s.PutUInt64(offset)
			s.PutUInt64(uint64(len(e.payload)))
			offset += uint64(len(e.payload))
		}
	}
	for _, e := range entries {
		if e.flags.Has(lrb.ModExtraData) {
			s.PutBytes(e.payload)
		}
	}
	return s.Bytes()
}

func TestReadMinimalContainer(t *testing.T) {
	tr, warnings, err := lrb.Read([]byte{'L', 'R', 'B', 1, 0, 0})
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, 0, tr.Features().Len())
	require.Equal(t, 0, tr.LineGroup().Len())
	require.Equal(t, track.GridVersion62, tr.Metadata().GridVersion())

	_, ok := tr.LayerGroup()
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

func TestReadBadMagic(t *testing.T) {
	tr, _, err := lrb.Read([]byte{'T', 'R', 'K', 0, 0, 0})
	require.Nil(t, tr)
	require.ErrorIs(t, err, lrb.ErrInvalidData)

	var invalid *lrb.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "magic_number", invalid.Name)
	require.Equal(t, "54524b", invalid.Value)
}

func TestReadTruncated(t *testing.T) {
	cases := map[string][]byte{
		"magic_number": []byte("LR"),
		"version":      []byte("LRB"),
		"mod_count":    {'L', 'R', 'B', 0, 1},
		"mod_name":     {'L', 'R', 'B', 0, 1, 0},
		"mod_version":  {'L', 'R', 'B', 0, 1, 0, 1, 'x', 0},
		"mod_offset":   {'L', 'R', 'B', 0, 1, 0, 1, 'x', 0, 0, byte(lrb.ModExtraData), 1, 2},
	}
	for field, data := range cases {
		t.Run(field, func(t *testing.T) {
			_, _, err := lrb.Read(data)
			require.ErrorIs(t, err, lrb.ErrIo)

			var ioErr *lrb.IoError
			require.ErrorAs(t, err, &ioErr)
			require.Equal(t, field, ioErr.Field)
		})
	}
}

func TestReadRequiredUnsupportedMod(t *testing.T) {
	data := container(t, entry{name: "custom.mod", version: 3, flags: lrb.ModRequired | lrb.ModPhysics})

	tr, warnings, err := lrb.Read(data)
	require.Nil(t, tr)
	require.Nil(t, warnings)

	var unsupported *lrb.UnsupportedRequiredModError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "custom.mod", unsupported.Name)
	require.Equal(t, uint16(3), unsupported.Version)
	require.ErrorIs(t, err, lrb.ErrUnsupportedRequiredMod)
}

func TestReadOptionalUnsupportedMods(t *testing.T) {
	data := container(t,
		entry{name: "custom.scenery", version: 1, flags: lrb.ModScenery | lrb.ModCamera},
		entry{name: "custom.data", version: 2, flags: lrb.ModPhysics | lrb.ModExtraData, payload: []byte{1, 2, 3}},
	)

	tr, warnings, err := lrb.Read(data)
	require.NoError(t, err)
	require.NotNil(t, tr)

	want := []lrb.Warning{
		{Name: "custom.scenery", Version: 1, AffectsCamera: true, AffectsScenery: true},
		{Name: "custom.data", Version: 2, AffectsPhysics: true},
	}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "unsupported mod custom.data v2 (affects physics)", warnings[1].String())
}

func TestHandlerWithoutExtraDataKeepsCursor(t *testing.T) {
	var seen []int
	mods := lrb.NewRegistry(lrb.ModHandler{
		Name:  "test.flag",
		Flags: lrb.ModPhysics,
		Read: func(d *lrb.BinaryDeserializer, b *track.TrackBuilder) error {
			seen = append(seen, d.Pos())
			require.Equal(t, 0, d.Remaining())
			_, err := d.GetByte()
			require.Error(t, err)
			return nil
		},
	})
	data := container(t,
		entry{name: "test.flag", flags: lrb.ModPhysics},
		entry{name: "test.flag", flags: lrb.ModPhysics},
		entry{name: "other", version: 9, flags: lrb.ModCamera},
	)

	r := lrb.NewReader()
	r.Mods = mods
	_, warnings, err := r.Read(data)
	require.NoError(t, err)

	entrySize := 1 + len("test.flag") + 2 + 1
	require.Equal(t, []int{6 + entrySize, 6 + 2*entrySize}, seen)
	require.Len(t, warnings, 1)
	require.Equal(t, "other", warnings[0].Name)
	require.Equal(t, uint16(9), warnings[0].Version)
}

func TestHandlerReadsPayloadWindow(t *testing.T) {
	var got []uint32
	mods := lrb.NewRegistry(lrb.ModHandler{
		Name:    "test.data",
		Version: 1,
		Flags:   lrb.ModExtraData,
		Read: func(d *lrb.BinaryDeserializer, b *track.TrackBuilder) error {
			v, err := d.GetUInt32()
			got = append(got, v)
			return err
		},
	})
	data := container(t,
		entry{name: "test.data", version: 1, flags: lrb.ModExtraData, payload: []byte{7, 0, 0, 0}},
		entry{name: "test.data", version: 1, flags: lrb.ModExtraData, payload: []byte{8, 0, 0, 0}},
	)

	r := lrb.NewReader()
	r.Mods = mods
	_, _, err := r.Read(data)
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8}, got)
}

func TestHandlerCannotReadPastPayload(t *testing.T) {
	data := container(t, entry{
		name:    "base.startoffset",
		flags:   lrb.ModPhysics | lrb.ModExtraData,
		payload: make([]byte, 12),
	})

	_, _, err := lrb.Read(data)
	var ioErr *lrb.IoError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "base.startoffset", ioErr.Field)
}

func TestPayloadOutOfBounds(t *testing.T) {
	s := lrb.NewSerializer()
	s.PutBytes([]byte("LRB"))
	s.PutByte(0)
	s.PutShort(1)
	require.NoError(t, s.PutString8("base.label"))
	s.PutShort(0)
	s.PutByte(byte(lrb.ModExtraData))
	s.PutUInt64(1 << 40)
	s.PutUInt64(4)

	_, _, err := lrb.Read(s.Bytes())
	var invalid *lrb.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "mod_payload", invalid.Name)
}

func TestReadInvalidGridVersion(t *testing.T) {
	data := container(t, entry{
		name:    "base.gridver",
		flags:   lrb.ModRequired | lrb.ModPhysics | lrb.ModExtraData,
		payload: []byte{7},
	})

	_, _, err := lrb.Read(data)
	var invalid *lrb.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "grid_version", invalid.Name)
	require.Equal(t, "7", invalid.Value)
}

func TestReadDuplicateLineIDsFailsBuild(t *testing.T) {
	sim := lrb.NewSerializer()
	sim.PutUInt32(1)
	sim.PutUInt32(5)
	sim.PutByte(0)
	sim.PutVec2(0, 0)
	sim.PutVec2(1, 1)

	scn := lrb.NewSerializer()
	scn.PutUInt32(1)
	scn.PutUInt32(5)
	scn.PutVec2(0, 0)
	scn.PutVec2(2, 2)

	data := container(t,
		entry{name: "base.simline", flags: lrb.ModRequired | lrb.ModPhysics | lrb.ModExtraData, payload: sim.Bytes()},
		entry{name: "base.scnline", flags: lrb.ModScenery | lrb.ModExtraData, payload: scn.Bytes()},
	)

	tr, _, err := lrb.Read(data)
	require.Nil(t, tr)
	require.ErrorIs(t, err, lrb.ErrBuild)
	require.ErrorIs(t, err, track.ErrDuplicateID)
}

func TestModFlagsString(t *testing.T) {
	require.Equal(t, "NONE", lrb.ModFlags(0).String())
	require.Equal(t, "REQUIRED|PHYSICS|EXTRA_DATA", (lrb.ModRequired | lrb.ModPhysics | lrb.ModExtraData).String())
}

func TestDefaultRegistry(t *testing.T) {
	mods := lrb.DefaultRegistry()
	require.Equal(t, 6, mods.Len())

	h, ok := mods.Lookup("base.simline", 0)
	require.True(t, ok)
	require.True(t, h.Flags.Has(lrb.ModRequired))

	_, ok = mods.Lookup("base.simline", 1)
	require.False(t, ok)
}
