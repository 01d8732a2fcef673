package lrb

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ddvk/lrtrack/track"
)

// bits of the per-line flag byte in base.simline
const (
	simLineAcceleration = 1 << iota
	simLineFlipped
	simLineLeftExtension
	simLineRightExtension
)

var gridVersionMod = ModHandler{
	Name:    "base.gridver",
	Version: 0,
	Flags:   ModRequired | ModPhysics | ModExtraData,
	Read: func(d *BinaryDeserializer, b *track.TrackBuilder) error {
		v, err := d.GetByte()
		if err != nil {
			return ioError("base.gridver", err)
		}
		version := track.GridVersion(v)
		if !version.Valid() {
			return &InvalidDataError{Name: "grid_version", Value: strconv.Itoa(int(v))}
		}
		log.Trace("grid version: ", version)
		b.Metadata().GridVersion(version)
		return nil
	},
	Write: func(s *BinarySerializer, t *track.Track) (bool, error) {
		s.PutByte(byte(t.Metadata().GridVersion()))
		return true, nil
	},
}

var labelMod = ModHandler{
	Name:    "base.label",
	Version: 0,
	Flags:   ModExtraData,
	Read: func(d *BinaryDeserializer, b *track.TrackBuilder) error {
		label, err := d.GetString16()
		if err != nil {
			return ioError("base.label", err)
		}
		log.Tracef("label: %q", label)
		b.Metadata().Title(label)
		return nil
	},
	Write: func(s *BinarySerializer, t *track.Track) (bool, error) {
		title := t.Metadata().Title()
		if title == "" {
			return false, nil
		}
		return true, s.PutString16(title)
	},
}

var startOffsetMod = ModHandler{
	Name:    "base.startoffset",
	Version: 0,
	Flags:   ModPhysics | ModExtraData,
	Read: func(d *BinaryDeserializer, b *track.TrackBuilder) error {
		x, y, err := d.GetVec2()
		if err != nil {
			return ioError("base.startoffset", err)
		}
		b.Metadata().StartPosition(track.NewVec2(x, y))
		return nil
	},
	Write: func(s *BinarySerializer, t *track.Track) (bool, error) {
		start := t.Metadata().StartPosition()
		if start == (track.Vec2{}) {
			return false, nil
		}
		s.PutVec2(start.X, start.Y)
		return true, nil
	},
}

var simLineMod = ModHandler{
	Name:    "base.simline",
	Version: 0,
	Flags:   ModRequired | ModPhysics | ModExtraData,
	Read: func(d *BinaryDeserializer, b *track.TrackBuilder) error {
		count, err := d.GetUInt32()
		if err != nil {
			return ioError("base.simline.count", err)
		}
		log.Trace("simulation lines: ", count)
		lines := b.LineGroup()
		for i := uint32(0); i < count; i++ {
			id, err := d.GetUInt32()
			if err != nil {
				return ioError("base.simline.id", err)
			}
			flags, err := d.GetByte()
			if err != nil {
				return ioError("base.simline.flags", err)
			}
			x1, y1, err := d.GetVec2()
			if err != nil {
				return ioError("base.simline.p1", err)
			}
			x2, y2, err := d.GetVec2()
			if err != nil {
				return ioError("base.simline.p2", err)
			}
			p1, p2 := track.NewVec2(x1, y1), track.NewVec2(x2, y2)
			log.Tracef("simline id:%d flags:%04b %v %v", id, flags, p1, p2)
			flipped := flags&simLineFlipped != 0
			left := flags&simLineLeftExtension != 0
			right := flags&simLineRightExtension != 0
			if flags&simLineAcceleration != 0 {
				lines.AddAccelerationLine(id, p1, p2, flipped, left, right)
			} else {
				lines.AddStandardLine(id, p1, p2, flipped, left, right)
			}
		}
		return nil
	},
	Write: func(s *BinarySerializer, t *track.Track) (bool, error) {
		standard := t.LineGroup().StandardLines()
		acceleration := t.LineGroup().AccelerationLines()
		if len(standard)+len(acceleration) == 0 {
			return false, nil
		}
		s.PutUInt32(uint32(len(standard) + len(acceleration)))
		put := func(id uint32, p1, p2 track.Vec2, flags byte) {
			s.PutUInt32(id)
			s.PutByte(flags)
			s.PutVec2(p1.X, p1.Y)
			s.PutVec2(p2.X, p2.Y)
		}
		for _, l := range standard {
			p1, p2 := l.Endpoints()
			put(l.ID(), p1, p2, simLineFlags(false, l.Flipped(), l.LeftExtension(), l.RightExtension()))
		}
		for _, l := range acceleration {
			p1, p2 := l.Endpoints()
			put(l.ID(), p1, p2, simLineFlags(true, l.Flipped(), l.LeftExtension(), l.RightExtension()))
		}
		return true, nil
	},
}

func simLineFlags(acceleration, flipped, left, right bool) (flags byte) {
	if acceleration {
		flags |= simLineAcceleration
	}
	if flipped {
		flags |= simLineFlipped
	}
	if left {
		flags |= simLineLeftExtension
	}
	if right {
		flags |= simLineRightExtension
	}
	return
}

var sceneryLineMod = ModHandler{
	Name:    "base.scnline",
	Version: 0,
	Flags:   ModScenery | ModExtraData,
	Read: func(d *BinaryDeserializer, b *track.TrackBuilder) error {
		count, err := d.GetUInt32()
		if err != nil {
			return ioError("base.scnline.count", err)
		}
		log.Trace("scenery lines: ", count)
		lines := b.LineGroup()
		for i := uint32(0); i < count; i++ {
			id, err := d.GetUInt32()
			if err != nil {
				return ioError("base.scnline.id", err)
			}
			x1, y1, err := d.GetVec2()
			if err != nil {
				return ioError("base.scnline.p1", err)
			}
			x2, y2, err := d.GetVec2()
			if err != nil {
				return ioError("base.scnline.p2", err)
			}
			lines.AddSceneryLine(id, track.NewVec2(x1, y1), track.NewVec2(x2, y2))
		}
		return nil
	},
	Write: func(s *BinarySerializer, t *track.Track) (bool, error) {
		scenery := t.LineGroup().SceneryLines()
		if len(scenery) == 0 {
			return false, nil
		}
		s.PutUInt32(uint32(len(scenery)))
		for _, l := range scenery {
			p1, p2 := l.Endpoints()
			s.PutUInt32(l.ID())
			s.PutVec2(p1.X, p1.Y)
			s.PutVec2(p2.X, p2.Y)
		}
		return true, nil
	},
}

var zeroStartMod = ModHandler{
	Name:    "base.zerostart",
	Version: 0,
	Flags:   ModRequired | ModPhysics,
	Read: func(_ *BinaryDeserializer, b *track.TrackBuilder) error {
		b.EnableFeature(track.TrackFeatureZeroVelocityStartRiders)
		b.Metadata().ZeroVelocityStartRiders(true)
		return nil
	},
	Write: func(_ *BinarySerializer, t *track.Track) (bool, error) {
		return t.Metadata().ZeroVelocityStartRiders(), nil
	},
}
