// Package lrb reads and writes the LRB binary track container: a "LRB" magic,
// a format version byte, and a table of versioned mods whose payloads are
// decoded by the handlers of a Registry.
package lrb

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ddvk/lrtrack/track"
)

const magic = "LRB"

type Reader struct {
	Mods *Registry
	Log  *log.Entry
}

// NewReader returns a reader for the base mods. Its log entries carry a
// session id so concurrent decodes can be told apart.
func NewReader() *Reader {
	return &Reader{
		Mods: DefaultRegistry(),
		Log:  log.WithField("session", uuid.NewString()),
	}
}

// Read decodes data with the default registry
func Read(data []byte) (*track.Track, []Warning, error) {
	return NewReader().Read(data)
}

// Read decodes a whole container. Optional mods that are not registered are
// skipped and reported as warnings; on error no track is returned.
func (r *Reader) Read(data []byte) (t *track.Track, warnings []Warning, err error) {
	logger := r.Log
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	mods := r.Mods
	if mods == nil {
		mods = DefaultRegistry()
	}

	d := NewDeserializer(data)
	builder := track.NewTrackBuilder()

	magicNumber, err := d.GetBytes(len(magic))
	if err != nil {
		return nil, nil, ioError("magic_number", err)
	}
	if string(magicNumber) != magic {
		return nil, nil, &InvalidDataError{Name: "magic_number", Value: hex.EncodeToString(magicNumber)}
	}

	version, err := d.GetByte()
	if err != nil {
		return nil, nil, ioError("version", err)
	}
	modCount, err := d.GetShort()
	if err != nil {
		return nil, nil, ioError("mod_count", err)
	}
	logger.Debugf("format version: %d, mods: %d", version, modCount)

	for i := 0; i < int(modCount); i++ {
		entry, err := readEntry(d)
		if err != nil {
			return nil, nil, err
		}
		logger.Tracef("mod %s v%d flags:%v at pos:%d", entry.name, entry.version, entry.flags, d.Pos())

		handler, ok := mods.Lookup(entry.name, entry.version)
		switch {
		case ok:
			if err = invoke(d, handler, entry, builder); err != nil {
				return nil, nil, err
			}
		case entry.flags.Has(ModRequired):
			return nil, nil, &UnsupportedRequiredModError{Name: entry.name, Version: entry.version}
		default:
			w := newWarning(entry.name, entry.version, entry.flags)
			logger.Warn(w)
			warnings = append(warnings, w)
		}
	}

	t, err = builder.Build()
	if err != nil {
		return nil, nil, &BuildError{Err: err}
	}
	return t, warnings, nil
}

type modEntry struct {
	name    string
	version uint16
	flags   ModFlags
	offset  uint64
	length  uint64
}

func readEntry(d *BinaryDeserializer) (e modEntry, err error) {
	if e.name, err = d.GetString8(); err != nil {
		return e, ioError("mod_name", err)
	}
	if e.version, err = d.GetShort(); err != nil {
		return e, ioError("mod_version", err)
	}
	flags, err := d.GetByte()
	if err != nil {
		return e, ioError("mod_flags", err)
	}
	e.flags = ModFlags(flags)
	if e.flags.Has(ModExtraData) {
		if e.offset, err = d.GetUInt64(); err != nil {
			return e, ioError("mod_offset", err)
		}
		if e.length, err = d.GetUInt64(); err != nil {
			return e, ioError("mod_length", err)
		}
	}
	return e, nil
}

// invoke runs the handler inside the entry's payload window. Entries without
// extra data get an empty window at the current position. The cursor is back
// at the next table entry afterwards.
func invoke(d *BinaryDeserializer, handler ModHandler, e modEntry, b *track.TrackBuilder) error {
	start, end := d.Pos(), d.Pos()
	if e.flags.Has(ModExtraData) {
		size := uint64(len(d.buffer))
		if e.offset > size || e.length > size-e.offset {
			return &InvalidDataError{
				Name:  "mod_payload",
				Value: fmt.Sprintf("%s offset:%d length:%d buffer:%d", e.name, e.offset, e.length, size),
			}
		}
		start, end = int(e.offset), int(e.offset+e.length)
	}
	if handler.Read == nil {
		return nil
	}
	return d.window(start, end, func() error {
		return handler.Read(d, b)
	})
}
