package lrb

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ddvk/lrtrack/track"
)

// DefaultFormatVersion is written in the header when none is configured
const DefaultFormatVersion byte = 0

type Writer struct {
	Mods    *Registry
	Version byte
	Log     *log.Entry
}

func NewWriter() *Writer {
	return &Writer{
		Mods:    DefaultRegistry(),
		Version: DefaultFormatVersion,
		Log:     log.NewEntry(log.StandardLogger()),
	}
}

// Write encodes t with the default registry
func Write(t *track.Track) ([]byte, error) {
	return NewWriter().Write(t)
}

type encodedMod struct {
	handler ModHandler
	payload []byte
}

// Write encodes t. Every registered mod with data for t gets a table entry;
// payloads follow the table and their offsets are absolute. Groups the base
// mods cannot express are dropped and logged.
func (w *Writer) Write(t *track.Track) ([]byte, error) {
	logger := w.Log
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	mods := w.Mods
	if mods == nil {
		mods = DefaultRegistry()
	}

	var encoded []encodedMod
	tableSize := len(magic) + 1 + 2
	for _, h := range mods.Handlers() {
		if h.Write == nil {
			continue
		}
		if len(h.Name) > 0xff {
			return nil, fmt.Errorf("mod name %q is longer than 255 bytes", h.Name)
		}
		payload := NewSerializer()
		ok, err := h.Write(payload, t)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", h.Name, err)
		}
		if !ok {
			continue
		}
		encoded = append(encoded, encodedMod{handler: h, payload: payload.Bytes()})
		tableSize += 1 + len(h.Name) + 2 + 1
		if h.Flags.Has(ModExtraData) {
			tableSize += 8 + 8
		}
	}
	if len(encoded) > 0xffff {
		return nil, fmt.Errorf("too many mods: %d", len(encoded))
	}

	out := NewSerializer()
	out.PutBytes([]byte(magic))
	out.PutByte(w.Version)
	out.PutShort(uint16(len(encoded)))

	offset := uint64(tableSize)
	for _, m := range encoded {
		if err := out.PutString8(m.handler.Name); err != nil {
			return nil, err
		}
		out.PutShort(m.handler.Version)
		out.PutByte(byte(m.handler.Flags))
		if m.handler.Flags.Has(ModExtraData) {
			out.PutUInt64(offset)
			out.PutUInt64(uint64(len(m.payload)))
			offset += uint64(len(m.payload))
		}
	}
	for _, m := range encoded {
		if m.handler.Flags.Has(ModExtraData) {
			out.PutBytes(m.payload)
		}
	}

	logDropped(logger, t)
	logger.Debugf("wrote %d mods, %d bytes", len(encoded), out.Len())
	return out.Bytes(), nil
}

// logDropped reports the parts of t that the base mods have no room for
func logDropped(logger *log.Entry, t *track.Track) {
	if layers, ok := t.LayerGroup(); ok {
		logger.Warnf("lrb: dropping %d layers", len(layers.Layers()))
	}
	if riders, ok := t.RiderGroup(); ok {
		logger.Warnf("lrb: dropping %d riders", len(riders.Riders()))
	}
	if g, ok := t.BackgroundColorGroup(); ok {
		logger.Warnf("lrb: dropping %d background color triggers", len(g.Triggers()))
	}
	if g, ok := t.LineColorGroup(); ok {
		logger.Warnf("lrb: dropping %d line color triggers", len(g.Triggers()))
	}
	if g, ok := t.CameraZoomGroup(); ok {
		logger.Warnf("lrb: dropping %d camera zoom triggers", len(g.Triggers()))
	}
	if g, ok := t.LegacyCameraZoomGroup(); ok {
		logger.Warnf("lrb: dropping %d legacy camera zoom triggers", len(g.Triggers()))
	}
	lines := t.LineGroup()
	if lines.Features().Has(track.LineFeatureAccelerationMultiplier) {
		logger.Warn("lrb: dropping acceleration multipliers")
	}
	if lines.Features().Has(track.LineFeatureSceneryWidth) {
		logger.Warn("lrb: dropping scenery widths")
	}
}
