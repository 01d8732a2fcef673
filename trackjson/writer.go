package trackjson

import (
	"encoding/json"
	"sort"

	"github.com/ddvk/lrtrack/track"
)

// Write encodes t as an indented track document
func Write(t *track.Track) ([]byte, error) {
	doc := fromTrack(t)
	return json.MarshalIndent(doc, "", "  ")
}

func ptr[T any](v T) *T {
	return &v
}

func channel(v uint8) *int {
	return ptr(int(v))
}

func fromTrack(t *track.Track) *jsonTrack {
	md := t.Metadata()
	start := md.StartPosition()
	gravity := md.StartGravity()
	lineColor := md.StartLineColor()
	bg := md.StartBackgroundColor()

	doc := &jsonTrack{
		Label:         md.Title(),
		Version:       md.GridVersion().String(),
		StartPosition: jsonVec2{X: start.X, Y: start.Y},
		XGravity:      ptr(gravity.X),
		YGravity:      ptr(gravity.Y),
		StartZoom:     ptr(md.StartZoom()),
		LineR:         channel(lineColor.Red),
		LineG:         channel(lineColor.Green),
		LineB:         channel(lineColor.Blue),
		BgR:           channel(bg.Red),
		BgG:           channel(bg.Green),
		BgB:           channel(bg.Blue),
	}
	if v, ok := md.Artist(); ok {
		doc.Creator = &v
	}
	if v, ok := md.Description(); ok {
		doc.Description = &v
	}
	if v, ok := md.Duration(); ok {
		doc.Duration = &v
	}
	if v, ok := md.Script(); ok {
		doc.Script = &v
	}
	if v, ok := md.GravityWellSize(); ok {
		doc.GravityWellSize = &v
	}
	if md.ZeroVelocityStartRiders() {
		doc.ZeroStart = ptr(true)
	}

	doc.Lines = writeLines(t.LineGroup())
	if layers, ok := t.LayerGroup(); ok {
		doc.Layers = writeLayers(layers)
	}
	if riders, ok := t.RiderGroup(); ok {
		for _, r := range riders.Riders() {
			pos := r.StartPosition()
			jr := jsonRider{StartPosition: jsonVec2{X: pos.X, Y: pos.Y}}
			if v, ok := r.StartVelocity(); ok {
				jr.StartVelocity = &jsonVec2{X: v.X, Y: v.Y}
			}
			if v, ok := r.StartAngle(); ok {
				jr.StartAngle = &v
			}
			if v, ok := r.CanRemount(); ok {
				jr.Remountable = &v
			}
			doc.Riders = append(doc.Riders, jr)
		}
	}
	writeTriggers(t, doc)
	return doc
}

func writeLines(lines *track.LineGroup) (out []jsonLine) {
	physics := func(id uint32, lineType track.LineType, p1, p2 track.Vec2, flipped, left, right bool) jsonLine {
		return jsonLine{
			ID:            id,
			Type:          int(lineType),
			X1:            p1.X,
			Y1:            p1.Y,
			X2:            p2.X,
			Y2:            p2.Y,
			Flipped:       ptr(flipped),
			LeftExtended:  ptr(left),
			RightExtended: ptr(right),
		}
	}
	for _, l := range lines.StandardLines() {
		p1, p2 := l.Endpoints()
		out = append(out, physics(l.ID(), track.LineTypeStandard, p1, p2, l.Flipped(), l.LeftExtension(), l.RightExtension()))
	}
	for _, l := range lines.AccelerationLines() {
		p1, p2 := l.Endpoints()
		jl := physics(l.ID(), track.LineTypeAcceleration, p1, p2, l.Flipped(), l.LeftExtension(), l.RightExtension())
		if m, ok := l.Multiplier(); ok {
			jl.Multiplier = &m
		}
		out = append(out, jl)
	}
	for _, l := range lines.SceneryLines() {
		p1, p2 := l.Endpoints()
		jl := jsonLine{ID: l.ID(), Type: int(track.LineTypeScenery), X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
		if w, ok := l.Width(); ok {
			jl.Width = &w
		}
		out = append(out, jl)
	}
	return out
}

type indexedLayer struct {
	index int
	layer jsonLayer
}

// writeLayers interleaves layers and folders back into document order
func writeLayers(group *track.LayerGroup) []jsonLayer {
	var all []indexedLayer
	for _, l := range group.Layers() {
		jl := jsonLayer{ID: l.ID()}
		writeLayerProps(&jl, l.Name, l.Visible, l.Editable)
		if folder, ok := l.FolderID(); ok {
			id := int64(-1)
			if folder.Valid {
				id = int64(folder.ID)
			}
			jl.FolderID = &id
		}
		all = append(all, indexedLayer{l.Index(), jl})
	}
	if folders, ok := group.LayerFolders(); ok {
		for _, f := range folders {
			jl := jsonLayer{ID: f.ID()}
			writeLayerProps(&jl, f.Name, f.Visible, f.Editable)
			if size, ok := f.Size(); ok {
				jl.Size = ptr(int64(size))
			}
			all = append(all, indexedLayer{f.Index(), jl})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].index < all[j].index })

	out := make([]jsonLayer, 0, len(all))
	for _, l := range all {
		out = append(out, l.layer)
	}
	return out
}

// writeLayerProps leaves gated properties out of the document when the layer
// group does not carry them
func writeLayerProps(jl *jsonLayer, name func() (string, bool), visible, editable func() (bool, bool)) {
	if v, ok := name(); ok {
		jl.Name = &v
	}
	if v, ok := visible(); ok {
		jl.Visible = &v
	}
	if v, ok := editable(); ok {
		jl.Editable = &v
	}
}

func writeTriggers(t *track.Track, doc *jsonTrack) {
	if g, ok := t.LegacyCameraZoomGroup(); ok {
		for _, te := range g.Triggers() {
			doc.Triggers = append(doc.Triggers, jsonLineHit{
				ID:     te.Trigger().LineID,
				Zoom:   true,
				Target: te.Event().Zoom,
				Frames: te.Trigger().Frames,
			})
		}
	}
	if g, ok := t.CameraZoomGroup(); ok {
		for _, te := range g.Triggers() {
			doc.GameTriggers = append(doc.GameTriggers, jsonGameEvent{
				TriggerType: gameTriggerZoom,
				Start:       te.Trigger().Start,
				End:         te.Trigger().End,
				ZoomTarget:  ptr(te.Event().Zoom),
			})
		}
	}
	if g, ok := t.BackgroundColorGroup(); ok {
		for _, te := range g.Triggers() {
			c := te.Event().Color
			doc.GameTriggers = append(doc.GameTriggers, jsonGameEvent{
				TriggerType:     gameTriggerBackgroundColor,
				Start:           te.Trigger().Start,
				End:             te.Trigger().End,
				BackgroundRed:   channel(c.Red),
				BackgroundGreen: channel(c.Green),
				BackgroundBlue:  channel(c.Blue),
			})
		}
	}
	if g, ok := t.LineColorGroup(); ok {
		for _, te := range g.Triggers() {
			c := te.Event().Color
			doc.GameTriggers = append(doc.GameTriggers, jsonGameEvent{
				TriggerType: gameTriggerLineColor,
				Start:       te.Trigger().Start,
				End:         te.Trigger().End,
				LineRed:     channel(c.Red),
				LineGreen:   channel(c.Green),
				LineBlue:    channel(c.Blue),
			})
		}
	}
}
