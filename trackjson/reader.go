// Package trackjson reads and writes the .track.json document used by the
// web editors.
package trackjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ddvk/lrtrack/track"
)

var ErrInvalidData = errors.New("trackjson: invalid data")

type InvalidDataError struct {
	Name  string
	Value string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid value for `%s`: %s", e.Name, e.Value)
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalidData
}

// Read decodes a track document. Features are enabled for whatever the
// document carries, so a field that only some entries set fails the build.
func Read(data []byte) (*track.Track, error) {
	var doc jsonTrack
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding track json: %w", err)
	}

	b := track.NewTrackBuilder()
	if err := readMetadata(b, &doc); err != nil {
		return nil, err
	}
	if err := readLines(b, &doc); err != nil {
		return nil, err
	}
	if err := readLayers(b, doc.Layers); err != nil {
		return nil, err
	}
	if err := readRiders(b, doc.Riders); err != nil {
		return nil, err
	}
	if err := readTriggers(b, &doc); err != nil {
		return nil, err
	}

	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("building track: %w", err)
	}
	log.Debugf("track json: %v", t)
	return t, nil
}

func readMetadata(b *track.TrackBuilder, doc *jsonTrack) error {
	version, err := track.ParseGridVersion(doc.Version)
	if err != nil {
		return &InvalidDataError{Name: "grid version", Value: doc.Version}
	}
	md := b.Metadata().
		GridVersion(version).
		Title(doc.Label).
		StartPosition(track.NewVec2(doc.StartPosition.X, doc.StartPosition.Y))

	if doc.Creator != nil {
		md.Artist(*doc.Creator)
	}
	if doc.Description != nil {
		md.Description(*doc.Description)
	}
	if doc.Duration != nil {
		md.Duration(*doc.Duration)
	}
	if doc.Script != nil {
		md.Script(*doc.Script)
	}
	if doc.ZeroStart != nil && *doc.ZeroStart {
		b.EnableFeature(track.TrackFeatureZeroVelocityStartRiders)
		md.ZeroVelocityStartRiders(true)
	}
	if doc.GravityWellSize != nil {
		md.GravityWellSize(*doc.GravityWellSize)
	}
	gravity := track.DefaultStartGravity
	if doc.XGravity != nil {
		gravity.X = *doc.XGravity
	}
	if doc.YGravity != nil {
		gravity.Y = *doc.YGravity
	}
	md.StartGravity(gravity)
	if doc.StartZoom != nil {
		md.StartZoom(*doc.StartZoom)
	}

	lineColor, err := color("line", track.DefaultStartLineColor, doc.LineR, doc.LineG, doc.LineB)
	if err != nil {
		return err
	}
	md.StartLineColor(lineColor)
	bgColor, err := color("bg", track.DefaultStartBackgroundColor, doc.BgR, doc.BgG, doc.BgB)
	if err != nil {
		return err
	}
	md.StartBackgroundColor(bgColor)
	return nil
}

// color fills missing channels from def and rejects values outside 0..255
func color(name string, def track.RGBColor, r, g, b *int) (track.RGBColor, error) {
	c := def
	channels := []struct {
		suffix string
		value  *int
		target *uint8
	}{
		{"R", r, &c.Red},
		{"G", g, &c.Green},
		{"B", b, &c.Blue},
	}
	for _, ch := range channels {
		if ch.value == nil {
			continue
		}
		if *ch.value < 0 || *ch.value > math.MaxUint8 {
			return c, &InvalidDataError{Name: name + ch.suffix, Value: strconv.Itoa(*ch.value)}
		}
		*ch.target = uint8(*ch.value)
	}
	return c, nil
}

func readLines(b *track.TrackBuilder, doc *jsonTrack) error {
	lines := b.LineGroup()
	for _, l := range doc.Lines {
		lineType, err := track.ParseLineType(l.Type)
		if err != nil {
			return &InvalidDataError{Name: "line type", Value: strconv.Itoa(l.Type)}
		}
		p1, p2 := track.NewVec2(l.X1, l.Y1), track.NewVec2(l.X2, l.Y2)
		flipped := l.Flipped != nil && *l.Flipped

		var left, right bool
		switch {
		case lineType == track.LineTypeScenery:
		case l.Extended != nil:
			left, right = *l.Extended&1 != 0, *l.Extended&2 != 0
		case l.LeftExtended != nil && l.RightExtended != nil:
			left, right = *l.LeftExtended, *l.RightExtended
		}

		switch lineType {
		case track.LineTypeStandard:
			lines.AddStandardLine(l.ID, p1, p2, flipped, left, right)
		case track.LineTypeAcceleration:
			lb := lines.AddAccelerationLine(l.ID, p1, p2, flipped, left, right)
			if l.Multiplier != nil {
				lines.EnableFeature(track.LineFeatureAccelerationMultiplier)
				lb.Multiplier(*l.Multiplier)
			}
		case track.LineTypeScenery:
			lb := lines.AddSceneryLine(l.ID, p1, p2)
			if l.Width != nil {
				lines.EnableFeature(track.LineFeatureSceneryWidth)
				lb.Width(*l.Width)
			}
		}
	}

	for _, l := range doc.LinesArray {
		lineType, err := track.ParseLineType(l.Type)
		if err != nil {
			return &InvalidDataError{Name: "line type", Value: strconv.Itoa(l.Type)}
		}
		p1, p2 := track.NewVec2(l.X1, l.Y1), track.NewVec2(l.X2, l.Y2)
		left, right := l.Extended&1 != 0, l.Extended&2 != 0
		switch lineType {
		case track.LineTypeStandard:
			lines.AddStandardLine(l.ID, p1, p2, l.Flipped, left, right)
		case track.LineTypeAcceleration:
			lb := lines.AddAccelerationLine(l.ID, p1, p2, l.Flipped, left, right)
			if l.Multiplier != nil {
				lines.EnableFeature(track.LineFeatureAccelerationMultiplier)
				lb.Multiplier(*l.Multiplier)
			}
		case track.LineTypeScenery:
			lines.AddSceneryLine(l.ID, p1, p2)
		}
	}
	return nil
}

func readLayers(b *track.TrackBuilder, layers []jsonLayer) error {
	if len(layers) == 0 {
		return nil
	}
	b.EnableFeature(track.TrackFeatureLayers)
	group, err := b.LayerGroup()
	if err != nil {
		return err
	}
	for _, l := range layers {
		if l.Name != nil {
			group.EnableFeature(track.LayerFeatureName)
		}
		if l.Visible != nil {
			group.EnableFeature(track.LayerFeatureVisible)
		}
		if l.Editable != nil {
			group.EnableFeature(track.LayerFeatureEditable)
		}
		if l.Size != nil || l.FolderID != nil {
			group.EnableFeature(track.LayerFeatureFolders)
		}
	}
	folders := group.Features().Has(track.LayerFeatureFolders)

	for index, l := range layers {
		if l.Size != nil {
			if *l.Size < 0 || *l.Size > math.MaxUint32 {
				return &InvalidDataError{Name: "layer size", Value: strconv.FormatInt(*l.Size, 10)}
			}
			folder, err := group.AddLayerFolder(l.ID, index)
			if err != nil {
				return err
			}
			folder.Size(uint32(*l.Size))
			if l.Name != nil {
				folder.Name(*l.Name)
			}
			if l.Visible != nil {
				folder.Visible(*l.Visible)
			}
			if l.Editable != nil {
				folder.Editable(*l.Editable)
			}
			continue
		}

		layer := group.AddLayer(l.ID, index)
		if l.Name != nil {
			layer.Name(*l.Name)
		}
		if l.Visible != nil {
			layer.Visible(*l.Visible)
		}
		if l.Editable != nil {
			layer.Editable(*l.Editable)
		}
		switch {
		case l.FolderID != nil && *l.FolderID >= 0 && *l.FolderID <= math.MaxUint32:
			layer.FolderID(uint32(*l.FolderID))
		case folders:
			layer.NoFolder()
		}
	}
	return nil
}

func readRiders(b *track.TrackBuilder, riders []jsonRider) error {
	if len(riders) == 0 {
		return nil
	}
	b.EnableFeature(track.TrackFeatureRiderProperties)
	group, err := b.RiderGroup()
	if err != nil {
		return err
	}
	for _, r := range riders {
		if r.StartVelocity != nil {
			group.EnableFeature(track.RiderFeatureStartVelocity)
		}
		if r.StartAngle != nil {
			group.EnableFeature(track.RiderFeatureStartAngle)
		}
		if r.Remountable != nil {
			group.EnableFeature(track.RiderFeatureRemount)
		}
	}

	for _, r := range riders {
		rb := group.AddRider().StartPosition(track.NewVec2(r.StartPosition.X, r.StartPosition.Y))
		if r.StartVelocity != nil {
			rb.StartVelocity(track.NewVec2(r.StartVelocity.X, r.StartVelocity.Y))
		}
		if r.StartAngle != nil {
			rb.StartAngle(*r.StartAngle)
		}
		if r.Remountable != nil {
			rb.CanRemount(*r.Remountable)
		}
	}
	return nil
}

func readTriggers(b *track.TrackBuilder, doc *jsonTrack) error {
	for _, trigger := range doc.Triggers {
		if !trigger.Zoom {
			continue
		}
		b.EnableFeature(track.TrackFeatureLegacyCameraZoomTriggers)
		group, err := b.LegacyCameraZoomGroup()
		if err != nil {
			return err
		}
		group.AddTrigger().
			Trigger(track.LineHitTrigger{LineID: trigger.ID, Frames: trigger.Frames}).
			Event(track.CameraZoomEvent{Zoom: trigger.Target})
	}

	for i, trigger := range doc.GameTriggers {
		bounds := track.FrameBoundsTrigger{Start: trigger.Start, End: trigger.End}
		switch trigger.TriggerType {
		case gameTriggerZoom:
			if trigger.ZoomTarget == nil {
				return &InvalidDataError{Name: "zoom target", Value: "None"}
			}
			b.EnableFeature(track.TrackFeatureCameraZoomTriggers)
			group, err := b.CameraZoomGroup()
			if err != nil {
				return err
			}
			group.AddTrigger().Trigger(bounds).Event(track.CameraZoomEvent{Zoom: *trigger.ZoomTarget})
		case gameTriggerBackgroundColor:
			c, err := triggerColor("background", trigger.BackgroundRed, trigger.BackgroundGreen, trigger.BackgroundBlue)
			if err != nil {
				return err
			}
			b.EnableFeature(track.TrackFeatureBackgroundColorTriggers)
			group, err := b.BackgroundColorGroup()
			if err != nil {
				return err
			}
			group.AddTrigger().Trigger(bounds).Event(track.BackgroundColorEvent{Color: c})
		case gameTriggerLineColor:
			c, err := triggerColor("line", trigger.LineRed, trigger.LineGreen, trigger.LineBlue)
			if err != nil {
				return err
			}
			b.EnableFeature(track.TrackFeatureLineColorTriggers)
			group, err := b.LineColorGroup()
			if err != nil {
				return err
			}
			group.AddTrigger().Trigger(bounds).Event(track.LineColorEvent{Color: c})
		default:
			return &InvalidDataError{Name: fmt.Sprintf("triggers %d type", i), Value: strconv.Itoa(trigger.TriggerType)}
		}
	}
	return nil
}

// triggerColor requires all three channels
func triggerColor(name string, r, g, b *int) (c track.RGBColor, err error) {
	channels := []struct {
		name   string
		value  *int
		target *uint8
	}{
		{name + " red", r, &c.Red},
		{name + " green", g, &c.Green},
		{name + " blue", b, &c.Blue},
	}
	for _, ch := range channels {
		if ch.value == nil {
			return c, &InvalidDataError{Name: ch.name, Value: "None"}
		}
		if *ch.value < 0 || *ch.value > math.MaxUint8 {
			return c, &InvalidDataError{Name: ch.name, Value: strconv.Itoa(*ch.value)}
		}
		*ch.target = uint8(*ch.value)
	}
	return c, nil
}
