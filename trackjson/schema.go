package trackjson

import (
	"encoding/json"
	"fmt"
)

type jsonTrack struct {
	Label           string          `json:"label"`
	Creator         *string         `json:"creator,omitempty"`
	Description     *string         `json:"description,omitempty"`
	Duration        *uint32         `json:"duration,omitempty"`
	Version         string          `json:"version"`
	StartPosition   jsonVec2        `json:"startPosition"`
	Lines           []jsonLine      `json:"lines,omitempty"`
	LinesArray      []jsonArrayLine `json:"linesArray,omitempty"`
	Layers          []jsonLayer     `json:"layers,omitempty"`
	Riders          []jsonRider     `json:"riders,omitempty"`
	ZeroStart       *bool           `json:"zeroStart,omitempty"`
	XGravity        *float64        `json:"xGravity,omitempty"`
	YGravity        *float64        `json:"yGravity,omitempty"`
	GravityWellSize *float64        `json:"gravityWellSize,omitempty"`
	BgR             *int            `json:"bgR,omitempty"`
	BgG             *int            `json:"bgG,omitempty"`
	BgB             *int            `json:"bgB,omitempty"`
	LineR           *int            `json:"lineR,omitempty"`
	LineG           *int            `json:"lineG,omitempty"`
	LineB           *int            `json:"lineB,omitempty"`
	StartZoom       *float64        `json:"startZoom,omitempty"`
	Script          *string         `json:"script,omitempty"`
	Triggers        []jsonLineHit   `json:"triggers,omitempty"`
	GameTriggers    []jsonGameEvent `json:"gameTriggers,omitempty"`
}

type jsonVec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonLine struct {
	ID            uint32   `json:"id"`
	Type          int      `json:"type"`
	X1            float64  `json:"x1"`
	Y1            float64  `json:"y1"`
	X2            float64  `json:"x2"`
	Y2            float64  `json:"y2"`
	Flipped       *bool    `json:"flipped,omitempty"`
	LeftExtended  *bool    `json:"leftExtended,omitempty"`
	RightExtended *bool    `json:"rightExtended,omitempty"`
	Extended      *int     `json:"extended,omitempty"`
	Multiplier    *float64 `json:"multiplier,omitempty"`
	Width         *float64 `json:"width,omitempty"`
}

type jsonLayer struct {
	ID       uint32  `json:"id"`
	Name     *string `json:"name,omitempty"`
	Visible  *bool   `json:"visible,omitempty"`
	Editable *bool   `json:"editable,omitempty"`
	FolderID *int64  `json:"folderId,omitempty"`
	Size     *int64  `json:"size,omitempty"`
}

type jsonRider struct {
	StartPosition jsonVec2  `json:"startPosition"`
	StartVelocity *jsonVec2 `json:"startVelocity,omitempty"`
	StartAngle    *float64  `json:"startAngle,omitempty"`
	Remountable   *bool     `json:"remountable,omitempty"`
}

// jsonLineHit is a legacy zoom trigger fired by touching a line
type jsonLineHit struct {
	ID     uint32  `json:"ID"`
	Zoom   bool    `json:"zoom"`
	Target float64 `json:"target"`
	Frames uint32  `json:"frames"`
}

const (
	gameTriggerZoom = iota
	gameTriggerBackgroundColor
	gameTriggerLineColor
)

type jsonGameEvent struct {
	TriggerType     int      `json:"triggerType"`
	Start           uint32   `json:"start"`
	End             uint32   `json:"end"`
	ZoomTarget      *float64 `json:"zoomTarget,omitempty"`
	BackgroundRed   *int     `json:"backgroundRed,omitempty"`
	BackgroundGreen *int     `json:"backgroundGreen,omitempty"`
	BackgroundBlue  *int     `json:"backgroundBlue,omitempty"`
	LineRed         *int     `json:"lineRed,omitempty"`
	LineGreen       *int     `json:"lineGreen,omitempty"`
	LineBlue        *int     `json:"lineBlue,omitempty"`
}

// jsonArrayLine is the positional line encoding of older exports:
//
//	[type, id, x1, y1, x2, y2, extended, flipped, leftLine, rightLine, multiplier]
//
// scenery lines stop after y2.
type jsonArrayLine struct {
	Type       int
	ID         uint32
	X1, Y1     float64
	X2, Y2     float64
	Extended   int
	Flipped    bool
	Multiplier *float64
}

func (l *jsonArrayLine) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < 6 {
		return fmt.Errorf("line array of %d fields is too short", len(fields))
	}
	targets := []any{&l.Type, &l.ID, &l.X1, &l.Y1, &l.X2, &l.Y2}
	for i, target := range targets {
		if err := json.Unmarshal(fields[i], target); err != nil {
			return fmt.Errorf("line array field %d: %w", i, err)
		}
	}
	if len(fields) > 6 {
		if err := json.Unmarshal(fields[6], &l.Extended); err != nil {
			return fmt.Errorf("line array field 6: %w", err)
		}
	}
	if len(fields) > 7 {
		flipped, err := looseBool(fields[7])
		if err != nil {
			return fmt.Errorf("line array field 7: %w", err)
		}
		l.Flipped = flipped
	}
	if len(fields) > 10 {
		var multiplier float64
		if err := json.Unmarshal(fields[10], &multiplier); err != nil {
			return fmt.Errorf("line array field 10: %w", err)
		}
		l.Multiplier = &multiplier
	}
	return nil
}

// looseBool accepts true/false as well as 0/1
func looseBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return false, err
	}
	return n != 0, nil
}
