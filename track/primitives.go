package track

import (
	"fmt"
	"strconv"
)

type Vec2 struct {
	X float64
	Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

type RGBColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func NewRGBColor(red, green, blue uint8) RGBColor {
	return RGBColor{Red: red, Green: green, Blue: blue}
}

// Hex returns the color as a css string, e.g. #f4f5f9
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c RGBColor) String() string {
	return c.Hex()
}

type GridVersion byte

const (
	GridVersion62 GridVersion = iota
	GridVersion61
	GridVersion60
)

func (g GridVersion) Valid() bool {
	return g <= GridVersion60
}

func (g GridVersion) String() string {
	switch g {
	case GridVersion62:
		return "6.2"
	case GridVersion61:
		return "6.1"
	case GridVersion60:
		return "6.0"
	}
	return fmt.Sprintf("GridVersion(%d)", byte(g))
}

func ParseGridVersion(s string) (GridVersion, error) {
	switch s {
	case "6.2":
		return GridVersion62, nil
	case "6.1":
		return GridVersion61, nil
	case "6.0":
		return GridVersion60, nil
	}
	return 0, &InvalidValueError{Name: "grid version", Value: s}
}

type LineType byte

const (
	LineTypeStandard LineType = iota
	LineTypeAcceleration
	LineTypeScenery
)

func (l LineType) String() string {
	switch l {
	case LineTypeStandard:
		return "Standard"
	case LineTypeAcceleration:
		return "Acceleration"
	case LineTypeScenery:
		return "Scenery"
	}
	return fmt.Sprintf("LineType(%d)", byte(l))
}

// ParseLineType maps the numeric line codes used by text formats.
func ParseLineType(code int) (LineType, error) {
	if code < 0 || code > int(LineTypeScenery) {
		return 0, &InvalidValueError{Name: "line type", Value: strconv.Itoa(code)}
	}
	return LineType(code), nil
}
