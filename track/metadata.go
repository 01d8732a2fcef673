package track

import "fmt"

const DefaultStartZoom = 4.0

var (
	DefaultStartGravity         = Vec2{X: 0, Y: 1}
	DefaultStartLineColor       = RGBColor{}
	DefaultStartBackgroundColor = RGBColor{Red: 244, Green: 245, Blue: 249}
)

type Metadata struct {
	title                   string
	artist                  *string
	description             *string
	script                  *string
	gridVersion             GridVersion
	startPosition           Vec2
	startGravity            Vec2
	startZoom               float64
	startLineColor          RGBColor
	startBackgroundColor    RGBColor
	duration                *uint32
	gravityWellSize         *float64
	zeroVelocityStartRiders bool
}

func optional[T any](v *T) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return *v, true
}

func (m Metadata) Title() string { return m.title }
func (m Metadata) Artist() (string, bool) { return optional(m.artist) }
func (m Metadata) Description() (string, bool) { return optional(m.description) }
func (m Metadata) Script() (string, bool) { return optional(m.script) }
func (m Metadata) GridVersion() GridVersion { return m.gridVersion }
func (m Metadata) StartPosition() Vec2 { return m.startPosition }
func (m Metadata) StartGravity() Vec2 { return m.startGravity }
func (m Metadata) StartZoom() float64 { return m.startZoom }
func (m Metadata) StartLineColor() RGBColor { return m.startLineColor }
func (m Metadata) StartBackgroundColor() RGBColor { return m.startBackgroundColor }

// Duration is the playback length in frames
func (m Metadata) Duration() (uint32, bool) { return optional(m.duration) }
func (m Metadata) GravityWellSize() (float64, bool) { return optional(m.gravityWellSize) }
func (m Metadata) ZeroVelocityStartRiders() bool { return m.zeroVelocityStartRiders }

func (m Metadata) String() string {
	return fmt.Sprintf("Metadata: title:%q grid:%v start:%v", m.title, m.gridVersion, m.startPosition)
}

type MetadataBuilder struct {
	metadata Metadata
}

func NewMetadataBuilder() *MetadataBuilder {
	return &MetadataBuilder{
		metadata: Metadata{
			gridVersion:          GridVersion62,
			startGravity:         DefaultStartGravity,
			startZoom:            DefaultStartZoom,
			startLineColor:       DefaultStartLineColor,
			startBackgroundColor: DefaultStartBackgroundColor,
		},
	}
}

func (b *MetadataBuilder) Title(title string) *MetadataBuilder {
	b.metadata.title = title
	return b
}

func (b *MetadataBuilder) Artist(artist string) *MetadataBuilder {
	b.metadata.artist = &artist
	return b
}

func (b *MetadataBuilder) Description(description string) *MetadataBuilder {
	b.metadata.description = &description
	return b
}

func (b *MetadataBuilder) Script(script string) *MetadataBuilder {
	b.metadata.script = &script
	return b
}

func (b *MetadataBuilder) GridVersion(version GridVersion) *MetadataBuilder {
	b.metadata.gridVersion = version
	return b
}

func (b *MetadataBuilder) StartPosition(position Vec2) *MetadataBuilder {
	b.metadata.startPosition = position
	return b
}

func (b *MetadataBuilder) StartGravity(gravity Vec2) *MetadataBuilder {
	b.metadata.startGravity = gravity
	return b
}

func (b *MetadataBuilder) StartZoom(zoom float64) *MetadataBuilder {
	b.metadata.startZoom = zoom
	return b
}

func (b *MetadataBuilder) StartLineColor(color RGBColor) *MetadataBuilder {
	b.metadata.startLineColor = color
	return b
}

func (b *MetadataBuilder) StartBackgroundColor(color RGBColor) *MetadataBuilder {
	b.metadata.startBackgroundColor = color
	return b
}

func (b *MetadataBuilder) Duration(frames uint32) *MetadataBuilder {
	b.metadata.duration = &frames
	return b
}

func (b *MetadataBuilder) GravityWellSize(size float64) *MetadataBuilder {
	b.metadata.gravityWellSize = &size
	return b
}

func (b *MetadataBuilder) ZeroVelocityStartRiders(zero bool) *MetadataBuilder {
	b.metadata.zeroVelocityStartRiders = zero
	return b
}

func (b *MetadataBuilder) Build() (Metadata, error) {
	if !b.metadata.gridVersion.Valid() {
		return Metadata{}, &InvalidValueError{Name: "grid_version", Value: b.metadata.gridVersion.String()}
	}
	return b.metadata, nil
}
