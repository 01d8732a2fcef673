package track

import "fmt"

type layerProps struct {
	id       uint32
	index    int
	name     *string
	visible  *bool
	editable *bool
}

func (l layerProps) ID() uint32 {
	return l.id
}

// Index is the position of the entry in the layer list
func (l layerProps) Index() int {
	return l.index
}

func (l layerProps) Name() (string, bool) {
	return optional(l.name)
}

func (l layerProps) Visible() (bool, bool) {
	return optional(l.visible)
}

func (l layerProps) Editable() (bool, bool) {
	return optional(l.editable)
}

// FolderID is the parent folder of a layer. Valid is false when the layer
// was explicitly placed outside of any folder.
type FolderID struct {
	ID    uint32
	Valid bool
}

type Layer struct {
	layerProps
	folderID *FolderID
}

// FolderID reports the parent folder; ok is false when it was never set.
func (l Layer) FolderID() (folder FolderID, ok bool) {
	return optional(l.folderID)
}

func (l Layer) String() string {
	name, _ := l.Name()
	return fmt.Sprintf("Layer: Id:%d index:%d name:%s", l.id, l.index, name)
}

type LayerFolder struct {
	layerProps
	size *uint32
}

func (f LayerFolder) Size() (uint32, bool) {
	return optional(f.size)
}

func (f LayerFolder) String() string {
	name, _ := f.Name()
	return fmt.Sprintf("LayerFolder: Id:%d index:%d name:%s", f.id, f.index, name)
}

type LayerBuilder struct {
	layer Layer
}

func (b *LayerBuilder) ID(id uint32) *LayerBuilder {
	b.layer.id = id
	return b
}

func (b *LayerBuilder) Index(index int) *LayerBuilder {
	b.layer.index = index
	return b
}

func (b *LayerBuilder) Name(name string) *LayerBuilder {
	b.layer.name = &name
	return b
}

func (b *LayerBuilder) Visible(visible bool) *LayerBuilder {
	b.layer.visible = &visible
	return b
}

func (b *LayerBuilder) Editable(editable bool) *LayerBuilder {
	b.layer.editable = &editable
	return b
}

func (b *LayerBuilder) FolderID(id uint32) *LayerBuilder {
	b.layer.folderID = &FolderID{ID: id, Valid: true}
	return b
}

// NoFolder records that the layer explicitly has no parent folder
func (b *LayerBuilder) NoFolder() *LayerBuilder {
	b.layer.folderID = &FolderID{}
	return b
}

func (b *LayerBuilder) build() Layer {
	return b.layer
}

type LayerFolderBuilder struct {
	folder LayerFolder
}

func (b *LayerFolderBuilder) ID(id uint32) *LayerFolderBuilder {
	b.folder.id = id
	return b
}

func (b *LayerFolderBuilder) Index(index int) *LayerFolderBuilder {
	b.folder.index = index
	return b
}

func (b *LayerFolderBuilder) Name(name string) *LayerFolderBuilder {
	b.folder.name = &name
	return b
}

func (b *LayerFolderBuilder) Visible(visible bool) *LayerFolderBuilder {
	b.folder.visible = &visible
	return b
}

func (b *LayerFolderBuilder) Editable(editable bool) *LayerFolderBuilder {
	b.folder.editable = &editable
	return b
}

func (b *LayerFolderBuilder) Size(size uint32) *LayerFolderBuilder {
	b.folder.size = &size
	return b
}

func (b *LayerFolderBuilder) build() LayerFolder {
	return b.folder
}
