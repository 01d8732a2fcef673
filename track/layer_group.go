package track

import (
	"fmt"
	"slices"
)

type LayerFeature uint8

const (
	LayerFeatureName LayerFeature = iota
	LayerFeatureVisible
	LayerFeatureEditable
	// LayerFeatureFolders gates the folder collection and the folder_id/size attributes.
	LayerFeatureFolders
)

func (f LayerFeature) String() string {
	switch f {
	case LayerFeatureName:
		return "Name"
	case LayerFeatureVisible:
		return "Visible"
	case LayerFeatureEditable:
		return "Editable"
	case LayerFeatureFolders:
		return "Folders"
	}
	return fmt.Sprintf("LayerFeature(%d)", uint8(f))
}

type LayerGroup struct {
	features     Features[LayerFeature]
	layers       []Layer
	layerFolders []LayerFolder
}

func (g *LayerGroup) Features() Features[LayerFeature] {
	return g.features
}

func (g *LayerGroup) Layers() []Layer {
	return slices.Clone(g.layers)
}

// LayerFolders returns the folders; ok is false when LayerFeatureFolders is disabled.
func (g *LayerGroup) LayerFolders() (folders []LayerFolder, ok bool) {
	if !g.features.Has(LayerFeatureFolders) {
		return nil, false
	}
	return slices.Clone(g.layerFolders), true
}

type LayerGroupBuilder struct {
	groupBase[LayerFeature]
	layers       []*LayerBuilder
	layerFolders *[]*LayerFolderBuilder
}

func (b *LayerGroupBuilder) EnableFeature(feature LayerFeature) *LayerGroupBuilder {
	if feature == LayerFeatureFolders && b.layerFolders == nil {
		b.layerFolders = &[]*LayerFolderBuilder{}
	}
	b.enable(feature)
	return b
}

func (b *LayerGroupBuilder) AddLayer(id uint32, index int) *LayerBuilder {
	lb := &LayerBuilder{}
	lb.ID(id).Index(index)
	b.layers = append(b.layers, lb)
	return lb
}

func (b *LayerGroupBuilder) Layers() []*LayerBuilder {
	return b.layers
}

func (b *LayerGroupBuilder) AddLayerFolder(id uint32, index int) (*LayerFolderBuilder, error) {
	folders, err := requireFeature(b.features, LayerFeatureFolders, b.layerFolders)
	if err != nil {
		return nil, err
	}
	fb := &LayerFolderBuilder{}
	fb.ID(id).Index(index)
	*folders = append(*folders, fb)
	return fb, nil
}

func (b *LayerGroupBuilder) LayerFolders() ([]*LayerFolderBuilder, error) {
	folders, err := requireFeature(b.features, LayerFeatureFolders, b.layerFolders)
	if err != nil {
		return nil, err
	}
	return *folders, nil
}

func (b *LayerGroupBuilder) checkProps(p layerProps) error {
	if err := checkFeature(b.features, LayerFeatureName, p.name != nil, "name"); err != nil {
		return err
	}
	if err := checkFeature(b.features, LayerFeatureVisible, p.visible != nil, "visible"); err != nil {
		return err
	}
	return checkFeature(b.features, LayerFeatureEditable, p.editable != nil, "editable")
}

func (b *LayerGroupBuilder) Build() (*LayerGroup, error) {
	group := &LayerGroup{
		features: b.features,
		layers:   make([]Layer, 0, len(b.layers)),
	}
	ids := make(map[uint32]struct{})
	unique := func(id uint32) error {
		if _, ok := ids[id]; ok {
			return &DuplicateIDError{Kind: "layer", ID: id}
		}
		ids[id] = struct{}{}
		return nil
	}

	for i, lb := range b.layers {
		layer := lb.build()
		err := unique(layer.id)
		if err == nil {
			err = b.checkProps(layer.layerProps)
		}
		if err == nil {
			err = checkFeature(b.features, LayerFeatureFolders, layer.folderID != nil, "folder_id")
		}
		if err != nil {
			return nil, subError("layer_group", "layers", i, err)
		}
		group.layers = append(group.layers, layer)
	}

	if err := checkFeature(b.features, LayerFeatureFolders, b.layerFolders != nil, "layer_folders"); err != nil {
		return nil, err
	}
	if b.layerFolders == nil {
		return group, nil
	}

	group.layerFolders = make([]LayerFolder, 0, len(*b.layerFolders))
	for i, fb := range *b.layerFolders {
		folder := fb.build()
		err := unique(folder.id)
		if err == nil {
			err = b.checkProps(folder.layerProps)
		}
		if err == nil {
			err = checkFeature(b.features, LayerFeatureFolders, folder.size != nil, "size")
		}
		if err != nil {
			return nil, subError("layer_group", "layer_folders", i, err)
		}
		group.layerFolders = append(group.layerFolders, folder)
	}
	return group, nil
}
