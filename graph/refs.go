package graph

// AudioRef is an opaque handle to audio content. It may carry raw encoded
// bytes, a storage URI, an asset identifier, or any combination; the engine
// context resolves it into a decoded [Clip] before a node operates on it.
type AudioRef struct {
	URI     string `json:"uri,omitempty"`
	AssetID string `json:"asset_id,omitempty"`
	Data    []byte `json:"-"`
}

// IsEmpty reports whether the reference resolves to nothing.
func (r AudioRef) IsEmpty() bool {
	return r.URI == "" && r.AssetID == "" && len(r.Data) == 0
}

// ImageRef is a handle to an encoded image asset, e.g. a rendered
// spectrogram.
type ImageRef struct {
	URI     string `json:"uri,omitempty"`
	AssetID string `json:"asset_id,omitempty"`
	Data    []byte `json:"-"`
}

// IsEmpty reports whether the reference resolves to nothing.
func (r ImageRef) IsEmpty() bool {
	return r.URI == "" && r.AssetID == "" && len(r.Data) == 0
}

// FolderRef is a handle to a destination for batch-exported artifacts.
type FolderRef struct {
	URI     string `json:"uri,omitempty"`
	AssetID string `json:"asset_id,omitempty"`
}

// IsEmpty reports whether the folder reference resolves to nothing.
func (r FolderRef) IsEmpty() bool {
	return r.URI == "" && r.AssetID == ""
}
