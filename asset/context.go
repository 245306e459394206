package asset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cwbudde/algo-audionodes/graph"
)

// Context implements [graph.Context] on top of a [Store]. Audio references
// resolve through raw bytes first, then the store by asset identifier, then
// the local filesystem by URI.
type Context struct {
	store *Store
}

// NewContext returns a context backed by store.
func NewContext(store *Store) *Context {
	return &Context{store: store}
}

// Store returns the backing store.
func (c *Context) Store() *Store {
	return c.store
}

// DecodeAudio resolves ref and decodes it into a clip.
func (c *Context) DecodeAudio(ctx context.Context, ref graph.AudioRef) (*graph.Clip, error) {
	data, err := c.ReadAsset(ctx, ref)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodeAudio encodes clip to 16-bit WAV and stores the result.
func (c *Context) EncodeAudio(ctx context.Context, clip *graph.Clip) (graph.AudioRef, error) {
	if err := ctx.Err(); err != nil {
		return graph.AudioRef{}, err
	}
	data, err := EncodeWAV(clip)
	if err != nil {
		return graph.AudioRef{}, err
	}
	id, err := c.store.Put(data)
	if err != nil {
		return graph.AudioRef{}, err
	}
	return graph.AudioRef{AssetID: id, Data: data}, nil
}

// ReadAsset returns the raw bytes behind ref without decoding.
func (c *Context) ReadAsset(ctx context.Context, ref graph.AudioRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch {
	case len(ref.Data) > 0:
		return ref.Data, nil
	case ref.AssetID != "":
		return c.store.Get(ref.AssetID)
	case ref.URI != "":
		data, err := os.ReadFile(strings.TrimPrefix(ref.URI, "file://"))
		if err != nil {
			return nil, fmt.Errorf("reading asset %q: %w", ref.URI, err)
		}
		return data, nil
	default:
		return nil, graph.ErrEmptyAudio
	}
}

// ImageFromBytes stores an encoded image and returns its reference.
func (c *Context) ImageFromBytes(ctx context.Context, data []byte) (graph.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return graph.ImageRef{}, err
	}
	if len(data) == 0 {
		return graph.ImageRef{}, fmt.Errorf("image data must not be empty")
	}
	id, err := c.store.Put(data)
	if err != nil {
		return graph.ImageRef{}, err
	}
	return graph.ImageRef{AssetID: id, Data: data}, nil
}

// SaveAudio persists ref into folder under name. An empty name gets a
// generated one; the folder URI is treated as a local directory path.
func (c *Context) SaveAudio(ctx context.Context, ref graph.AudioRef, folder graph.FolderRef, name string) (graph.AudioRef, error) {
	data, err := c.ReadAsset(ctx, ref)
	if err != nil {
		return graph.AudioRef{}, err
	}
	if name == "" {
		name = uuid.NewString() + ".wav"
	}

	id, err := c.store.Put(data)
	if err != nil {
		return graph.AudioRef{}, err
	}

	saved := graph.AudioRef{AssetID: id}
	if folder.URI != "" {
		dir := strings.TrimPrefix(folder.URI, "file://")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return graph.AudioRef{}, fmt.Errorf("creating folder %q: %w", dir, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return graph.AudioRef{}, fmt.Errorf("saving audio %q: %w", path, err)
		}
		saved.URI = path
	}
	return saved, nil
}

var _ graph.Context = (*Context)(nil)
