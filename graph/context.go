package graph

import "context"

// Context is the slice of the external workflow engine a node is allowed to
// see. It resolves references into decoded buffers, re-encodes results, and
// persists artifacts. Implementations own cancellation and timeout policy;
// nodes simply pass the ctx through on every boundary call.
type Context interface {
	// DecodeAudio resolves ref and decodes it into a sample buffer.
	DecodeAudio(ctx context.Context, ref AudioRef) (*Clip, error)

	// EncodeAudio encodes clip and returns a reference to the stored result.
	EncodeAudio(ctx context.Context, clip *Clip) (AudioRef, error)

	// ReadAsset returns the raw bytes behind ref without decoding.
	ReadAsset(ctx context.Context, ref AudioRef) ([]byte, error)

	// ImageFromBytes stores an encoded image and returns its reference.
	ImageFromBytes(ctx context.Context, data []byte) (ImageRef, error)

	// SaveAudio persists ref into folder under the given file name and
	// returns a reference to the saved copy.
	SaveAudio(ctx context.Context, ref AudioRef, folder FolderRef, name string) (AudioRef, error)
}
