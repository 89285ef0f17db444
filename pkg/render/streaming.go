package render

import (
	"context"

	"github.com/vellum-dev/vellum/pkg/markup"
)

// DefaultChunkSize is used when a caller passes a chunk size below 1.
const DefaultChunkSize = 4096

func normalizeChunkSize(size int) int {
	if size < 1 {
		return DefaultChunkSize
	}
	return size
}

// SplitChunks slices b into size-byte chunks. Every chunk except the
// last holds exactly size bytes; the last holds the remainder. Empty
// input yields no chunks at all. The chunks alias b.
func SplitChunks(b []byte, size int) [][]byte {
	size = normalizeChunkSize(size)
	if len(b) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(b)+size-1)/size)
	for len(b) > size {
		chunks = append(chunks, b[:size])
		b = b[size:]
	}
	return append(chunks, b)
}

// Chunks renders the tree and returns the output as chunks.
// Concatenating them reproduces Render byte for byte.
func (r *Renderer) Chunks(node *markup.Node, size int) [][]byte {
	return SplitChunks(r.Render(node), size)
}

// Stream renders the tree and delivers the chunks over a channel. The
// tree is rendered up front; delivery paces to the consumer. When ctx
// is cancelled the stream stops between chunks and the channel closes.
// The producer always closes the channel.
func (r *Renderer) Stream(ctx context.Context, node *markup.Node, size int) <-chan []byte {
	ch := make(chan []byte)
	go func() {
		defer close(ch)
		for _, chunk := range r.Chunks(node, size) {
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// StreamDocument serializes a complete page progressively: chunks are
// delivered as soon as they fill, while traversal is still running,
// so a slow consumer suspends the producer between chunks.
//
// Because the head is already on the wire before the body has been
// walked, the collected stylesheet cannot go in the head; it is
// emitted at the end of the body instead, just before the closing
// body tag. That placement is the one observable difference from
// RenderDocument. Cancellation stops the stream between chunks; a
// partial chunk is never delivered.
func (r *Renderer) StreamDocument(ctx context.Context, d *Document, size int) <-chan []byte {
	ch := make(chan []byte)
	go func() {
		defer close(ch)
		buf := newStreamBuffer(normalizeChunkSize(size), func(p []byte) error {
			select {
			case ch <- p:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		writeDocumentProgressive(buf, NewContext(r.cfg), d)
		buf.finish()
	}()
	return ch
}

// writeDocumentProgressive mirrors RenderDocument's byte sequence with
// the stylesheet relocated to the end of the body.
func writeDocumentProgressive(buf *Buffer, rc *Context, d *Document) {
	writeDocPrefix(buf, rc, d)
	if d.Head != nil {
		renderBlockChild(buf, rc, d.Head)
	}
	rc.exit()
	buf.WriteString("</head>")
	rc.writeNewline(buf)
	buf.WriteString("<body>")
	rc.writeNewline(buf)
	rc.enter()
	if d.Body != nil {
		renderBlockChild(buf, rc, d.Body)
	}
	writeStyleBlock(buf, rc, rc.Stylesheet())
	rc.exit()
	writeDocSuffix(buf, rc)
}
