// Package export turns stored resumes and generated cover letters into
// downloadable PDF artifacts. Rendering goes draft → HTML → PDF, the PDF
// is persisted to the object store and then streamed back to the client.
package export

import "context"

// Renderer prints a standalone HTML document to PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}
