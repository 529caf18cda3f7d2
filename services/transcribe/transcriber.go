// Package transcribe turns captured speech into chat text. The capability
// sits behind an interface because capture is platform-specific: browsers
// may transcribe locally and never call this at all.
package transcribe

import "context"

// Transcriber converts one audio clip to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (string, error)
}
