// Package attachment encodes binary files for inclusion in JSON payloads.
//
// The remote service accepts uploaded media inline as a data URI:
//
//	data:audio/ogg;base64,T2dnUwACAAAAAAAAAAA...
//
// Request builders treat the encoded string as opaque.
package attachment

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// audioTypes covers the formats the soundboard accepts. The system MIME
// table does not reliably know them.
var audioTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/ogg",
}

// Attachment is a named blob of bytes.
type Attachment struct {
	Filename string
	Data     []byte
}

// New returns an attachment for data held in memory.
func New(filename string, data []byte) *Attachment {
	return &Attachment{Filename: filename, Data: data}
}

// FromFile reads an attachment from fs. The base name of path becomes the
// attachment's filename.
func FromFile(fs afero.Fs, path string) (*Attachment, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return New(filepath.Base(path), data), nil
}

// ContentType returns the MIME type of the attachment. The filename
// extension wins; content sniffing is the fallback.
func (a *Attachment) ContentType() string {
	if ext := strings.ToLower(filepath.Ext(a.Filename)); ext != "" {
		if t, ok := audioTypes[ext]; ok {
			return t
		}
		if t := mime.TypeByExtension(ext); t != "" {
			// Drop parameters such as "; charset=utf-8".
			if i := strings.IndexByte(t, ';'); i >= 0 {
				t = strings.TrimSpace(t[:i])
			}
			return t
		}
	}
	return http.DetectContentType(a.Data)
}

// ToBase64 returns the attachment as a base64 data URI. A nil attachment
// encodes as "", which the service rejects.
func (a *Attachment) ToBase64() string {
	if a == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(a.ContentType())
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(a.Data))
	return b.String()
}
