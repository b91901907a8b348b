package provider

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Attachment is a local file loaded for inclusion in a provider request.
type Attachment struct {
	// Path is the path the file was read from.
	Path string
	// Data is the raw file content.
	Data []byte
	// MIME is the media type guessed from the file extension, without
	// parameters. Defaults to application/octet-stream.
	MIME string
}

// LoadAttachment reads the file at path and classifies its media type.
func LoadAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Attachment{Path: path, Data: data, MIME: mimeTypeForPath(path)}, nil
}

// mimeTypeForPath guesses a media type from the file extension. Parameters
// such as charset are stripped because image blocks require a bare type.
func mimeTypeForPath(path string) string {
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		return "application/octet-stream"
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

// IsImage reports whether the attachment carries an image media type.
func (a *Attachment) IsImage() bool {
	return strings.HasPrefix(a.MIME, "image/")
}

// Text returns the attachment content as a string when it is valid UTF-8.
func (a *Attachment) Text() (string, bool) {
	if !utf8.Valid(a.Data) {
		return "", false
	}
	return string(a.Data), true
}

// Base64 returns the attachment content encoded as standard base64.
func (a *Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// DataURL returns the attachment as a data: URL for APIs that take inline
// image references.
func (a *Attachment) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIME, a.Base64())
}

// textualPrompt folds a non-image attachment into the prompt text. Decodable
// content is interpolated verbatim; binary content is replaced by a
// placeholder naming the file so the call still succeeds.
func textualPrompt(prompt string, a *Attachment) string {
	if text, ok := a.Text(); ok {
		return fmt.Sprintf("%s\n\nFile content:\n%s", prompt, text)
	}
	return fmt.Sprintf("%s\n\n[Binary file provided: %s]", prompt, a.Path)
}
