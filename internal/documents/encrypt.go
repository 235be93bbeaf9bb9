package documents

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Encrypt sets password as both user and owner password using the
// writer's default AES-256 encryption.
func (s *system) Encrypt(ctx context.Context, input []byte, password string) (*Artifact, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrInvalidPassword
	}

	doc, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if doc.Encrypted() {
		return nil, fmt.Errorf("%w already", ErrEncrypted)
	}

	conf := newConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var buf bytes.Buffer
	if err := api.Encrypt(bytes.NewReader(doc.Bytes()), &buf, conf); err != nil {
		return nil, fmt.Errorf("encrypt document: %w", err)
	}

	s.logger.Info("encrypted document", "pages", doc.PageCount(), "bytes", buf.Len())
	return pdfArtifact(EncryptedFilename, buf.Bytes()), nil
}
