package documents

// Kind identifies the payload type of an Artifact.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindZIP  Kind = "zip"
	KindText Kind = "text"
)

// Response filenames.
const (
	MergedFilename     = "merged.pdf"
	SplitFilename      = "split.pdf"
	SplitPagesFilename = "split_pages.zip"
	EncryptedFilename  = "encrypted.pdf"
	TextFilename       = "extracted_text.txt"
)

// Artifact is the in-memory result of an operation.
type Artifact struct {
	Kind        Kind
	Filename    string
	ContentType string
	Data        []byte
}

// Text returns the payload of a text artifact.
func (a *Artifact) Text() string {
	return string(a.Data)
}

func pdfArtifact(filename string, data []byte) *Artifact {
	return &Artifact{
		Kind:        KindPDF,
		Filename:    filename,
		ContentType: "application/pdf",
		Data:        data,
	}
}
