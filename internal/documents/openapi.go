package documents

import "github.com/JaimeStill/pdf-tools/pkg/openapi"

type spec struct {
	Merge        *openapi.Operation
	Split        *openapi.Operation
	SplitToPages *openapi.Operation
	Encrypt      *openapi.Operation
	OCR          *openapi.Operation
}

var errorResponses = map[int]*openapi.Response{
	400: openapi.ResponseRef("BadRequest"),
	413: openapi.ResponseRef("PayloadTooLarge"),
	500: openapi.ResponseRef("ServerError"),
}

func withErrors(responses map[int]*openapi.Response) map[int]*openapi.Response {
	for status, resp := range errorResponses {
		responses[status] = resp
	}
	return responses
}

var Spec = spec{
	Merge: &openapi.Operation{
		Summary:     "Merge PDFs",
		Description: "Concatenate the pages of every uploaded PDF in submission order. Fails if any file is unreadable or encrypted.",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			FieldFiles: {
				Type:        "array",
				Description: "PDF files to merge, in order",
				Items:       openapi.FileField("PDF file"),
			},
		}, FieldFiles),
		Responses: withErrors(map[int]*openapi.Response{
			200: openapi.ResponseFile("Merged document ("+MergedFilename+")", "application/pdf"),
		}),
	},
	Split: &openapi.Operation{
		Summary:     "Split PDF by page range",
		Description: "Extract the pages named by a page range expression, in expression order. Repeated pages are kept.",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			FieldFile: openapi.FileField("Source PDF"),
			FieldPageRanges: {
				Type:        "string",
				Description: "Comma-separated pages and inclusive ranges, 1-based",
				Pattern:     pageRangesPattern.String(),
				Example:     "1-3,5,7-9",
			},
		}, FieldFile, FieldPageRanges),
		Responses: withErrors(map[int]*openapi.Response{
			200: openapi.ResponseFile("Selected pages ("+SplitFilename+")", "application/pdf"),
		}),
	},
	SplitToPages: &openapi.Operation{
		Summary:     "Split PDF into pages",
		Description: "Write every page as its own PDF, page_1.pdf through page_N.pdf, inside a ZIP archive.",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			FieldFile: openapi.FileField("Source PDF"),
		}, FieldFile),
		Responses: withErrors(map[int]*openapi.Response{
			200: openapi.ResponseFile("Page archive ("+SplitPagesFilename+")", "application/zip"),
		}),
	},
	Encrypt: &openapi.Operation{
		Summary:     "Encrypt PDF",
		Description: "Protect the document with a password required to open it.",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			FieldFile:     openapi.FileField("Source PDF"),
			FieldPassword: {Type: "string", Format: "password", Description: "Non-empty password"},
		}, FieldFile, FieldPassword),
		Responses: withErrors(map[int]*openapi.Response{
			200: openapi.ResponseFile("Encrypted document ("+EncryptedFilename+")", "application/pdf"),
		}),
	},
	OCR: &openapi.Operation{
		Summary:     "Extract PDF text",
		Description: "Return the text of every page. Pages without a text layer are rendered and recognized with OCR; per-page failures are reported inline.",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			FieldFile: openapi.FileField("Source PDF"),
			FieldFormat: {
				Type:        "string",
				Description: "Response format",
				Enum:        []string{FormatJSON, FormatTXT},
				Default:     FormatJSON,
			},
		}, FieldFile),
		Responses: withErrors(map[int]*openapi.Response{
			200: {
				Description: "Extracted text as {\"text\": ...}, or " + TextFilename + " when format is txt",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"text": {Type: "string", Example: "Page 1:\nHello\n"},
						},
					}},
					"text/plain": {Schema: &openapi.Schema{Type: "string"}},
				},
			},
		}),
	},
}
