package storage

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

func init() {
	// Keep pdfcpu from creating a config directory in $HOME.
	model.ConfigPath = "disable"
}

// Inspection is what the upload precondition check learned about a file.
type Inspection struct {
	ContentType string
	Size        int64
	Pages       int
}

// Inspect runs the upload preconditions: declared type, size ceiling,
// sniffed type and PDF structure. It never touches the network.
func Inspect(file []byte, declaredContentType, acceptedType string, maxBytes int64) (Inspection, error) {
	declared := normalizeContentType(declaredContentType)
	if declared != acceptedType {
		return Inspection{}, fmt.Errorf("declared %q: %w", declaredContentType, domain.ErrUnsupportedMediaType)
	}

	size := int64(len(file))
	if size > maxBytes {
		return Inspection{}, fmt.Errorf("%d bytes exceeds %d: %w", size, maxBytes, domain.ErrPayloadTooLarge)
	}
	if size == 0 {
		return Inspection{}, domain.NewValidationError("file", "file is empty")
	}

	sniffed := mimetype.Detect(file)
	if !sniffed.Is(acceptedType) {
		return Inspection{}, fmt.Errorf("content looks like %q: %w", sniffed.String(), domain.ErrUnsupportedMediaType)
	}

	insp := Inspection{ContentType: acceptedType, Size: size}

	if acceptedType == domain.ResumeContentType {
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed

		pages, err := api.PageCount(bytes.NewReader(file), conf)
		if err != nil {
			return Inspection{}, fmt.Errorf("unreadable pdf: %v: %w", err, domain.ErrUnsupportedMediaType)
		}
		if pages == 0 {
			return Inspection{}, domain.NewValidationError("file", "document has no pages")
		}
		insp.Pages = pages
	}

	return insp, nil
}

func normalizeContentType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}
