// Package document renders contract documents from a fixed legal template.
package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sogrinha/internal/model"
)

var (
	// ErrMissingRequiredData is returned before rendering when mandatory records are absent.
	ErrMissingRequiredData = errors.New("missing required data")
	ErrUnsupportedKind     = errors.New("unsupported contract kind")
	ErrUnsupportedFormat   = errors.New("unsupported document format")
)

// Format selects the output encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat accepts "pdf" or "docx", case-insensitively. Empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/pdf"
}

// ContractData is a contract with its resolved parties. Owner is mandatory.
type ContractData struct {
	Contract   model.Contract
	Owner      *model.Owner
	Lessee     *model.Lessee
	RealEstate *model.RealEstate
}

// Rendered is a finished document ready to be offered as a download.
type Rendered struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Generator fills the contract template and renders it.
type Generator struct {
	loc *time.Location
	now func() time.Time
}

// NewGenerator returns a Generator that dates documents in loc.
func NewGenerator(loc *time.Location) *Generator {
	if loc == nil {
		loc = time.Local
	}
	return &Generator{loc: loc, now: time.Now}
}

// Generate validates data, fills the template and renders it in the requested format.
func (g *Generator) Generate(data ContractData, format Format) (*Rendered, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	if format != FormatPDF && format != FormatDOCX {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	now := g.now().In(g.loc)
	c, err := buildContent(data, now)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch format {
	case FormatPDF:
		out, err = renderPDF(c, now)
	case FormatDOCX:
		out, err = renderDOCX(c)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return &Rendered{
		FileName:    fileName(data.Contract, now, format),
		ContentType: format.ContentType(),
		Content:     out,
	}, nil
}

// Validate reports ErrMissingRequiredData when the owner is absent or unnamed.
func Validate(data ContractData) error {
	if data.Owner == nil {
		return fmt.Errorf("%w: owner", ErrMissingRequiredData)
	}
	if strings.TrimSpace(data.Owner.FullName) == "" {
		return fmt.Errorf("%w: owner full name", ErrMissingRequiredData)
	}
	if !data.Contract.Kind.IsRental() && !data.Contract.Kind.IsSale() {
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, data.Contract.Kind)
	}
	return nil
}

// contractNumber falls back to the generation timestamp for contracts without an identifier.
func contractNumber(c model.Contract, now time.Time) string {
	if c.Identifier != "" {
		return c.Identifier
	}
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func fileName(c model.Contract, now time.Time, format Format) string {
	n := strings.TrimPrefix(contractNumber(c, now), "#")
	n = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, n)
	return "contrato_" + n + "." + string(format)
}
