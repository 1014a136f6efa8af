package bridge

import (
	"context"
	"errors"

	"sogrinha/internal/attachment"
	"sogrinha/internal/document"
	"sogrinha/internal/model"
	"sogrinha/internal/service"
)

// Code classifies a failed call. Success carries no code.
type Code string

const (
	CodeCancelled           Code = "CANCELLED"
	CodeNotFound            Code = "NOT_FOUND"
	CodeIOFailure           Code = "IO_FAILURE"
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeMissingRequiredData Code = "MISSING_REQUIRED_DATA"
	CodeUnsupportedType     Code = "UNSUPPORTED_TYPE"
	CodeUnknownOperation    Code = "UNKNOWN_OPERATION"
	CodeForbidden           Code = "FORBIDDEN"
	CodeUnavailable         Code = "UNAVAILABLE"
	CodeInternal            Code = "INTERNAL"
)

// messages are the short notices shown to the user.
var messages = map[Code]string{
	CodeCancelled:           "Operação cancelada",
	CodeNotFound:            "Arquivo não encontrado",
	CodeIOFailure:           "Falha ao acessar o arquivo",
	CodeInvalidArgument:     "Parâmetros inválidos",
	CodeMissingRequiredData: "Dados obrigatórios ausentes para gerar o documento",
	CodeUnsupportedType:     "Tipo de arquivo não permitido",
	CodeUnknownOperation:    "Operação desconhecida",
	CodeForbidden:           "Acesso negado",
	CodeUnavailable:         "Serviço indisponível",
	CodeInternal:            "Erro interno",
}

// Message returns the user notice for c.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[CodeInternal]
}

// Result is the response of every bridge call. Only the fields of the called operation are set.
type Result struct {
	Success     bool               `json:"success"`
	Files       []string           `json:"files,omitempty"`
	Attachments []model.Attachment `json:"attachments,omitempty"`
	FilePath    string             `json:"filePath,omitempty"`
	ContentType string             `json:"contentType,omitempty"`
	Size        int64              `json:"size,omitempty"`
	Version     string             `json:"version,omitempty"`
	Code        Code               `json:"code,omitempty"`
	Error       string             `json:"error,omitempty"`
}

func failure(code Code) Result {
	return Result{Success: false, Code: code, Error: code.Message()}
}

var (
	errInvalidParams      = errors.New("invalid params")
	errUnsupportedType    = errors.New("content type not allowed")
	errForbidden          = errors.New("identifier does not match token subject")
	errDestinationOutside = errors.New("destination outside export directory")
	errUnavailable        = errors.New("operation backend not configured")
	errUnknownOp          = errors.New("unknown operation")
)

// codeFor classifies err. Anything unrecognised is treated as a filesystem failure.
func codeFor(err error) Code {
	switch {
	case errors.Is(err, attachment.ErrCancelled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return CodeCancelled
	case errors.Is(err, attachment.ErrNotFound),
		errors.Is(err, service.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, document.ErrMissingRequiredData):
		return CodeMissingRequiredData
	case errors.Is(err, errUnsupportedType):
		return CodeUnsupportedType
	case errors.Is(err, errForbidden),
		errors.Is(err, errDestinationOutside):
		return CodeForbidden
	case errors.Is(err, errUnavailable):
		return CodeUnavailable
	case errors.Is(err, errUnknownOp):
		return CodeUnknownOperation
	case errors.Is(err, errInvalidParams),
		errors.Is(err, attachment.ErrInvalidSegment),
		errors.Is(err, attachment.ErrInvalidPattern),
		errors.Is(err, attachment.ErrInvalidDestination),
		errors.Is(err, service.ErrIDRequired),
		errors.Is(err, document.ErrUnsupportedFormat),
		errors.Is(err, document.ErrUnsupportedKind):
		return CodeInvalidArgument
	}
	return CodeIOFailure
}

// CallError is returned by clients for a call that completed with success=false.
type CallError struct {
	Op      string
	Code    Code
	Message string
}

func (e *CallError) Error() string {
	return e.Op + ": " + string(e.Code) + ": " + e.Message
}

// Is lets callers test client errors against the attachment sentinels.
func (e *CallError) Is(target error) bool {
	switch target {
	case attachment.ErrCancelled:
		return e.Code == CodeCancelled
	case attachment.ErrNotFound:
		return e.Code == CodeNotFound
	case document.ErrMissingRequiredData:
		return e.Code == CodeMissingRequiredData
	}
	return false
}
