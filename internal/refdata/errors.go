package refdata

import "fmt"

const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodeWrite       = "write"
	CodeRender      = "render"
	CodeUnavailable = "unavailable"
)

// Error is the error type shared across the dashboard packages. Validation
// errors name the table and field that failed so a bad curated value can be
// located without a debugger.
type Error struct {
	Code    string
	Table   string
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Table, e.Message)
	}
	return fmt.Sprintf("%s: %s.%s: %s", e.Code, e.Table, e.Field, e.Message)
}

func NewValidationError(table, field, format string, args ...any) error {
	return &Error{Code: CodeValidation, Table: table, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NewWriteError(artifact string, err error) error {
	return &Error{Code: CodeWrite, Table: artifact, Message: err.Error()}
}

func NewRenderError(section string, err error) error {
	return &Error{Code: CodeRender, Table: section, Message: err.Error()}
}

func NewUnavailableError(what, reason string) error {
	return &Error{Code: CodeUnavailable, Table: what, Message: reason}
}
