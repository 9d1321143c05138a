package parsing

import "fmt"

// Kind classifies why a parse was rejected
type Kind int

const (
	// KindStructural marks input that cannot yield a resume at all:
	// empty documents or documents with no findable email address.
	KindStructural Kind = iota
	// KindValidation marks post-parse validation errors escalated by Parse
	KindValidation
)

// String returns the stage label used in error output
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structure"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// InvalidMarkdownError represents a fatal parse failure with its stage and component
type InvalidMarkdownError struct {
	Kind      Kind
	Component string
	Message   string
	Cause     error
}

func (e *InvalidMarkdownError) Error() string {
	msg := fmt.Sprintf("invalid markdown [%s]", e.Kind)
	if e.Component != "" {
		msg += " " + e.Component
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidMarkdownError) Unwrap() error {
	return e.Cause
}
