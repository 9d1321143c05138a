package formatting

// ComplianceError signals that formatted output violated the formatter's own
// post-conditions. It indicates a formatter defect or pathological input and
// must never be swallowed by callers.
type ComplianceError struct {
	Component string
	Message   string
	Cause     error
}

func (e *ComplianceError) Error() string {
	msg := "ATS compliance violation"
	if e.Component != "" {
		msg += " in " + e.Component
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ComplianceError) Unwrap() error {
	return e.Cause
}
