package signupform

// Field names one of the editable inputs of the signup form.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// ParseField maps an input element's name attribute to a Field.
func ParseField(name string) (Field, bool) {
	switch Field(name) {
	case FieldName, FieldEmail, FieldPassword:
		return Field(name), true
	default:
		return "", false
	}
}

// Outcome is the tri-state result of the last submission.
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unset"
	}
}

// ErrorKind classifies the message held in State.Error.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	// ErrorRejected means the signup service answered with an error message.
	ErrorRejected
	// ErrorTimeout means no answer arrived before the request deadline.
	ErrorTimeout
	// ErrorTransport means the request failed without an answer.
	ErrorTransport
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorRejected:
		return "rejected"
	case ErrorTimeout:
		return "timeout"
	case ErrorTransport:
		return "transport"
	default:
		return "none"
	}
}

// State is the complete, immutable snapshot of one signup attempt.
type State struct {
	Name     string
	Email    string
	Password string

	Success   Outcome
	Error     string
	ErrorKind ErrorKind
	Pending   bool
}

// Initial returns the empty, idle form.
func Initial() State {
	return State{}
}

// Done reports whether the success panel should be shown.
func (s State) Done() bool {
	return s.Success == OutcomeSucceeded
}

// HasError reports whether there is an error message to announce.
func (s State) HasError() bool {
	return s.Error != ""
}

// Value returns the current text of a field.
func (s State) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPassword:
		return s.Password
	default:
		return ""
	}
}

// Credentials returns the three values forwarded to the signup service.
func (s State) Credentials() Credentials {
	return Credentials{
		Name:     s.Name,
		Email:    s.Email,
		Password: s.Password,
	}
}
