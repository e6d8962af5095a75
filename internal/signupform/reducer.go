package signupform

// Event is a state transition understood by Reduce.
type Event interface {
	apply(s State) State
}

// FieldChanged replaces the value of a single field.
type FieldChanged struct {
	Field Field
	Value string
}

// SubmitStarted marks the form as waiting for the signup service.
type SubmitStarted struct{}

// SubmitSettled merges the answer of the signup service and clears Pending.
type SubmitSettled struct {
	Result Result
	// Kind overrides the error classification. Zero means it is derived from Result.
	Kind ErrorKind
}

// ResetRequested returns the form to its initial state.
type ResetRequested struct{}

// Reduce applies ev to s and returns the new state. s is never modified.
func Reduce(s State, ev Event) State {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

func (e FieldChanged) apply(s State) State {
	switch e.Field {
	case FieldName:
		s.Name = e.Value
	case FieldEmail:
		s.Email = e.Value
	case FieldPassword:
		s.Password = e.Value
	}
	return s
}

func (SubmitStarted) apply(s State) State {
	s.Pending = true
	return s
}

func (e SubmitSettled) apply(s State) State {
	if e.Result.Success {
		s.Success = OutcomeSucceeded
	} else {
		s.Success = OutcomeFailed
	}
	s.Error = e.Result.Error

	kind := e.Kind
	if kind == ErrorNone && s.Error != "" {
		kind = ErrorRejected
	}
	if s.Error == "" {
		kind = ErrorNone
	}
	s.ErrorKind = kind
	s.Pending = false
	return s
}

func (ResetRequested) apply(State) State {
	return Initial()
}
