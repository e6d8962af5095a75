package signupform

import "context"

// Credentials is the payload sent to the signup service.
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the answer of the signup service. Error is shown verbatim.
type Result struct {
	Success bool
	Error   string
}

// Signupper creates an account. A rejected signup is reported through Result;
// a returned error means no answer was obtained.
type Signupper interface {
	Signup(ctx context.Context, creds Credentials) (Result, error)
}

// SignupperFunc adapts a function to the Signupper interface.
type SignupperFunc func(ctx context.Context, creds Credentials) (Result, error)

func (f SignupperFunc) Signup(ctx context.Context, creds Credentials) (Result, error) {
	return f(ctx, creds)
}
