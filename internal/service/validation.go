package service

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/idna"
)

const (
	maxNameLength     = 100
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup

	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// ValidationError reports a rejected signup field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SignupInput is the raw payload received from the signup form.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// normalizeSignup trims and canonicalizes the input and checks the same
// constraints the form declares (required, email format, min length).
func normalizeSignup(in SignupInput) (SignupInput, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return SignupInput{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return SignupInput{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return SignupInput{}, err
	}
	return SignupInput{Name: name, Email: email, Password: in.Password}, nil
}

func normalizeName(raw string) (string, error) {
	// The strict policy drops markup but escapes entities; store plain text.
	name := html.UnescapeString(nameSanitizer().Sanitize(strings.TrimSpace(raw)))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", &ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", maxNameLength)}
	}
	return name, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", &ValidationError{Field: "email", Message: "email is required"}
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", &ValidationError{Field: "email", Message: "email is invalid"}
	}

	domain, err := idnaProfile.ToASCII(email[at+1:])
	if err != nil || domain == "" || !isDomainValid(domain) {
		return "", &ValidationError{Field: "email", Message: "email is invalid"}
	}
	email = email[:at+1] + domain
	if !emailPattern.MatchString(email) {
		return "", &ValidationError{Field: "email", Message: "email is invalid"}
	}
	return email, nil
}

func validatePassword(password string) error {
	if password == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if len(password) > maxPasswordBytes {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes)}
	}
	return nil
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func nameSanitizer() *bluemonday.Policy {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return namePolicy
}
