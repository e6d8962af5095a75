// Package components holds the vecty components of the signup page. The
// components are built for the browser (GOOS=js); form state and submission
// live in internal/signupform.
package components
