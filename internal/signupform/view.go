package signupform

import "strconv"

// DefaultLoginURL is where the success panel sends the user.
const DefaultLoginURL = "/login"

// Headings shown above the editing and done panels.
const (
	EditingHeading = "Create a new account"
	DoneHeading    = "Signup Successful!"
	DoneMessage    = "You have successfully signed up."
)

// LiveRegion is the polite status region announced by screen readers.
type LiveRegion struct {
	Live   string
	Atomic string
	// Text is the announced message; empty renders an empty region.
	Text string
}

// View holds everything the form markup depends on for one State.
type View struct {
	Done    bool
	Heading string

	// Editing panel.
	Status             LiveRegion
	SubmitAriaDisabled string

	// Done panel.
	Message  string
	LoginURL string
}

// ViewOf derives the rendered view of s. An empty loginURL means DefaultLoginURL.
func ViewOf(s State, loginURL string) View {
	if s.Done() {
		return View{
			Done:     true,
			Heading:  DoneHeading,
			Message:  DoneMessage,
			LoginURL: LoginTarget(loginURL),
		}
	}
	return View{
		Heading: EditingHeading,
		Status: LiveRegion{
			Live:   "polite",
			Atomic: "true",
			Text:   s.Error,
		},
		SubmitAriaDisabled: AriaBool(s.Pending),
	}
}

// LoginTarget returns url, or DefaultLoginURL when url is empty.
func LoginTarget(url string) string {
	if url == "" {
		return DefaultLoginURL
	}
	return url
}

// AriaBool formats b for aria-* attributes.
func AriaBool(b bool) string {
	return strconv.FormatBool(b)
}
