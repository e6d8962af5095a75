//go:build js

package components

import (
	"context"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
	"go.uber.org/zap"

	"ichthyo-signup/internal/signupform"
)

// SignupForm collects a name, email and password and submits them to Client.
type SignupForm struct {
	vecty.Core
	Client   signupform.Signupper `vecty:"prop"`
	Logger   *zap.Logger          `vecty:"prop"`
	LoginURL string               `vecty:"prop"`

	form *signupform.Controller
}

func (s *SignupForm) controller() *signupform.Controller {
	if s.form == nil {
		s.form = signupform.NewController(s.Client,
			signupform.WithLogger(s.Logger),
			signupform.WithOnChange(func(signupform.State) {
				vecty.Rerender(s)
			}),
		)
	}
	return s.form
}

// Unmount drops the form state; a later mount starts from an empty form.
func (s *SignupForm) Unmount() {
	if s.form != nil {
		s.form.Close()
		s.form = nil
	}
}

// Reset clears the form and returns to the editing view.
func (s *SignupForm) Reset() {
	s.controller().Reset()
}

func (s *SignupForm) Render() vecty.ComponentOrHTML {
	state := s.controller().State()
	view := signupform.ViewOf(state, s.LoginURL)
	if view.Done {
		return elem.Div(s.renderDone(view))
	}
	return elem.Div(s.renderForm(state, view))
}

func (s *SignupForm) renderForm(state signupform.State, view signupform.View) *vecty.HTML {
	return elem.Form(
		vecty.Markup(
			vecty.Class("space-y-3"),
			event.Submit(s.onSubmit).PreventDefault(),
		),
		elem.Div(
			vecty.Markup(vecty.Class("flex-1", "rounded-lg", "bg-gray-50", "px-6", "pb-4", "pt-8")),
			elem.Heading1(
				vecty.Markup(vecty.Class("mb-3", "text-2xl")),
				vecty.Text(view.Heading),
			),
			elem.Div(
				vecty.Markup(vecty.Class("w-full")),
				s.renderInput(state, inputProps{
					field:       signupform.FieldName,
					label:       "Name",
					inputType:   "text",
					placeholder: "Enter your name",
					icon:        "\U0001F464",
				}),
				s.renderInput(state, inputProps{
					field:       signupform.FieldEmail,
					label:       "Email",
					inputType:   "email",
					placeholder: "Enter your email address",
					icon:        "@",
				}),
				s.renderInput(state, inputProps{
					field:       signupform.FieldPassword,
					label:       "Password",
					inputType:   "password",
					placeholder: "Enter password",
					icon:        "\U0001F511",
					minLength:   6,
				}),
			),
			&SignupButton{Pending: state.Pending},
			elem.Div(
				vecty.Markup(
					vecty.Class("flex", "h-8", "items-end", "space-x-1"),
					vecty.Attribute("aria-live", view.Status.Live),
					vecty.Attribute("aria-atomic", view.Status.Atomic),
				),
				vecty.If(view.Status.Text != "", elem.Paragraph(
					vecty.Markup(vecty.Class("text-sm", "text-red-500")),
					vecty.Text(view.Status.Text),
				)),
			),
		),
	)
}

type inputProps struct {
	field       signupform.Field
	label       string
	inputType   string
	placeholder string
	icon        string // glyph shown inside the input
	minLength   int
}

func (s *SignupForm) renderInput(state signupform.State, p inputProps) *vecty.HTML {
	name := string(p.field)
	return elem.Div(
		vecty.Markup(vecty.Class("mt-4")),
		elem.Label(
			vecty.Markup(
				vecty.Class("mb-3", "mt-5", "block", "text-xs", "font-medium", "text-gray-900"),
				vecty.Property("htmlFor", name),
			),
			vecty.Text(p.label),
		),
		elem.Div(
			vecty.Markup(vecty.Class("relative")),
			elem.Input(
				vecty.Markup(
					vecty.Class("peer", "block", "w-full", "rounded-md", "border", "border-gray-200", "pl-10", "text-sm"),
					vecty.Property("id", name),
					vecty.Property("name", name),
					vecty.Property("type", p.inputType),
					vecty.Property("placeholder", p.placeholder),
					vecty.Property("value", state.Value(p.field)),
					vecty.Property("required", true),
					vecty.MarkupIf(p.minLength > 0, vecty.Property("minLength", p.minLength)),
					event.Input(s.onInput),
				),
			),
			elem.Span(
				vecty.Markup(
					vecty.Class("icon", "pointer-events-none", "absolute", "left-3", "text-gray-500"),
					vecty.Attribute("aria-hidden", "true"),
				),
				vecty.Text(p.icon),
			),
		),
	)
}

func (s *SignupForm) renderDone(view signupform.View) *vecty.HTML {
	return elem.Div(
		vecty.Markup(vecty.Class("flex-1", "rounded-lg", "bg-gray-50", "px-6", "pb-4", "pt-8")),
		elem.Heading1(
			vecty.Markup(vecty.Class("mb-3", "text-2xl")),
			vecty.Text(view.Heading),
		),
		elem.Paragraph(
			vecty.Markup(vecty.Class("text-green-500", "mb-4")),
			vecty.Text(view.Message),
		),
		&Button{
			Class:    "ml-4",
			OnClick:  func(*vecty.Event) { navigate(view.LoginURL) },
			Children: []vecty.MarkupOrChild{vecty.Text("Go to Login")},
		},
		&Button{
			Class: "ml-4 mt-2",
			OnClick: func(*vecty.Event) {
				s.Reset()
			},
			Children: []vecty.MarkupOrChild{vecty.Text("Sign up another account")},
		},
	)
}

func (s *SignupForm) onInput(e *vecty.Event) {
	field, ok := signupform.ParseField(e.Target.Get("name").String())
	if !ok {
		return
	}
	s.controller().HandleField(field, e.Target.Get("value").String())
}

func (s *SignupForm) onSubmit(e *vecty.Event) {
	form := s.controller()
	go func() {
		if err := form.Submit(context.Background()); err != nil {
			s.logger().Debug("signup submit not applied", zap.Error(err))
		}
	}()
}

// navigate performs a full page navigation.
func navigate(target string) {
	js.Global().Get("window").Get("location").Set("href", target)
}

func (s *SignupForm) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
