//go:build js

package components

import (
	"strings"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"ichthyo-signup/internal/signupform"
)

const buttonBaseClass = "flex h-10 items-center rounded-lg bg-blue-500 px-4 text-sm font-medium text-white transition-colors hover:bg-blue-400 aria-disabled:cursor-not-allowed aria-disabled:opacity-50"

// Button is the shared button used across the pages.
type Button struct {
	vecty.Core
	Type         string                `vecty:"prop"`
	Class        string                `vecty:"prop"`
	AriaDisabled bool                  `vecty:"prop"`
	OnClick      func(e *vecty.Event)  `vecty:"prop"`
	Children     []vecty.MarkupOrChild `vecty:"prop"`
}

func (b *Button) Render() vecty.ComponentOrHTML {
	typ := b.Type
	if typ == "" {
		typ = "button"
	}
	classes := strings.Fields(buttonBaseClass + " " + b.Class)

	children := []vecty.MarkupOrChild{
		vecty.Markup(
			vecty.Class(classes...),
			vecty.Property("type", typ),
			vecty.Attribute("aria-disabled", signupform.AriaBool(b.AriaDisabled)),
			vecty.MarkupIf(b.OnClick != nil, event.Click(b.OnClick)),
		),
	}
	children = append(children, b.Children...)
	return elem.Button(children...)
}

// SignupButton submits the signup form. Pending is only announced through
// aria-disabled; the form controller drops submissions while one is in flight.
type SignupButton struct {
	vecty.Core
	Pending bool `vecty:"prop"`
}

func (b *SignupButton) Render() vecty.ComponentOrHTML {
	return &Button{
		Type:         "submit",
		Class:        "mt-4 w-full",
		AriaDisabled: b.Pending,
		Children: []vecty.MarkupOrChild{
			vecty.Text("Sign up"),
			elem.Span(
				vecty.Markup(
					vecty.Class("ml-auto", "h-5", "w-5", "text-gray-50"),
					vecty.Attribute("aria-hidden", "true"),
				),
				vecty.Text("→"),
			),
		},
	}
}
