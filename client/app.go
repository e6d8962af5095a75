//go:build js

package main

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"go.uber.org/zap"

	"ichthyo-signup/components"
	"ichthyo-signup/internal/authclient"
	"ichthyo-signup/internal/signupform"
)

// App is the root component of the signup page.
type App struct {
	vecty.Core
	signup *components.SignupForm
}

// NewApp wires the signup form to the service at baseURL.
func NewApp(baseURL string, logger *zap.Logger) *App {
	client := authclient.New(baseURL, authclient.WithLogger(logger))
	return &App{
		signup: &components.SignupForm{
			Client:   client,
			Logger:   logger,
			LoginURL: signupform.DefaultLoginURL,
		},
	}
}

// Render renders the signup form centred on the page.
func (a *App) Render() vecty.ComponentOrHTML {
	return elem.Body(
		elem.Main(
			vecty.Markup(vecty.Class("flex", "items-center", "justify-center", "md:h-screen")),
			elem.Div(
				vecty.Markup(vecty.Class("relative", "mx-auto", "flex", "w-full", "max-w-[400px]", "flex-col", "space-y-2.5", "p-4")),
				a.signup,
			),
		),
	)
}
