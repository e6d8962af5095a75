//go:build js

package main

import (
	"github.com/hexops/vecty"
	"go.uber.org/zap"
)

// apiBaseURL points at the signup service. Empty means the page origin;
// override with -ldflags "-X main.apiBaseURL=https://...".
var apiBaseURL = ""

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	vecty.SetTitle("Sign Up")
	vecty.RenderBody(NewApp(apiBaseURL, logger))

	// ブラウザのイベントループをブロックしないように、この関数をブロックします
	select {}
}
