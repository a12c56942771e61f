package plinth_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"impractical.co/plinth"
)

type OutagePage struct{}

func (OutagePage) WidgetType() string {
	return "OutagePage"
}

func (OutagePage) RenderBody(_ context.Context, _ plinth.Sink) error {
	return errors.New("status feed is down")
}

func ExampleShell_RenderPage_renderFailure() {
	registry := plinth.NewRegistry()
	registry.MustRegister("OutagePage")

	shell := plinth.NewShell(registry)

	// the document is assembled in memory, so a page that fails partway
	// through leaves the response writer untouched
	var out strings.Builder
	err := shell.RenderPage(context.Background(), &out, OutagePage{})
	fmt.Println("error:", err)
	fmt.Println("bytes written:", out.Len())

	//Output:
	// error: rendering body for "OutagePage": status feed is down
	// bytes written: 0
}
