package plinth_test

import (
	"context"
	"log/slog"
	"os"

	"impractical.co/plinth"
)

type DuplicateResourcesHomePage struct {
	Name string
}

func (DuplicateResourcesHomePage) WidgetType() string {
	return "DuplicateResourcesHomePage"
}

func (DuplicateResourcesHomePage) PageTitle(_ context.Context) string {
	return "My Example Site"
}

func (page DuplicateResourcesHomePage) RenderBody(_ context.Context, sink plinth.Sink) error {
	return sink.Raw("Hello, " + page.Name + ". This is my home page.\n")
}

func ExampleShell_RenderPage_duplicateResources() {
	// the layout and the page both ask for b.css and b.js; the document
	// only loads each once, at its first position. The inline style they
	// both declare is kept both times: literal text never collapses.
	registry := plinth.NewRegistry()
	registry.MustRegister("DuplicateResourcesLayout")
	registry.MustDeclare("DuplicateResourcesLayout", plinth.ExternalStyle, "https://example.com/a.css")
	registry.MustDeclare("DuplicateResourcesLayout", plinth.ExternalStyle, "https://example.com/b.css")
	registry.MustDeclare("DuplicateResourcesLayout", plinth.InlineStyle, "html { background-color: black; }")
	registry.MustDeclare("DuplicateResourcesLayout", plinth.ExternalScript, "https://example.com/a.js")
	registry.MustDeclare("DuplicateResourcesLayout", plinth.ExternalScript, "https://example.com/b.js")

	registry.MustRegister("DuplicateResourcesHomePage", "DuplicateResourcesLayout")
	registry.MustDeclare("DuplicateResourcesHomePage", plinth.ExternalStyle, "https://example.com/b.css")
	registry.MustDeclare("DuplicateResourcesHomePage", plinth.ExternalStyle, "https://example.com/c.css")
	registry.MustDeclare("DuplicateResourcesHomePage", plinth.InlineStyle, "html { background-color: black; }")
	registry.MustDeclare("DuplicateResourcesHomePage", plinth.ExternalScript, "https://example.com/b.js")
	registry.MustDeclare("DuplicateResourcesHomePage", plinth.ExternalScript, "https://example.com/c.js")

	ctx := plinth.LoggingContext(context.Background(), slog.Default())
	shell := plinth.NewShell(registry)

	err := shell.RenderPage(ctx, os.Stdout, DuplicateResourcesHomePage{Name: "Visitor"}, plinth.WithBasicStyles(false))
	if err != nil {
		panic(err)
	}

	//Output:
	// <!DOCTYPE html>
	// <html lang="en" xmlns="http://www.w3.org/1999/xhtml">
	// <head>
	// <meta content="text/html; charset=UTF-8" http-equiv="Content-Type">
	// <title>My Example Site</title>
	// <link href="https://example.com/a.css" media="all" rel="stylesheet">
	// <link href="https://example.com/b.css" media="all" rel="stylesheet">
	// <link href="https://example.com/c.css" media="all" rel="stylesheet">
	// <style>
	// html { background-color: black; }
	// html { background-color: black; }
	// </style>
	// <script src="https://example.com/a.js" type="text/javascript"></script>
	// <script src="https://example.com/b.js" type="text/javascript"></script>
	// <script src="https://example.com/c.js" type="text/javascript"></script>
	// </head>
	// <body>
	// Hello, Visitor. This is my home page.
	// </body>
	// </html>
}
