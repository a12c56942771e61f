package plinth_test

import (
	"context"
	"log/slog"
	"os"

	"impractical.co/plinth"
)

type GalleryPage struct {
	ImageURLs []string
}

func (GalleryPage) WidgetType() string {
	return "GalleryPage"
}

func (page GalleryPage) RenderBody(_ context.Context, sink plinth.Sink) error {
	for _, url := range page.ImageURLs {
		if err := sink.OpenTag("img", map[string]string{"class": "left", "src": url}); err != nil {
			return err
		}
		if err := sink.Raw("\n"); err != nil {
			return err
		}
	}
	return nil
}

func ExampleShell_RenderPage_composedWidgets() {
	// GalleryPage renders a Thumbnail widget per image. Thumbnail's script
	// is declared on the type, so three thumbnails still mean one script
	// element.
	registry := plinth.NewRegistry()
	registry.MustRegister("Thumbnail")
	registry.MustDeclare("Thumbnail", plinth.ExternalScript, "https://example.com/thumbnail.js")
	registry.MustRegister("GalleryPage", "Thumbnail")

	ctx := plinth.LoggingContext(context.Background(), slog.Default())
	shell := plinth.NewShell(registry)

	page := GalleryPage{ImageURLs: []string{
		"https://example.com/img/1.jpg",
		"https://example.com/img/2.jpg",
		"https://example.com/img/3.jpg",
	}}
	err := shell.RenderPage(ctx, os.Stdout, page, plinth.WithBasicStyles(false))
	if err != nil {
		panic(err)
	}

	//Output:
	// <!DOCTYPE html>
	// <html lang="en" xmlns="http://www.w3.org/1999/xhtml">
	// <head>
	// <meta content="text/html; charset=UTF-8" http-equiv="Content-Type">
	// <title>GalleryPage</title>
	// <script src="https://example.com/thumbnail.js" type="text/javascript"></script>
	// </head>
	// <body>
	// <img class="left" src="https://example.com/img/1.jpg">
	// <img class="left" src="https://example.com/img/2.jpg">
	// <img class="left" src="https://example.com/img/3.jpg">
	// </body>
	// </html>
}
