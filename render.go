package plinth

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oxtoacart/bpool"
)

var (
	// ErrRenderPhase is returned when the pieces of a document are
	// emitted out of order. This should never happen; the shell drives
	// every phase of a render itself, in sequence, exactly once. If it
	// turns up anyway, it indicates a bug in this package rather than
	// anything a caller did.
	ErrRenderPhase = errors.New("document emitted out of order")
)

// Page is a value that renders as a complete HTML document. The one thing
// the shell strictly needs from a Page is which widget type it is;
// everything else a Page might want to control is expressed through
// optional interfaces.
type Page interface {
	// WidgetType names the widget type this page renders as. The type's
	// registration determines every resource in the document head, and
	// its name doubles as the default document title.
	WidgetType() string
}

// BodyRenderer is an interface Pages can implement to write their own body
// markup. When a Page implements it, the page's markup wins and any
// WithBodyContent callback is ignored.
type BodyRenderer interface {
	// RenderBody writes the contents of the body element to the Sink.
	// The body element itself is already open, and gets closed after
	// RenderBody returns; RenderBody shouldn't emit it.
	RenderBody(ctx context.Context, sink Sink) error
}

// Titler is an interface Pages can implement to choose the document title.
// Pages that don't implement it, or that return an empty string, are titled
// with their widget type's name.
type Titler interface {
	// PageTitle returns the text of the document's title element.
	PageTitle(ctx context.Context) string
}

// BodyClasser is an interface Pages can implement to set a class attribute
// on the body element. Pages that don't implement it, or that return an
// empty string, get a body element with no class.
type BodyClasser interface {
	// BodyClass returns the value of the body element's class attribute.
	BodyClass(ctx context.Context) string
}

// BodyFunc writes the contents of a document's body element. It's the
// callback form of BodyRenderer, for callers assembling a document around a
// widget type that doesn't render its own body.
type BodyFunc func(ctx context.Context, sink Sink) error

// RenderOption adjusts how a single document gets rendered.
type RenderOption func(*renderConfig)

// renderConfig is the resolved configuration for one render.
type renderConfig struct {
	basicStyles bool
	bodyContent BodyFunc
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		basicStyles: true,
	}
}

// WithBasicStyles controls whether the document leads its styles with the
// package's built-in base stylesheet. It defaults to true; pass false for
// pages that want complete control of their styling.
func WithBasicStyles(enabled bool) RenderOption {
	return func(config *renderConfig) {
		config.basicStyles = enabled
	}
}

// WithBodyContent supplies the document's body markup for page types that
// don't implement BodyRenderer. If the page implements BodyRenderer, the
// callback is ignored.
func WithBodyContent(body BodyFunc) RenderOption {
	return func(config *renderConfig) {
		config.bodyContent = body
	}
}

// bodySource is which of the body hooks a render resolved to. It's decided
// once, before any markup is written, and doesn't change mid-render.
type bodySource uint8

const (
	// bodyNone means no hook exists; the body element stays empty.
	bodyNone bodySource = iota

	// bodyOverride means the page implements BodyRenderer.
	bodyOverride

	// bodyCallback means a WithBodyContent callback fills the body.
	bodyCallback
)

// renderPhase tracks how much of a document has been emitted.
type renderPhase string

const (
	phaseCreated     renderPhase = "created"
	phaseHeadEmitted renderPhase = "head-emitted"
	phaseBodyEmitted renderPhase = "body-emitted"
	phaseComplete    renderPhase = "complete"
)

// document is the state of one render pass: the page being rendered, its
// resolved widget type, where the markup goes, and how far along the
// document is. A document lives for exactly one render and holds nothing
// afterwards worth keeping.
type document struct {
	page     Page
	typeName string
	sink     Sink
	registry *Registry
	config   renderConfig
	body     bodySource
	phase    renderPhase

	// what head assembly emitted, recorded on the render's span
	externalStyles  int
	inlineStyles    int
	externalScripts int
	inlineScripts   int
	readyScripts    int
}

// A Shell turns Pages into complete HTML documents: doctype, a head
// carrying every resource the page's widget type declared, body. A program
// needs only one Shell per Registry; Shells are safe for concurrent use.
type Shell struct {
	registry *Registry
	buffers  *bpool.BufferPool
}

// NewShell returns a Shell resolving widget types against the passed
// Registry. Passing nil resolves against the Default registry.
func NewShell(registry *Registry) *Shell {
	if registry == nil {
		registry = Default
	}
	return &Shell{
		registry: registry,
		buffers:  bpool.NewBufferPool(64),
	}
}

// RenderPage renders page as a complete HTML document and writes it to out.
// The document is assembled in memory first: on success it reaches out in
// one piece, and on failure nothing is written at all, so an http.Handler
// caller is still free to send an error response instead. The first error
// from a hook or the writer aborts the render and is returned.
func (s *Shell) RenderPage(ctx context.Context, out io.Writer, page Page, opts ...RenderOption) error {
	buffer := s.buffers.Get()
	defer s.buffers.Put(buffer)

	if err := s.RenderTo(ctx, NewMarkupWriter(buffer), page, opts...); err != nil {
		return err
	}
	if _, err := buffer.WriteTo(out); err != nil {
		return fmt.Errorf("writing document for %q: %w", page.WidgetType(), err)
	}
	return nil
}

// RenderTo renders page as a complete HTML document, driving the passed
// Sink directly. Unlike RenderPage it doesn't buffer: markup reaches the
// Sink as it's produced, and a failed render leaves behind whatever was
// emitted before the failure. The first error from a hook or the Sink
// aborts the render and is returned.
func (s *Shell) RenderTo(ctx context.Context, sink Sink, page Page, opts ...RenderOption) error {
	config := defaultRenderConfig()
	for _, opt := range opts {
		opt(&config)
	}

	typeName := page.WidgetType()
	if !s.registry.Has(typeName) {
		return fmt.Errorf("rendering %q: %w", typeName, ErrUnknownWidget)
	}

	doc := &document{
		page:     page,
		typeName: typeName,
		sink:     sink,
		registry: s.registry,
		config:   config,
		body:     resolveBodySource(page, config),
		phase:    phaseCreated,
	}

	ctx, span := startRenderSpan(ctx, typeName)
	err := doc.render(ctx)
	endRenderSpan(span, doc, err)
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error rendering page", "widget_type", typeName, "error", err)
		return err
	}
	return nil
}

// resolveBodySource picks the body hook a render will use. A page that
// renders its own body wins over the configured callback.
func resolveBodySource(page Page, config renderConfig) bodySource {
	if _, ok := page.(BodyRenderer); ok {
		return bodyOverride
	}
	if config.bodyContent != nil {
		return bodyCallback
	}
	return bodyNone
}

// render drives the document through its phases in order: the head, then
// the body, then the closing tags. Each phase happens exactly once.
func (d *document) render(ctx context.Context) error {
	if err := d.emitHead(ctx); err != nil {
		return err
	}
	if err := d.emitBody(ctx); err != nil {
		return err
	}
	return d.finish()
}

// emitBody opens the body element, asks the resolved body source to fill
// it, and closes it again.
func (d *document) emitBody(ctx context.Context) error {
	if d.phase != phaseHeadEmitted {
		return fmt.Errorf("emitting body for %q in phase %q: %w", d.typeName, d.phase, ErrRenderPhase)
	}
	var attrs map[string]string
	if classer, ok := d.page.(BodyClasser); ok {
		if class := classer.BodyClass(ctx); class != "" {
			attrs = map[string]string{"class": class}
		}
	}
	if err := d.sink.OpenTag("body", attrs); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	switch d.body {
	case bodyOverride:
		if err := d.page.(BodyRenderer).RenderBody(ctx, d.sink); err != nil {
			return fmt.Errorf("rendering body for %q: %w", d.typeName, err)
		}
	case bodyCallback:
		if err := d.config.bodyContent(ctx, d.sink); err != nil {
			return fmt.Errorf("rendering body for %q: %w", d.typeName, err)
		}
	}
	if err := d.sink.CloseTag("body"); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	d.phase = phaseBodyEmitted
	return nil
}

// finish closes the root element, completing the document.
func (d *document) finish() error {
	if d.phase != phaseBodyEmitted {
		return fmt.Errorf("finishing document for %q in phase %q: %w", d.typeName, d.phase, ErrRenderPhase)
	}
	if err := d.sink.CloseTag("html"); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	d.phase = phaseComplete
	return nil
}

// defaultShell serves the package-level render functions, resolving widget
// types against the Default registry.
var defaultShell = NewShell(nil)

// RenderPage renders page against the Default registry and writes the
// document to out. See Shell.RenderPage.
func RenderPage(ctx context.Context, out io.Writer, page Page, opts ...RenderOption) error {
	return defaultShell.RenderPage(ctx, out, page, opts...)
}

// RenderTo renders page against the Default registry, driving the passed
// Sink. See Shell.RenderTo.
func RenderTo(ctx context.Context, sink Sink, page Page, opts ...RenderOption) error {
	return defaultShell.RenderTo(ctx, sink, page, opts...)
}
