package plinth

import (
	"context"
	"fmt"
	"strings"
)

const doctype = "<!DOCTYPE html>"

// xhtmlNamespace is declared on every document's root element.
const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

// basicStyles is the stylesheet documents start from unless it's switched
// off with WithBasicStyles(false): no borders on images, the float helpers
// widgets lean on, and a float-clearing rule. It's emitted before every
// other style so anything can override it.
const basicStyles = `img { border: 0; }
.right { float: right; }
.left { float: left; }
.clear { clear: both; }`

// readyOpen and readyClose wrap each ready-script declaration so it only
// runs once the document has finished parsing.
const (
	readyOpen  = `document.addEventListener("DOMContentLoaded", function() {`
	readyClose = `});`
)

// emitHead writes everything through the closing head tag: the doctype, the
// root element, and the head with each resource slot filled in its fixed
// position. The slot order never changes: the charset meta, the title, the
// basic styles, stylesheet links, the inline style block, script elements,
// the inline script block.
func (d *document) emitHead(ctx context.Context) error {
	if d.phase != phaseCreated {
		return fmt.Errorf("emitting head for %q in phase %q: %w", d.typeName, d.phase, ErrRenderPhase)
	}
	if err := d.sink.Raw(doctype + "\n"); err != nil {
		return err
	}
	if err := d.sink.OpenTag("html", map[string]string{"lang": "en", "xmlns": xhtmlNamespace}); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	if err := d.sink.OpenTag("head", nil); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	if err := d.voidElement("meta", map[string]string{"content": "text/html; charset=UTF-8", "http-equiv": "Content-Type"}); err != nil {
		return err
	}
	if err := d.headTitle(ctx); err != nil {
		return err
	}
	if err := d.headStyles(); err != nil {
		return err
	}
	if err := d.headScripts(); err != nil {
		return err
	}
	if err := d.sink.CloseTag("head"); err != nil {
		return err
	}
	if err := d.sink.Raw("\n"); err != nil {
		return err
	}
	d.phase = phaseHeadEmitted
	return nil
}

// headTitle writes the title element. Pages pick their own title through
// the Titler interface; every other page is titled with its widget type's
// name.
func (d *document) headTitle(ctx context.Context) error {
	title := d.typeName
	if titler, ok := d.page.(Titler); ok {
		if custom := titler.PageTitle(ctx); custom != "" {
			title = custom
		}
	}
	return d.element("title", nil, title)
}

// headStyles writes the style slots of the head: the basic styles if
// they're enabled, one link element per effective external stylesheet, and
// a single style block holding every inline declaration. The block is
// omitted when nothing declared inline styles.
func (d *document) headStyles() error {
	if d.config.basicStyles {
		if err := d.element("style", nil, "\n"+basicStyles+"\n"); err != nil {
			return err
		}
	}
	links := d.effective(ExternalStyle)
	d.externalStyles = len(links)
	for _, href := range links {
		if err := d.voidElement("link", map[string]string{"href": href, "media": "all", "rel": "stylesheet"}); err != nil {
			return err
		}
	}
	inline := d.effective(InlineStyle)
	d.inlineStyles = len(inline)
	if len(inline) < 1 {
		return nil
	}
	var block strings.Builder
	for _, css := range inline {
		block.WriteString("\n")
		block.WriteString(css)
	}
	block.WriteString("\n")
	return d.element("style", nil, block.String())
}

// headScripts writes the script slots of the head: one script element per
// effective external script, then a single script block holding every
// inline declaration followed by every ready declaration in its own
// DOMContentLoaded listener. The block is omitted when nothing declared
// inline or ready scripts.
func (d *document) headScripts() error {
	links := d.effective(ExternalScript)
	d.externalScripts = len(links)
	for _, src := range links {
		if err := d.element("script", map[string]string{"src": src, "type": "text/javascript"}, ""); err != nil {
			return err
		}
	}
	inline := d.effective(InlineScript)
	ready := d.effective(ReadyScript)
	d.inlineScripts = len(inline)
	d.readyScripts = len(ready)
	if len(inline)+len(ready) < 1 {
		return nil
	}
	var block strings.Builder
	for _, js := range inline {
		block.WriteString("\n")
		block.WriteString(js)
	}
	for _, js := range ready {
		block.WriteString("\n")
		block.WriteString(readyOpen)
		block.WriteString("\n")
		block.WriteString(js)
		block.WriteString("\n")
		block.WriteString(readyClose)
	}
	block.WriteString("\n")
	return d.element("script", nil, block.String())
}

// effective resolves the page's declarations of one kind, collapsing
// duplicates for the kinds that reference resources by URL. Inline kinds
// pass through with their duplicates intact.
func (d *document) effective(kind Kind) []string {
	values := d.registry.Effective(d.typeName, kind)
	if kind.external() {
		values = Dedupe(values)
	}
	return values
}

// element writes a complete element on a line of its own: opening tag, raw
// contents, closing tag, newline.
func (d *document) element(name string, attrs map[string]string, contents string) error {
	if err := d.sink.OpenTag(name, attrs); err != nil {
		return err
	}
	if err := d.sink.Raw(contents); err != nil {
		return err
	}
	if err := d.sink.CloseTag(name); err != nil {
		return err
	}
	return d.sink.Raw("\n")
}

// voidElement writes an element that takes no closing tag on a line of its
// own.
func (d *document) voidElement(name string, attrs map[string]string) error {
	if err := d.sink.OpenTag(name, attrs); err != nil {
		return err
	}
	return d.sink.Raw("\n")
}
