// Package plinth assembles complete HTML documents for pages built out of
// widgets, gathering up every script and stylesheet those widgets need and
// emitting each one in the document head, exactly once, in a stable order.
//
// plinth is organized around widget types. A widget type is any named piece
// of a page with opinions about its resources: the page itself, the layout
// the page fills in, the navbar the layout includes. Each widget type is
// registered once, usually from a package init function, naming the types it
// builds on, and then declares the resources it needs with Declare. A
// declaration names a Kind (an external script or stylesheet URL, literal
// script or style text, or script text to run at document ready) and a
// value. Declarations attach to the type, not to instances, so a widget that
// shows up fifty times in one page still contributes its resources once.
//
// The effective resources for a page are resolved through the registration
// table: everything the page's widget type builds on contributes first, then
// the type's own declarations, in the order they were made. External URLs declared more than once along the way collapse to
// their first appearance; literal text is emitted once per declaration, even
// when identical, since repeating a snippet can be deliberate.
//
// To produce a document, pass a Page to RenderPage. The shell writes the
// doctype, a head carrying the page's effective resources, and a body. The
// page supplies body markup by implementing BodyRenderer or through the
// WithBodyContent option, and can pick its title and body class with the
// Titler and BodyClasser interfaces; a page that does none of that still
// renders as a well-formed, resource-complete document. Markup leaves the
// shell through the Sink interface, so output isn't tied to any particular
// writer; MarkupWriter is the implementation most callers want.
package plinth
