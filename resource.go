package plinth

// Kind identifies the flavor of a declared resource. The Kind controls
// which slot of the document head a declaration is emitted in and whether
// duplicate declarations collapse into a single element.
type Kind string

const (
	// ExternalScript is the URL of a JavaScript file, loaded with a
	// script element in the document head. External scripts deduplicate:
	// a URL declared by several widget types is emitted once, at the
	// position of its first declaration.
	ExternalScript Kind = "external-script"

	// InlineScript is literal JavaScript source, embedded in the
	// document's shared script block. Inline scripts never deduplicate;
	// every declaration is emitted, identical ones included.
	InlineScript Kind = "inline-script"

	// ExternalStyle is the URL of a stylesheet, loaded with a link
	// element in the document head. External styles deduplicate the same
	// way external scripts do.
	ExternalStyle Kind = "external-style"

	// InlineStyle is literal CSS, embedded in the document's shared
	// style block. Inline styles never deduplicate.
	InlineStyle Kind = "inline-style"

	// ReadyScript is literal JavaScript that shouldn't run until the
	// document has finished parsing. Each declaration is emitted at the
	// end of the shared script block, wrapped in its own DOMContentLoaded
	// listener. Ready scripts never deduplicate.
	ReadyScript Kind = "ready-script"
)

// valid reports whether k is one of the package's Kind constants.
func (k Kind) valid() bool {
	switch k {
	case ExternalScript, InlineScript, ExternalStyle, InlineStyle, ReadyScript:
		return true
	}
	return false
}

// external reports whether k names resources by URL. External kinds are the
// ones that deduplicate at emission.
func (k Kind) external() bool {
	return k == ExternalScript || k == ExternalStyle
}

// A Declaration is one resource a widget type asked for: the Kind of
// resource, and either its URL or its literal text, depending on the Kind.
// Declarations don't change once made.
type Declaration struct {
	Kind  Kind
	Value string
}

// Dedupe returns values with duplicates removed. The first occurrence of
// each value keeps its position; later occurrences are dropped. Values are
// compared by exact string match, so two URLs that only differ in case or
// in an access scheme are different values. The input slice is not
// modified.
//
// Dedupe is what renders apply to the effective external-script and
// external-style values of a page; it's exported so consumers routing
// resources somewhere unusual can apply the same collapse.
func Dedupe(values []string) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		results = append(results, value)
		seen[value] = struct{}{}
	}
	return results
}
