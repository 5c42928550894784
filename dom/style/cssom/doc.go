/*
Package cssom provides the CSS object model the cascade works on.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. A style sheet
is an ordered list of rules, each rule holding a group of selectors and a
block of declarations. @media blocks and @import rules nest rules (or whole
style sheets) under a media list, @font-face rules are kept for a font
collaborator.

Selectors are represented the way most browser engines do it: as a chain
of simple selectors, starting at the subject of the selector and linked
right to left. Each link carries the relation to the next simple selector,
which is either a combinator or "same element" (SubSelector). A compound
selector like `p.note:hover` is therefore a chain of three nodes related by
SubSelector, the first of which holds the type selector.

Parsing style sheet text is delegated: package douceuradapter splits sheets
into rules, and this package tokenizes selector groups and property values
with the CSS lexer of github.com/tdewolff/parse.

For a cross-check of selector semantics we use
https://godoc.org/github.com/andybalholm/cascadia in the tests.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
