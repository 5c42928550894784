/*
Package dom provides document-level operations: parsing an HTML document
together with its style sheets, and resolving the styles of all its
elements.

Overview

Styling a document involves several collaborators. Package styledtree
holds the elements and their resolved styles, package douceuradapter
reads style sheets, and package cascade resolves styles. A Document ties
them together:

	doc, err := dom.Parse(reader, dom.BaseURL("https://example.com/"))
	…
	doc.Style(nil)
	rs := doc.ElementByID("main").ComputedStyle()

Style sheets referenced by <link> elements and @import rules are only
read if clients provide a loader.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
