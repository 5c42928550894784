/*
Package cascade resolves the style of DOM elements from style sheets.

Overview

For every element, the cascade collects the declarations of all selectors
which match the element, orders them by origin, importance, specificity and
source position, and applies them to a fresh style which inherits from
the style of the parent element. Pseudo-elements like ::before receive
styles of their own.

Selectors of all style sheets in effect for a document are kept in a
SelectorIndex. The index buckets selectors by the id, class or tag of their
subject, so for a given element only few selectors have to be tested.
Matching walks a selector chain right to left. While matching, the
cascade may record the structural and dynamic dependencies it discovered,
for an invalidation collaborator to decide which elements to restyle after
a DOM mutation.

User agent style sheets are process-wide and held by a Registry.

Concurrency

A Resolver is not re-entrant. Style resolution for an element has to run
to completion before resolution for another element of the same document
may start. Clients styling multiple documents concurrently use one
Resolver per document.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.engine")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cascade: "+msg, msgargs...)
		panic(msg)
	}
}
