/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree wraps an HTML parse tree of golang.org/x/net/html. Every node
of the parse tree gets a StyNode, which implements the interfaces of
package w3cdom and stores the resolved style of its element. Styled nodes
carry the dynamic state (hover, focus, …) of an element, its traits and the
parsed declarations of its style attribute.

This is the default implementation used by the engine. However, for
interactive use it may be appropriate to create a styled tree derived
from another type of styled node. The engine's design should fully
support this kind of switch.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
