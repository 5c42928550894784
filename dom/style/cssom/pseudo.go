package cssom

import "strings"

// PseudoType enumerates the pseudo-classes and pseudo-elements the cascade
// knows about. Names not in this list parse to PseudoUnknown, which never
// matches.
type PseudoType uint8

// Pseudo-classes and pseudo-elements.
const (
	PseudoNone PseudoType = iota
	PseudoUnknown
	PseudoLink
	PseudoVisited
	PseudoHover
	PseudoActive
	PseudoFocus
	PseudoTarget
	PseudoRoot
	PseudoEmpty
	PseudoFirstChild
	PseudoLastChild
	PseudoOnlyChild
	PseudoFirstOfType
	PseudoLastOfType
	PseudoOnlyOfType
	PseudoNthChild
	PseudoNthLastChild
	PseudoNthOfType
	PseudoNthLastOfType
	PseudoLang
	PseudoNot
	PseudoEnabled
	PseudoDisabled
	PseudoChecked
	PseudoIndeterminate
	PseudoDefault
	PseudoReadOnly
	PseudoReadWrite
	PseudoContains
	// pseudo-elements
	PseudoFirstLine
	PseudoFirstLetter
	PseudoBefore
	PseudoAfter
	PseudoSelection
	PseudoMarker
	pseudoTypeCount
)

var pseudoNames = [pseudoTypeCount]string{
	"", "?", "link", "visited", "hover", "active", "focus", "target", "root", "empty",
	"first-child", "last-child", "only-child", "first-of-type", "last-of-type", "only-of-type",
	"nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type", "lang", "not",
	"enabled", "disabled", "checked", "indeterminate", "default", "read-only", "read-write",
	"contains", "first-line", "first-letter", "before", "after", "selection", "marker",
}

var pseudoByName map[string]PseudoType

func init() {
	pseudoByName = make(map[string]PseudoType, pseudoTypeCount)
	for p := PseudoLink; p < pseudoTypeCount; p++ {
		pseudoByName[pseudoNames[p]] = p
	}
}

// PseudoTypeByName finds the pseudo type for a name, without colons.
func PseudoTypeByName(name string) PseudoType {
	if p, ok := pseudoByName[strings.ToLower(name)]; ok {
		return p
	}
	return PseudoUnknown
}

func (p PseudoType) String() string {
	if p < pseudoTypeCount {
		return pseudoNames[p]
	}
	return "?"
}

// IsElement is true for pseudo-elements.
func (p PseudoType) IsElement() bool {
	return p >= PseudoFirstLine && p < pseudoTypeCount
}

// IsLegacyElement is true for the pseudo-elements which may be written
// with a single colon.
func (p PseudoType) IsLegacyElement() bool {
	switch p {
	case PseudoFirstLine, PseudoFirstLetter, PseudoBefore, PseudoAfter:
		return true
	}
	return false
}

// HasArgument is true for functional pseudo-classes.
func (p PseudoType) HasArgument() bool {
	switch p {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType,
		PseudoLang, PseudoNot, PseudoContains:
		return true
	}
	return false
}
