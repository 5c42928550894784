package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/dom/w3cdom"
)

// DependencyKind tells which kind of change may affect the style of an
// element.
type DependencyKind uint8

// Kinds of dependencies.
const (
	// PersonalDependency: an attribute of the element itself
	PersonalDependency DependencyKind = iota
	// AncestorDependency: an attribute of an ancestor
	AncestorDependency
	// PredecessorDependency: an attribute of a preceding sibling
	PredecessorDependency
	// StructuralDependency: insertion or removal of children of the target,
	// before the subject
	StructuralDependency
	// BackwardsStructuralDependency: children of the target, after the subject
	BackwardsStructuralDependency
	// HoverDependency: hover state of the target
	HoverDependency
	// ActiveDependency: active state of the target
	ActiveDependency
	// OtherStateDependency: focus, checked, enabled, … of the target
	OtherStateDependency
)

var dependencyNames = [...]string{
	"personal", "ancestor", "predecessor", "structural", "backwards-structural",
	"hover", "active", "other-state",
}

func (k DependencyKind) String() string {
	if int(k) < len(dependencyNames) {
		return dependencyNames[k]
	}
	return "?"
}

// IsAttribute is true for dependencies on attribute values.
func (k DependencyKind) IsAttribute() bool {
	return k <= PredecessorDependency
}

// Dependency is a condition the style of a subject element depends on.
// Attribute dependencies name the attribute, all others the element
// whose structure or state has to be watched.
type Dependency struct {
	Kind      DependencyKind
	Attribute string
	Element   w3cdom.Element
}

func (d Dependency) String() string {
	if d.Kind.IsAttribute() {
		return fmt.Sprintf("%s[%s]", d.Kind, d.Attribute)
	}
	if d.Element == nil {
		return fmt.Sprintf("%s(nil)", d.Kind)
	}
	return fmt.Sprintf("%s(<%s>)", d.Kind, d.Element.LocalName())
}

// DependencyStore receives the dependencies discovered while resolving the
// style of a subject element. The cascade does not filter duplicates;
// stores have to tolerate overlapping records.
type DependencyStore interface {
	AddDependency(subject w3cdom.Element, dep Dependency)
}

// DependencyList is a simple DependencyStore collecting all records.
type DependencyList struct {
	Records []DependencyRecord
}

// DependencyRecord is a dependency of a subject element.
type DependencyRecord struct {
	Subject w3cdom.Element
	Dependency
}

// AddDependency is part of interface DependencyStore.
func (dl *DependencyList) AddDependency(subject w3cdom.Element, dep Dependency) {
	dl.Records = append(dl.Records, DependencyRecord{Subject: subject, Dependency: dep})
}

// Has checks if a dependency of kind k on target has been recorded for
// subject. target is an attribute name for attribute dependencies and an
// element otherwise.
func (dl *DependencyList) Has(subject w3cdom.Element, k DependencyKind, target interface{}) bool {
	for _, r := range dl.Records {
		if r.Subject != subject || r.Kind != k {
			continue
		}
		if k.IsAttribute() {
			if name, ok := target.(string); ok && name == r.Attribute {
				return true
			}
		} else if e, ok := target.(w3cdom.Element); ok && e == r.Element {
			return true
		}
	}
	return false
}

// Reset drops all records.
func (dl *DependencyList) Reset() {
	dl.Records = dl.Records[:0]
}

var _ DependencyStore = &DependencyList{}
