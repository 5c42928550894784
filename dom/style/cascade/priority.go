package cascade

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
)

// Tier is the cascading tier of a declaration, combining its origin and
// its importance. Tiers are ordered from lowest to highest priority.
type Tier uint8

// Cascading tiers.
const (
	TierDefault         Tier = iota // user agent sheets, including quirks
	TierNonCSSHint                  // presentational hints of HTML
	TierUser                        // user sheets
	TierAuthor                      // author sheets
	TierInline                      // style attribute
	TierAuthorImportant             // !important in author sheets
	TierInlineImportant             // !important in style attribute
	TierUserImportant               // !important in user sheets
)

var tierNames = [...]string{
	"default", "non-css", "user", "author", "inline", "author!", "inline!", "user!",
}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "?"
}

// TierFor returns the tier for declarations of a style sheet origin.
// Importance is ignored for user agent sheets and presentational hints.
func TierFor(origin cssom.Origin, important bool) Tier {
	switch origin {
	case cssom.OriginPresentational:
		return TierNonCSSHint
	case cssom.OriginUser:
		if important {
			return TierUserImportant
		}
		return TierUser
	case cssom.OriginAuthor:
		if important {
			return TierAuthorImportant
		}
		return TierAuthor
	}
	return TierDefault
}

// Priority orders declarations within the cascade. From most to least
// significant bit it holds: a bit set for properties which are not applied
// early (see style.PropertyID.AppliesFirst), the tier, and the specificity
// of the selector the declaration belongs to.
type Priority uint32

const (
	lateBit   Priority = 1 << 30
	tierShift          = 24
)

// MakePriority assembles a priority.
func MakePriority(first bool, tier Tier, sp cssom.Specificity) Priority {
	p := Priority(tier)<<tierShift | Priority(sp.Value())
	if !first {
		p |= lateBit
	}
	return p
}

// Tier extracts the tier from a priority.
func (p Priority) Tier() Tier {
	return Tier((p >> tierShift) & 0x3f)
}

// AppliesFirst is true for priorities of early properties.
func (p Priority) AppliesFirst() bool {
	return p&lateBit == 0
}

func (p Priority) String() string {
	sp := uint32(p) & 0xffffff
	return fmt.Sprintf("%s(%d,%d,%d)", p.Tier(), sp>>16, (sp>>8)&0xff, sp&0xff)
}

// orderedProperty is a declaration in the cascade, together with the
// selector it stems from, its priority and its source position.
type orderedProperty struct {
	decl     *cssom.Declaration
	selector SelectorID // noSelector for inline styles and hints
	priority Priority
	position int
	pseudo   style.PseudoID
}

// less compares two ordered properties. Priorities are compared first,
// source positions break ties. Positions are unique, so the order is total.
func (op orderedProperty) less(other orderedProperty) bool {
	if op.priority != other.priority {
		return op.priority < other.priority
	}
	return op.position < other.position
}

// sortProperties sorts properties by ascending priority and position. The
// sort is stable.
func sortProperties(props []orderedProperty) {
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].less(props[j])
	})
}
