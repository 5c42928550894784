package cascade

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
)

var (
	//go:embed sheets/html4.css
	html4CSS string

	//go:embed sheets/quirks.css
	quirksCSS string

	//go:embed sheets/hints.css
	hintsCSS string
)

// Registry holds the style sheets every document is styled with: the
// user agent default sheet (for screen and for print media), the
// additional rules for quirks mode, and the presentational hints which
// are expressed as selectors.
//
// Sheets are parsed lazily on first use. After a call to Reset they will
// be re-parsed on next use. A registry is safe for concurrent use, but
// clients must not reset it while style resolution is in progress.
type Registry struct {
	mu     sync.Mutex
	loaded bool
	err    error
	screen RuleSet
	print  RuleSet
	quirks RuleSet
	hints  RuleSet
}

var defaultRegistry = &Registry{}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Load parses the registry's style sheets, if not yet done. It is called
// implicitly by the accessors and returns an error if one of the embedded
// sheets cannot be read, which hints at a broken build.
func (reg *Registry) Load() error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.load()
}

func (reg *Registry) load() error {
	if reg.loaded {
		return reg.err
	}
	reg.loaded = true
	ua, err := douceuradapter.Parse(html4CSS, cssom.OriginUserAgent, "", nil)
	if err != nil {
		reg.err = fmt.Errorf("default style sheet: %w", err)
		return reg.err
	}
	q, err := douceuradapter.Parse(quirksCSS, cssom.OriginUserAgent, "", nil)
	if err != nil {
		reg.err = fmt.Errorf("quirks style sheet: %w", err)
		return reg.err
	}
	h, err := douceuradapter.Parse(hintsCSS, cssom.OriginPresentational, "", nil)
	if err != nil {
		reg.err = fmt.Errorf("hints style sheet: %w", err)
		return reg.err
	}
	reg.screen = RulesOf(ua, cssom.MediaEnvironment{Type: "screen"}, nil)
	reg.print = RulesOf(ua, cssom.MediaEnvironment{Type: "print"}, nil)
	reg.quirks = RulesOf(q, cssom.MediaEnvironment{Type: "screen"}, nil)
	reg.hints = RulesOf(h, cssom.MediaEnvironment{Type: "screen"}, nil)
	tracer().Infof("style registry loaded: %d default rules, %d quirks rules, %d hint rules",
		len(reg.screen.Rules), len(reg.quirks.Rules), len(reg.hints.Rules))
	return nil
}

// Reset drops the parsed sheets. They will be parsed again on next use.
func (reg *Registry) Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.loaded, reg.err = false, nil
	reg.screen, reg.print, reg.quirks, reg.hints = RuleSet{}, RuleSet{}, RuleSet{}, RuleSet{}
}

// rules returns one of the rule sets, loading the sheets on demand. The
// embedded sheets are part of the binary, failing to parse them is fatal.
func (reg *Registry) rules(which func(*Registry) RuleSet) RuleSet {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	err := reg.load()
	assertThat(err == nil, "registry: %v", err)
	return which(reg)
}

// DefaultRules returns the rules of the user agent sheet, for screen or
// for print media.
func (reg *Registry) DefaultRules(printMedia bool) RuleSet {
	if printMedia {
		return reg.rules(func(r *Registry) RuleSet { return r.print })
	}
	return reg.rules(func(r *Registry) RuleSet { return r.screen })
}

// QuirksRules returns the rules in effect additionally in quirks mode.
func (reg *Registry) QuirksRules() RuleSet {
	return reg.rules(func(r *Registry) RuleSet { return r.quirks })
}

// HintRules returns the presentational hints expressed as style rules.
func (reg *Registry) HintRules() RuleSet {
	return reg.rules(func(r *Registry) RuleSet { return r.hints })
}
