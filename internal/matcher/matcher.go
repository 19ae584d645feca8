// Package matcher checks input line for matching the query - literal string, case-folded string or regexp, returns bool
package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Matcher is one resolved search strategy. It is not safe for concurrent use:
// the case folder keeps internal state, so create one Matcher per search.
type Matcher struct {
	mode    model.Mode
	query   string
	pattern *regexp.Regexp
	lower   cases.Caser
}

// New resolves cfg.Mode() once. In regex mode the query is compiled here,
// so an invalid pattern fails before any input is read.
func New(cfg model.SearchConfig) (*Matcher, error) {
	m := &Matcher{mode: cfg.Mode(), query: cfg.Query}

	switch m.mode {
	case model.ModeRegex:
		pattern, err := regexp.Compile(cfg.Query)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidPattern, err)
		}
		m.pattern = pattern
	case model.ModeCaseInsensitive:
		m.lower = cases.Lower(language.Und)
		m.query = m.lower.String(cfg.Query)
	}

	return m, nil
}

func (m *Matcher) Mode() model.Mode {
	return m.mode
}

// Match reports whether line satisfies the strategy. The line itself is never modified.
func (m *Matcher) Match(line string) bool {
	switch m.mode {
	case model.ModeRegex:
		return m.pattern.MatchString(line)
	case model.ModeCaseInsensitive: // -i
		return strings.Contains(m.lower.String(line), m.query)
	default:
		return strings.Contains(line, m.query)
	}
}
