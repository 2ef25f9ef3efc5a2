package altart

import (
	"fmt"
	"strings"
)

type selectorKind int

const (
	kindCSS selectorKind = iota
	kindRole
	kindText
	kindLabel
)

// Selector describes how to locate one element on the page. It is resolved
// into a driver specific locator only when an action is issued.
type Selector struct {
	kind    selectorKind
	value   string
	name    string
	hasText string
	nth     int
	hasNth  bool
}

// CSS locates an element by css or xpath expression.
func CSS(expr string) Selector {
	return Selector{kind: kindCSS, value: expr}
}

// Role locates an element by aria role and accessible name.
func Role(role, name string) Selector {
	return Selector{kind: kindRole, value: role, name: name}
}

// Text locates an element by its visible text.
func Text(text string) Selector {
	return Selector{kind: kindText, value: text}
}

// Label locates a form control by its label.
func Label(label string) Selector {
	return Selector{kind: kindLabel, value: label}
}

func (s Selector) Filter(hasText string) Selector {
	s.hasText = hasText
	return s
}

func (s Selector) Nth(i int) Selector {
	s.nth = i
	s.hasNth = true
	return s
}

func (s Selector) First() Selector {
	return s.Nth(0)
}

func (s Selector) String() string {
	var sb strings.Builder

	switch s.kind {
	case kindRole:
		sb.WriteString(fmt.Sprintf("role=%s[name=%q]", s.value, s.name))
	case kindText:
		sb.WriteString(fmt.Sprintf("text=%q", s.value))
	case kindLabel:
		sb.WriteString(fmt.Sprintf("label=%q", s.value))
	default:
		sb.WriteString(s.value)
	}

	if s.hasText != "" {
		sb.WriteString(fmt.Sprintf(" >> has-text=%q", s.hasText))
	}

	if s.hasNth {
		sb.WriteString(fmt.Sprintf(" >> nth=%d", s.nth))
	}

	return sb.String()
}
