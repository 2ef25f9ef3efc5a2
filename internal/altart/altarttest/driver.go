// Package altarttest provides an in-memory altart.Driver for unit tests.
package altarttest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielholmes839/altart-e2e/internal/altart"
)

// Calendar simulates the date picker widget.
type Calendar struct {
	Month time.Month
	Year  int
}

func (c *Calendar) header() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

func (c *Calendar) step(months int) {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	c.Month = t.Month()
	c.Year = t.Year()
}

// Driver records every action and keeps just enough page state to satisfy
// the assertions the page objects make.
type Driver struct {
	Calls []string

	// Calendar is nil when the date picker renders no header.
	Calendar *Calendar

	// Texts overrides TextContent per selector.
	Texts map[string]string

	// Errors fails any action on a selector.
	Errors map[string]error

	HTML string
	Path string

	values  map[string]string
	checked map[string]bool
	chosen  map[string]bool
	tags    map[string]bool
	known   map[string]bool
	picker  int
	last    string
}

func New() *Driver {
	return &Driver{
		Texts:   map[string]string{},
		Errors:  map[string]error{},
		values:  map[string]string{},
		checked: map[string]bool{},
		chosen:  map[string]bool{},
		tags:    map[string]bool{},
		known:   map[string]bool{},
	}
}

// Tags returns the values currently selected in multi-select controls.
func (d *Driver) Tags() []string {
	tags := []string{}
	for tag, ok := range d.tags {
		if ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Count returns how many recorded calls start with prefix.
func (d *Driver) Count(prefix string) int {
	n := 0
	for _, call := range d.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

func (d *Driver) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func optionName(sel altart.Selector) (string, bool) {
	s := sel.String()
	if !strings.HasPrefix(s, "role=option[name=") || !strings.HasSuffix(s, "]") {
		return "", false
	}

	name, err := strconv.Unquote(strings.TrimSuffix(strings.TrimPrefix(s, "role=option[name="), "]"))
	if err != nil {
		return "", false
	}
	return name, true
}

func (d *Driver) click(sel altart.Selector) error {
	s := sel.String()
	if err := d.Errors[s]; err != nil {
		return err
	}

	defer func() { d.last = s }()

	switch s {
	case altart.SelectorPreviousMonth.String():
		if d.Calendar == nil {
			return fmt.Errorf("%s: calendar is closed", s)
		}
		d.Calendar.step(-1)
		return nil
	case altart.SelectorNextMonth.String():
		if d.Calendar == nil {
			return fmt.Errorf("%s: calendar is closed", s)
		}
		d.Calendar.step(1)
		return nil
	case altart.SelectorStyleClear.String():
		d.tags = map[string]bool{}
		return nil
	}

	if name, ok := optionName(sel); ok {
		d.chosen[name] = true
		if d.last == altart.SelectorStyleInput.String() || d.last == altart.SelectorCollaborator.String() {
			d.tags[name] = true
			d.known[name] = true
		}
		return nil
	}

	for tag := range d.known {
		if s == altart.RemoveTag(tag).String() {
			if !d.tags[tag] {
				return fmt.Errorf("%s: no such tag", s)
			}
			d.tags[tag] = false
			return nil
		}
	}

	for i := 1; i <= 10; i++ {
		if s == altart.DatePickerTrigger(i).String() {
			d.picker = i
			return nil
		}
	}

	if d.Calendar != nil {
		for day := 1; day <= 31; day++ {
			if s == altart.DayButton(strconv.Itoa(day)).String() {
				label := altart.DatePickerLabel(d.picker).String()
				d.Texts[label] = fmt.Sprintf("%s %d, %d", d.Calendar.Month.String()[:3], day, d.Calendar.Year)
				return nil
			}
		}
	}

	d.checked[s] = true
	return nil
}

func (d *Driver) Goto(path string) error {
	d.record("goto %s", path)
	d.Path = path
	return nil
}

func (d *Driver) Click(sel altart.Selector) error {
	d.record("click %s", sel)
	return d.click(sel)
}

func (d *Driver) ForceClick(sel altart.Selector) error {
	d.record("force click %s", sel)
	return d.click(sel)
}

func (d *Driver) Fill(sel altart.Selector, value string) error {
	d.record("fill %s %s", sel, value)
	if err := d.Errors[sel.String()]; err != nil {
		return err
	}
	d.values[sel.String()] = value
	d.last = sel.String()
	return nil
}

func (d *Driver) SetInputFiles(sel altart.Selector, path string) error {
	d.record("upload %s %s", sel, path)
	if err := d.Errors[sel.String()]; err != nil {
		return err
	}
	d.values[sel.String()] = path
	return nil
}

func (d *Driver) TextContent(sel altart.Selector) (string, error) {
	d.record("read %s", sel)
	s := sel.String()
	if err := d.Errors[s]; err != nil {
		return "", err
	}

	if text, ok := d.Texts[s]; ok && text != "" {
		return text, nil
	}

	if s == altart.SelectorCalendarHeader.String() && d.Calendar != nil {
		return d.Calendar.header(), nil
	}

	return "", fmt.Errorf("read text %s: %w", s, altart.ErrMissingText)
}

func (d *Driver) ClickAt(x, y float64) error {
	d.record("click at %v,%v", x, y)
	return nil
}

func (d *Driver) ClickAndWaitForNavigation(sel altart.Selector) error {
	d.record("click and wait for navigation %s", sel)
	if err := d.Errors[sel.String()]; err != nil {
		return err
	}
	return nil
}

func (d *Driver) ExpectValue(sel altart.Selector, value string) error {
	d.record("expect value %s %s", sel, value)
	got := d.values[sel.String()]
	if got != value {
		return &altart.AssertionError{Selector: sel, Want: value, Got: got}
	}
	return nil
}

func (d *Driver) ExpectText(sel altart.Selector, text string) error {
	d.record("expect text %s %s", sel, text)
	s := sel.String()

	if s == altart.TagContaining(text).String() {
		if !d.tags[text] {
			return &altart.AssertionError{Selector: sel, Want: text}
		}
		return nil
	}

	if got, ok := d.Texts[s]; ok {
		if got != text {
			return &altart.AssertionError{Selector: sel, Want: text, Got: got}
		}
		return nil
	}

	if !d.chosen[text] {
		return &altart.AssertionError{Selector: sel, Want: text}
	}
	return nil
}

func (d *Driver) ExpectHidden(sel altart.Selector) error {
	d.record("expect hidden %s", sel)
	for tag := range d.known {
		if sel.String() == altart.TagContaining(tag).String() && d.tags[tag] {
			return fmt.Errorf("%s: still visible", sel)
		}
	}
	return nil
}

func (d *Driver) ExpectChecked(sel altart.Selector) error {
	d.record("expect checked %s", sel)
	if !d.checked[sel.String()] {
		return fmt.Errorf("%s: not checked", sel)
	}
	return nil
}

func (d *Driver) Content() (string, error) {
	d.record("content")
	return d.HTML, nil
}
