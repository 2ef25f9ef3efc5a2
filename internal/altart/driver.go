package altart

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingText is returned when an element that should render text has none.
	ErrMissingText = errors.New("element has no text content")

	ErrCalendarUnreachable = errors.New("calendar did not reach the target month")
)

// Driver is the set of browser actions the page objects need. Every action
// waits up to the driver's default timeout for the element.
type Driver interface {
	Goto(path string) error
	Click(sel Selector) error
	ForceClick(sel Selector) error
	Fill(sel Selector, value string) error
	SetInputFiles(sel Selector, path string) error

	// TextContent returns ErrMissingText when the element has no text.
	TextContent(sel Selector) (string, error)

	ClickAt(x, y float64) error

	// ClickAndWaitForNavigation starts waiting for a navigation, clicks sel
	// and returns once both have completed.
	ClickAndWaitForNavigation(sel Selector) error

	ExpectValue(sel Selector, value string) error
	ExpectText(sel Selector, text string) error
	ExpectHidden(sel Selector) error
	ExpectChecked(sel Selector) error

	Content() (string, error)
}

// AssertionError reports a value read back from the page that differs from
// the expected one.
type AssertionError struct {
	Selector Selector
	Want     string
	Got      string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %q, got %q", e.Selector, e.Want, e.Got)
}
