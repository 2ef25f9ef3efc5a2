package altart

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightDriver drives a single playwright page.
type PlaywrightDriver struct {
	Page   playwright.Page
	Expect playwright.PlaywrightAssertions
}

func NewPlaywrightDriver(page playwright.Page) *PlaywrightDriver {
	return &PlaywrightDriver{
		Page:   page,
		Expect: playwright.NewPlaywrightAssertions(),
	}
}

func (d *PlaywrightDriver) locator(sel Selector) playwright.Locator {
	var loc playwright.Locator

	switch sel.kind {
	case kindRole:
		loc = d.Page.GetByRole(playwright.AriaRole(sel.value), playwright.PageGetByRoleOptions{
			Name: sel.name,
		})
	case kindText:
		loc = d.Page.GetByText(sel.value)
	case kindLabel:
		loc = d.Page.GetByLabel(sel.value)
	default:
		loc = d.Page.Locator(sel.value)
	}

	if sel.hasText != "" {
		loc = loc.Filter(playwright.LocatorFilterOptions{
			HasText: sel.hasText,
		})
	}

	if sel.hasNth {
		loc = loc.Nth(sel.nth)
	}

	return loc
}

func wrap(action string, sel Selector, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", action, sel, err)
}

func (d *PlaywrightDriver) Goto(path string) error {
	_, err := d.Page.Goto(path)
	if err != nil {
		return fmt.Errorf("goto %s: %w", path, err)
	}
	return nil
}

func (d *PlaywrightDriver) Click(sel Selector) error {
	return wrap("click", sel, d.locator(sel).Click())
}

func (d *PlaywrightDriver) ForceClick(sel Selector) error {
	err := d.locator(sel).Click(playwright.LocatorClickOptions{
		Force: playwright.Bool(true),
	})
	return wrap("click", sel, err)
}

func (d *PlaywrightDriver) Fill(sel Selector, value string) error {
	return wrap("fill", sel, d.locator(sel).Fill(value))
}

func (d *PlaywrightDriver) SetInputFiles(sel Selector, path string) error {
	return wrap("set input files", sel, d.locator(sel).SetInputFiles(path))
}

func (d *PlaywrightDriver) TextContent(sel Selector) (string, error) {
	text, err := d.locator(sel).TextContent()
	if err != nil {
		return "", wrap("read text", sel, err)
	}

	if text == "" {
		return "", wrap("read text", sel, ErrMissingText)
	}

	return text, nil
}

func (d *PlaywrightDriver) ClickAt(x, y float64) error {
	err := d.Page.Mouse().Click(x, y)
	if err != nil {
		return fmt.Errorf("click at (%v, %v): %w", x, y, err)
	}
	return nil
}

func (d *PlaywrightDriver) ClickAndWaitForNavigation(sel Selector) error {
	// the navigation waiter is registered before the callback issues the click
	_, err := d.Page.ExpectNavigation(func() error {
		return d.locator(sel).Click()
	}, playwright.PageExpectNavigationOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	return wrap("click and wait for navigation", sel, err)
}

func (d *PlaywrightDriver) ExpectValue(sel Selector, value string) error {
	return wrap("expect value", sel, d.Expect.Locator(d.locator(sel)).ToHaveValue(value))
}

func (d *PlaywrightDriver) ExpectText(sel Selector, text string) error {
	return wrap("expect text", sel, d.Expect.Locator(d.locator(sel)).ToHaveText(text))
}

func (d *PlaywrightDriver) ExpectHidden(sel Selector) error {
	return wrap("expect hidden", sel, d.Expect.Locator(d.locator(sel)).ToBeHidden())
}

func (d *PlaywrightDriver) ExpectChecked(sel Selector) error {
	return wrap("expect checked", sel, d.Expect.Locator(d.locator(sel)).ToBeChecked())
}

func (d *PlaywrightDriver) Content() (string, error) {
	return d.Page.Content()
}
