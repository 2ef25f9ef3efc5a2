package altart

import (
	"github.com/playwright-community/playwright-go"
)

type SessionOptions struct {
	BaseURL  string
	Headless bool
	Width    int
	Height   int
}

// Session owns one playwright browser, context and page.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

func Launch(opts SessionOptions) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, err
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL:  playwright.String(opts.BaseURL),
		Viewport: &playwright.Size{Width: opts.Width, Height: opts.Height},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, err
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return nil, err
	}

	return &Session{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
	}, nil
}

func (s *Session) Driver() Driver {
	return NewPlaywrightDriver(s.page)
}

func (s *Session) Close() error {
	s.context.Close()
	s.browser.Close()
	return s.pw.Stop()
}
