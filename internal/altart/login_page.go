package altart

type LoginPage struct {
	Driver Driver
}

func NewLoginPage(d Driver) *LoginPage {
	return &LoginPage{Driver: d}
}

func (p *LoginPage) FillEmail(email string) error {
	return p.Driver.Fill(SelectorEmailInput, email)
}

func (p *LoginPage) FillPassword(password string) error {
	return p.Driver.Fill(SelectorPasswordInput, password)
}

// ClickLogin submits the form and waits for the page to navigate.
func (p *LoginPage) ClickLogin() error {
	return p.Driver.ClickAndWaitForNavigation(SelectorLoginButton)
}

func (p *LoginPage) Login(email, password string) error {
	err := p.FillEmail(email)
	if err != nil {
		return err
	}

	err = p.FillPassword(password)
	if err != nil {
		return err
	}

	return p.ClickLogin()
}
