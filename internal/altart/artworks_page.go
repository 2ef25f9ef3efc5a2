package altart

import (
	"log/slog"
)

type ArtworksPage struct {
	Driver Driver
	Logger *slog.Logger
}

func NewArtworksPage(d Driver, logger *slog.Logger) *ArtworksPage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArtworksPage{Driver: d, Logger: logger}
}

func (p *ArtworksPage) ClickArtworks() error {
	return p.Driver.Click(SelectorArtworksButton)
}

// ClickAddArtworks opens the artwork creation form.
func (p *ArtworksPage) ClickAddArtworks() error {
	return p.Driver.Click(SelectorAddArtworksLink)
}

func (p *ArtworksPage) FillArtworkName(name string) error {
	return p.Driver.Fill(SelectorArtworkName, name)
}

func (p *ArtworksPage) SelectEdition(edition string) error {
	err := p.Driver.Click(SelectorEditionDropdown)
	if err != nil {
		return err
	}
	return p.Driver.Click(Option(edition))
}

func (p *ArtworksPage) FillDescription(description string) error {
	return p.Driver.Fill(SelectorDescription, description)
}

// fillPrice fills a price input and presses the pair of confirmation buttons
// rendered next to it.
func (p *ArtworksPage) fillPrice(input Selector, price string, confirm ...int) error {
	err := p.Driver.Fill(input, price)
	if err != nil {
		return err
	}

	err = p.Driver.Click(input)
	if err != nil {
		return err
	}

	for _, n := range confirm {
		err = p.Driver.Click(FormButton(n))
		if err != nil {
			return err
		}
	}

	return p.Driver.ExpectValue(input, price)
}

func (p *ArtworksPage) FillCurrentPrice(price string) error {
	return p.fillPrice(SelectorCurrentPrice, price, 6, 7)
}

func (p *ArtworksPage) FillPriceAtPrimarySale(price string) error {
	return p.fillPrice(SelectorPrimarySalePrice, price, 8, 9)
}

// SelectCurrency picks currency in the index'th (0-based) currency dropdown.
func (p *ArtworksPage) SelectCurrency(currency string, index int) error {
	err := p.Driver.Click(CurrencyDropdown(index))
	if err != nil {
		return err
	}
	return p.Driver.Click(Option(currency))
}

func (p *ArtworksPage) fillUser(n int, user string) error {
	err := p.Driver.Fill(UserInput(n), user)
	if err != nil {
		return err
	}
	return p.Driver.ExpectValue(UserInput(n), user)
}

func (p *ArtworksPage) FillPrimarySaleBuyer(user string) error {
	return p.fillUser(1, user)
}

func (p *ArtworksPage) FillOwnedBy(owner string) error {
	return p.fillUser(2, owner)
}

func (p *ArtworksPage) UploadArtwork(path string) error {
	return p.Driver.SetInputFiles(SelectorArtworkUpload, path)
}

func (p *ArtworksPage) chooseStyle(style string) error {
	err := p.Driver.ForceClick(SelectorStyleInput)
	if err != nil {
		return err
	}

	err = p.Driver.ForceClick(Option(style))
	if err != nil {
		return err
	}

	return p.Driver.ExpectText(TagContaining(style), style)
}

// SelectStyleOfArtwork adds every style to the style multi-select. Each style
// is added, removed and added again, then the control is cleared and all
// styles chosen so far are selected from scratch.
func (p *ArtworksPage) SelectStyleOfArtwork(styles []string) error {
	err := p.Driver.ForceClick(SelectorStyleDropdown)
	if err != nil {
		return err
	}

	for i, style := range styles {
		err = p.chooseStyle(style)
		if err != nil {
			return err
		}

		err = p.Driver.ForceClick(RemoveTag(style))
		if err != nil {
			return err
		}

		err = p.Driver.ExpectHidden(TagContaining(style))
		if err != nil {
			return err
		}

		err = p.chooseStyle(style)
		if err != nil {
			return err
		}

		err = p.Driver.Click(SelectorStyleClear)
		if err != nil {
			return err
		}

		err = p.Driver.ForceClick(SelectorStyleDropdown)
		if err != nil {
			return err
		}

		for _, selected := range styles[:i+1] {
			err = p.chooseStyle(selected)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *ArtworksPage) SelectNFTGenesis(genesis string) error {
	err := p.Driver.Click(FormField("Select NFT Genesis", 2))
	if err != nil {
		return err
	}

	err = p.Driver.Click(Option(genesis))
	if err != nil {
		return err
	}

	return p.Driver.ExpectText(FormField(genesis, 2), genesis)
}

func (p *ArtworksPage) SelectSupply(supply string) error {
	err := p.Driver.ForceClick(SelectorSupplyInput)
	if err != nil {
		return err
	}

	err = p.Driver.Click(Option(supply))
	if err != nil {
		return err
	}

	return p.Driver.ExpectText(FormField(supply, 3), supply)
}

// FillCollaborator searches for a collaborator and picks the matching option.
func (p *ArtworksPage) FillCollaborator(collaborator string) error {
	err := p.Driver.Fill(SelectorCollaborator, collaborator)
	if err != nil {
		return err
	}

	err = p.Driver.Click(Option(collaborator))
	if err != nil {
		return err
	}

	return p.Driver.ExpectText(TagContaining(collaborator), collaborator)
}

func (p *ArtworksPage) SelectMarketplace(marketplace string) error {
	err := p.Driver.Click(SelectorMarketplace)
	if err != nil {
		return err
	}

	err = p.Driver.Click(Option(marketplace))
	if err != nil {
		return err
	}

	return p.Driver.ExpectText(Role("button", marketplace), marketplace)
}

func (p *ArtworksPage) FillURL(url string) error {
	err := p.Driver.Fill(SelectorURL, url)
	if err != nil {
		return err
	}
	return p.Driver.ExpectValue(SelectorURL, url)
}

func (p *ArtworksPage) SelectCopyright(copyright string) error {
	err := p.Driver.Click(SelectorCopyright)
	if err != nil {
		return err
	}
	return p.Driver.Click(Option(copyright))
}

func (p *ArtworksPage) selectRadio(sel Selector) error {
	err := p.Driver.Click(sel)
	if err != nil {
		return err
	}
	return p.Driver.ExpectChecked(sel)
}

// SelectArtistRoyalty checks the first radio labelled selection.
func (p *ArtworksPage) SelectArtistRoyalty(selection string) error {
	return p.selectRadio(Label(selection).First())
}

// SelectPhysicalPiece checks the second radio labelled option ("Yes"/"No"),
// the first one belongs to the royalty question.
func (p *ArtworksPage) SelectPhysicalPiece(option string) error {
	return p.selectRadio(Label(option).Nth(1))
}

func (p *ArtworksPage) Publish() error {
	return p.Driver.Click(SelectorPublish)
}
