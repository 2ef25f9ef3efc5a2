package scenario

import (
	"fmt"
	"log/slog"

	"github.com/danielholmes839/altart-e2e/internal/altart"
)

const (
	LoginScenario          = "User should be able to log in"
	ReviewArtworksScenario = "loginToReviewArtworks"
)

// Scenario is one independent script run against its own browser page.
type Scenario struct {
	Name string
	Run  func(d altart.Driver, logger *slog.Logger) error
}

func Login(d altart.Driver, creds Credentials) error {
	err := d.Goto("/login")
	if err != nil {
		return err
	}

	return altart.NewLoginPage(d).Login(creds.Email, creds.Password)
}

// ReviewArtworks logs in, fills every field of the artwork form and publishes
// the artwork. The first failing step ends the script.
func ReviewArtworks(d altart.Driver, logger *slog.Logger, creds Credentials, artwork Artwork) error {
	login := altart.NewLoginPage(d)
	artworks := altart.NewArtworksPage(d, logger)

	steps := []struct {
		name string
		run  func() error
	}{
		{"open login", func() error { return d.Goto("/login") }},
		{"fill email", func() error { return login.FillEmail(creds.Email) }},
		{"fill password", func() error { return login.FillPassword(creds.Password) }},
		{"click login", login.ClickLogin},
		{"click artworks", artworks.ClickArtworks},
		{"click add artworks", artworks.ClickAddArtworks},
		{"fill artwork name", func() error { return artworks.FillArtworkName(artwork.Name) }},
		{"select edition", func() error { return artworks.SelectEdition(artwork.Edition) }},
		{"fill description", func() error { return artworks.FillDescription(artwork.Description) }},
		{"fill current price", func() error { return artworks.FillCurrentPrice(artwork.CurrentPrice) }},
		{"select current price currency", func() error { return artworks.SelectCurrency(artwork.CurrentPriceCurrency, 0) }},
		{"fill primary sale price", func() error { return artworks.FillPriceAtPrimarySale(artwork.PrimarySalePrice) }},
		{"select primary sale currency", func() error { return artworks.SelectCurrency(artwork.PrimarySaleCurrency, 1) }},
		{"select primary sale date", func() error { return selectDate(artworks, artwork.PrimarySaleDate, 1) }},
		{"fill primary sale buyer", func() error { return artworks.FillPrimarySaleBuyer(artwork.PrimarySaleBuyer) }},
		{"upload artwork", func() error { return artworks.UploadArtwork(artwork.File) }},
		{"select styles", func() error { return artworks.SelectStyleOfArtwork(artwork.Styles) }},
		{"select nft genesis", func() error { return artworks.SelectNFTGenesis(artwork.Genesis) }},
		{"select supply", func() error { return artworks.SelectSupply(artwork.Supply) }},
		{"fill collaborator", func() error { return artworks.FillCollaborator(artwork.Collaborator) }},
		{"fill owned by", func() error { return artworks.FillOwnedBy(artwork.OwnedBy) }},
		{"select marketplace", func() error { return artworks.SelectMarketplace(artwork.Marketplace) }},
		{"fill url", func() error { return artworks.FillURL(artwork.URL) }},
		{"select minted date", func() error { return selectDate(artworks, artwork.MintedDate, 2) }},
		{"select acquired date", func() error { return selectDate(artworks, artwork.AcquiredDate, 3) }},
		{"select copyright", func() error { return artworks.SelectCopyright(artwork.Copyright) }},
		{"select artist royalty", func() error { return artworks.SelectArtistRoyalty(artwork.ArtistRoyalty) }},
		{"select physical piece", func() error { return artworks.SelectPhysicalPiece(artwork.PhysicalPiece) }},
		{"publish", artworks.Publish},
	}

	for _, step := range steps {
		err := step.run()
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		logger.Debug("step done", "step", step.name)
	}

	return nil
}

func selectDate(page *altart.ArtworksPage, date Date, index int) error {
	return page.SelectDate(date.Day, date.Month, date.Year, index)
}

// VerifyPublished checks the artworks listing contains an artwork named name.
func VerifyPublished(d altart.Driver, logger *slog.Logger, name string) error {
	cards, err := altart.NewArtworksPage(d, logger).PublishedArtworks()
	if err != nil {
		return err
	}

	for _, card := range cards {
		if card.Name == name {
			logger.Info("found published artwork", "id", card.ID, "name", card.Name)
			return nil
		}
	}

	return fmt.Errorf("artwork %q is not listed (%d artworks found)", name, len(cards))
}

type SuiteOptions struct {
	Credentials     Credentials
	Artwork         Artwork
	VerifyPublished bool
}

// Suite returns the login and artwork creation scenarios.
func Suite(opts SuiteOptions) []Scenario {
	return []Scenario{
		{
			Name: LoginScenario,
			Run: func(d altart.Driver, logger *slog.Logger) error {
				return Login(d, opts.Credentials)
			},
		},
		{
			Name: ReviewArtworksScenario,
			Run: func(d altart.Driver, logger *slog.Logger) error {
				err := ReviewArtworks(d, logger, opts.Credentials, opts.Artwork)
				if err != nil {
					return err
				}

				if !opts.VerifyPublished {
					return nil
				}

				return VerifyPublished(d, logger, opts.Artwork.Name)
			},
		},
	}
}
