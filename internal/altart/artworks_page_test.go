package altart_test

import (
	"errors"
	"testing"

	"github.com/danielholmes839/altart-e2e/internal/altart"
	"github.com/danielholmes839/altart-e2e/internal/altart/altarttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillCurrentPrice(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.FillCurrentPrice("10"))

	assert.Equal(t, []string{
		"fill #current_price 10",
		"click #current_price",
		`click (//button[@type="button"])[6]`,
		`click (//button[@type="button"])[7]`,
		"expect value #current_price 10",
	}, d.Calls)
}

func TestFillPriceAtPrimarySale(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.FillPriceAtPrimarySale("15"))

	assert.Equal(t, 1, d.Count(`click (//button[@type="button"])[8]`))
	assert.Equal(t, 1, d.Count(`click (//button[@type="button"])[9]`))
}

func TestSelectCurrency(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.SelectCurrency("ARB ( Arbitrum )", 1))

	assert.Equal(t, []string{
		"click .wallet-input >> nth=1",
		`click role=option[name="ARB ( Arbitrum )"]`,
	}, d.Calls)
}

func TestSelectStyleRoundTrip(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	styles := []string{"Abstract", "Cubism", "Minimalism"}
	require.NoError(t, page.SelectStyleOfArtwork(styles))

	assert.ElementsMatch(t, styles, d.Tags())

	for _, style := range styles {
		assert.Equal(t, 1, d.Count("force click "+altart.RemoveTag(style).String()))
		assert.Equal(t, 1, d.Count("expect hidden "+altart.TagContaining(style).String()))
	}

	assert.Equal(t, len(styles), d.Count("click "+altart.SelectorStyleClear.String()))
}

func TestSelectStyleRemoveFails(t *testing.T) {
	d := altarttest.New()
	d.Errors[altart.RemoveTag("Cubism").String()] = errors.New("not clickable")
	page := altart.NewArtworksPage(d, nil)

	err := page.SelectStyleOfArtwork([]string{"Abstract", "Cubism", "Minimalism"})
	require.EqualError(t, err, "not clickable")

	assert.Equal(t, 0, d.Count(`force click role=option[name="Minimalism"]`))
}

func TestDropdownsAssertDisplayedValue(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.SelectNFTGenesis("2018"))
	require.NoError(t, page.SelectSupply("25 - 49 /year"))
	require.NoError(t, page.FillCollaborator("moe@sss.com"))
	require.NoError(t, page.SelectMarketplace("OpenSea"))

	assert.Equal(t, 1, d.Count(`expect text form div >> has-text="2018" >> nth=2 2018`))
	assert.Equal(t, 1, d.Count(`expect text role=button[name="OpenSea"] OpenSea`))
	assert.Contains(t, d.Tags(), "moe@sss.com")
}

func TestDropdownWrongDisplayedValue(t *testing.T) {
	d := altarttest.New()
	d.Texts[altart.Role("button", "OpenSea").String()] = "Rarible"
	page := altart.NewArtworksPage(d, nil)

	err := page.SelectMarketplace("OpenSea")

	var assertion *altart.AssertionError
	require.ErrorAs(t, err, &assertion)
	assert.Equal(t, "Rarible", assertion.Got)
}

func TestFillUsersAndURL(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.FillPrimarySaleBuyer("buyer@example.com"))
	require.NoError(t, page.FillOwnedBy("owner@example.com"))
	require.NoError(t, page.FillURL("https://staging.alt.art/artworks/create"))

	assert.Equal(t, 1, d.Count(`fill (//input[@placeholder="Username or Email address"])[1] buyer@example.com`))
	assert.Equal(t, 1, d.Count(`fill (//input[@placeholder="Username or Email address"])[2] owner@example.com`))
}

func TestRadioSelections(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.SelectArtistRoyalty("No"))
	require.NoError(t, page.SelectPhysicalPiece("Yes"))

	assert.Equal(t, []string{
		`click label="No" >> nth=0`,
		`expect checked label="No" >> nth=0`,
		`click label="Yes" >> nth=1`,
		`expect checked label="Yes" >> nth=1`,
	}, d.Calls)
}

func TestUploadArtwork(t *testing.T) {
	d := altarttest.New()
	page := altart.NewArtworksPage(d, nil)

	require.NoError(t, page.UploadArtwork("fixtures/pic.png"))
	assert.Equal(t, 1, d.Count("upload "+altart.SelectorArtworkUpload.String()+" fixtures/pic.png"))
}
