package scenario

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/danielholmes839/altart-e2e/internal/altart"
	"github.com/danielholmes839/altart-e2e/internal/altart/altarttest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCredentials = Credentials{Email: "user@example.com", Password: "hunter2"}

func newDriver() *altarttest.Driver {
	d := altarttest.New()
	d.Calendar = &altarttest.Calendar{Month: time.August, Year: 2024}
	return d
}

func TestLogin(t *testing.T) {
	d := newDriver()

	require.NoError(t, Login(d, testCredentials))

	assert.Equal(t, []string{
		"goto /login",
		"fill #email user@example.com",
		"fill #password hunter2",
		`click and wait for navigation //button[@type="submit"]`,
	}, d.Calls)
}

func TestReviewArtworks(t *testing.T) {
	d := newDriver()
	artwork := DefaultArtwork()

	err := ReviewArtworks(d, slog.Default(), testCredentials, artwork)
	require.NoError(t, err)

	assert.Equal(t, "goto /login", d.Calls[0])
	assert.Equal(t, "click "+altart.SelectorPublish.String(), d.Calls[len(d.Calls)-1])

	assert.Equal(t, "Oct 15, 2024", d.Texts[altart.DatePickerLabel(1).String()])
	assert.Equal(t, "Nov 20, 2024", d.Texts[altart.DatePickerLabel(2).String()])
	assert.Equal(t, "Dec 25, 2024", d.Texts[altart.DatePickerLabel(3).String()])

	assert.ElementsMatch(t, append(artwork.Styles, artwork.Collaborator), d.Tags())
	assert.Equal(t, 1, d.Count("upload "+altart.SelectorArtworkUpload.String()+" fixtures/pic.png"))
}

func TestReviewArtworksStopsAtFailure(t *testing.T) {
	d := newDriver()
	d.Errors[altart.SelectorSupplyInput.String()] = errors.New("timeout 30000ms exceeded")

	err := ReviewArtworks(d, slog.Default(), testCredentials, DefaultArtwork())
	require.EqualError(t, err, "select supply: timeout 30000ms exceeded")

	assert.Equal(t, 0, d.Count("fill "+altart.SelectorCollaborator.String()))
	assert.Equal(t, 0, d.Count("click "+altart.SelectorPublish.String()))
}

func TestVerifyPublished(t *testing.T) {
	d := newDriver()
	d.HTML = `<div><a href="/artworks/42"><h3>MoeisTesting</h3></a></div>`

	require.NoError(t, VerifyPublished(d, slog.Default(), "MoeisTesting"))
	require.ErrorContains(t, VerifyPublished(d, slog.Default(), "Sunrise"), `artwork "Sunrise" is not listed`)
}

func TestLoadArtwork(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `
name: Sunrise
styles: [Pop Art]
primary_sale_date:
  day: "1"
  month: March
  year: "2025"
`
	require.NoError(t, afero.WriteFile(fs, "artwork.yaml", []byte(data), 0o644))

	artwork, err := LoadArtwork(fs, "artwork.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Sunrise", artwork.Name)
	assert.Equal(t, []string{"Pop Art"}, artwork.Styles)
	assert.Equal(t, Date{Day: "1", Month: "March", Year: "2025"}, artwork.PrimarySaleDate)
	assert.Equal(t, "OpenSea", artwork.Marketplace)

	_, err = LoadArtwork(fs, "missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "broken.yaml", []byte("styles: {"), 0o644))
	_, err = LoadArtwork(fs, "broken.yaml")
	assert.ErrorContains(t, err, "failed to parse artwork broken.yaml")
}

func TestRunnerIsolatesFailures(t *testing.T) {
	opened, closed := 0, 0
	runner := &Runner{
		Sessions: func() (altart.Driver, func() error, error) {
			opened++
			return newDriver(), func() error { closed++; return nil }, nil
		},
	}

	scenarios := []Scenario{
		{Name: "broken", Run: func(d altart.Driver, logger *slog.Logger) error {
			return errors.New("boom")
		}},
		{Name: LoginScenario, Run: func(d altart.Driver, logger *slog.Logger) error {
			return Login(d, testCredentials)
		}},
	}

	report := runner.Run(scenarios)

	require.Len(t, report.Results, 2)
	assert.EqualError(t, report.Results[0].Err, "boom")
	assert.True(t, report.Results[1].Passed())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 2, opened)
	assert.Equal(t, 2, closed)
}

func TestRunnerSessionFailure(t *testing.T) {
	runner := &Runner{
		Sessions: func() (altart.Driver, func() error, error) {
			return nil, nil, errors.New("chromium not installed")
		},
	}

	report := runner.Run(Suite(SuiteOptions{Credentials: testCredentials, Artwork: DefaultArtwork()}))

	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Failed())
	assert.ErrorContains(t, report.Results[0].Err, "failed to open session: chromium not installed")
}

func TestSuite(t *testing.T) {
	suite := Suite(SuiteOptions{Credentials: testCredentials, Artwork: DefaultArtwork(), VerifyPublished: true})

	require.Len(t, suite, 2)
	assert.Equal(t, LoginScenario, suite[0].Name)
	assert.Equal(t, ReviewArtworksScenario, suite[1].Name)

	d := newDriver()
	d.HTML = `<a href="/artworks/1"><p>MoeisTesting</p></a>`
	require.NoError(t, suite[1].Run(d, slog.Default()))
	assert.Equal(t, "/artworks", d.Path)
}
