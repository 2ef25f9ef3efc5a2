package scenario

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

type Credentials struct {
	Email    string
	Password string
}

type Date struct {
	Day   string `yaml:"day"`
	Month string `yaml:"month"`
	Year  string `yaml:"year"`
}

// Artwork holds every value entered into the artwork creation form.
type Artwork struct {
	Name        string `yaml:"name"`
	Edition     string `yaml:"edition"`
	Description string `yaml:"description"`

	CurrentPrice         string `yaml:"current_price"`
	CurrentPriceCurrency string `yaml:"current_price_currency"`
	PrimarySalePrice     string `yaml:"primary_sale_price"`
	PrimarySaleCurrency  string `yaml:"primary_sale_currency"`
	PrimarySaleDate      Date   `yaml:"primary_sale_date"`
	PrimarySaleBuyer     string `yaml:"primary_sale_buyer"`

	File         string   `yaml:"file"`
	Styles       []string `yaml:"styles"`
	Genesis      string   `yaml:"genesis"`
	Supply       string   `yaml:"supply"`
	Collaborator string   `yaml:"collaborator"`
	OwnedBy      string   `yaml:"owned_by"`
	Marketplace  string   `yaml:"marketplace"`
	URL          string   `yaml:"url"`
	MintedDate   Date     `yaml:"minted_date"`
	AcquiredDate Date     `yaml:"acquired_date"`

	Copyright     string `yaml:"copyright"`
	ArtistRoyalty string `yaml:"artist_royalty"`
	PhysicalPiece string `yaml:"physical_piece"`
}

func DefaultArtwork() Artwork {
	return Artwork{
		Name:                 "MoeisTesting",
		Edition:              "1/1 Edition",
		Description:          "dfsdfsdfsdggdfhghgfddasfadasfsdgfdggdf",
		CurrentPrice:         "10",
		CurrentPriceCurrency: "MATIC ( Polygon )",
		PrimarySalePrice:     "15",
		PrimarySaleCurrency:  "ARB ( Arbitrum )",
		PrimarySaleDate:      Date{Day: "15", Month: "October", Year: "2024"},
		PrimarySaleBuyer:     "Moeistestingeverything@gmail.com",
		File:                 "fixtures/pic.png",
		Styles:               []string{"Abstract", "Cubism", "Minimalism"},
		Genesis:              "2018",
		Supply:               "25 - 49 /year",
		Collaborator:         "moe@sss.com",
		OwnedBy:              "test@test.com",
		Marketplace:          "OpenSea",
		URL:                  "https://staging.alt.art/artworks/create",
		MintedDate:           Date{Day: "20", Month: "November", Year: "2024"},
		AcquiredDate:         Date{Day: "25", Month: "December", Year: "2024"},
		Copyright:            "COPY RIGHT 1 Lorem ipsum",
		ArtistRoyalty:        "No",
		PhysicalPiece:        "Yes",
	}
}

// LoadArtwork reads an artwork from a yaml file. Fields missing from the file
// keep their DefaultArtwork values.
func LoadArtwork(fs afero.Fs, path string) (Artwork, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Artwork{}, err
	}

	artwork := DefaultArtwork()
	err = yaml.Unmarshal(data, &artwork)
	if err != nil {
		return Artwork{}, fmt.Errorf("failed to parse artwork %s: %w", path, err)
	}

	return artwork, nil
}
