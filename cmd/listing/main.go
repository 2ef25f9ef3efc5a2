package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/danielholmes839/altart-e2e/internal/altart"
	"github.com/spf13/afero"
)

// prints the artworks found in a saved listing page, defaults to ./data/artworks.html
func listing() error {
	path := "./data/artworks.html"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fs := afero.NewOsFs()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	cards, err := altart.ParseArtworksPage(bytes.NewBuffer(data))
	if err != nil {
		return err
	}

	for _, card := range cards {
		fmt.Printf("%s: %q\n", card.ID, card.Name)
	}

	return nil
}

func main() {
	err := listing()
	if err != nil {
		panic(err)
	}
}
