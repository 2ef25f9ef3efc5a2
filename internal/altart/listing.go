package altart

import (
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type ArtworkCard struct {
	ID   string
	Name string
}

// ParseArtworksPage returns the artworks linked from an artworks listing page.
func ParseArtworksPage(page io.Reader) ([]ArtworkCard, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, err
	}

	cards := []ArtworkCard{}
	seen := map[string]bool{}

	doc.Find(`a[href*="/artworks/"]`).Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")

		u, err := url.Parse(href)
		if err != nil {
			return
		}

		id := path.Base(u.Path)
		if id == "create" || id == "artworks" || seen[id] {
			return
		}

		name := strings.TrimSpace(s.Find("h1, h2, h3, h4, p").First().Text())
		if name == "" {
			name = strings.TrimSpace(s.Text())
		}
		if name == "" {
			return
		}

		seen[id] = true
		cards = append(cards, ArtworkCard{ID: id, Name: name})
	})

	return cards, nil
}

// PublishedArtworks opens the artworks listing and parses its cards.
func (p *ArtworksPage) PublishedArtworks() ([]ArtworkCard, error) {
	err := p.Driver.Goto("/artworks")
	if err != nil {
		return nil, err
	}

	content, err := p.Driver.Content()
	if err != nil {
		return nil, err
	}

	return ParseArtworksPage(bytes.NewBufferString(content))
}
