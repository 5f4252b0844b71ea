package gmaps

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AttributionText flattens the HTML fragments in html_attributions to plain
// text, dropping blanks. Fragments that fail to parse are kept verbatim.
func AttributionText(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(frag))
		if err != nil {
			if s := strings.TrimSpace(frag); s != "" {
				out = append(out, s)
			}
			continue
		}
		text := strings.Join(strings.Fields(doc.Text()), " ")
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

// AttributionLinks returns the href targets found in html_attributions.
func AttributionLinks(fragments []string) []string {
	var links []string
	for _, frag := range fragments {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(frag))
		if err != nil {
			continue
		}
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			if href, ok := sel.Attr("href"); ok && strings.TrimSpace(href) != "" {
				links = append(links, strings.TrimSpace(href))
			}
		})
	}
	return links
}
