package search

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstBrandResult scans result heading anchors in document order and
// returns the href of the first whose visible text contains brand
// (case-sensitive substring). Relative hrefs are resolved against
// pageURL. Returns "" when nothing matches or the markup is unparseable.
func FirstBrandResult(html, resultSelector, brand, pageURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	base, baseErr := url.Parse(pageURL)

	var target string
	doc.Find(resultSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.Contains(text, brand) {
			return true
		}
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}

		if baseErr == nil && base != nil {
			if resolved, err := base.Parse(href); err == nil {
				target = resolved.String()
				return false
			}
		}
		target = href
		return false
	})

	return target
}
