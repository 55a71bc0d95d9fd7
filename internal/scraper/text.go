package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// CleanText collapses whitespace, NBSP included. s is decoded text, not
// markup: a literal "<Junior>" in a title is kept as is.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Cards returns the elements matching selector that are not nested inside
// another match, so a layout wrapping one card class in another yields each
// card once.
func Cards(doc *goquery.Document, selector string) *goquery.Selection {
	return doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered(selector).Length() == 0
	})
}

func OrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// SpacedText joins the text nodes under sel with single spaces, so sibling
// elements such as <li>a</li><li>b</li> don't run together.
func SpacedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		switch {
		case n.Type == xhtml.TextNode:
			parts = append(parts, n.Data)
			return
		case n.Type == xhtml.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return CleanText(strings.Join(parts, " "))
}

// FirstText returns the cleaned text of the first selector that yields any,
// trying selectors in order. Boards ship more than one card layout.
func FirstText(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if t := SpacedText(sel.Find(s).First()); t != "" {
			return t
		}
	}
	return ""
}

// FirstAttr is FirstText for an attribute value.
func FirstAttr(sel *goquery.Selection, attr string, selectors ...string) string {
	for _, s := range selectors {
		if v, ok := sel.Find(s).First().Attr(attr); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// ResolveURL makes href absolute against base. Unparseable input is returned
// unchanged.
func ResolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}
