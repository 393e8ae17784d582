package extract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/snapdiff/snapdiff/compare/model"
	"github.com/snapdiff/snapdiff/compare/selectors"
)

// skipTags are element types that never carry meaningful visual state and
// would only add noise to a comparison.
var skipTags = map[string]bool{
	"html": true, "head": true, "meta": true, "link": true,
	"script": true, "style": true, "title": true, "base": true, "noscript": true,
}

// FromHTML parses htmlSource and returns a Report whose elements are every
// non-skipped element in document order, each carrying its inline styles,
// attributes, text content and a generated CSS/XPath selector pair
// verified against this same document.
func FromHTML(htmlSource, id, url, title string, selectorTimeout time.Duration) (model.Report, error) {
	root, err := html.Parse(strings.NewReader(htmlSource))
	if err != nil {
		return model.Report{}, fmt.Errorf("extract: parsing html: %w", err)
	}

	if selectorTimeout <= 0 {
		selectorTimeout = 50 * time.Millisecond
	}

	var elements []model.ElementDescriptor
	var walk func(n *html.Node)
	counter := 0
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && !skipTags[n.Data] {
			counter++
			elements = append(elements, buildDescriptor(n, root, counter, selectorTimeout))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return model.Report{
		ID:        id,
		URL:       url,
		Title:     title,
		Timestamp: time.Now(),
		Elements:  elements,
	}, nil
}

func buildDescriptor(n *html.Node, root *html.Node, index int, selectorTimeout time.Duration) model.ElementDescriptor {
	attrs := make(map[string]string, len(n.Attr))
	var elementID, className, styleAttr string
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
		switch a.Key {
		case "id":
			elementID = a.Val
		case "class":
			className = a.Val
		case "style":
			styleAttr = a.Val
		}
	}

	css := selectors.GenerateCSS(n, root, selectorTimeout)
	xpath := selectors.GenerateXPath(n, root, selectorTimeout)

	return model.ElementDescriptor{
		ID:          "el-" + strconv.Itoa(index),
		TagName:     n.Data,
		ElementID:   elementID,
		ClassName:   className,
		Attributes:  attrs,
		TextContent: directText(n),
		Styles:      parseStyleAttr(styleAttr),
		Position:    nil,
		Selectors: model.SelectorInfo{
			CSS: css.Value, CSSConfidence: css.Confidence,
			XPath: xpath.Value, XPathConfidence: xpath.Confidence,
		},
	}
}

// directText concatenates n's own text nodes, not its descendants', so a
// wrapper element around styled children doesn't inherit their text and
// report it twice under both the child's and the parent's descriptor.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Document parses htmlSource into a *goquery.Document, exposed for callers
// (the CLI, tests) that want goquery's query API on the same tree
// FromHTML walked.
func Document(htmlSource string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(htmlSource))
}
