package htmlutil

import (
	"bytes"
	"net/url"

	"sdamgia-go/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Name string
	Href string
}

func GetAnchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}
		link, err := url.Parse(href)
		if err != nil {
			continue
		}

		name := textutil.CleanText(textutil.RemoveNonPrintable(GetText(n)))
		anchors = append(anchors, Anchor{
			Name: name,
			Href: link.String(),
		})
	}
	return anchors
}

// ResolveURL makes href absolute against base. Invalid or already
// absolute hrefs are returned unchanged.
func ResolveURL(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	link, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(link).String()
}

// MakeImagesAbsolute rewrites every img src inside sel to an absolute
// url, so that records carry links usable outside the page context.
func MakeImagesAbsolute(sel *goquery.Selection, base *url.URL) {
	sel.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		img.SetAttr("src", ResolveURL(base, src))
	})
}

// ImageSources returns the src attribute of every img in sel, in
// document order, skipping empty ones.
func ImageSources(sel *goquery.Selection) []string {
	var srcs []string
	sel.Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		srcs = append(srcs, src)
	})
	return srcs
}
