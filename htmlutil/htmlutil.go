package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

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
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getTextRecursive(child, buffer)
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims s and turns every run of whitespace into one space.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Text is the collapsed text of the first node of the selection.
func Text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return CollapseWhitespace(GetText(sel.Nodes[0]))
}

// NextSiblingText returns the text right after the first node of the
// selection, e.g. the value following a "<b>Label:</b>".
func NextSiblingText(sel *goquery.Selection) string {
	if sel.Length() == 0 || sel.Nodes[0].NextSibling == nil {
		return ""
	}
	return GetText(sel.Nodes[0].NextSibling)
}

// PreviousSiblingText returns the text right before the first node of the
// selection.
func PreviousSiblingText(sel *goquery.Selection) string {
	if sel.Length() == 0 || sel.Nodes[0].PrevSibling == nil {
		return ""
	}
	return GetText(sel.Nodes[0].PrevSibling)
}

// Unescape decodes entities left in text taken from raw markup.
func Unescape(s string) string {
	return html.UnescapeString(s)
}
