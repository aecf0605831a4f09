package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

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

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText strips non-printable runes and surrounding whitespace from a
// scraped text fragment. Inner whitespace is left alone so displayed
// values survive byte-for-byte.
func CleanText(s string) string {
	return strings.Trim(removeNonPrintable(s), " \t\n")
}

// Text extracts and cleans the combined text of a selection's nodes.
func Text(sel *goquery.Selection) string {
	var buffer strings.Builder
	for _, node := range sel.Nodes {
		buffer.WriteString(GetText(node))
	}
	return CleanText(buffer.String())
}

// CellText returns the cleaned text of the i-th cell in a row's cell
// selection.
func CellText(cells *goquery.Selection, i int) string {
	return Text(cells.Eq(i))
}
