package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

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

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CollapseText returns the node's combined text with whitespace
// collapsed into single spaces, the way a rendered page displays it.
func CollapseText(node *html.Node) string {
	text := removeNonPrintable(GetText(node))
	text = strings.Trim(text, " \t\n")
	return innerWhitespace.ReplaceAllString(text, " ")
}

// elements that start a new rendered line
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "div": true, "dl": true, "dt": true, "dd": true,
	"fieldset": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// GetLines approximates the rendered text lines below a node: block-level
// boundaries split lines, inline content stays joined.
func GetLines(node *html.Node) []string {
	var buffer bytes.Buffer
	getLinesRecursive(node, &buffer)

	raw := strings.Split(buffer.String(), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(innerWhitespace.ReplaceAllString(removeNonPrintable(l), " "))
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func getLinesRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(strings.ReplaceAll(node.Data, "\n", " "))
		return
	}

	block := node.Type == html.ElementNode && blockTags[node.Data]
	if block {
		buffer.WriteString("\n")
	}
	child := node.FirstChild
	for child != nil {
		getLinesRecursive(child, buffer)
		child = child.NextSibling
	}
	if block {
		buffer.WriteString("\n")
	}
}
