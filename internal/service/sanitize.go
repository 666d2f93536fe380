package service

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags is the markup permitted in policy documents.
var allowedTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Hr: true, atom.Div: true, atom.Span: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Strong: true, atom.B: true, atom.Em: true, atom.I: true, atom.U: true, atom.S: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Blockquote: true, atom.Pre: true, atom.Code: true,
	atom.A: true, atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tr: true, atom.Th: true, atom.Td: true,
}

// droppedTags are removed together with everything inside them.
var droppedTags = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Iframe: true, atom.Object: true,
	atom.Embed: true, atom.Template: true, atom.Noscript: true, atom.Svg: true, atom.Math: true,
}

var allowedSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// SanitizeHTML reduces rich text to a safe subset of markup. Unknown elements are unwrapped,
// dangerous ones dropped with their content, and only href/title survive on links.
func SanitizeHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return html.EscapeString(raw)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		writeSanitized(&buf, n)
	}
	return buf.String()
}

func writeSanitized(buf *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	if droppedTags[n.DataAtom] {
		return
	}
	if !allowedTags[n.DataAtom] {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeSanitized(buf, c)
		}
		return
	}

	clean := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom, Attr: cleanAttrs(n)}
	buf.WriteString(openTag(clean))
	if isVoid(n.DataAtom) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeSanitized(buf, c)
	}
	buf.WriteString("</" + n.Data + ">")
}

func cleanAttrs(n *html.Node) []html.Attribute {
	if n.DataAtom != atom.A {
		return nil
	}
	var attrs []html.Attribute
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "href":
			if safeURL(a.Val) {
				attrs = append(attrs, html.Attribute{Key: "href", Val: a.Val})
			}
		case "title":
			attrs = append(attrs, html.Attribute{Key: "title", Val: a.Val})
		}
	}
	if len(attrs) > 0 {
		attrs = append(attrs, html.Attribute{Key: "rel", Val: "noopener noreferrer"})
	}
	return attrs
}

func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return !strings.HasPrefix(strings.TrimSpace(raw), "//")
	}
	return allowedSchemes[strings.ToLower(u.Scheme)]
}

func openTag(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		b.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
	}
	b.WriteString(">")
	return b.String()
}

func isVoid(a atom.Atom) bool {
	return a == atom.Br || a == atom.Hr
}
