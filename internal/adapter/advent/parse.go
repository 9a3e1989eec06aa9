package advent

import (
	"strings"

	"golang.org/x/net/html"
)

const statementWidth = 100

// parseStatementPage walks the page DOM: each <article> holds one part of the
// statement, with the day title on the first "--- Day N: ... ---" heading.
// Confirmed answers follow paragraphs beginning "Your puzzle answer was".
func parseStatementPage(body string) (statement, title string, pt1, pt2 *string, err error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", "", nil, nil, err
	}

	var blocks []string
	for _, article := range findAll(doc, "article") {
		for child := article.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			blocks = append(blocks, nodeText(child))
		}
	}
	statement = wrapText(strings.TrimSpace(strings.Join(blocks, "\n\n")), statementWidth)

	if parts := strings.Split(statement, "---"); len(parts) >= 2 {
		title = strings.TrimSpace(parts[1])
	}

	answers := collectAnswers(doc)
	if len(answers) > 0 {
		pt1 = &answers[0]
	}
	if len(answers) > 1 {
		pt2 = &answers[1]
	}
	return statement, title, pt1, pt2, nil
}

// collectAnswers finds the <code> values following each "Your puzzle answer
// was" text node, in document order.
func collectAnswers(doc *html.Node) []string {
	var answers []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && strings.Contains(n.Data, "Your puzzle answer was") {
			for sibling := n.NextSibling; sibling != nil; sibling = sibling.NextSibling {
				if sibling.Type == html.ElementNode && sibling.Data == "code" {
					answers = append(answers, nodeText(sibling))
					break
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return answers
}

func findAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return found
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
