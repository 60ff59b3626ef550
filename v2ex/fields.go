package v2ex

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/zvonler/vex/model"
)

var (
	ErrStructure       = errors.New("topic info fragment has unexpected structure")
	ErrTimestampFormat = errors.New("posted-at timestamp is unrecognizable")
)

// Posted-at timestamps arrive in the title attribute like
// "2023-07-19 19:15:44 +0800", sometimes with a colon inside the offset.
const (
	postedAtLayout      = "2006-01-02 15:04:05 -0700"
	postedAtColonLayout = "2006-01-02 15:04:05 -07:00"
)

/*---------------------------------------------------------------------------*/

// The field extractors below work on the topic info fragment of a listing
// cell. Each one locates its element by structural role and fails with
// ErrStructure when the role is unfilled, so a candidate either produces
// every field or none.

func extractNode(frag *html.Node) (model.Node, error) {
	a := findElement(frag, "a")
	if a == nil {
		return model.Node{}, fmt.Errorf("%w: no node link", ErrStructure)
	}
	href, ok := attrValue(a, "href")
	if !ok {
		return model.Node{}, fmt.Errorf("%w: node link has no href", ErrStructure)
	}
	return model.Node{Name: innerText(a), Path: href}, nil
}

func extractAuthor(frag *html.Node) (model.User, error) {
	strongEl := findElement(frag, "strong")
	if strongEl == nil {
		return model.User{}, fmt.Errorf("%w: no author element", ErrStructure)
	}
	return userFromStrong(strongEl)
}

// extractLastReplyUser reads the last user element of the fragment. A
// thread nobody replied to has a single user element, so the author comes
// back again.
func extractLastReplyUser(frag *html.Node) (model.User, error) {
	strongEl := findLastElement(frag, "strong")
	if strongEl == nil {
		return model.User{}, fmt.Errorf("%w: no last reply element", ErrStructure)
	}
	return userFromStrong(strongEl)
}

func extractPostedAt(frag *html.Node) (time.Time, error) {
	span := findElementWithAttr(frag, "span", "title")
	if span == nil {
		return time.Time{}, fmt.Errorf("%w: no timestamp element", ErrStructure)
	}
	title, _ := attrValue(span, "title")
	return parsePostedAt(title)
}

func userFromStrong(strongEl *html.Node) (model.User, error) {
	a := findElement(strongEl, "a")
	if a == nil {
		return model.User{}, fmt.Errorf("%w: user element has no link", ErrStructure)
	}
	href, ok := attrValue(a, "href")
	if !ok {
		return model.User{}, fmt.Errorf("%w: user link has no href", ErrStructure)
	}
	return model.User{Name: innerText(a), Path: href}, nil
}

func parsePostedAt(value string) (time.Time, error) {
	if ts, err := time.Parse(postedAtLayout, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(postedAtColonLayout, value); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("%w: '%v'", ErrTimestampFormat, value)
}

/*---------------------------------------------------------------------------*/

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findLastElement(n *html.Node, tag string) *html.Node {
	var last *html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		last = n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findLastElement(c, tag); found != nil {
			last = found
		}
	}
	return last
}

func findElementWithAttr(n *html.Node, tag, attr string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		if _, ok := attrValue(n, attr); ok {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementWithAttr(c, tag, attr); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func innerText(n *html.Node) string {
	var buf strings.Builder
	var collectText func(*html.Node)
	collectText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectText(c)
		}
	}
	collectText(n)
	return strings.TrimSpace(buf.String())
}
