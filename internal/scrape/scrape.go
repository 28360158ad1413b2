// Package scrape extracts structure from HTML pages: the title, headings,
// links, and quote blocks.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"

	"tinkerbox/internal/logging"
)

const fetchTimeout = 15 * time.Second

// Heading is one h1-h6 element.
type Heading struct {
	Level int
	Text  string
}

// Link is an anchor with its resolved destination.
type Link struct {
	Text string
	Href string
}

// Quote is text pulled from a blockquote or an element with class "quote".
// Author and Tags come from "author" and "tag" classed children when
// present.
type Quote struct {
	Text   string
	Author string
	Tags   []string
}

// Page is everything extracted from one document.
type Page struct {
	Source   string
	Title    string
	Headings []Heading
	Links    []Link
	Quotes   []Quote
}

// Fetch downloads and parses a URL. Relative links are resolved against
// the page URL.
func Fetch(ctx context.Context, rawURL string) (*Page, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("bad url %q: %w", rawURL, err)
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "tinkerbox-scraper/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %s", rawURL, resp.Status)
	}
	logging.Scrape("Fetched %s (%s)", rawURL, resp.Status)
	return Parse(resp.Body, rawURL, base)
}

// File parses a local HTML file. Links stay as written.
func File(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, path, nil)
}

// Parse extracts a Page from r. When base is non-nil, link hrefs are
// resolved against it.
func Parse(r io.Reader, source string, base *url.URL) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	page := &Page{Source: source}
	walk(doc, page, base)
	return page, nil
}

func walk(n *html.Node, page *Page, base *url.URL) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if page.Title == "" {
				page.Title = text(n)
			}
		case "h1", "h2", "h3", "h4", "h5", "h6":
			page.Headings = append(page.Headings, Heading{
				Level: int(n.Data[1] - '0'),
				Text:  text(n),
			})
		case "a":
			if href := attr(n, "href"); href != "" {
				page.Links = append(page.Links, Link{Text: text(n), Href: resolve(base, href)})
			}
		case "blockquote":
			page.Quotes = append(page.Quotes, Quote{Text: text(n)})
			return
		case "div":
			if hasClass(n, "quote") {
				page.Quotes = append(page.Quotes, parseQuote(n))
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, page, base)
	}
}

// parseQuote pulls text, author, and tags out of a class="quote" block.
func parseQuote(n *html.Node) Quote {
	var q Quote
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch {
			case hasClass(node, "text"):
				q.Text = text(node)
				return
			case hasClass(node, "author"):
				q.Author = text(node)
				return
			case hasClass(node, "tag"):
				q.Tags = append(q.Tags, text(node))
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	if q.Text == "" {
		q.Text = text(n)
	}
	return q
}

func text(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func resolve(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// SamplePage is the bundled document used when no source is given or the
// network is unavailable, mirroring a small quotes site.
const SamplePage = `<html>
<head><title>Sample Quotes</title></head>
<body>
  <h1>Famous Quotes</h1>
  <p>A small collection of sayings.</p>
  <div class="quotes">
    <div class="quote">
      <p class="text">The only way to do great work is to love what you do.</p>
      <span class="author">Steve Jobs</span>
      <div class="tags">
        <span class="tag">work</span>
        <span class="tag">passion</span>
        <span class="tag">success</span>
      </div>
    </div>
    <div class="quote">
      <p class="text">Innovation distinguishes between a leader and a follower.</p>
      <span class="author">Steve Jobs</span>
      <div class="tags">
        <span class="tag">innovation</span>
        <span class="tag">leadership</span>
      </div>
    </div>
    <div class="quote">
      <p class="text">Life is what happens to you while you're busy making other plans.</p>
      <span class="author">John Lennon</span>
      <div class="tags">
        <span class="tag">life</span>
        <span class="tag">philosophy</span>
      </div>
    </div>
  </div>
  <h2>More Reading</h2>
  <a href="/about">About this site</a>
</body>
</html>`

// Sample parses the bundled page.
func Sample() (*Page, error) {
	return Parse(strings.NewReader(SamplePage), "sample", nil)
}
