package enrich

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper fetches agronomy pages from an allow-listed set of domains and
// extracts their main text.
type Scraper struct {
	allow    map[string]bool
	maxBytes int
	client   *http.Client
}

func NewScraper(allowedDomains []string, maxBytes int) *Scraper {
	allow := map[string]bool{}
	for _, h := range allowedDomains {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &Scraper{
		allow:    allow,
		maxBytes: maxBytes,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

// Allowed reports whether the URL's host is on the allow list.
func (s *Scraper) Allowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return s.allow[strings.ToLower(u.Host)]
}

// FetchMainText downloads the page and extracts headings, paragraphs and list
// items from its main content. Returns the text and the page title.
func (s *Scraper) FetchMainText(rawURL string) (string, string, error) {
	if !s.Allowed(rawURL) {
		return "", "", fmt.Errorf("domain not allowed: %s", rawURL)
	}
	resp, err := s.client.Get(rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(s.maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(s.maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		text := string(b)
		return text, firstLine(text), nil
	}
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, el *goquery.Selection) {
		t := strings.TrimSpace(el.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return cleanWhitespace(strings.Join(parts, "\n")), title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func firstLine(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
