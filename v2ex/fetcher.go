package v2ex

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gocolly/colly"

	"github.com/zvonler/vex/model"
	"github.com/zvonler/vex/utils"
)

var (
	ErrTransport = errors.New("listing page fetch failed")
	ErrDecode    = errors.New("listing page is not valid UTF-8")
)

/*---------------------------------------------------------------------------*/

// Fetcher retrieves single pages of the site's paginated topic listing.
type Fetcher struct {
	BaseURL   string
	Proxy     string
	UserAgent string
	Timeout   time.Duration
}

func NewFetcher() *Fetcher {
	f := new(Fetcher)
	f.BaseURL = model.BaseURL
	f.UserAgent = "Mozilla"
	f.Timeout = 30 * time.Second
	return f
}

// FetchPage GETs one listing page and returns its body as UTF-8 text.
// Page numbers are 1-based. No retries and no caching; every call is one
// GET against the live site.
func (f *Fetcher) FetchPage(pageNum int) (string, error) {
	collector, err := f.newCollector()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var body []byte
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	pageURL := utils.AbsoluteURL(f.BaseURL, fmt.Sprintf("/?p=%d", pageNum))
	if err := collector.Visit(pageURL); err != nil {
		return "", fmt.Errorf("%w: %v for %s", ErrTransport, err, pageURL)
	}

	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: %s", ErrDecode, pageURL)
	}
	return string(body), nil
}

// FetchAndExtract runs one complete fetch and extract cycle for pageNum.
func (f *Fetcher) FetchAndExtract(pageNum int) ([]model.Topic, error) {
	page, err := f.FetchPage(pageNum)
	if err != nil {
		return nil, err
	}
	return ExtractTopics(page)
}

func (f *Fetcher) newCollector() (*colly.Collector, error) {
	collector := colly.NewCollector(
		colly.IgnoreRobotsTxt(),
		colly.UserAgent(f.UserAgent),
		colly.AllowURLRevisit(),
	)

	collector.WithTransport(&http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   15 * time.Second,
			KeepAlive: 15 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	})

	if f.Timeout > 0 {
		collector.SetRequestTimeout(f.Timeout)
	}
	if f.Proxy != "" {
		if err := collector.SetProxy(f.Proxy); err != nil {
			return nil, err
		}
	}

	collector.OnRequest(func(r *colly.Request) {
		log.Printf("Fetching %s", r.URL)
	})

	return collector, nil
}
