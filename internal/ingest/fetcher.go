package ingest

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"sponsor-scout/internal/config"
)

// FetchedPage is the raw capture of one posting URL.
type FetchedPage struct {
	URL      string
	Title    string
	BodyText string
	HTML     string
}

// Fetcher pulls a single posting page over HTTP. Collectors are scoped
// to the host of the requested URL so redirects cannot wander off-site.
type Fetcher struct {
	timeout  time.Duration
	headless *HeadlessFetcher
}

func NewFetcher(cfg config.IngestConfig) *Fetcher {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	f := &Fetcher{timeout: timeout}
	if cfg.Headless {
		f.headless = NewHeadlessFetcher(timeout)
	}
	return f
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (FetchedPage, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return FetchedPage{}, fmt.Errorf("empty url")
	}

	page, err := f.fetchStatic(ctx, rawURL)
	if err == nil && strings.TrimSpace(page.BodyText) != "" {
		return page, nil
	}

	// JS-rendered boards return an empty shell to plain HTTP clients.
	if f.headless != nil {
		hp, herr := f.headless.Fetch(ctx, rawURL)
		if herr == nil {
			return hp, nil
		}
		if err == nil {
			err = herr
		}
	}
	if err != nil {
		return FetchedPage{}, err
	}
	return page, nil
}

func (f *Fetcher) fetchStatic(ctx context.Context, rawURL string) (FetchedPage, error) {
	allowed := hostFromURL(rawURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	c.SetRequestTimeout(f.timeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	out := FetchedPage{URL: rawURL}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Title) == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		out.BodyText = strings.TrimSpace(e.Text)
		html, err := e.DOM.Html()
		if err == nil {
			out.HTML = html
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return FetchedPage{}, ctx.Err()
	}
	if err := c.Visit(rawURL); err != nil {
		return FetchedPage{}, err
	}
	c.Wait()
	if reqErr != nil {
		return FetchedPage{}, reqErr
	}
	return out, nil
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "SponsorScoutBot/0.1",
		"Accept-Language": "en-GB,en;q=0.9",
	}
}

func hostFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
