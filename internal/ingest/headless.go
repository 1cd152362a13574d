package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// HeadlessFetcher renders a posting page in headless Chrome and pulls
// the document title and body text after scripts have run.
type HeadlessFetcher struct {
	timeout time.Duration
}

func NewHeadlessFetcher(timeout time.Duration) *HeadlessFetcher {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &HeadlessFetcher{timeout: timeout}
}

func (h *HeadlessFetcher) Fetch(ctx context.Context, rawURL string) (FetchedPage, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return FetchedPage{}, fmt.Errorf("empty url")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, h.timeout)
	defer reqCancel()

	var title, body, html string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.Title(&title),
		chromedp.EvaluateAsDevTools(`document.body ? document.body.innerText : ""`, &body),
		chromedp.EvaluateAsDevTools(`document.body ? document.body.innerHTML : ""`, &html),
	)
	if err != nil {
		return FetchedPage{}, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return FetchedPage{}, fmt.Errorf("empty body (headless)")
	}

	return FetchedPage{
		URL:      rawURL,
		Title:    strings.TrimSpace(title),
		BodyText: body,
		HTML:     html,
	}, nil
}
