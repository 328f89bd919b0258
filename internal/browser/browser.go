// Package browser attaches chromedp to a remote Browserbase session and
// exposes the small page-interaction surface the pipeline needs: navigation
// with a settle delay, selector counting, scroll triggering, cookie
// inspection, and JS evaluation. All interaction runs on the single
// cooperative chromedp context; no two page operations overlap.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// Page wraps a chromedp context attached to a live remote browser tab.
type Page struct {
	ctx context.Context
}

// Attach connects to a remote browser over its CDP websocket URL. The
// returned cancel func detaches chromedp without closing the remote browser;
// releasing the session is the session client's job.
func Attach(ctx context.Context, connectURL string) (*Page, context.CancelFunc, error) {
	// NoModifyURL keeps the signed query parameters Browserbase puts in
	// the connect URL intact.
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, connectURL, chromedp.NoModifyURL)

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Force allocation of the browser connection up front so a bad
	// connect URL fails here rather than mid-pipeline.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, nil, fmt.Errorf("failed to attach to remote browser: %w", err)
	}

	cancel := func() {
		browserCancel()
		allocCancel()
	}
	return &Page{ctx: browserCtx}, cancel, nil
}

// Navigate loads a URL and then waits the settle duration for the page to
// render its initial content.
func (p *Page) Navigate(url string, settle time.Duration) error {
	if err := chromedp.Run(p.ctx,
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
	); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// NodeCount returns the number of elements currently matching the selector.
func (p *Page) NodeCount(selector string) (int, error) {
	var count int
	js := fmt.Sprintf("document.querySelectorAll(%q).length", selector)
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, &count)); err != nil {
		return 0, fmt.Errorf("failed to count %q nodes: %w", selector, err)
	}
	return count, nil
}

// PageDown sends a PageDown key event to trigger incremental loading, then
// waits the given delay for new content to arrive.
func (p *Page) PageDown(delay time.Duration) error {
	if err := chromedp.Run(p.ctx,
		chromedp.KeyEvent(kb.PageDown),
		chromedp.Sleep(delay),
	); err != nil {
		return fmt.Errorf("failed to scroll: %w", err)
	}
	return nil
}

// Cookies returns all cookies visible to the browser.
func (p *Page) Cookies() ([]*network.Cookie, error) {
	var cookies []*network.Cookie
	err := chromedp.Run(p.ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			cookies, err = storage.GetCookies().Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookies: %w", err)
	}
	return cookies, nil
}

// Evaluate runs a JS expression in the page and unmarshals the result.
func (p *Page) Evaluate(js string, out any) error {
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(js, out)); err != nil {
		return fmt.Errorf("failed to evaluate script: %w", err)
	}
	return nil
}
