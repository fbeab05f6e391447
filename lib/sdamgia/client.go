package sdamgia

import (
	"bytes"
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"sdamgia-go/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("sdamgia/client")

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Recognizer transcribes a formula image into text/LaTeX. Implementations
// must be safe for concurrent use.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}

// Client scrapes the problem bank. It owns one underlying connection
// pool and is safe for concurrent use; every operation is independent
// and no ordering is guaranteed between concurrent calls.
type Client struct {
	http       *resty.Client
	noRedirect *resty.Client
	baseUrl    string
	recognizer Recognizer
}

type ClientOptions struct {
	// BaseUrl overrides the per-scope url template. Mainly useful for
	// tests and mirrors; leave empty to derive the host from the scope.
	BaseUrl string
	// Recognizer enables formula transcription in GetProblem when the
	// caller asks for it. Nil disables the enrichment step entirely.
	Recognizer Recognizer
	// Timeout defaults to 30 seconds.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", browserUserAgent)
	client.SetTimeout(timeout)
	telemetry.InstrumentResty(client, "sdamgia/http")

	// the test generation endpoints answer with a redirect whose
	// Location header carries the result, so those calls must not follow
	noRedirect := resty.New()
	noRedirect.SetCookieJar(jar)
	noRedirect.SetHeader("user-agent", browserUserAgent)
	noRedirect.SetTimeout(timeout)
	noRedirect.SetRedirectPolicy(resty.RedirectPolicyFunc(
		func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	))
	telemetry.InstrumentResty(noRedirect, "sdamgia/http")

	return &Client{
		http:       client,
		noRedirect: noRedirect,
		baseUrl:    opts.BaseUrl,
		recognizer: opts.Recognizer,
	}, nil
}

// Close releases the underlying connection pools. The client must not
// be used afterwards.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
	c.noRedirect.GetClient().CloseIdleConnections()
}

func (c *Client) base(scope Scope) (*url.URL, error) {
	raw := c.baseUrl
	if raw == "" {
		if err := scope.Validate(); err != nil {
			return nil, err
		}
		raw = scope.BaseUrl()
	}
	return url.Parse(raw)
}

func (c *Client) endpoint(scope Scope, path string, query url.Values) (*url.URL, error) {
	base, err := c.base(scope)
	if err != nil {
		return nil, err
	}
	target := *base
	target.Path = path
	target.RawQuery = query.Encode()
	return &target, nil
}

// getDocument fetches an endpoint and parses the body into a document.
// It returns the base url the page was fetched from so relative links
// can be resolved against it.
func (c *Client) getDocument(ctx context.Context, scope Scope, path string, query url.Values, kind PageKind) (*goquery.Document, *url.URL, error) {
	target, err := c.endpoint(scope, path, query)
	if err != nil {
		return nil, nil, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(target.String())
	if err != nil {
		return nil, nil, &FetchError{Url: target.String(), Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, nil, &FetchError{Url: target.String(), StatusCode: res.StatusCode()}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, nil, &ParseError{Kind: kind, Selector: "document", Url: target.String()}
	}

	base := *target
	base.Path = ""
	base.RawQuery = ""
	return doc, &base, nil
}

func (c *Client) getBytes(ctx context.Context, rawUrl string) ([]byte, string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(rawUrl)
	if err != nil {
		return nil, "", &FetchError{Url: rawUrl, Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, "", &FetchError{Url: rawUrl, StatusCode: res.StatusCode()}
	}
	return res.Body(), res.Header().Get("Content-Type"), nil
}
