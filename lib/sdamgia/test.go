package sdamgia

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"sdamgia-go/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// GetTest fetches the ordered problem ids a test consists of.
func (c *Client) GetTest(ctx context.Context, scope Scope, id int64) (Test, error) {
	ctx, span := tracer.Start(ctx, "client:GetTest")
	defer span.End()
	span.SetAttributes(attribute.Int64("test_id", id))

	query := url.Values{}
	query.Set("id", strconv.FormatInt(id, 10))
	doc, base, err := c.getDocument(ctx, scope, "/test", query, PageListing)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch test page")
		return Test{}, err
	}

	ids := listingProblemIds(doc)
	if len(ids) == 0 {
		err := &ParseError{Kind: PageListing, Selector: listingPage.ProblemNum, Url: base.String()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "test page lists no problems")
		return Test{}, err
	}

	return Test{
		GiaType:    scope.GiaType,
		Subject:    scope.Subject,
		Id:         id,
		ProblemIds: ids,
	}, nil
}

// TestProblems describes how many problems a generated test should pull
// from each catalog topic.
type TestProblems struct {
	// Full puts the same number of problems into every topic. When both
	// fields are zero, one problem per topic is generated.
	Full int
	// Counts maps a 1-based topic position to a problem count.
	Counts map[int]int
}

// GenerateTest asks the site to assemble a fresh test and returns its id.
// The site answers with a redirect whose Location header carries the id.
func (c *Client) GenerateTest(ctx context.Context, scope Scope, problems TestProblems) (int64, error) {
	ctx, span := tracer.Start(ctx, "client:GenerateTest")
	defer span.End()

	query := url.Values{}
	query.Set("a", "generate")

	switch {
	case len(problems.Counts) > 0:
		for position, count := range problems.Counts {
			query.Set(fmt.Sprintf("prob%d", position), strconv.Itoa(count))
		}
	default:
		perTopic := problems.Full
		if perTopic == 0 {
			perTopic = 1
		}
		catalog, err := c.GetCatalog(ctx, scope)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch catalog for test generation")
			return 0, err
		}
		for i := range catalog {
			query.Set(fmt.Sprintf("prob%d", i+1), strconv.Itoa(perTopic))
		}
	}

	location, err := c.redirectLocation(ctx, scope, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to generate test")
		return 0, err
	}

	groups := problemIdRegexp.FindStringSubmatch(location)
	if groups == nil {
		err := &ParseError{Kind: PageListing, Selector: "Location header", Url: location}
		span.RecordError(err)
		span.SetStatus(codes.Error, "redirect location carries no test id")
		return 0, err
	}
	return strconv.ParseInt(groups[1], 10, 64)
}

type PdfVariant string

const (
	PdfDefault      PdfVariant = "true"
	PdfLargeMargins PdfVariant = "h"
	PdfLargeFont    PdfVariant = "z"
	PdfHorizontal   PdfVariant = "m"
)

type PdfOptions struct {
	Variant      PdfVariant
	Solutions    bool
	ProblemIds   bool
	Answers      bool
	AnswersTable bool
	Criteria     bool
	Instruction  bool
	Footer       string
	Title        string
}

// GeneratePdfLink resolves the url of the site-rendered PDF version of
// a test.
func (c *Client) GeneratePdfLink(ctx context.Context, scope Scope, testId int64, opts PdfOptions) (string, error) {
	ctx, span := tracer.Start(ctx, "client:GeneratePdfLink")
	defer span.End()
	span.SetAttributes(attribute.Int64("test_id", testId))

	variant := opts.Variant
	if variant == "" {
		variant = PdfDefault
	}

	asFlag := func(v bool) string {
		if v {
			return "true"
		}
		return ""
	}

	query := url.Values{}
	query.Set("id", strconv.FormatInt(testId, 10))
	query.Set("print", "true")
	query.Set("pdf", string(variant))
	for key, value := range map[string]string{
		"sol":  asFlag(opts.Solutions),
		"num":  asFlag(opts.ProblemIds),
		"ans":  asFlag(opts.Answers),
		"key":  asFlag(opts.AnswersTable),
		"crit": asFlag(opts.Criteria),
		"pre":  asFlag(opts.Instruction),
		"dcol": opts.Footer,
		"tt":   opts.Title,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	location, err := c.redirectLocation(ctx, scope, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve pdf link")
		return "", err
	}

	base, err := c.base(scope)
	if err != nil {
		return "", err
	}
	return htmlutil.ResolveURL(base, location), nil
}

// redirectLocation requests /test without following redirects and
// returns the Location header of the response.
func (c *Client) redirectLocation(ctx context.Context, scope Scope, query url.Values) (string, error) {
	target, err := c.endpoint(scope, "/test", query)
	if err != nil {
		return "", err
	}

	res, err := c.noRedirect.R().
		SetContext(ctx).
		Get(target.String())
	if err != nil {
		return "", &FetchError{Url: target.String(), Err: err}
	}
	if res.StatusCode() < 300 || res.StatusCode() >= 400 {
		return "", &FetchError{Url: target.String(), StatusCode: res.StatusCode()}
	}

	location := res.Header().Get("Location")
	if location == "" {
		return "", &FetchError{
			Url:        target.String(),
			StatusCode: res.StatusCode(),
			Err:        errors.New("redirect without a location header"),
		}
	}
	return location, nil
}
