package sdamgia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sdamgia-go/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Search returns the ids of every problem matching the query, walking
// the result pages until they run out.
func (c *Client) Search(ctx context.Context, scope Scope, search string) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()
	span.SetAttributes(attribute.String("search", search))

	query := url.Values{}
	query.Set("search", search)
	return c.paginateProblemIds(ctx, scope, "/search", query)
}

// GetTheme returns the ids of every problem grouped under a catalog
// theme.
func (c *Client) GetTheme(ctx context.Context, scope Scope, themeId int64) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "client:GetTheme")
	defer span.End()
	span.SetAttributes(attribute.Int64("theme_id", themeId))

	query := url.Values{}
	query.Set("theme", strconv.FormatInt(themeId, 10))
	return c.paginateProblemIds(ctx, scope, "/test", query)
}

// RandomProblem fetches one randomly chosen problem from a theme.
func (c *Client) RandomProblem(ctx context.Context, scope Scope, themeId int64) (Problem, error) {
	ctx, span := tracer.Start(ctx, "client:RandomProblem")
	defer span.End()
	span.SetAttributes(attribute.Int64("theme_id", themeId))

	ids, err := c.GetTheme(ctx, scope, themeId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list theme problems")
		return Problem{}, err
	}
	if len(ids) == 0 {
		err := fmt.Errorf("theme %d has no problems", themeId)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Problem{}, err
	}

	index, err := random.IntRange(0, len(ids))
	if err != nil {
		return Problem{}, err
	}
	return c.GetProblem(ctx, scope, ids[index], ProblemOptions{})
}

func (c *Client) paginateProblemIds(ctx context.Context, scope Scope, path string, query url.Values) ([]int64, error) {
	var result []int64
	seen := map[int64]bool{}

	for page := 1; ; page++ {
		query.Set("page", strconv.Itoa(page))
		doc, _, err := c.getDocument(ctx, scope, path, query, PageListing)
		if err != nil {
			return nil, err
		}

		ids := listingProblemIds(doc)
		if len(ids) == 0 {
			return result, nil
		}
		for _, id := range ids {
			// past the end the site keeps serving its last page, so a
			// repeated id means the listing is exhausted
			if seen[id] {
				return result, nil
			}
			seen[id] = true
			result = append(result, id)
		}
	}
}

func listingProblemIds(doc *goquery.Document) []int64 {
	var ids []int64
	doc.Find(listingPage.ProblemNum).Each(func(_ int, num *goquery.Selection) {
		link := num.Find(listingPage.ProblemLink).First()
		if link.Length() == 0 {
			return
		}

		id, err := strconv.ParseInt(textutil.CleanText(link.Text()), 10, 64)
		if err == nil {
			ids = append(ids, id)
			return
		}
		// some layouts render the anchor text as "№ <id>", fall back to
		// the href query then
		groups := problemIdRegexp.FindStringSubmatch(link.AttrOr("href", ""))
		if groups == nil {
			return
		}
		id, err = strconv.ParseInt(groups[1], 10, 64)
		if err == nil {
			ids = append(ids, id)
		}
	})
	return ids
}
