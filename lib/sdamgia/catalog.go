package sdamgia

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"sdamgia-go/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

var topicNumberRegexp = regexp.MustCompile(`\d+`)

// GetCatalog fetches the subject's topic/category hierarchy.
func (c *Client) GetCatalog(ctx context.Context, scope Scope) ([]Topic, error) {
	ctx, span := tracer.Start(ctx, "client:GetCatalog")
	defer span.End()

	doc, base, err := c.getDocument(ctx, scope, "/prob_catalog", nil, PageCatalog)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch catalog page")
		return nil, err
	}

	// topics are the category divs without a data-id; the ones carrying
	// it are the child categories nested below them
	var topicNodes []*goquery.Selection
	doc.Find(catalogPage.Category).Each(func(_ int, s *goquery.Selection) {
		if _, isCategory := s.Attr("data-id"); isCategory {
			return
		}
		topicNodes = append(topicNodes, s)
	})
	if len(topicNodes) == 0 {
		err := &ParseError{Kind: PageCatalog, Selector: catalogPage.Category, Url: base.String()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "no catalog topics found")
		return nil, err
	}

	// the first entry is the listing header, not a topic
	topicNodes = topicNodes[1:]

	var catalog []Topic
	for _, node := range topicNodes {
		heading := textutil.CleanText(node.Find(catalogPage.TopicName).First().Text())
		numberPart, name, found := strings.Cut(heading, ". ")
		if !found {
			continue
		}
		digits := topicNumberRegexp.FindString(numberPart)
		if digits == "" {
			continue
		}
		topicId, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}

		topic := Topic{
			Id:   topicId,
			Name: name,
			// supplemental topics are numbered with a "д" suffix
			Additional: strings.Contains(strings.ToLower(numberPart), "д"),
		}

		node.Find(catalogPage.Children).Each(func(_ int, child *goquery.Selection) {
			categoryId, err := strconv.ParseInt(child.AttrOr("data-id", ""), 10, 64)
			if err != nil {
				return
			}
			topic.Categories = append(topic.Categories, Category{
				Id:   categoryId,
				Name: textutil.CleanText(child.Find(catalogPage.CategoryName).First().Text()),
			})
		})

		catalog = append(catalog, topic)
	}

	return catalog, nil
}
