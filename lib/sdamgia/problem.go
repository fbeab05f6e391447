package sdamgia

import (
	"context"
	"html"
	"log/slog"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"sdamgia-go/lib/htmlutil"
	"sdamgia-go/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var problemIdRegexp = regexp.MustCompile(`id=(\d+)`)

const answerPrefix = "Ответ:"

type ProblemOptions struct {
	// RecognizeText substitutes formula images with LaTeX transcriptions
	// in the extracted part text. Requires a Recognizer on the client;
	// individual recognition failures are logged and never fail the fetch.
	RecognizeText bool
}

func (c *Client) GetProblem(ctx context.Context, scope Scope, id int64, opts ProblemOptions) (Problem, error) {
	ctx, span := tracer.Start(ctx, "client:GetProblem")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("problem_id", id),
		attribute.String("gia_type", string(scope.GiaType)),
		attribute.String("subject", string(scope.Subject)),
	)

	query := url.Values{}
	query.Set("id", strconv.FormatInt(id, 10))
	doc, base, err := c.getDocument(ctx, scope, "/problem", query, PageProblem)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch problem page")
		return Problem{}, err
	}

	pageUrl := *base
	pageUrl.Path = "/problem"
	pageUrl.RawQuery = query.Encode()

	root := doc.Find(problemPage.Root).First()
	if root.Length() == 0 {
		err := &ParseError{Kind: PageProblem, Selector: problemPage.Root, Url: pageUrl.String()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "problem root not found")
		return Problem{}, err
	}

	htmlutil.MakeImagesAbsolute(root, base)

	problem := Problem{
		GiaType: scope.GiaType,
		Subject: scope.Subject,
		Id:      id,
		Url:     pageUrl.String(),
	}

	// the number span reads "Задание <topic> № <id>"
	if fields := strings.Fields(root.Find(problemPage.Nums).First().Text()); len(fields) >= 2 {
		if topicId, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			problem.TopicId = &topicId
		}
	}

	recognize := opts.RecognizeText && c.recognizer != nil
	if opts.RecognizeText && c.recognizer == nil {
		slog.WarnContext(ctx, "text recognition requested but no recognizer is configured")
	}

	if conditionNode := root.Find(problemPage.Body).First(); conditionNode.Length() > 0 {
		problem.Condition = c.problemPart(ctx, conditionNode, recognize)
	}

	solutionNode := root.Find(problemPage.Solution).First()
	if solutionNode.Length() == 0 {
		solutionNode = root.Find(problemPage.Body).Eq(1)
	}
	if solutionNode.Length() > 0 {
		problem.Solution = c.problemPart(ctx, solutionNode, recognize)
	}

	if answerNode := root.Find(problemPage.Answer).First(); answerNode.Length() > 0 {
		answer := textutil.CleanText(strings.TrimPrefix(
			textutil.CleanText(answerNode.Text()),
			answerPrefix,
		))
		problem.Answer = &answer
	}

	for _, a := range htmlutil.GetAnchors(root.Find(problemPage.AnalogLinks)) {
		groups := problemIdRegexp.FindStringSubmatch(a.Href)
		if groups == nil {
			continue
		}
		analogId, err := strconv.ParseInt(groups[1], 10, 64)
		if err != nil {
			continue
		}
		problem.AnalogIds = append(problem.AnalogIds, analogId)
	}

	return problem, nil
}

func (c *Client) problemPart(ctx context.Context, node *goquery.Selection, recognize bool) *ProblemPart {
	formulaUrls := htmlutil.ImageSources(node.Find(problemPage.FormulaImage))

	// the raw markup is captured before transcriptions are substituted
	rawHtml, err := goquery.OuterHtml(node)
	if err != nil {
		slog.WarnContext(ctx, "failed to serialize part html", "err", err)
	}

	imageUrls := slices.Clone(formulaUrls)
	for _, src := range htmlutil.ImageSources(node.Find("img")) {
		if !slices.Contains(imageUrls, src) {
			imageUrls = append(imageUrls, src)
		}
	}

	if recognize {
		c.recognizeFormulas(ctx, node, formulaUrls)
	}

	return &ProblemPart{
		Text:      textutil.CleanText(node.Text()),
		Html:      rawHtml,
		ImageUrls: imageUrls,
	}
}

// recognizeFormulas replaces formula images inside node with their
// transcriptions. Best effort: a failed image keeps its img tag and the
// remaining images are unaffected.
func (c *Client) recognizeFormulas(ctx context.Context, node *goquery.Selection, formulaUrls []string) {
	if len(formulaUrls) == 0 {
		return
	}

	transcriptions := make(map[string]string, len(formulaUrls))
	lock := sync.Mutex{}
	wg := sync.WaitGroup{}

	for _, formulaUrl := range formulaUrls {
		wg.Add(1)
		go func(formulaUrl string) {
			defer wg.Done()

			image, mimeType, err := c.getBytes(ctx, formulaUrl)
			if err != nil {
				slog.WarnContext(ctx, "failed to fetch formula image", "url", formulaUrl, "err", err)
				return
			}
			if mimeType == "" {
				mimeType = "image/svg+xml"
			}

			tex, err := c.recognizer.Recognize(ctx, image, mimeType)
			if err != nil {
				slog.WarnContext(ctx, "failed to recognize formula image", "url", formulaUrl, "err", err)
				return
			}

			lock.Lock()
			defer lock.Unlock()
			transcriptions[formulaUrl] = tex
		}(formulaUrl)
	}
	wg.Wait()

	node.Find(problemPage.FormulaImage).Each(func(_ int, img *goquery.Selection) {
		tex := transcriptions[img.AttrOr("src", "")]
		if tex == "" {
			return
		}
		img.ReplaceWithHtml(html.EscapeString(tex))
	})
}
