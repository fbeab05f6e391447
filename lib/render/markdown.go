// Package render turns problem records into shareable documents.
// Markdown is the canonical intermediate format; the PDF renderer
// consumes it.
package render

import (
	"fmt"
	"strings"

	"sdamgia-go/lib/sdamgia"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown renders a problem into a markdown document with the
// condition, solution and answer as sections.
func Markdown(problem sdamgia.Problem) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Problem %d\n\n", problem.Id)
	fmt.Fprintf(&b, "%s\n\n", problem.Url)

	err := writePart(&b, "Condition", problem.Condition)
	if err != nil {
		return "", err
	}
	err = writePart(&b, "Solution", problem.Solution)
	if err != nil {
		return "", err
	}

	if problem.Answer != nil {
		fmt.Fprintf(&b, "## Answer\n\n%s\n", *problem.Answer)
	}
	return b.String(), nil
}

func writePart(b *strings.Builder, title string, part *sdamgia.ProblemPart) error {
	if part == nil {
		return nil
	}

	body := part.Text
	if part.Html != "" {
		markdown, err := htmltomarkdown.ConvertString(part.Html)
		if err != nil {
			return fmt.Errorf("converting %s to markdown: %w", strings.ToLower(title), err)
		}
		body = markdown
	}

	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, strings.TrimSpace(body))
	return nil
}
