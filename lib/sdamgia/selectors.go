package sdamgia

// The upstream markup is not versioned, so every selector the scrapers
// depend on lives in this file. A site layout change should be absorbed
// by editing the table for the affected page kind, nothing else.

type problemSelectors struct {
	Root         string
	Nums         string
	Body         string
	Solution     string
	Answer       string
	AnalogLinks  string
	FormulaImage string
}

var problemPage = problemSelectors{
	Root:         "div.prob_maindiv",
	Nums:         "span.prob_nums",
	Body:         "div.pbody",
	Solution:     "div.solution",
	Answer:       "div.answer",
	AnalogLinks:  "div.minor a",
	FormulaImage: "img.tex",
}

type catalogSelectors struct {
	Category     string
	TopicName    string
	Children     string
	CategoryName string
}

var catalogPage = catalogSelectors{
	Category:     "div.cat_category",
	TopicName:    "b.cat_name",
	Children:     "div.cat_children div.cat_category",
	CategoryName: "a.cat_name",
}

type listingSelectors struct {
	ProblemNum  string
	ProblemLink string
}

var listingPage = listingSelectors{
	ProblemNum:  "span.prob_nums",
	ProblemLink: "a",
}
