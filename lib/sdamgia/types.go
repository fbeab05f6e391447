package sdamgia

// ProblemPart is one block of a problem page, either the condition or
// the solution explanation.
type ProblemPart struct {
	// Text is the normalized plain text of the block. When text
	// recognition is enabled, formula images are substituted with their
	// LaTeX transcriptions before extraction.
	Text string `json:"text"`
	// Html is the raw markup of the block with image urls already
	// resolved to absolute ones.
	Html string `json:"html"`
	// ImageUrls lists every embedded image, formula images first.
	ImageUrls []string `json:"image_urls"`
}

// Problem is a single exam question record. Records are assembled fresh
// on every fetch and never mutated afterwards.
type Problem struct {
	GiaType GiaType `json:"gia_type"`
	Subject Subject `json:"subject"`
	Id      int64   `json:"id"`

	Condition *ProblemPart `json:"condition,omitempty"`
	Solution  *ProblemPart `json:"solution,omitempty"`
	// Answer is nil for free-response problems that carry no answer
	// block, which is distinct from an empty answer string.
	Answer    *string `json:"answer,omitempty"`
	TopicId   *int64  `json:"topic_id,omitempty"`
	AnalogIds []int64 `json:"analog_ids,omitempty"`

	Url string `json:"url"`
}

// Test is an ordered set of problems grouped by the site.
type Test struct {
	GiaType    GiaType `json:"gia_type"`
	Subject    Subject `json:"subject"`
	Id         int64   `json:"id"`
	ProblemIds []int64 `json:"problem_ids"`
}

type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Topic is a top-level catalog entry grouping categories of problems.
type Topic struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	// Additional marks supplemental topics, which the site renders with
	// a "д" in the topic number.
	Additional bool       `json:"additional"`
	Categories []Category `json:"categories"`
}
