package sdamgia

import (
	"fmt"
	"strconv"
)

const BaseDomain = "sdamgia.ru"

// GiaType is the exam track namespace. Each (gia type, subject) pair is
// served from its own subdomain with an independent id space.
type GiaType string

const (
	GiaTypeOge GiaType = "oge"
	GiaTypeEge GiaType = "ege"
)

type Subject string

const (
	SubjectMath            Subject = "math"
	SubjectMathBase        Subject = "mathb"
	SubjectPhysics         Subject = "phys"
	SubjectInformatics     Subject = "inf"
	SubjectBiology         Subject = "bio"
	SubjectLiterature      Subject = "lit"
	SubjectHistory         Subject = "hist"
	SubjectChemistry       Subject = "chem"
	SubjectGeography       Subject = "geo"
	SubjectSocialScience   Subject = "soc"
	SubjectRussianLanguage Subject = "rus"
	SubjectEnglishLanguage Subject = "en"
	SubjectGermanLanguage  Subject = "de"
	SubjectFrenchLanguage  Subject = "fr"
	SubjectSpanishLanguage Subject = "sp"
)

var validGiaTypes = map[GiaType]bool{
	GiaTypeOge: true,
	GiaTypeEge: true,
}

var validSubjects = map[Subject]bool{
	SubjectMath:            true,
	SubjectMathBase:        true,
	SubjectPhysics:         true,
	SubjectInformatics:     true,
	SubjectBiology:         true,
	SubjectLiterature:      true,
	SubjectHistory:         true,
	SubjectChemistry:       true,
	SubjectGeography:       true,
	SubjectSocialScience:   true,
	SubjectRussianLanguage: true,
	SubjectEnglishLanguage: true,
	SubjectGermanLanguage:  true,
	SubjectFrenchLanguage:  true,
	SubjectSpanishLanguage: true,
}

// Scope selects the site namespace all ids are interpreted in. Problem
// and test ids are only unique within one scope.
type Scope struct {
	GiaType GiaType `json:"gia_type"`
	Subject Subject `json:"subject"`
}

func (s Scope) Validate() error {
	if !validGiaTypes[s.GiaType] {
		return fmt.Errorf("unknown gia type: %q", s.GiaType)
	}
	if !validSubjects[s.Subject] {
		return fmt.Errorf("unknown subject: %q", s.Subject)
	}
	return nil
}

func (s Scope) BaseUrl() string {
	return fmt.Sprintf("https://%s-%s.%s", s.Subject, s.GiaType, BaseDomain)
}

func (s Scope) ProblemUrl(id int64) string {
	return s.BaseUrl() + "/problem?id=" + strconv.FormatInt(id, 10)
}
