// Package profile extracts user facts from free chat text and keeps the
// accumulated per-session profile.
package profile

import (
	"regexp"
	"strconv"
	"strings"

	"servicebuddy/models"
)

// Extraction rules run top to bottom within each field group; when one
// message carries conflicting signals, the last matching rule wins. That
// ordering is the only conflict resolution there is.
var (
	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:i am|i'm|im)\s+(\d{1,3})\b`),
		regexp.MustCompile(`(\d{1,3})\s*(?:years?\s+old|yrs?\s+old|yo\b)`),
		regexp.MustCompile(`\baged?\s+(\d{1,3})\b`),
	}

	employedRe   = regexp.MustCompile(`\bemployed\b|\bworking\b|\bhave a job\b`)
	notWorkingRe = regexp.MustCompile(`not working|unable to work|can't work|cannot work|stopped working`)
	unemployedRe = regexp.MustCompile(`unemployed|jobless|lost (?:my )?job|fired|laid off|redundant`)

	childrenRe  = regexp.MustCompile(`\bchild(?:ren)?\b|\bkids?\b|\bson\b|\bdaughter\b|\bbaby\b|\bnewborn\b`)
	pregnantRe  = regexp.MustCompile(`pregnant|expecting`)
	caringRe    = regexp.MustCompile(`caring for|\bcarer\b|look after|care for`)
	disabledRe  = regexp.MustCompile(`disability|disabled`)
	rentingRe   = regexp.MustCompile(`\brent(?:ing)?\b|paying rent`)
	homeownerRe = regexp.MustCompile(`own (?:my|our) home|home\s?owner|mortgage`)

	weeklyIncomeRe = regexp.MustCompile(`\$?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:per|a|each|/)\s*week`)
	annualIncomeRe = regexp.MustCompile(`\$?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(?:(?:per|a|each|/)\s*(?:year|annum)|annually)`)
)

// Extract pulls whatever profile facts the message reveals. Fields the
// text never mentions stay unset; the caller merges the result into the
// session profile so nothing is ever cleared.
func Extract(text string) models.UserProfile {
	lower := strings.ToLower(text)
	var p models.UserProfile

	for _, re := range agePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil && age > 0 && age < 120 {
				p.Age = &age
			}
		}
	}

	if strings.Contains(lower, "citizen") {
		p.ResidencyStatus = models.ResidencyCitizen
	}
	if strings.Contains(lower, "permanent resident") {
		p.ResidencyStatus = models.ResidencyPermanentResident
	}
	if strings.Contains(lower, "visa") {
		p.ResidencyStatus = models.ResidencyTemporaryVisa
	}

	if employedRe.MatchString(lower) {
		p.EmploymentStatus = models.EmploymentEmployed
	}
	if notWorkingRe.MatchString(lower) {
		p.EmploymentStatus = models.EmploymentNotWorking
	}
	if unemployedRe.MatchString(lower) {
		p.EmploymentStatus = models.EmploymentUnemployed
	}

	if childrenRe.MatchString(lower) {
		p.HasChildren = boolPtr(true)
	}
	if pregnantRe.MatchString(lower) {
		p.IsPregnant = boolPtr(true)
	}
	if caringRe.MatchString(lower) {
		p.IsCaring = boolPtr(true)
	}
	if disabledRe.MatchString(lower) {
		p.HasDisability = boolPtr(true)
	}

	if m := weeklyIncomeRe.FindStringSubmatch(lower); m != nil {
		if weekly, ok := parseAmount(m[1]); ok {
			annual := weekly * 52
			p.WeeklyIncome = &weekly
			p.AnnualIncome = &annual
		}
	}
	if m := annualIncomeRe.FindStringSubmatch(lower); m != nil {
		if annual, ok := parseAmount(m[1]); ok {
			p.AnnualIncome = &annual
		}
	}

	if rentingRe.MatchString(lower) {
		p.RentingStatus = models.RentingRenting
	}
	if homeownerRe.MatchString(lower) {
		p.RentingStatus = models.RentingHomeowner
	}

	return p
}

func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

func boolPtr(v bool) *bool { return &v }
