package composer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"servicebuddy/models"
)

func TestComposeCannedResponse(t *testing.T) {
	services := []models.ServiceRecord{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
	}
	out := Compose([]models.Category{models.CategoryBirth}, services, nil, nil)

	assert.Contains(t, out, "Congratulations")
	assert.Contains(t, out, "2 important services")
	assert.NotContains(t, out, "%d")
}

func TestComposeAgentic(t *testing.T) {
	services := []models.ServiceRecord{
		{
			ID:           "disaster_recovery_payment",
			Title:        "Disaster Recovery Payment",
			Agency:       "Services Australia",
			Phone:        "180 22 66",
			ActionSteps:  []string{"Check your area is declared", "Claim through myGov"},
			UrgentAction: "Claims close 6 months after the disaster is declared - apply as soon as you can.",
		},
		{
			ID:             "sa_jobseeker",
			Title:          "JobSeeker Payment",
			Agency:         "Services Australia",
			Phone:          "132 850",
			ActionSteps:    []string{"Register with Workforce Australia"},
			ProcessingTime: "21 days",
		},
	}
	out := Compose([]models.Category{models.CategoryDisaster}, services, nil, nil)

	// Urgent banner first, then numbered blocks in catalogue order.
	assert.True(t, strings.HasPrefix(out, "⚠️ "))
	assert.Contains(t, out, "1. Disaster Recovery Payment (Services Australia)")
	assert.Contains(t, out, "2. JobSeeker Payment (Services Australia)")
	assert.Contains(t, out, "Phone: 180 22 66")
	assert.Contains(t, out, "- Claim through myGov")
	assert.Contains(t, out, "Processing time: 21 days")
	assert.Contains(t, out, "Documents to have ready")
	assert.Contains(t, out, "myGov account")
	assert.Less(t, strings.Index(out, "1. Disaster"), strings.Index(out, "2. JobSeeker"))
}

func TestComposeEligibilityReport(t *testing.T) {
	svc := models.ServiceRecord{ID: "sa_jobseeker", Title: "JobSeeker Payment"}
	res := models.EligibilityResult{
		Eligible:            false,
		Confidence:          0.4,
		MetRequirements:     []string{"Australian resident"},
		MissingRequirements: []string{"Age 22 to Age Pension age"},
		NeedsMoreInfo:       []string{"What is your approximate annual income?"},
		Recommendation:      "You may not meet all requirements, but it's worth checking with Services Australia.",
	}
	out := Compose([]models.Category{models.CategoryJobLoss}, []models.ServiceRecord{svc}, &res, nil)

	assert.Contains(t, out, "Here's how you look for JobSeeker Payment")
	assert.Contains(t, out, "✓ Australian resident")
	assert.Contains(t, out, "✗ Age 22 to Age Pension age")
	assert.Contains(t, out, "? What is your approximate annual income?")
	assert.Contains(t, out, res.Recommendation)
	assert.Contains(t, out, "could you tell me")
}

func TestComposeEligibilityReportCapsQuestions(t *testing.T) {
	svc := models.ServiceRecord{ID: "x", Title: "X Payment"}
	res := models.EligibilityResult{
		Eligible:      false,
		NeedsMoreInfo: []string{"q1", "q2", "q3", "q4", "q5"},
	}
	out := Compose(nil, []models.ServiceRecord{svc}, &res, nil)

	assert.Contains(t, out, "- q3")
	assert.NotContains(t, out, "- q4")
}

func TestComposeHelpText(t *testing.T) {
	out := Compose(nil, nil, nil, nil)
	assert.Equal(t, HelpText, out)
}

func TestComposeMetaSections(t *testing.T) {
	out := Compose(nil, nil, nil, []models.MetaCategory{
		models.MetaFormAssistance,
		models.MetaLocationAssistance,
	})

	assert.True(t, strings.HasPrefix(out, HelpText))
	assert.Contains(t, out, "help with the forms")
	assert.Contains(t, out, "service centre locator")
}

func TestComposeUnknownCategoryFallbackText(t *testing.T) {
	out := Compose([]models.Category{models.Category("mystery")}, nil, nil, nil)
	assert.Equal(t, "I've found some services that might help you.", out)
}
