package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicebuddy/models"
)

func jobseekerLike() models.ServiceRecord {
	return models.ServiceRecord{
		ID:    "sa_jobseeker",
		Title: "JobSeeker Payment",
		Eligibility: []string{
			"Age 22 to Age Pension age",
			"Australian resident",
		},
	}
}

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestEvaluateFullProfile(t *testing.T) {
	profile := models.UserProfile{
		Age:             intPtr(30),
		ResidencyStatus: models.ResidencyCitizen,
	}

	res := Evaluate(jobseekerLike(), profile)

	assert.True(t, res.Eligible)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, []string{"Age 22 to Age Pension age", "Australian resident"}, res.MetRequirements)
	assert.Empty(t, res.MissingRequirements)
	assert.Empty(t, res.NeedsMoreInfo)
	assert.Contains(t, res.Recommendation, "Apply now")
}

func TestEvaluateEmptyProfile(t *testing.T) {
	res := Evaluate(jobseekerLike(), models.UserProfile{})

	assert.False(t, res.Eligible)
	assert.LessOrEqual(t, res.Confidence, 0.4)
	assert.Empty(t, res.MetRequirements)
	assert.Empty(t, res.MissingRequirements)
	require.Len(t, res.NeedsMoreInfo, 2)
	assert.Contains(t, res.NeedsMoreInfo, "What is your age?")
	assert.Contains(t, res.NeedsMoreInfo, "Are you an Australian citizen or permanent resident?")
}

func TestEvaluateAgeOutOfRange(t *testing.T) {
	profile := models.UserProfile{
		Age:             intPtr(70),
		ResidencyStatus: models.ResidencyCitizen,
	}

	res := Evaluate(jobseekerLike(), profile)

	assert.False(t, res.Eligible)
	assert.Equal(t, []string{"Age 22 to Age Pension age"}, res.MissingRequirements)
	assert.Equal(t, []string{"Australian resident"}, res.MetRequirements)
	assert.Contains(t, res.Recommendation, "may not meet")
}

func TestEvaluatePensionAgeRequirement(t *testing.T) {
	svc := models.ServiceRecord{
		ID:          "age_pension",
		Title:       "Age Pension",
		Eligibility: []string{"Age Pension age or older"},
	}

	res := Evaluate(svc, models.UserProfile{Age: intPtr(70)})
	assert.True(t, res.Eligible)

	res = Evaluate(svc, models.UserProfile{Age: intPtr(50)})
	assert.False(t, res.Eligible)
	assert.NotEmpty(t, res.MissingRequirements)
}

func TestEvaluateIncomeThreshold(t *testing.T) {
	svc := models.ServiceRecord{
		ID:          "test",
		Title:       "Test Payment",
		Eligibility: []string{"Income and assets thresholds apply"},
	}

	res := Evaluate(svc, models.UserProfile{AnnualIncome: floatPtr(41600)})
	assert.True(t, res.Eligible)
	assert.Equal(t, 1.0, res.Confidence)

	res = Evaluate(svc, models.UserProfile{AnnualIncome: floatPtr(90000)})
	assert.False(t, res.Eligible)
	assert.NotEmpty(t, res.MissingRequirements)
}

func TestEvaluateReceivingPaymentAlwaysAsks(t *testing.T) {
	svc := models.ServiceRecord{
		ID:          "rent_assistance",
		Title:       "Rent Assistance",
		Eligibility: []string{"Receiving eligible income support payment"},
	}

	// No profile field covers payment history, so even a rich profile
	// still gets asked.
	profile := models.UserProfile{
		Age:             intPtr(30),
		ResidencyStatus: models.ResidencyCitizen,
		AnnualIncome:    floatPtr(20000),
	}
	res := Evaluate(svc, profile)
	assert.Contains(t, res.NeedsMoreInfo, "Are you currently receiving an income support payment?")
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
}

func TestEvaluateCarerRequirements(t *testing.T) {
	svc := models.ServiceRecord{
		ID:    "carer_payment",
		Title: "Carer Payment",
		Eligibility: []string{
			"Caring for someone with disability or medical condition",
			"Unable to work substantial hours due to caring",
		},
	}

	profile := models.UserProfile{
		IsCaring:         boolPtr(true),
		EmploymentStatus: models.EmploymentNotWorking,
	}
	res := Evaluate(svc, profile)
	assert.True(t, res.Eligible)
	assert.Len(t, res.MetRequirements, 2)

	// Still employed full-time: the incapacity requirement fails.
	profile.EmploymentStatus = models.EmploymentEmployed
	res = Evaluate(svc, profile)
	assert.False(t, res.Eligible)
	assert.Equal(t, []string{"Unable to work substantial hours due to caring"}, res.MissingRequirements)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	profile := models.UserProfile{Age: intPtr(30)}
	first := Evaluate(jobseekerLike(), profile)
	second := Evaluate(jobseekerLike(), profile)
	assert.Equal(t, first, second)
}

func TestEvaluateUnclassifiedRequirement(t *testing.T) {
	svc := models.ServiceRecord{
		ID:          "medicare_enrolment",
		Title:       "Medicare Enrolment for Newborn",
		Eligibility: []string{"Newborn Child Declaration or birth certificate required"},
	}

	res := Evaluate(svc, models.UserProfile{})
	require.Len(t, res.NeedsMoreInfo, 1)
	assert.Contains(t, res.NeedsMoreInfo[0], "Newborn Child Declaration")
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
	assert.True(t, res.Eligible) // no failed requirements and confidence above cutoff
}
