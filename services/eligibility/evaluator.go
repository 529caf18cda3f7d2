// Package eligibility scores a user profile against a service's
// plain-English eligibility statements. The evaluator is a pure function:
// same (service, profile) in, same result out, no I/O.
package eligibility

import (
	"fmt"
	"regexp"
	"strings"

	"servicebuddy/models"
)

var ageRangeRe = regexp.MustCompile(`age\s+(\d{1,3})\s+to`)

// detectShape classifies one lowercased requirement string. Checks run in
// a fixed order: receiving-payment before income, because payment
// requirements usually also mention "income"; caring before disability,
// because carer requirements describe the care receiver's condition.
func detectShape(req string) requirementShape {
	switch {
	case strings.Contains(req, "receiving") && strings.Contains(req, "payment"):
		return shapeReceivingPayment
	case strings.Contains(req, "age"):
		return shapeAge
	case strings.Contains(req, "unable to work") || strings.Contains(req, "can't work") || strings.Contains(req, "cannot work"):
		return shapeIncapacity
	case strings.Contains(req, "caring") || strings.Contains(req, "care to") || strings.Contains(req, "care receiver"):
		return shapeCaring
	case strings.Contains(req, "disability") || strings.Contains(req, "medical condition"):
		return shapeDisability
	case strings.Contains(req, "resident") || strings.Contains(req, "residence") || strings.Contains(req, "citizen"):
		return shapeResidency
	case strings.Contains(req, "income") || strings.Contains(req, "assets"):
		return shapeIncome
	default:
		return shapeOther
	}
}

// verdict is the per-requirement outcome.
type verdict int

const (
	verdictMet verdict = iota
	verdictNotMet
	verdictUnknown
)

// Evaluate walks the service's eligibility strings in order and produces a
// verdict with confidence and follow-up prompts. Confidence starts at 1.0
// and loses the shape's penalty for every requirement the profile cannot
// answer; the final eligible flag requires no failed requirements and
// confidence above the configured cutoff.
func Evaluate(service models.ServiceRecord, profile models.UserProfile) models.EligibilityResult {
	res := models.EligibilityResult{Eligible: true}
	penalty := 0.0

	for _, req := range service.Eligibility {
		shape := detectShape(strings.ToLower(req))
		switch check(shape, strings.ToLower(req), profile) {
		case verdictMet:
			res.MetRequirements = append(res.MetRequirements, req)
		case verdictNotMet:
			res.Eligible = false
			res.MissingRequirements = append(res.MissingRequirements, req)
		case verdictUnknown:
			penalty += activeRules.Penalties[shape]
			if prompt, ok := prompts[shape]; ok {
				res.NeedsMoreInfo = append(res.NeedsMoreInfo, prompt)
			} else {
				res.NeedsMoreInfo = append(res.NeedsMoreInfo, fmt.Sprintf("We still need to check: %s", req))
			}
		}
	}

	res.Confidence = 1.0 - penalty
	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence <= activeRules.EligibleCutoff {
		res.Eligible = false
	}
	res.Recommendation = recommend(res)
	return res
}

// check decides met/not-met/unknown for one requirement. Unknown always
// means the profile lacks the relevant field, never that the rule failed.
func check(shape requirementShape, req string, p models.UserProfile) verdict {
	switch shape {
	case shapeAge:
		if p.Age == nil {
			return verdictUnknown
		}
		age := *p.Age
		if strings.Contains(req, "or older") {
			return boolVerdict(age >= activeRules.PensionAge)
		}
		minAge := activeRules.DefaultMinAge
		if m := ageRangeRe.FindStringSubmatch(req); m != nil {
			fmt.Sscanf(m[1], "%d", &minAge)
		}
		return boolVerdict(age >= minAge && age < activeRules.PensionAge)

	case shapeResidency:
		if p.ResidencyStatus == "" || p.ResidencyStatus == models.ResidencyUnknown {
			return verdictUnknown
		}
		if p.ResidencyStatus == models.ResidencyTemporaryVisa {
			// Some requirements admit eligible visa holders.
			return boolVerdict(strings.Contains(req, "visa"))
		}
		return verdictMet

	case shapeIncapacity:
		if p.EmploymentStatus == "" || p.EmploymentStatus == models.EmploymentUnknown {
			return verdictUnknown
		}
		return boolVerdict(p.EmploymentStatus == models.EmploymentUnemployed ||
			p.EmploymentStatus == models.EmploymentNotWorking)

	case shapeCaring:
		if p.IsCaring == nil {
			return verdictUnknown
		}
		return boolVerdict(*p.IsCaring)

	case shapeDisability:
		if p.HasDisability == nil {
			return verdictUnknown
		}
		return boolVerdict(*p.HasDisability)

	case shapeIncome:
		if p.AnnualIncome == nil {
			return verdictUnknown
		}
		return boolVerdict(*p.AnnualIncome < activeRules.IncomeThreshold)

	case shapeReceivingPayment:
		// The profile carries no payment-history field, so this shape can
		// only ever ask for more information.
		return verdictUnknown

	default:
		return verdictUnknown
	}
}

func boolVerdict(met bool) verdict {
	if met {
		return verdictMet
	}
	return verdictNotMet
}

// recommend picks the call-to-action from a decision table on
// (eligible, confidence).
func recommend(res models.EligibilityResult) string {
	switch {
	case res.Eligible && res.Confidence >= 0.8:
		return "You appear to meet the key requirements. Apply now - the sooner you claim, the sooner payments can start."
	case res.Eligible:
		return "You may be eligible. A few details are still unconfirmed, so check the full criteria when you apply."
	case len(res.MissingRequirements) > 0:
		return "Based on what you've told me, you may not meet the requirements for this payment. It's still worth confirming with Services Australia."
	default:
		return "I need a bit more information before I can assess your eligibility."
	}
}
