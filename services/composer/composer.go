// Package composer turns catalogue entries and evaluator output into the
// prose shown to the user. The composition mode is driven by what data is
// present (an eligibility result, action steps on records), not by a flag.
package composer

import (
	"fmt"
	"strings"

	"servicebuddy/models"
)

// HelpText is shown when no category matched and no AI reply is available.
const HelpText = `I'm here to help with government services for major life events. Try telling me about:

- "I lost my job" or "I'm unemployed"
- "We had a baby" or "I'm expecting"
- "We were affected by floods/fires" or "Natural disaster"

What situation can I help you with?`

// maxFollowUpQuestions caps the needed-info items echoed back in an
// eligibility report so the user isn't overwhelmed.
const maxFollowUpQuestions = 3

var categoryResponses = map[models.Category]string{
	models.CategoryJobLoss:    "I understand you've lost your job - this is a difficult time. I've found %d key services that can help provide financial support and get you back on your feet. Let me explain what you might be eligible for.",
	models.CategoryBirth:      "Congratulations on your new addition to the family! There are %d important services to help support you and your baby. Let me walk you through what you'll need to do.",
	models.CategoryDisaster:   "I'm sorry to hear you've been affected by a disaster. There are %d support services available to help you during this difficult time. Let me show you what assistance you may be eligible for.",
	models.CategoryCarer:      "I understand you're taking on caring responsibilities - this is both rewarding and challenging. I've found %d support services that can help you financially while you provide care. Let me explain what support is available.",
	models.CategoryDisability: "Living with a disability or long-term condition can bring extra costs. I've found %d services that may help with income support and care. Let me explain what you might be eligible for.",
	models.CategoryAgePension: "Planning around retirement is a big step. There are %d services that can support you as you reach Age Pension age. Let me walk you through them.",
	models.CategoryHealthcare: "Health costs add up quickly. I've found %d services that can make medicines and medical care more affordable. Let me show you what's available.",
}

// Compose assembles the user-facing reply. With an eligibility result it
// renders the eligibility report for the first service; otherwise, records
// carrying action steps trigger the structured step-by-step composition,
// and anything else gets the canned category paragraph.
func Compose(cats []models.Category, services []models.ServiceRecord, elig *models.EligibilityResult, metas []models.MetaCategory) string {
	var body string
	switch {
	case elig != nil && len(services) > 0:
		body = eligibilityReport(services[0], *elig)
	case hasActionSteps(services):
		body = agentic(cats, services)
	case len(cats) > 0:
		body = canned(cats[0], services)
	default:
		body = HelpText
	}
	return body + metaSections(metas)
}

func canned(cat models.Category, services []models.ServiceRecord) string {
	if text, ok := categoryResponses[cat]; ok {
		return fmt.Sprintf(text, len(services))
	}
	return "I've found some services that might help you."
}

func hasActionSteps(services []models.ServiceRecord) bool {
	for _, svc := range services {
		if len(svc.ActionSteps) > 0 {
			return true
		}
	}
	return false
}

// agentic renders the structured composition: urgent banner, numbered
// per-service blocks, a generic document checklist and a myGov reminder.
func agentic(cats []models.Category, services []models.ServiceRecord) string {
	var sb strings.Builder

	for _, svc := range services {
		if svc.UrgentAction != "" {
			sb.WriteString("⚠️ ")
			sb.WriteString(svc.UrgentAction)
			sb.WriteString("\n\n")
			break
		}
	}

	if len(cats) > 0 {
		sb.WriteString(canned(cats[0], services))
		sb.WriteString("\n\n")
	}
	sb.WriteString("Here's what to do, step by step:\n")

	for i, svc := range services {
		fmt.Fprintf(&sb, "\n%d. %s (%s)\n", i+1, svc.Title, svc.Agency)
		fmt.Fprintf(&sb, "   Phone: %s\n", svc.Phone)
		for _, step := range svc.ActionSteps {
			fmt.Fprintf(&sb, "   - %s\n", step)
		}
		if svc.ProcessingTime != "" {
			fmt.Fprintf(&sb, "   Processing time: %s\n", svc.ProcessingTime)
		}
		if svc.ImportantNote != "" {
			fmt.Fprintf(&sb, "   Note: %s\n", svc.ImportantNote)
		}
	}

	sb.WriteString("\nDocuments to have ready: proof of identity, bank details, income details and your tax file number.\n")
	sb.WriteString("Tip: set up a myGov account and link it to Services Australia before you start - every claim above goes through it.")
	return sb.String()
}

// eligibilityReport renders the evaluator's verdict: requirement bullets
// grouped by met/missing/needs-info, then either the call to action or a
// short follow-up question list.
func eligibilityReport(service models.ServiceRecord, res models.EligibilityResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here's how you look for %s:\n", service.Title)

	if len(res.MetRequirements) > 0 {
		sb.WriteString("\nRequirements you meet:\n")
		for _, req := range res.MetRequirements {
			fmt.Fprintf(&sb, "  ✓ %s\n", req)
		}
	}
	if len(res.MissingRequirements) > 0 {
		sb.WriteString("\nRequirements you may not meet:\n")
		for _, req := range res.MissingRequirements {
			fmt.Fprintf(&sb, "  ✗ %s\n", req)
		}
	}
	if len(res.NeedsMoreInfo) > 0 {
		sb.WriteString("\nStill to confirm:\n")
		for _, req := range res.NeedsMoreInfo {
			fmt.Fprintf(&sb, "  ? %s\n", req)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(res.Recommendation)

	if !res.Eligible && len(res.NeedsMoreInfo) > 0 {
		sb.WriteString("\n\nTo narrow this down, could you tell me:\n")
		questions := res.NeedsMoreInfo
		if len(questions) > maxFollowUpQuestions {
			questions = questions[:maxFollowUpQuestions]
		}
		for _, q := range questions {
			fmt.Fprintf(&sb, "  - %s\n", q)
		}
	}
	return sb.String()
}

func metaSections(metas []models.MetaCategory) string {
	var sb strings.Builder
	for _, meta := range metas {
		switch meta {
		case models.MetaFormAssistance:
			sb.WriteString("\n\nNeed help with the forms? Most claims can be completed online through myGov, and Services Australia staff can fill in forms with you over the phone or at a service centre.")
		case models.MetaLocationAssistance:
			sb.WriteString("\n\nLooking for somewhere to go in person? Use the service centre locator at servicesaustralia.gov.au/findus or call the listed number to find your nearest office.")
		}
	}
	return sb.String()
}
