// Package intent maps raw user text to life-event categories with ordered
// keyword matching. Matching is ASCII-lowercase substring/regex only, with
// no locale handling, so results are deterministic across platforms.
package intent

import (
	"regexp"
	"strings"

	"servicebuddy/models"
)

// PriorityOrder is the documented category check order. Single-best
// classification short-circuits on the first hit, so a message mentioning
// both "baby" and "fired" resolves to job_loss. Changing this order
// changes behaviour; it is part of the contract and covered by tests.
var PriorityOrder = []models.Category{
	models.CategoryJobLoss,
	models.CategoryBirth,
	models.CategoryDisability,
	models.CategoryAgePension,
	models.CategoryDisaster,
	models.CategoryCarer,
	models.CategoryHealthcare,
}

var keywords = map[models.Category][]string{
	models.CategoryJobLoss: {
		"lost job", "lost my job", "unemployed", "jobless",
		"fired", "redundant", "laid off",
	},
	models.CategoryBirth: {
		"baby", "birth", "newborn", "pregnant",
		"expecting", "child", "maternity",
	},
	models.CategoryDisability: {
		"disability", "disabled", "ndis", "impairment",
		"medical condition",
	},
	models.CategoryAgePension: {
		"age pension", "retirement", "retiring", "retired",
		"pensioner", "turning 67",
	},
	models.CategoryDisaster: {
		"flood", "fire", "disaster", "cyclone", "storm",
		"earthquake", "bushfire", "lost my home", "house was damaged",
	},
	models.CategoryCarer: {
		"carer", "caring for", "look after", "care for my parent",
	},
	models.CategoryHealthcare: {
		"medicare", "healthcare", "health care", "medical bills",
		"prescription", "doctor", "hospital",
	},
}

// patterns holds one alternation regex per category for multi-match
// classification. Built once from the same keyword tables so the two
// variants cannot drift apart.
var patterns = buildPatterns()

var metaPatterns = map[models.MetaCategory]*regexp.Regexp{
	models.MetaFormAssistance:     regexp.MustCompile(`\bforms?\b|fill (?:out|in)|paperwork|\bapply\b|application`),
	models.MetaLocationAssistance: regexp.MustCompile(`near me|nearest|\boffice\b|where can i|in person|service centre`),
}

func buildPatterns() map[models.Category]*regexp.Regexp {
	out := make(map[models.Category]*regexp.Regexp, len(keywords))
	for cat, kws := range keywords {
		quoted := make([]string, len(kws))
		for i, kw := range kws {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		out[cat] = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return out
}

// Classify returns the single best category for the text, checking
// categories in PriorityOrder and returning the first whose any keyword
// appears. The second return is false when nothing matched.
func Classify(text string) (models.Category, bool) {
	lower := strings.ToLower(text)
	for _, cat := range PriorityOrder {
		for _, kw := range keywords[cat] {
			if strings.Contains(lower, kw) {
				return cat, true
			}
		}
	}
	return "", false
}

// ClassifyAll returns every category whose pattern matches the text, in
// PriorityOrder. Used for ambiguous input and for routing AI replies,
// where a combined response may draw services from several categories.
func ClassifyAll(text string) []models.Category {
	lower := strings.ToLower(text)
	var hits []models.Category
	for _, cat := range PriorityOrder {
		if patterns[cat].MatchString(lower) {
			hits = append(hits, cat)
		}
	}
	return hits
}

// Meta reports which meta-categories the text triggers. These only toggle
// extra response sections and never select services.
func Meta(text string) []models.MetaCategory {
	lower := strings.ToLower(text)
	var hits []models.MetaCategory
	for _, meta := range []models.MetaCategory{models.MetaFormAssistance, models.MetaLocationAssistance} {
		if metaPatterns[meta].MatchString(lower) {
			hits = append(hits, meta)
		}
	}
	return hits
}

// MatchConfidence scores how strongly the text supports a category: the
// fraction of the category's keywords present plus a 0.3 base, capped at 1.
func MatchConfidence(text string, cat models.Category) float64 {
	kws := keywords[cat]
	if len(kws) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	conf := float64(matches)/float64(len(kws)) + 0.3
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
