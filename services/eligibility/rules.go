package eligibility

// requirementShape is the coarse pattern a plain-English eligibility
// string is matched against.
type requirementShape int

const (
	shapeReceivingPayment requirementShape = iota
	shapeAge
	shapeIncapacity
	shapeCaring
	shapeDisability
	shapeResidency
	shapeIncome
	shapeOther
)

// rulesTable isolates every threshold and confidence penalty from control
// flow so policy adjustments are data edits, not logic edits. The values
// are deliberately coarse stand-ins, not real Services Australia policy.
type rulesTable struct {
	Version int

	// Age Pension age used as the upper bound of working-age ranges.
	PensionAge int
	// Lower bound assumed when an age requirement states no explicit range.
	DefaultMinAge int
	// Flat annual income cutoff for income/assets shaped requirements.
	IncomeThreshold float64
	// Confidence floor a result must clear to be called eligible.
	EligibleCutoff float64

	// Confidence penalty charged per shape when the profile can't answer it.
	Penalties map[requirementShape]float64
}

var activeRules = rulesTable{
	Version:         1,
	PensionAge:      67,
	DefaultMinAge:   22,
	IncomeThreshold: 50000,
	EligibleCutoff:  0.4,
	Penalties: map[requirementShape]float64{
		shapeReceivingPayment: 0.2,
		shapeAge:              0.3,
		shapeIncapacity:       0.2,
		shapeCaring:           0.2,
		shapeDisability:       0.2,
		shapeResidency:        0.3,
		shapeIncome:           0.25,
		shapeOther:            0.1,
	},
}

// prompts are the human-readable follow-up questions surfaced when a
// profile field needed by a shape is still unknown.
var prompts = map[requirementShape]string{
	shapeReceivingPayment: "Are you currently receiving an income support payment?",
	shapeAge:              "What is your age?",
	shapeIncapacity:       "Are you currently able to work?",
	shapeCaring:           "Are you caring for someone with a disability or medical condition?",
	shapeDisability:       "Do you have a disability or long-term medical condition?",
	shapeResidency:        "Are you an Australian citizen or permanent resident?",
	shapeIncome:           "What is your annual income?",
}
