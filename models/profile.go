package models

// ResidencyStatus of the person chatting. Unknown means "not yet stated",
// never "no".
type ResidencyStatus string

const (
	ResidencyCitizen           ResidencyStatus = "citizen"
	ResidencyPermanentResident ResidencyStatus = "permanent_resident"
	ResidencyTemporaryVisa     ResidencyStatus = "temporary_visa"
	ResidencyUnknown           ResidencyStatus = "unknown"
)

type EmploymentStatus string

const (
	EmploymentEmployed   EmploymentStatus = "employed"
	EmploymentUnemployed EmploymentStatus = "unemployed"
	EmploymentNotWorking EmploymentStatus = "not_working"
	EmploymentUnknown    EmploymentStatus = "unknown"
)

type RentingStatus string

const (
	RentingRenting   RentingStatus = "renting"
	RentingHomeowner RentingStatus = "homeowner"
	RentingUnknown   RentingStatus = "unknown"
)

// UserProfile accumulates whatever the user has revealed over a chat
// session. Pointer and enum fields distinguish "unknown" from a stated
// value; fields are only ever added or overwritten, never cleared.
type UserProfile struct {
	Age              *int             `json:"age,omitempty"`
	ResidencyStatus  ResidencyStatus  `json:"residencyStatus,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus,omitempty"`
	HasChildren      *bool            `json:"hasChildren,omitempty"`
	IsPregnant       *bool            `json:"isPregnant,omitempty"`
	IsCaring         *bool            `json:"isCaring,omitempty"`
	HasDisability    *bool            `json:"hasDisability,omitempty"`
	AnnualIncome     *float64         `json:"annualIncome,omitempty"`
	WeeklyIncome     *float64         `json:"weeklyIncome,omitempty"`
	RentingStatus    RentingStatus    `json:"rentingStatus,omitempty"`
}

// Merge overlays extracted fields onto the stored profile. Only fields the
// extraction actually set overwrite; everything else is left untouched.
func (p *UserProfile) Merge(extracted UserProfile) {
	if extracted.Age != nil {
		p.Age = extracted.Age
	}
	if extracted.ResidencyStatus != "" && extracted.ResidencyStatus != ResidencyUnknown {
		p.ResidencyStatus = extracted.ResidencyStatus
	}
	if extracted.EmploymentStatus != "" && extracted.EmploymentStatus != EmploymentUnknown {
		p.EmploymentStatus = extracted.EmploymentStatus
	}
	if extracted.HasChildren != nil {
		p.HasChildren = extracted.HasChildren
	}
	if extracted.IsPregnant != nil {
		p.IsPregnant = extracted.IsPregnant
	}
	if extracted.IsCaring != nil {
		p.IsCaring = extracted.IsCaring
	}
	if extracted.HasDisability != nil {
		p.HasDisability = extracted.HasDisability
	}
	if extracted.AnnualIncome != nil {
		p.AnnualIncome = extracted.AnnualIncome
	}
	if extracted.WeeklyIncome != nil {
		p.WeeklyIncome = extracted.WeeklyIncome
	}
	if extracted.RentingStatus != "" && extracted.RentingStatus != RentingUnknown {
		p.RentingStatus = extracted.RentingStatus
	}
}

// SessionContext is the per-session state kept between messages: the
// accumulated profile plus the category the user was last shown services
// for, so follow-up eligibility questions have a target.
type SessionContext struct {
	Profile      UserProfile `json:"profile"`
	LastCategory Category    `json:"lastCategory,omitempty"`
}
