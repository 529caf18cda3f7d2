package models

// Category is a life-event classification bucket driving which services
// are shown.
type Category string

const (
	CategoryJobLoss    Category = "job_loss"
	CategoryBirth      Category = "birth"
	CategoryDisability Category = "disability"
	CategoryAgePension Category = "age_pension"
	CategoryDisaster   Category = "disaster"
	CategoryCarer      Category = "carer"
	CategoryHealthcare Category = "healthcare"
)

// MetaCategory toggles extra response sections; it never selects services.
type MetaCategory string

const (
	MetaFormAssistance     MetaCategory = "form_assistance"
	MetaLocationAssistance MetaCategory = "location_assistance"
)

// ServiceRecord describes one government payment or program. Records are
// static configuration and are never mutated after load.
type ServiceRecord struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Agency         string   `yaml:"agency" json:"agency"`
	Description    string   `yaml:"description" json:"description"`
	Eligibility    []string `yaml:"eligibility" json:"eligibility"`
	Phone          string   `yaml:"phone" json:"phone"`
	ApplyURL       string   `yaml:"applyUrl" json:"applyUrl"`
	ActionSteps    []string `yaml:"actionSteps,omitempty" json:"actionSteps,omitempty"`
	ProcessingTime string   `yaml:"processingTime,omitempty" json:"processingTime,omitempty"`
	UrgentAction   string   `yaml:"urgentAction,omitempty" json:"urgentAction,omitempty"`
	ImportantNote  string   `yaml:"importantNote,omitempty" json:"importantNote,omitempty"`
}
