package models

const (
	DefaultStepStatus    = "upcoming"
	DefaultCoordinatedBy = "SOS Team"
)

// Step is a community event. Fields left out of the create request are
// omitted from the stored record, except the nullable ones.
type Step struct {
	ID            int64   `json:"id"`
	Location      string  `json:"location,omitempty"`
	City          string  `json:"city,omitempty"`
	Area          string  `json:"area,omitempty"`
	Steppers      int64   `json:"steppers"`
	Status        string  `json:"status"`
	StartTime     string  `json:"startTime,omitempty"`
	EndTime       *string `json:"endTime"`
	Purpose       string  `json:"purpose,omitempty"`
	Outcome       *string `json:"outcome"`
	CoordinatedBy string  `json:"coordinatedBy"`
}
