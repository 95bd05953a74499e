package models

// Submission is a membership join request.
type Submission struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Interest  string `json:"interest"`
	Message   string `json:"message"`
}
