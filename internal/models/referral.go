package models

const DefaultUrgency = "unspecified"

// Referral is a helpline intake about someone other than the submitter.
type Referral struct {
	ID           int64  `json:"id"`
	Timestamp    string `json:"timestamp"`
	Name         string `json:"name"`
	ReferralName string `json:"referralName"`
	Relationship string `json:"relationship"`
	Urgency      string `json:"urgency"`
	Situation    string `json:"situation"`
}
