package dto

// OtherPestRecommendations carries the default-tier advice for a pest the
// customer selected but was not individually assessed on.
type OtherPestRecommendations struct {
	PestType        string   `json:"pest_type"`
	Recommendations []string `json:"recommendations"`
}

// SendRecommendationsMessage is the payload published on the internal bus
// when a completed assessment should be emailed to the customer.
type SendRecommendationsMessage struct {
	Email           string                     `json:"email"`
	PestType        string                     `json:"pest_type"`
	Tier            string                     `json:"tier"`
	Recommendations []string                   `json:"recommendations"`
	OtherPests      []OtherPestRecommendations `json:"other_pests,omitempty"`
}
