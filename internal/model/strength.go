package model

// StrengthRequest carries a password to score.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the strength analysis of a password.
type StrengthResponse struct {
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Score    int      `json:"score"`
	MaxScore int      `json:"max_score"`
	Feedback []string `json:"feedback"`
}
