package domain

// OtpChallenge is the single pending email-verification code for an address.
// PK: email — a new send overwrites the previous challenge, so at most one
// row exists per address.
type OtpChallenge struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"otp" dynamodbav:"otp"`
	CreatedAt int64  `json:"created_at" dynamodbav:"created_at"` // Unix seconds
}
