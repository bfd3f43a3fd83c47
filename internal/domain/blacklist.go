package domain

// RevokedToken marks a token string as permanently unusable.
// PK: the raw token string. ExpiresAt mirrors the token's own exp claim and
// doubles as the DynamoDB TTL attribute: a revoked token may be pruned once
// it would have expired anyway, which is unobservable to callers.
type RevokedToken struct {
	Token     string `json:"token" dynamodbav:"token"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
