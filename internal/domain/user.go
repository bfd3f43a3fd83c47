package domain

import "time"

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Email        string    `json:"email" dynamodbav:"email"`
	Username     string    `json:"username" dynamodbav:"username"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	FirstName    string    `json:"first_name" dynamodbav:"first_name"`
	LastName     string    `json:"last_name" dynamodbav:"last_name"`
	Roll         string    `json:"roll" dynamodbav:"roll"`
	DOB          time.Time `json:"dob" dynamodbav:"dob"`
	Bio          string    `json:"bio,omitempty" dynamodbav:"bio"`
	Posts        int       `json:"posts" dynamodbav:"posts"`
	Followers    int       `json:"followers" dynamodbav:"followers"`
	Following    int       `json:"following" dynamodbav:"following"`
	IsActive     bool      `json:"is_active" dynamodbav:"is_active"`
	IsSuperuser  bool      `json:"is_superuser" dynamodbav:"is_superuser"`
	ProfileURL   *string   `json:"profile_url,omitempty" dynamodbav:"profile_url"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Username  string `json:"username" validate:"required,min=4"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Roll      string `json:"roll" validate:"required"`
	DOB       string `json:"dob" validate:"required"` // expected format: YYYY-MM-DD
}

type LoginRequest struct {
	User     string `json:"user" validate:"required,min=4"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Bio       *string `json:"bio"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Profile is the public projection of a User returned by search.
type Profile struct {
	UserID     string  `json:"id" dynamodbav:"user_id"`
	Username   string  `json:"username" dynamodbav:"username"`
	FirstName  string  `json:"first_name" dynamodbav:"first_name"`
	LastName   string  `json:"last_name" dynamodbav:"last_name"`
	Bio        string  `json:"bio,omitempty" dynamodbav:"bio"`
	Posts      int     `json:"posts" dynamodbav:"posts"`
	Followers  int     `json:"followers" dynamodbav:"followers"`
	Following  int     `json:"following" dynamodbav:"following"`
	ProfileURL *string `json:"profile_url,omitempty" dynamodbav:"profile_url"`
}
