package http

import (
	"github.com/oncampus-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/oncampus-api/internal/infrastructure/jwt"
	s3infra "github.com/oncampus-api/internal/infrastructure/s3"
	"github.com/oncampus-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      *dynamo.UserRepo
	OtpRepo       *dynamo.OtpRepo
	BlacklistRepo *dynamo.BlacklistRepo
	S3Store       *s3infra.Store
	Mailer        smtp.Mailer
	JWTProvider   *jwtinfra.Provider
}
