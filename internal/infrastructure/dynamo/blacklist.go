package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/oncampus-api/internal/domain"
)

// BlacklistRepo is the persistent set of revoked token strings.
// PK: the raw token. Inserting the same token twice is a no-op overwrite, so
// logout and refresh-rotation are idempotent against replays of the same value.
type BlacklistRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewBlacklistRepo(client *dynamodb.Client, tableName string) *BlacklistRepo {
	return &BlacklistRepo{client: client, tableName: tableName}
}

// Add inserts a revoked token. expiresAt should be the token's own exp claim;
// it feeds the table's TTL so entries are pruned only after the token would
// have expired on its own.
func (r *BlacklistRepo) Add(ctx context.Context, token string, expiresAt int64) error {
	item, err := attributevalue.MarshalMap(&domain.RevokedToken{Token: token, ExpiresAt: expiresAt})
	if err != nil {
		return fmt.Errorf("marshal revoked token: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Contains reports whether the exact token string has been revoked.
func (r *BlacklistRepo) Contains(ctx context.Context, token string) (bool, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("token", token),
	})
	if err != nil {
		return false, err
	}
	return out.Item != nil, nil
}
