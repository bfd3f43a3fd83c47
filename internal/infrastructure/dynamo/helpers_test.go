package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrKey(t *testing.T) {
	key := strKey("email", "alice@dcrustm.org")

	require.Len(t, key, 1)
	s, ok := key["email"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "alice@dcrustm.org", s.Value)
}

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"bio": "hello"})

	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "bio"}, ue.Names)

	v, ok := ue.Values[":v0"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "hello", v.Value)
}

func TestBuildUpdateExpr_MultipleFieldsSorted(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{
		"last_name":  "Kumar",
		"bio":        "hello",
		"first_name": "Alice",
	})

	require.NoError(t, err)
	// Keys sort as bio, first_name, last_name regardless of map order.
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue.Expr)
	assert.Equal(t, map[string]string{
		"#f0": "bio",
		"#f1": "first_name",
		"#f2": "last_name",
	}, ue.Names)
}

func TestBuildUpdateExpr_BoolValue(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"is_active": true})

	require.NoError(t, err)
	v, ok := ue.Values[":v0"].(*types.AttributeValueMemberBOOL)
	require.True(t, ok)
	assert.True(t, v.Value)
}

func TestBuildUpdateExpr_Empty(t *testing.T) {
	_, err := buildUpdateExpr(map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields to update")
}
