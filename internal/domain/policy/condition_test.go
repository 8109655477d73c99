package policy

import (
	"encoding/json"
	"testing"

	"petwelfare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAttributes(t *testing.T) map[string]any {
	t.Helper()

	// Decoded from JSON so numbers arrive as float64, as they do from request bodies.
	raw := `{
		"user": {"id": "u-1", "role": "adoption_manager", "storeId": "store-7", "tags": ["vip", "verified"]},
		"resource": {"ownerId": "u-1", "amount": 1500, "status": "pending", "title": "Golden retriever puppy"},
		"nothing": null
	}`

	var attrs map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &attrs))

	return attrs
}

func TestLookup(t *testing.T) {
	t.Parallel()

	attrs := sampleAttributes(t)

	v, ok := Lookup(attrs, "user.storeId")
	assert.True(t, ok)
	assert.Equal(t, "store-7", v)

	_, ok = Lookup(attrs, "user.missing")
	assert.False(t, ok)

	_, ok = Lookup(attrs, "user.id.deeper")
	assert.False(t, ok)

	_, ok = Lookup(attrs, "")
	assert.False(t, ok)

	v, ok = Lookup(attrs, "nothing")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestEvaluateOne(t *testing.T) {
	t.Parallel()

	attrs := sampleAttributes(t)

	tests := []struct {
		name string
		cond entity.Condition
		want bool
	}{
		{"equals string", entity.Condition{Field: "resource.status", Operator: entity.OpEquals, Value: "pending"}, true},
		{"equals numeric coercion", entity.Condition{Field: "resource.amount", Operator: entity.OpEquals, Value: 1500}, true},
		{"equals missing field", entity.Condition{Field: "resource.nope", Operator: entity.OpEquals, Value: "x"}, false},
		{"not equals", entity.Condition{Field: "resource.status", Operator: entity.OpNotEquals, Value: "approved"}, true},
		{"not equals missing field", entity.Condition{Field: "resource.nope", Operator: entity.OpNotEquals, Value: "x"}, true},
		{"contains substring", entity.Condition{Field: "resource.title", Operator: entity.OpContains, Value: "retriever"}, true},
		{"contains slice element", entity.Condition{Field: "user.tags", Operator: entity.OpContains, Value: "vip"}, true},
		{"contains absent element", entity.Condition{Field: "user.tags", Operator: entity.OpContains, Value: "banned"}, false},
		{"not contains", entity.Condition{Field: "user.tags", Operator: entity.OpNotContains, Value: "banned"}, true},
		{"greater than", entity.Condition{Field: "resource.amount", Operator: entity.OpGreaterThan, Value: 1000}, true},
		{"greater than equal bound", entity.Condition{Field: "resource.amount", Operator: entity.OpGreaterThan, Value: 1500.0}, false},
		{"greater than non-number", entity.Condition{Field: "resource.status", Operator: entity.OpGreaterThan, Value: 1}, false},
		{"less than", entity.Condition{Field: "resource.amount", Operator: entity.OpLessThan, Value: 2000}, true},
		{"in", entity.Condition{Field: "user.role", Operator: entity.OpIn, Value: []any{"adoption_manager", "adoption_admin"}}, true},
		{"in typed slice", entity.Condition{Field: "user.role", Operator: entity.OpIn, Value: []string{"shelter_manager"}}, false},
		{"not in", entity.Condition{Field: "user.role", Operator: entity.OpNotIn, Value: []string{"public_user"}}, true},
		{"in with non-list value", entity.Condition{Field: "user.role", Operator: entity.OpIn, Value: "adoption_manager"}, false},
		{"exists", entity.Condition{Field: "user.id", Operator: entity.OpExists}, true},
		{"exists null", entity.Condition{Field: "nothing", Operator: entity.OpExists}, false},
		{"exists missing", entity.Condition{Field: "user.email", Operator: entity.OpExists}, false},
		{"unknown operator", entity.Condition{Field: "user.id", Operator: "matches", Value: "u-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EvaluateOne(tt.cond, attrs))
		})
	}
}

func TestEvaluate_AllConditionsMustHold(t *testing.T) {
	t.Parallel()

	attrs := sampleAttributes(t)
	owner := entity.Condition{Field: "resource.ownerId", Operator: entity.OpEquals, Value: "u-1"}
	cheap := entity.Condition{Field: "resource.amount", Operator: entity.OpLessThan, Value: 1000}

	assert.True(t, Evaluate(nil, attrs))
	assert.True(t, Evaluate([]entity.Condition{owner}, attrs))
	assert.False(t, Evaluate([]entity.Condition{owner, cheap}, attrs))
}

func TestIsKnownOperator(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKnownOperator(entity.OpNotIn))
	assert.False(t, IsKnownOperator("regex"))
}
