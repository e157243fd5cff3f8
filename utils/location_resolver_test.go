package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthyaguide-backend/models"
)

func newTestResolver() *LocationResolver {
	return NewLocationResolver(NewSymptomExtractor(), NewEmergencyDetector())
}

func TestLocationResolver_Resolve(t *testing.T) {
	resolver := newTestResolver()

	t.Run("six digits are always a pincode", func(t *testing.T) {
		q := resolver.Resolve("226010")
		require.NotNil(t, q)
		assert.Equal(t, models.QueryPincode, q.Kind)
		assert.Equal(t, "226010", q.Value)
	})

	t.Run("location key shape", func(t *testing.T) {
		q := resolver.Resolve("Lucknow_Gomti_Nagar")
		require.NotNil(t, q)
		assert.Equal(t, models.QueryLocationKey, q.Kind)
		assert.Equal(t, []string{"lucknow", "gomti", "nagar"}, q.Tokens)
	})

	t.Run("symptom text is not a location", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve("mujhe bukhar hai"))
	})

	t.Run("pincode embedded in symptom text is not a location", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve("226010 mujhe bukhar hai"))
	})

	t.Run("emergency text is not a location", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve("chest pain ho raha hai"))
	})

	t.Run("free text area", func(t *testing.T) {
		q := resolver.Resolve("Gomti Nagar")
		require.NotNil(t, q)
		assert.Equal(t, models.QueryArea, q.Kind)
		assert.Equal(t, []string{"gomti", "nagar"}, q.Tokens)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve("   "))
	})
}

func TestTextHelpers(t *testing.T) {
	assert.True(t, IsPincode("226010"))
	assert.False(t, IsPincode("22601"))
	assert.False(t, IsPincode("2260100"))
	assert.False(t, IsPincode("22601a"))

	assert.True(t, IsLocationKeyShaped("Lucknow_Hazratganj"))
	assert.False(t, IsLocationKeyShaped("Gomti Nagar"))
	assert.False(t, IsLocationKeyShaped("Lucknow_"))

	assert.True(t, ContainsDevanagari("बुखार"))
	assert.False(t, ContainsDevanagari("bukhar"))

	assert.Equal(t, "mujhe bukhar hai", Normalize("Mujhe, bukhar hai!"))
}
