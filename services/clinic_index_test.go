package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthyaguide-backend/data"
	"swasthyaguide-backend/models"
)

func newTestIndex(t *testing.T) *ClinicIndex {
	t.Helper()
	entries, err := data.Load()
	require.NoError(t, err)
	return NewClinicIndex(entries)
}

func TestClinicIndex_ExactKey(t *testing.T) {
	ix := newTestIndex(t)

	clinics := ix.Lookup(&models.LocationQuery{
		Kind:  models.QueryLocationKey,
		Value: "Lucknow_Hazratganj",
	})

	require.Len(t, clinics, 2)
	assert.Equal(t, "Ganj Medical Centre", clinics[0].Name)
	assert.Equal(t, "Hazratganj", clinics[0].Area)
	assert.Equal(t, "Lucknow", clinics[0].City)
}

func TestClinicIndex_UnknownKeyFallsBackToTokens(t *testing.T) {
	ix := newTestIndex(t)

	// No entry carries this exact key, but its tokens match Gomti Nagar
	// locations first.
	clinics := ix.Lookup(&models.LocationQuery{
		Kind:   models.QueryLocationKey,
		Value:  "Lucknow_Gomti_Nagar",
		Tokens: []string{"lucknow", "gomti", "nagar"},
	})

	require.NotEmpty(t, clinics)
	assert.Equal(t, "Arogya Health Centre", clinics[0].Name)
}

func TestClinicIndex_UnknownCityKeyReturnsNothing(t *testing.T) {
	ix := newTestIndex(t)

	assert.Empty(t, ix.Lookup(&models.LocationQuery{
		Kind:   models.QueryLocationKey,
		Value:  "Mumbai_Andheri",
		Tokens: []string{"mumbai", "andheri"},
	}))
}

func TestClinicIndex_Pincode(t *testing.T) {
	ix := newTestIndex(t)

	clinics := ix.Lookup(&models.LocationQuery{
		Kind:  models.QueryPincode,
		Value: "226010",
	})

	// Both Gomti Nagar locations share this pincode.
	require.Len(t, clinics, 4)
	assert.Equal(t, "Arogya Health Centre", clinics[0].Name)

	assert.Empty(t, ix.Lookup(&models.LocationQuery{
		Kind:  models.QueryPincode,
		Value: "999999",
	}))
}

func TestClinicIndex_PartialMatch(t *testing.T) {
	ix := newTestIndex(t)

	t.Run("city name matches all its locations in source order", func(t *testing.T) {
		clinics := ix.Lookup(&models.LocationQuery{
			Kind:   models.QueryArea,
			Value:  "Lucknow",
			Tokens: []string{"lucknow"},
		})
		require.Len(t, clinics, 9)
		assert.Equal(t, "Arogya Health Centre", clinics[0].Name)
	})

	t.Run("two shared tokens outrank one", func(t *testing.T) {
		clinics := ix.Lookup(&models.LocationQuery{
			Kind:   models.QueryArea,
			Value:  "Gomti Nagar",
			Tokens: []string{"gomti", "nagar"},
		})
		require.NotEmpty(t, clinics)
		// Both Gomti Nagar locations score 2 and come before the
		// single-token "nagar" matches.
		assert.Equal(t, "Arogya Health Centre", clinics[0].Name)
		assert.Equal(t, "Sahara Hospital OPD", clinics[2].Name)
	})

	t.Run("sub-area token", func(t *testing.T) {
		clinics := ix.Lookup(&models.LocationQuery{
			Kind:   models.QueryArea,
			Value:  "Patrakarpuram",
			Tokens: []string{"patrakarpuram"},
		})
		require.Len(t, clinics, 2)
		assert.Equal(t, "Arogya Health Centre", clinics[0].Name)
	})

	t.Run("unknown area", func(t *testing.T) {
		assert.Empty(t, ix.Lookup(&models.LocationQuery{
			Kind:   models.QueryArea,
			Value:  "Mumbai",
			Tokens: []string{"mumbai"},
		}))
	})
}

func TestClinicIndex_KnownCity(t *testing.T) {
	ix := newTestIndex(t)

	assert.True(t, ix.KnownCity("Lucknow"))
	assert.True(t, ix.KnownCity("kanpur"))
	assert.False(t, ix.KnownCity("Mumbai"))
}

func TestClinicIndex_LocationLabel(t *testing.T) {
	ix := newTestIndex(t)

	clinics := ix.Lookup(&models.LocationQuery{
		Kind:  models.QueryLocationKey,
		Value: "Lucknow_Hazratganj",
	})
	require.NotEmpty(t, clinics)
	assert.Equal(t, "Hazratganj, Lucknow", ix.LocationLabel(clinics))

	assert.Equal(t, "", ix.LocationLabel(nil))
}

func TestClinicIndex_NilQuery(t *testing.T) {
	ix := newTestIndex(t)
	assert.Nil(t, ix.Lookup(nil))
}
