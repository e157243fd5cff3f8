package services

import (
	"sort"
	"strings"

	"swasthyaguide-backend/data"
	"swasthyaguide-backend/models"
	"swasthyaguide-backend/utils"
)

// ClinicIndex answers location queries against the static clinic table. It is
// built once at startup and read-only afterward, so lookups need no locking.
type ClinicIndex struct {
	byKey    map[string][]models.Clinic
	keyOrder []string
	keyRank  map[string]int

	// normalized area/city token -> location keys containing it, source order
	tokenIndex map[string][]string
	// 6-digit pincode -> location keys, source order
	byPincode map[string][]string

	cities map[string]struct{}
}

// NewClinicIndex builds the index from dataset entries. Entry order and
// per-entry clinic order are preserved; they are the tie-break for partial
// matches.
func NewClinicIndex(entries []data.LocationEntry) *ClinicIndex {
	ix := &ClinicIndex{
		byKey:      make(map[string][]models.Clinic, len(entries)),
		keyRank:    make(map[string]int, len(entries)),
		tokenIndex: make(map[string][]string),
		byPincode:  make(map[string][]string),
		cities:     make(map[string]struct{}),
	}

	for _, entry := range entries {
		key := entry.LocationKey
		if _, dup := ix.byKey[key]; dup {
			ix.byKey[key] = append(ix.byKey[key], entry.Clinics...)
			continue
		}
		ix.byKey[key] = entry.Clinics
		ix.keyRank[key] = len(ix.keyOrder)
		ix.keyOrder = append(ix.keyOrder, key)

		for _, token := range keyIndexTokens(key) {
			ix.tokenIndex[token] = appendUnique(ix.tokenIndex[token], key)
		}
		city, _ := models.ParseLocationKey(key)
		ix.cities[strings.ToLower(city)] = struct{}{}

		for _, clinic := range entry.Clinics {
			if clinic.Pincode != "" {
				ix.byPincode[clinic.Pincode] = appendUnique(ix.byPincode[clinic.Pincode], key)
			}
		}
	}

	return ix
}

// Lookup returns the clinics for a classified query, possibly empty, ordered
// by specificity: exact matches first, then partial matches by number of
// shared tokens, then source order.
func (ix *ClinicIndex) Lookup(q *models.LocationQuery) []models.Clinic {
	if q == nil {
		return nil
	}

	switch q.Kind {
	case models.QueryPincode:
		return ix.clinicsForKeys(ix.byPincode[q.Value])

	case models.QueryLocationKey:
		if clinics, ok := ix.byKey[q.Value]; ok {
			return clinics
		}
		// Unknown key: fall back to token matching, but only when the
		// leading token names a city in the dataset.
		if len(q.Tokens) > 0 && ix.KnownCity(q.Tokens[0]) {
			return ix.clinicsForKeys(ix.partialMatch(q.Tokens))
		}
		return nil

	case models.QueryArea:
		return ix.clinicsForKeys(ix.partialMatch(q.Tokens))
	}

	return nil
}

// KnownCity reports whether a token names a city in the dataset.
func (ix *ClinicIndex) KnownCity(token string) bool {
	_, ok := ix.cities[strings.ToLower(token)]
	return ok
}

// LocationLabel renders a human-readable label for the matched clinics'
// location, e.g. "Gomti Nagar, Lucknow" for a single-key result.
func (ix *ClinicIndex) LocationLabel(clinics []models.Clinic) string {
	if len(clinics) == 0 {
		return ""
	}
	first := clinics[0]
	if first.Area != "" {
		return first.Area + ", " + first.City
	}
	return first.City
}

// partialMatch returns location keys sharing at least one normalized token
// with the query, ordered by shared-token count descending, then source order.
func (ix *ClinicIndex) partialMatch(tokens []string) []string {
	scores := make(map[string]int)
	for _, raw := range tokens {
		token := strings.ToLower(raw)
		seen := make(map[string]struct{})
		for _, key := range ix.tokenIndex[token] {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			scores[key]++
		}
	}

	keys := make([]string, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] > scores[keys[j]]
		}
		return ix.keyRank[keys[i]] < ix.keyRank[keys[j]]
	})
	return keys
}

func (ix *ClinicIndex) clinicsForKeys(keys []string) []models.Clinic {
	var clinics []models.Clinic
	for _, key := range keys {
		clinics = append(clinics, ix.byKey[key]...)
	}
	return clinics
}

func keyIndexTokens(key string) []string {
	tokens := utils.Tokenize(strings.ReplaceAll(key, "_", " "))
	return tokens
}

func appendUnique(keys []string, key string) []string {
	for _, have := range keys {
		if have == key {
			return keys
		}
	}
	return append(keys, key)
}
