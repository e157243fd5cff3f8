package models

import (
	"sync"
	"time"
)

// Language is the detected language/register of a user message.
type Language string

const (
	LanguageHindi    Language = "hindi"
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

// Stage is the conversation state for one session.
type Stage string

const (
	StageIdle                 Stage = "idle"
	StageAwaitingSymptoms     Stage = "awaiting_symptoms"
	StageAwaitingLocation     Stage = "awaiting_location"
	StageAwaitingConfirmation Stage = "awaiting_confirmation"
	StageEmergency            Stage = "emergency"
)

// SymptomTag is a canonical symptom identifier covering all of its
// multilingual surface forms.
type SymptomTag string

const (
	SymptomFever       SymptomTag = "FEVER"
	SymptomHeadache    SymptomTag = "HEADACHE"
	SymptomCold        SymptomTag = "COLD"
	SymptomCough       SymptomTag = "COUGH"
	SymptomStomachPain SymptomTag = "STOMACH_PAIN"
	SymptomBodyAche    SymptomTag = "BODY_ACHE"
	SymptomSoreThroat  SymptomTag = "SORE_THROAT"
	SymptomVomiting    SymptomTag = "VOMITING"
	SymptomDiarrhea    SymptomTag = "DIARRHEA"
	SymptomWeakness    SymptomTag = "WEAKNESS"
	SymptomSkinRash    SymptomTag = "SKIN_RASH"
)

// SessionContext holds the per-user conversation state. It is owned by the
// SessionStore; the dialogue engine must take the lock for the duration of
// one message and not retain the pointer afterward.
type SessionContext struct {
	mu sync.Mutex

	ID                     string
	Language               Language
	Stage                  Stage
	Symptoms               []SymptomTag
	PendingLocationRequest bool
	LastActivity           time.Time
	CreatedAt              time.Time
}

func NewSessionContext(id string) *SessionContext {
	now := time.Now()
	return &SessionContext{
		ID:           id,
		Language:     LanguageEnglish,
		Stage:        StageIdle,
		LastActivity: now,
		CreatedAt:    now,
	}
}

// Lock serializes message processing for one user.
func (s *SessionContext) Lock() { s.mu.Lock() }

func (s *SessionContext) Unlock() { s.mu.Unlock() }

// AddSymptoms merges tags into the accumulated set, preserving insertion
// order and dropping duplicates. It returns the tags that were actually new.
func (s *SessionContext) AddSymptoms(tags []SymptomTag) []SymptomTag {
	var added []SymptomTag
	for _, tag := range tags {
		if s.hasSymptom(tag) {
			continue
		}
		s.Symptoms = append(s.Symptoms, tag)
		added = append(added, tag)
	}
	return added
}

func (s *SessionContext) hasSymptom(tag SymptomTag) bool {
	for _, have := range s.Symptoms {
		if have == tag {
			return true
		}
	}
	return false
}

// HasSymptoms reports whether any symptoms were accumulated this session.
func (s *SessionContext) HasSymptoms() bool {
	return len(s.Symptoms) > 0
}
