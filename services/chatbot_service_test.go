package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthyaguide-backend/data"
	"swasthyaguide-backend/models"
	"swasthyaguide-backend/utils"
)

func newTestChatbot(t *testing.T) (*ChatbotService, *SessionStore) {
	t.Helper()

	symptoms := utils.NewSymptomExtractor()
	emergencies := utils.NewEmergencyDetector()
	store := NewSessionStore(30 * time.Minute)
	t.Cleanup(store.Stop)

	entries, err := data.Load()
	require.NoError(t, err)

	svc := NewChatbotService(
		utils.NewLanguageDetector(),
		symptoms,
		emergencies,
		utils.NewLocationResolver(symptoms, emergencies),
		NewClinicIndex(entries),
		store,
		NewResponseComposer(),
		nil,
	)
	return svc, store
}

func TestChatbot_SymptomLeadsToLocationPrompt(t *testing.T) {
	svc, store := newTestChatbot(t)

	reply := svc.ProcessMessage("s1", "I have fever", models.ChannelWeb)

	assert.Contains(t, reply, "fever")
	assert.Contains(t, reply, "pincode")

	session := store.GetOrCreate("s1")
	assert.Equal(t, models.StageAwaitingLocation, session.Stage)
	assert.Equal(t, []models.SymptomTag{models.SymptomFever}, session.Symptoms)
	assert.True(t, session.PendingLocationRequest)
}

func TestChatbot_SymptomWhileAwaitingLocationIsNotMisparsed(t *testing.T) {
	svc, store := newTestChatbot(t)

	svc.ProcessMessage("s2", "I have fever", models.ChannelWeb)
	reply := svc.ProcessMessage("s2", "mujhe khansi bhi hai", models.ChannelWeb)

	// The reply acknowledges both symptoms and re-asks for the location; it
	// must not read like a failed location parse.
	assert.Contains(t, reply, "bukhar")
	assert.Contains(t, reply, "khansi")
	assert.NotContains(t, reply, "samajh nahi paya")

	session := store.GetOrCreate("s2")
	assert.Equal(t, models.StageAwaitingLocation, session.Stage)
	assert.Equal(t,
		[]models.SymptomTag{models.SymptomFever, models.SymptomCough},
		session.Symptoms)
}

func TestChatbot_PartialCityNameResolves(t *testing.T) {
	svc, store := newTestChatbot(t)

	svc.ProcessMessage("s3", "I have fever", models.ChannelWeb)
	reply := svc.ProcessMessage("s3", "Lucknow", models.ChannelWeb)

	assert.Contains(t, reply, "Arogya Health Centre")

	session := store.GetOrCreate("s3")
	assert.Equal(t, models.StageIdle, session.Stage)
	assert.False(t, session.PendingLocationRequest)
}

func TestChatbot_BarePincodeInIdleReturnsClinics(t *testing.T) {
	svc, store := newTestChatbot(t)

	reply := svc.ProcessMessage("s4", "226010", models.ChannelWeb)

	assert.Contains(t, reply, "Arogya Health Centre")
	assert.Equal(t, models.StageIdle, store.GetOrCreate("s4").Stage)
}

func TestChatbot_EmergencyResetsSession(t *testing.T) {
	svc, store := newTestChatbot(t)

	reply := svc.ProcessMessage("s5", "mujhe chest pain ho raha hai", models.ChannelWeb)

	assert.Contains(t, reply, "108")

	session := store.GetOrCreate("s5")
	assert.Equal(t, models.StageIdle, session.Stage)
	assert.False(t, session.PendingLocationRequest)
	assert.Empty(t, session.Symptoms)
}

func TestChatbot_EmergencyPreemptsLocationStage(t *testing.T) {
	svc, store := newTestChatbot(t)

	svc.ProcessMessage("s6", "I have fever", models.ChannelWeb)
	reply := svc.ProcessMessage("s6", "seene mein dard ho raha hai", models.ChannelWeb)

	assert.Contains(t, reply, "108")
	assert.Equal(t, models.StageIdle, store.GetOrCreate("s6").Stage)
}

func TestChatbot_GreetingFlow(t *testing.T) {
	svc, store := newTestChatbot(t)

	reply := svc.ProcessMessage("s7", "namaste", models.ChannelWeb)

	assert.Contains(t, reply, "swagat")
	assert.Equal(t, models.StageAwaitingSymptoms, store.GetOrCreate("s7").Stage)
}

func TestChatbot_ConfirmationFlow(t *testing.T) {
	svc, store := newTestChatbot(t)

	// Symptom, then location, then a non-location follow-up: the engine
	// offers clinics again and a bare "yes" re-opens the location stage.
	svc.ProcessMessage("s8", "I have fever", models.ChannelWeb)
	svc.ProcessMessage("s8", "Hazratganj", models.ChannelWeb)
	svc.ProcessMessage("s8", "thank you doctor sahib", models.ChannelWeb)
	assert.Equal(t, models.StageAwaitingConfirmation, store.GetOrCreate("s8").Stage)

	reply := svc.ProcessMessage("s8", "yes", models.ChannelWeb)
	assert.Contains(t, reply, "pincode")
	assert.Equal(t, models.StageAwaitingLocation, store.GetOrCreate("s8").Stage)
}

func TestChatbot_UnknownLocationRetries(t *testing.T) {
	svc, store := newTestChatbot(t)

	svc.ProcessMessage("s9", "I have fever", models.ChannelWeb)
	reply := svc.ProcessMessage("s9", "Mumbai", models.ChannelWeb)

	// A resolvable area with no dataset match ends the location stage with
	// the no-results reply.
	assert.Contains(t, reply, "Mumbai")
	assert.Equal(t, models.StageIdle, store.GetOrCreate("s9").Stage)
}

func TestChatbot_StickyLanguage(t *testing.T) {
	svc, _ := newTestChatbot(t)

	svc.ProcessMessage("s10", "mujhe bukhar hai", models.ChannelWeb)
	// A bare pincode carries no English signal, so the session stays
	// Hinglish and the clinic list is rendered in Hinglish.
	reply := svc.ProcessMessage("s10", "226010", models.ChannelWeb)

	assert.Contains(t, reply, "ke paas ke clinic")
}

func TestChatbot_HindiReplies(t *testing.T) {
	svc, store := newTestChatbot(t)

	reply := svc.ProcessMessage("s11", "मुझे बुखार है", models.ChannelWeb)

	assert.Contains(t, reply, "बुखार")
	session := store.GetOrCreate("s11")
	assert.Equal(t, models.LanguageHindi, session.Language)
	assert.Equal(t, []models.SymptomTag{models.SymptomFever}, session.Symptoms)
}

func TestChatbot_EmptyMessage(t *testing.T) {
	svc, _ := newTestChatbot(t)

	reply := svc.ProcessMessage("s12", "   ", models.ChannelWeb)
	assert.Contains(t, reply, "send your message")
}

func TestChatbot_GeneralTipsWithoutSymptoms(t *testing.T) {
	svc, _ := newTestChatbot(t)

	reply := svc.ProcessMessage("s13", "tell me something about health", models.ChannelWeb)
	assert.Contains(t, reply, "health tips")
}

func TestChatbot_VoiceMessage(t *testing.T) {
	svc, store := newTestChatbot(t)

	t.Run("transcript goes through the text pipeline", func(t *testing.T) {
		reply := svc.ProcessVoiceMessage("v1", "mujhe bukhar hai", models.ChannelWhatsApp)
		assert.Contains(t, reply, "bukhar")
		assert.Equal(t, models.StageAwaitingLocation, store.GetOrCreate("v1").Stage)
	})

	t.Run("empty transcript yields the fallback", func(t *testing.T) {
		reply := svc.ProcessVoiceMessage("v2", "", models.ChannelWhatsApp)
		assert.Contains(t, reply, "voice message")
	})
}

func TestChatbot_ImageMessage(t *testing.T) {
	svc, store := newTestChatbot(t)

	t.Run("analysis is rendered and caption symptoms recorded", func(t *testing.T) {
		reply := svc.ProcessImageMessage("i1", "yeh rash kya hai",
			&models.ImageAnalysis{Condition: "skin lesion", Confidence: 0.87},
			models.ChannelWhatsApp)
		assert.Contains(t, reply, "skin lesion")
		assert.Contains(t, store.GetOrCreate("i1").Symptoms, models.SymptomSkinRash)
	})

	t.Run("nil analysis yields the could-not-read reply", func(t *testing.T) {
		reply := svc.ProcessImageMessage("i2", "", nil, models.ChannelWhatsApp)
		assert.Contains(t, reply, "photo")
	})

	t.Run("emergency caption pre-empts the analysis", func(t *testing.T) {
		reply := svc.ProcessImageMessage("i3", "severe bleeding from the wound",
			&models.ImageAnalysis{Condition: "wound", Confidence: 0.9},
			models.ChannelWhatsApp)
		assert.Contains(t, reply, "108")
	})
}
