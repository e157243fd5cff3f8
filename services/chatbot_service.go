package services

import (
	"context"
	"log"
	"strings"
	"time"

	"swasthyaguide-backend/models"
	"swasthyaguide-backend/utils"
)

// MessageLogger persists conversation exchanges. Logging is write-only and
// best-effort; a nil logger disables it.
type MessageLogger interface {
	LogExchange(ctx context.Context, record *models.MessageRecord) error
}

// ChatbotService is the dialogue engine. It owns the per-message pipeline:
// language detection, emergency screening, symptom extraction, location
// resolution, and stage transitions. It always returns a reply string; user
// input is never an error.
type ChatbotService struct {
	detector    *utils.LanguageDetector
	symptoms    *utils.SymptomExtractor
	emergencies *utils.EmergencyDetector
	resolver    *utils.LocationResolver
	index       *ClinicIndex
	sessions    *SessionStore
	composer    *ResponseComposer
	logger      MessageLogger
}

func NewChatbotService(
	detector *utils.LanguageDetector,
	symptoms *utils.SymptomExtractor,
	emergencies *utils.EmergencyDetector,
	resolver *utils.LocationResolver,
	index *ClinicIndex,
	sessions *SessionStore,
	composer *ResponseComposer,
	logger MessageLogger,
) *ChatbotService {
	return &ChatbotService{
		detector:    detector,
		symptoms:    symptoms,
		emergencies: emergencies,
		resolver:    resolver,
		index:       index,
		sessions:    sessions,
		composer:    composer,
		logger:      logger,
	}
}

// Short confirmations in all supported registers. Only consulted for messages
// of at most three tokens so that "yes I have fever since morning" is not
// treated as a bare confirmation.
var affirmativeWords = map[string]struct{}{
	"yes": {}, "yeah": {}, "yep": {}, "sure": {}, "ok": {}, "okay": {},
	"please": {}, "haan": {}, "ha": {}, "han": {}, "ji": {}, "zaroor": {},
	"chahiye": {}, "chahie": {}, "kripya": {}, "batao": {}, "bataye": {},
	"bataiye": {}, "हाँ": {}, "हां": {}, "जी": {},
}

var greetingWords = map[string]struct{}{
	"hi": {}, "hii": {}, "hello": {}, "hey": {}, "hlo": {},
	"namaste": {}, "namaskar": {}, "नमस्ते": {}, "नमस्कार": {},
}

// ProcessMessage runs one user message through the pipeline and returns the
// reply. Messages for the same session are serialized on the session lock.
func (s *ChatbotService) ProcessMessage(sessionID, text string, channel models.MessageChannel) string {
	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()
	session.LastActivity = time.Now()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return s.reply(session, channel, trimmed, s.composer.AskForMessage(session.Language))
	}

	s.updateLanguage(session, trimmed)
	lang := session.Language

	// Emergency screening pre-empts everything, including the location stage.
	if s.emergencies.IsEmergency(trimmed) {
		session.Stage = models.StageEmergency
		reply := s.composer.Emergency(lang)
		s.resetSession(session)
		return s.reply(session, channel, trimmed, reply)
	}

	tags := s.symptoms.Extract(trimmed)

	if session.Stage == models.StageAwaitingLocation {
		return s.reply(session, channel, trimmed, s.handleAwaitingLocation(session, trimmed, tags))
	}

	return s.reply(session, channel, trimmed, s.handleDefault(session, trimmed, tags))
}

// handleAwaitingLocation interprets a message while a location is pending.
// Symptom text is never mistaken for a failed location parse: it is merged
// and re-confirmed, and the stage stays put.
func (s *ChatbotService) handleAwaitingLocation(session *models.SessionContext, text string, tags []models.SymptomTag) string {
	lang := session.Language

	if len(tags) > 0 {
		session.AddSymptoms(tags)
		return s.composer.ReconfirmSymptoms(lang, session.Symptoms)
	}

	if s.isAffirmative(text) {
		return s.composer.AskLocation(lang)
	}

	query := s.resolver.Resolve(text)
	if query == nil {
		return s.composer.LocationRetry(lang)
	}

	clinics := s.index.Lookup(query)
	session.Stage = models.StageIdle
	session.PendingLocationRequest = false
	if len(clinics) == 0 {
		return s.composer.NoClinics(lang, text)
	}
	return s.composer.ClinicResults(lang, s.index.LocationLabel(clinics), clinics)
}

// handleDefault covers the idle, awaiting-symptoms, and awaiting-confirmation
// stages.
func (s *ChatbotService) handleDefault(session *models.SessionContext, text string, tags []models.SymptomTag) string {
	lang := session.Language

	if session.Stage == models.StageAwaitingConfirmation && len(tags) == 0 && s.isAffirmative(text) {
		session.Stage = models.StageAwaitingLocation
		session.PendingLocationRequest = true
		return s.composer.AskLocation(lang)
	}

	if len(tags) > 0 {
		session.AddSymptoms(tags)
		session.Stage = models.StageAwaitingLocation
		session.PendingLocationRequest = true
		return s.composer.GuidanceWithLocationPrompt(lang, tags)
	}

	if s.isGreeting(text) {
		session.Stage = models.StageAwaitingSymptoms
		return s.composer.Greeting(lang)
	}

	// Location-shaped input outside the location stage still yields clinics:
	// a bare pincode or structured key always counts, free text only when it
	// actually matches the dataset.
	if query := s.resolver.Resolve(text); query != nil {
		switch query.Kind {
		case models.QueryPincode, models.QueryLocationKey:
			clinics := s.index.Lookup(query)
			if len(clinics) == 0 {
				return s.composer.NoClinics(lang, text)
			}
			return s.composer.ClinicResults(lang, s.index.LocationLabel(clinics), clinics)
		case models.QueryArea:
			if clinics := s.index.Lookup(query); len(clinics) > 0 {
				return s.composer.ClinicResults(lang, s.index.LocationLabel(clinics), clinics)
			}
		}
	}

	if session.HasSymptoms() {
		session.Stage = models.StageAwaitingConfirmation
		return s.composer.OfferClinics(lang, session.Symptoms)
	}

	return s.composer.GeneralTips(lang)
}

// ProcessImageMessage handles a photo plus optional caption. The analysis
// comes pre-computed from the image service; a nil analysis yields the
// could-not-read reply. Caption text still goes through emergency screening
// and symptom extraction.
func (s *ChatbotService) ProcessImageMessage(sessionID, caption string, analysis *models.ImageAnalysis, channel models.MessageChannel) string {
	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()
	session.LastActivity = time.Now()

	caption = strings.TrimSpace(caption)
	if caption != "" {
		s.updateLanguage(session, caption)

		if s.emergencies.IsEmergency(caption) {
			session.Stage = models.StageEmergency
			reply := s.composer.Emergency(session.Language)
			s.resetSession(session)
			return s.reply(session, channel, "[image] "+caption, reply)
		}

		session.AddSymptoms(s.symptoms.Extract(caption))
	}

	reply := s.composer.ImageAdvice(session.Language, analysis)
	return s.reply(session, channel, "[image] "+caption, reply)
}

// ProcessVoiceMessage handles a transcribed voice note. An empty transcript
// means transcription failed.
func (s *ChatbotService) ProcessVoiceMessage(sessionID, transcript string, channel models.MessageChannel) string {
	if strings.TrimSpace(transcript) == "" {
		session := s.sessions.GetOrCreate(sessionID)
		session.Lock()
		defer session.Unlock()
		session.LastActivity = time.Now()
		return s.reply(session, channel, "[voice]", s.composer.VoiceUnreadable(session.Language))
	}
	return s.ProcessMessage(sessionID, transcript, channel)
}

// updateLanguage applies sticky language: a hindi or hinglish session only
// flips back to english when the message carries a clear English signal, so a
// terse follow-up like "226010" or "ok" keeps the conversation's language.
func (s *ChatbotService) updateLanguage(session *models.SessionContext, text string) {
	detected := s.detector.Detect(text)
	if detected == models.LanguageEnglish &&
		session.Language != models.LanguageEnglish &&
		s.detector.EnglishSignal(text) < 2 {
		return
	}
	session.Language = detected
}

func (s *ChatbotService) resetSession(session *models.SessionContext) {
	session.Stage = models.StageIdle
	session.PendingLocationRequest = false
	session.Symptoms = nil
}

func (s *ChatbotService) isAffirmative(text string) bool {
	tokens := utils.Tokenize(text)
	if len(tokens) == 0 || len(tokens) > 3 {
		return false
	}
	for _, t := range tokens {
		if _, ok := affirmativeWords[t]; ok {
			return true
		}
	}
	return false
}

func (s *ChatbotService) isGreeting(text string) bool {
	tokens := utils.Tokenize(text)
	if len(tokens) == 0 || len(tokens) > 4 {
		return false
	}
	for _, t := range tokens {
		if _, ok := greetingWords[t]; ok {
			return true
		}
	}
	return false
}

// SessionState returns the current language and stage for a session,
// creating it on first contact. Transport layers use it to echo state and to
// hint the speech recognizer.
func (s *ChatbotService) SessionState(sessionID string) (models.Language, models.Stage) {
	session := s.sessions.GetOrCreate(sessionID)
	session.Lock()
	defer session.Unlock()
	return session.Language, session.Stage
}

// ActiveSessions reports the number of live sessions.
func (s *ChatbotService) ActiveSessions() int {
	return s.sessions.Count()
}

// reply records the exchange and returns the reply text. Persistence is
// fire-and-forget so a slow or absent database never delays the user.
func (s *ChatbotService) reply(session *models.SessionContext, channel models.MessageChannel, userMessage, botResponse string) string {
	if s.logger != nil {
		record := &models.MessageRecord{
			SessionID:   session.ID,
			UserMessage: userMessage,
			BotResponse: botResponse,
			Language:    session.Language,
			Stage:       session.Stage,
			Channel:     channel,
			Timestamp:   time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.logger.LogExchange(ctx, record); err != nil {
				log.Printf("Failed to log conversation exchange: %v", err)
			}
		}()
	}
	return botResponse
}
