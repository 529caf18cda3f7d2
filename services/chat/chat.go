// File: services/chat/chat.go
package chat

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"servicebuddy/catalog"
	"servicebuddy/models"
	"servicebuddy/services/composer"
	"servicebuddy/services/eligibility"
	ai "servicebuddy/services/intelligence"
	"servicebuddy/services/intent"
	"servicebuddy/services/profile"
	"servicebuddy/utils"

	"go.uber.org/zap"
)

// ErrEmptyMessage is returned for blank input; the handler maps it to 400.
var ErrEmptyMessage = errors.New("message is required")

// anonymousSession is the bucket for requests that carry no session id.
const anonymousSession = "anonymous"

// generateTimeout bounds the single suspension point per request, the
// collaborator call.
const generateTimeout = 15 * time.Second

var eligibilityQuestionRe = regexp.MustCompile(`am i eligible|do i qualify|can i (?:get|claim)|eligible for`)

func (s *DefaultChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	mode := req.Mode
	if mode != models.ModeAdvanced {
		mode = models.ModeBasic
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = anonymousSession
	}

	sc := s.loadSession(ctx, sessionID)
	sc.Profile.Merge(profile.Extract(message))

	metas := intent.Meta(message)
	resp := &models.ChatResponse{Mode: mode, Services: []models.ServiceRecord{}}

	switch {
	case eligibilityQuestionRe.MatchString(strings.ToLower(message)) && sc.LastCategory != "":
		// Follow-up eligibility question about the services last shown.
		cat := sc.LastCategory
		services := catalog.Services(cat)
		result := eligibility.Evaluate(services[0], sc.Profile)
		resp.Intent = &cat
		resp.Services = services
		resp.Confidence = result.Confidence
		resp.Response = composer.Compose([]models.Category{cat}, services, &result, metas)

	case s.classifyAndCompose(message, metas, sc, resp):
		// Keyword hit; resp populated in place.

	default:
		s.fallback(ctx, req, sessionID, mode, message, metas, sc, resp)
	}

	s.saveSession(ctx, sessionID, sc)

	if req.SessionID != "" {
		if info, err := s.Limiter.Status(ctx, sessionID); err != nil {
			logger.Warn("chat: usage status unavailable", zap.Error(err))
		} else {
			resp.UsageInfo = &info
		}
	}
	return resp, nil
}

// classifyAndCompose handles the single-best-match path. Returns false
// when no category keyword matched.
func (s *DefaultChatService) classifyAndCompose(message string, metas []models.MetaCategory, sc *models.SessionContext, resp *models.ChatResponse) bool {
	cat, ok := intent.Classify(message)
	if !ok {
		return false
	}
	services := catalog.Services(cat)
	resp.Intent = &cat
	resp.Services = services
	resp.Confidence = intent.MatchConfidence(message, cat)
	resp.Response = composer.Compose([]models.Category{cat}, services, nil, metas)
	sc.LastCategory = cat
	return true
}

// fallback runs when no keyword matched: an AI reply in advanced mode if
// the quota allows, otherwise the static help text. AI failures degrade to
// the help text and are never surfaced as errors.
func (s *DefaultChatService) fallback(ctx context.Context, req models.ChatRequest, sessionID, mode, message string, metas []models.MetaCategory, sc *models.SessionContext, resp *models.ChatResponse) {
	logger := utils.GetLogger()
	resp.Response = composer.Compose(nil, nil, nil, metas)

	if mode != models.ModeAdvanced {
		return
	}
	gen := s.generatorFor(req.UserAPIKey)
	if gen == nil {
		return
	}

	allowed, err := s.Limiter.Allow(ctx, sessionID)
	if err != nil {
		// The quota is a soft gate; fail open rather than refuse service.
		logger.Warn("chat: usage limiter unavailable, allowing", zap.Error(err))
		allowed = true
	}
	if !allowed {
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	reply, err := gen.GenerateContent(genCtx, ai.BuildPrompt(message))
	if err != nil {
		logger.Warn("chat: AI collaborator failed, using static fallback", zap.Error(err))
		return
	}

	if err := s.Limiter.Record(ctx, sessionID); err != nil {
		logger.Warn("chat: failed to record AI usage", zap.Error(err))
	}

	resp.AIEnhanced = true
	resp.Response = reply + metaSuffix(metas)

	// Route the AI reply through the multi-match classifier so the
	// combined response can attach services from several categories.
	if cats := intent.ClassifyAll(reply); len(cats) > 0 {
		resp.Intent = &cats[0]
		resp.Services = catalog.ServicesForAll(cats)
		resp.Confidence = intent.MatchConfidence(reply, cats[0])
		sc.LastCategory = cats[0]
	}
}

func metaSuffix(metas []models.MetaCategory) string {
	// The composer owns the section wording; an empty compose call with
	// only metas yields HelpText, so extract just the suffix.
	full := composer.Compose(nil, nil, nil, metas)
	return strings.TrimPrefix(full, composer.HelpText)
}

func (s *DefaultChatService) generatorFor(userKey string) ai.Generator {
	if userKey != "" && s.GeneratorFactory != nil {
		gen, err := s.GeneratorFactory(userKey)
		if err != nil {
			utils.GetLogger().Warn("chat: invalid user API key", zap.Error(err))
			return nil
		}
		return gen
	}
	return s.Generator
}

func (s *DefaultChatService) loadSession(ctx context.Context, sessionID string) *models.SessionContext {
	sc, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Warn("chat: session load failed, starting fresh", zap.Error(err))
		return &models.SessionContext{}
	}
	return sc
}

func (s *DefaultChatService) saveSession(ctx context.Context, sessionID string, sc *models.SessionContext) {
	if err := s.Sessions.Set(ctx, sessionID, sc); err != nil {
		utils.GetLogger().Warn("chat: session save failed", zap.Error(err))
	}
}
