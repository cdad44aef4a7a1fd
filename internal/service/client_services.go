// Package service contains the client business logic that sits between the
// terminal UI, the local store and the recommendation backend adapter.
package service

import (
	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/store"
)

// ClientServices groups every client service.
type ClientServices struct {
	SessionService        SessionService
	RecommendationService RecommendationService
	ChatService           ChatService
	HistoryService        HistoryService
	ConversationService   ConversationService
	PreferencesService    PreferencesService
	HealthService         HealthService
	HealthJob             HealthJob

	// Streaming selects the streaming path; false uses Recommend.
	Streaming bool
	// StreamGuard keeps at most one recommendation stream open.
	StreamGuard *StreamGuard
}

// NewClientServices wires the services on top of storages and the backend
// adapter.
func NewClientServices(storages *store.ClientStorages, recoAdapter adapter.RecommendationAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(storages.SessionRepository, logger)
	healthSvc := NewHealthService(recoAdapter, cfg.Adapter.HealthTimeout, logger)

	return &ClientServices{
		SessionService:        sessionSvc,
		RecommendationService: NewRecommendationService(recoAdapter, sessionSvc, cfg.Adapter.BulkTimeout, logger),
		ChatService:           NewChatService(recoAdapter, cfg.Adapter.ChatTimeout, logger),
		HistoryService:        NewHistoryService(recoAdapter, cfg.App.SaveRemoteHistory, logger),
		ConversationService:   NewConversationService(storages.ConversationRepository, storages.RecentSearchRepository, sessionSvc, cfg.App.HistoryLimit, logger),
		PreferencesService:    NewPreferencesService(storages.PreferencesRepository, logger),
		HealthService:         healthSvc,
		HealthJob:             NewHealthJob(healthSvc),
		Streaming:             cfg.App.Streaming,
		StreamGuard:           NewStreamGuard(),
	}
}
