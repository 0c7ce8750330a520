package service

import (
	"context"
	"time"

	"mindshift-be/internal/dto"
	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/specification"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/pkg/speech"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// IVoiceService exposes the voice catalog, the per-user preference, and
// control over the active utterance.
type IVoiceService interface {
	ListVoices(ctx context.Context) []*dto.VoiceProfileResponse
	SetPreference(ctx context.Context, userId uuid.UUID, request *dto.SetVoicePreferenceRequest) (*dto.VoicePreferenceResponse, error)
	GetPreference(ctx context.Context, userId uuid.UUID) (*dto.VoicePreferenceResponse, error)
	PreferredVoice(ctx context.Context, userId uuid.UUID) entity.VoiceProfile
	SpeechState(ctx context.Context) *dto.SpeechStateResponse
	StopSpeaking(ctx context.Context)
}

type voiceService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    speech.Catalog
	speaker    *speech.Speaker
	cache      *gocache.Cache
	logger     logger.ILogger
}

func NewVoiceService(
	uowFactory unitofwork.RepositoryFactory,
	catalog speech.Catalog,
	speaker *speech.Speaker,
	log logger.ILogger,
) IVoiceService {
	return &voiceService{
		uowFactory: uowFactory,
		catalog:    catalog,
		speaker:    speaker,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
		logger:     log,
	}
}

func (vs *voiceService) ListVoices(ctx context.Context) []*dto.VoiceProfileResponse {
	voices := vs.catalog.Voices()
	response := make([]*dto.VoiceProfileResponse, 0, len(voices))
	for _, v := range voices {
		response = append(response, &dto.VoiceProfileResponse{
			Name:   v.Name,
			Gender: v.Gender,
		})
	}
	return response
}

func (vs *voiceService) SetPreference(ctx context.Context, userId uuid.UUID, request *dto.SetVoicePreferenceRequest) (*dto.VoicePreferenceResponse, error) {
	voice, ok := speech.FindVoice(vs.catalog, request.VoiceName)
	if !ok {
		return nil, ErrUnknownVoice
	}

	now := time.Now()
	pref := entity.VoicePreference{
		Id:        uuid.New(),
		UserId:    userId,
		VoiceName: voice.Name,
		CreatedAt: now,
		UpdatedAt: &now,
	}

	uow := vs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VoicePreferenceRepository().Upsert(ctx, &pref); err != nil {
		return nil, err
	}

	vs.cache.Set(userId.String(), voice, gocache.DefaultExpiration)

	return &dto.VoicePreferenceResponse{
		VoiceName: voice.Name,
		Gender:    voice.Gender,
	}, nil
}

func (vs *voiceService) GetPreference(ctx context.Context, userId uuid.UUID) (*dto.VoicePreferenceResponse, error) {
	voice := vs.PreferredVoice(ctx, userId)
	return &dto.VoicePreferenceResponse{
		VoiceName: voice.Name,
		Gender:    voice.Gender,
	}, nil
}

// PreferredVoice resolves the user's stored selection, falling back to the
// catalog default. Lookups are cached since every spoken reply needs one.
func (vs *voiceService) PreferredVoice(ctx context.Context, userId uuid.UUID) entity.VoiceProfile {
	if cached, found := vs.cache.Get(userId.String()); found {
		return cached.(entity.VoiceProfile)
	}

	voice := speech.DefaultVoice(vs.catalog)

	uow := vs.uowFactory.NewUnitOfWork(ctx)
	pref, err := uow.VoicePreferenceRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		vs.logger.Warn("voice", "preference lookup failed, using default", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return voice
	}
	if pref != nil {
		if found, ok := speech.FindVoice(vs.catalog, pref.VoiceName); ok {
			voice = found
		}
	}

	vs.cache.Set(userId.String(), voice, gocache.DefaultExpiration)
	return voice
}

func (vs *voiceService) SpeechState(ctx context.Context) *dto.SpeechStateResponse {
	return &dto.SpeechStateResponse{Speaking: vs.speaker.Speaking()}
}

func (vs *voiceService) StopSpeaking(ctx context.Context) {
	vs.speaker.Stop()
}
