package service

import (
	"context"

	"mindshift-be/internal/constant"
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// IAutomationService relays app events to the outbound automation boundary.
type IAutomationService interface {
	PublishEvent(ctx context.Context, userId uuid.UUID, request *dto.PublishEventRequest) (*dto.PublishEventResponse, error)
}

type automationService struct {
	publisher EventPublisher
	logger    logger.ILogger
}

func NewAutomationService(publisher EventPublisher, log logger.ILogger) IAutomationService {
	return &automationService{
		publisher: publisher,
		logger:    log,
	}
}

func (as *automationService) PublishEvent(ctx context.Context, userId uuid.UUID, request *dto.PublishEventRequest) (*dto.PublishEventResponse, error) {
	if !constant.KnownEventKinds[request.Event] {
		return nil, ErrUnknownEventKind
	}

	delivered := as.publisher.Publish(request.Event, userId.String(), request.Data)
	return &dto.PublishEventResponse{Delivered: delivered}, nil
}
