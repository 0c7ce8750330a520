package service

import "errors"

var (
	ErrEmptyMessage     = errors.New("message content is empty")
	ErrSessionNotFound  = errors.New("chat session not found")
	ErrInvalidMode      = errors.New("unknown session mode")
	ErrUnknownVoice     = errors.New("voice not present in catalog")
	ErrUnknownEventKind = errors.New("unknown automation event kind")
)
