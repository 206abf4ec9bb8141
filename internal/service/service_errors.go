package service

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found or expired")
	ErrSessionNotCompleted = errors.New("assessment is not completed yet")
	ErrLeadNotFound        = errors.New("lead not found")
)
