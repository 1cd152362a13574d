package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPostingNotFound     = errors.New("posting not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrScoreNotFound       = errors.New("score not found")
	ErrInternal            = errors.New("internal error")
)
