package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrProfileRequired    = errors.New("health profile required")
	ErrInvalidProfile     = errors.New("invalid health profile")
	ErrUnsupportedImage   = errors.New("unsupported image")
	ErrScanNotFound       = errors.New("scan not found")
)
