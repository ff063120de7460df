package services

import "errors"

// Domain errors raised before any write. Handlers translate them to HTTP
// status codes with errors.Is.
var (
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrFollowExists       = errors.New("already following this user")
	ErrFollowNotFound     = errors.New("follow relationship not found")
	ErrTargetUserNotFound = errors.New("target user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostTitleExists    = errors.New("post with this title already exists")
	ErrEmailExists        = errors.New("user with this email already registered")
)
