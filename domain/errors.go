package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller is not allowed to perform the action
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if the caller has no valid credentials
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrCacheMiss will throw if the requested key is not in the cache
	ErrCacheMiss = errors.New("cache miss")
)
