package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller may not touch the item
	ErrForbidden = errors.New("you do not have permission to do this")
	// ErrUnauthorized will throw if the credentials or the token are invalid
	ErrUnauthorized = errors.New("invalid username or password")
	// ErrCacheMiss is returned by caches when the key is absent
	ErrCacheMiss = errors.New("cache miss")
	// ErrMalformedBlog marks a stored blog that breaks the record invariants
	ErrMalformedBlog = errors.New("malformed blog record")
)
