package service

import "errors"

// Failure classes shared by all services. Handlers map these onto HTTP
// statuses; anything unrecognized is reported as an internal failure.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrAlreadyReviewed    = errors.New("you have already reviewed this recipe")
	ErrRecipeInCollection = errors.New("recipe already in collection")
	ErrEmptyRecipeList    = errors.New("please provide recipe IDs")
)
