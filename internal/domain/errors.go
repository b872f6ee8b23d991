package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrPlacementNotFound = errors.New("profile-card not found")
	ErrPlacementExists   = errors.New("card already exists at this position")
	ErrForbidden         = errors.New("forbidden")
	ErrNoFields          = errors.New("no fields to update")
	ErrEmptyText         = errors.New("text is required")
)
