package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrEmptyText     = errors.New("text must not be empty")
	ErrInvalidAmount = errors.New("amount must be a finite positive number")
	ErrEmptyMerchant = errors.New("merchant must not be empty")
	ErrPersistence   = errors.New("persistence failure")
)
