package repository

import "errors"

var (
	// ErrNotFound is returned when a record is not present in a store.
	ErrNotFound = errors.New("record not found")

	// ErrNegativeBalance is returned when a points adjustment would drop a
	// user's balance below zero.
	ErrNegativeBalance = errors.New("adjustment would make balance negative")
)
