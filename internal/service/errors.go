package service

import "errors"

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrGameExists          = errors.New("game already exists")
	ErrGameFull            = errors.New("game is full")
	ErrNotSeated           = errors.New("player is not seated in this game")
	ErrAlreadyQueued       = errors.New("player already in queue")
	ErrDuplicateConnection = errors.New("connection already exists")
)
