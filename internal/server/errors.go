package server

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotHost          = errors.New("only host can perform this action")
	ErrCannotRemoveSelf = errors.New("cannot remove yourself")
	ErrRoomActive       = errors.New("room already running")
	ErrAlreadyHost      = errors.New("player is already the host")

	ErrInsufficientPlayers  = errors.New("need at least 3 players")
	ErrInvalidImpostorCount = errors.New("number of impostors must be between 1 and player count minus one")
	ErrNoWordsAvailable     = errors.New("no word pairs available for this category")
	ErrDuplicateAssignment  = errors.New("duplicate player in word assignment")

	ErrRoundConflict           = errors.New("round transition already in progress")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique room code")
	ErrBackendUnavailable      = errors.New("backend unavailable")
)
