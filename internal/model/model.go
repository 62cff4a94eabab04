package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Status = string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// MoveRecord is one entry of the append-only move audit log.
// Written after every successful move, never read back by game logic.
type MoveRecord struct {
	ID        uuid.UUID
	GameCode  string
	Player    string
	MoveType  string
	MoveData  json.RawMessage
	CreatedAt time.Time
}

func NewMoveRecord(gameCode, player, moveType string, moveData any) MoveRecord {
	raw, _ := json.Marshal(moveData)
	return MoveRecord{
		ID:        uuid.New(),
		GameCode:  gameCode,
		Player:    player,
		MoveType:  moveType,
		MoveData:  raw,
		CreatedAt: time.Now(),
	}
}
