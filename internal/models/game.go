package models

import (
	"time"

	"github.com/google/uuid"
)

type GameState string

const (
	GameStateLoading  GameState = "loading"
	GameStateTutorial GameState = "tutorial"
	GameStatePlaying  GameState = "playing"
	GameStateGameOver GameState = "gameover"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Metrics are the three bounded values a run tries to keep above zero.
type Metrics struct {
	Accuracy  int `json:"accuracy"`
	Compute   int `json:"compute"`
	Stability int `json:"stability"`
}

type Outcome struct {
	Text    string  `json:"text"`
	Effects Metrics `json:"effects"`
}

type Scenario struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Left  Outcome `json:"left"`
	Right Outcome `json:"right"`
}

// GameSession is the persisted state of one player's run.
type GameSession struct {
	ID        uuid.UUID `json:"id"`
	State     GameState `json:"state"`
	Metrics   Metrics   `json:"metrics"`
	Epoch     int       `json:"epoch"`
	Run       int       `json:"run"`
	HighScore int       `json:"high_score"`
	Scenario  *Scenario `json:"scenario,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GameScore struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type ChoiceRequest struct {
	Direction Direction `json:"direction"`
}

type NewGameResponse struct {
	Session *GameSession `json:"session"`
	Token   string       `json:"token"`
}
