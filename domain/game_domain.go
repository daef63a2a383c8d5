package domain

import (
	"errors"
)

const (
	GameSequencing = "sequencing"
	GameQuiz       = "quiz"
	GameMatching   = "matching"
	GameTrueFalse  = "true_false"
)

var (
	MessageSuccessGetGames    = "games retrieved successfully"
	MessageSuccessGetGame     = "game content retrieved successfully"
	MessageSuccessCheckAnswer = "answer checked"

	MessageFailedGetGame     = "failed to retrieve game content"
	MessageFailedCheckAnswer = "failed to check answer"

	ErrGameNotFound     = errors.New("game not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidAnswer    = errors.New("answer does not match the question format")
)

type (
	GameSummary struct {
		Kind        string `json:"kind"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	GameCard struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}

	// SequencingGame asks the player to order life-cycle stages. Stages are
	// served shuffled; the answer is the ordered list of stage IDs.
	SequencingGame struct {
		Prompt string     `json:"prompt"`
		Stages []GameCard `json:"stages"`
	}

	QuizQuestion struct {
		ID      string   `json:"id"`
		Text    string   `json:"text"`
		Options []string `json:"options"`
	}

	// MatchingGame pairs plant parts with their functions. Both sides are
	// served shuffled; an answer names a part and the function matched to it.
	MatchingGame struct {
		Prompt    string     `json:"prompt"`
		Parts     []GameCard `json:"parts"`
		Functions []GameCard `json:"functions"`
	}

	TrueFalseQuestion struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}

	GameAnswerRequest struct {
		QuestionID string   `json:"question_id"`
		Option     int      `json:"option"`
		Order      []string `json:"order,omitempty"`
		MatchID    string   `json:"match_id,omitempty"`
		Claim      *bool    `json:"claim,omitempty"`
	}

	GameAnswerResponse struct {
		Correct     bool   `json:"correct"`
		Explanation string `json:"explanation,omitempty"`
	}
)
