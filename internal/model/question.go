package model

import "encoding/json"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// Question is immutable after creation; the adaptive selector and the grader
// only ever read it.
// swagger:model Question
type Question struct {
	UUIDBase
	Question      string          `gorm:"type:text;not null" json:"question"`
	Type          QuestionType    `gorm:"size:50;not null" json:"type"`
	Options       json.RawMessage `gorm:"type:json" json:"options"`
	CorrectAnswer string          `gorm:"type:text;not null" json:"correct_answer"`
	Difficulty    Difficulty      `gorm:"size:20;not null;index" json:"difficulty"`
	Subject       string          `gorm:"size:100;not null;index" json:"subject"`
	Topic         string          `gorm:"size:100" json:"topic"`
	Points        int             `gorm:"default:1" json:"points"`
}

func (Question) TableName() string {
	return "questions"
}
