package model

import (
	"encoding/json"
	"time"
)

// AnswerRecord is one entry of a test session's performance history. Histories
// are append-only; the adaptive selector re-reads the full sequence on every
// selection call.
type AnswerRecord struct {
	Correct    bool       `json:"correct"`
	Difficulty Difficulty `json:"difficulty"`
	Subject    string     `json:"subject"`
	Topic      string     `json:"topic"`
}

// GradedAnswer is the per-question breakdown stored with a test result.
type GradedAnswer struct {
	QuestionID    string  `json:"question_id"`
	StudentAnswer string  `json:"student_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	Correct       bool    `json:"correct"`
	PointsEarned  float64 `json:"points_earned"`
	MaxPoints     int     `json:"max_points"`
}

// TestResult is append-only once created.
// swagger:model TestResult
type TestResult struct {
	UUIDBase
	TestID                string          `gorm:"type:varchar(36);not null;index" json:"test_id"`
	UserID                uint            `gorm:"index" json:"user_id"`
	StudentName           string          `gorm:"size:100" json:"student_name"`
	Score                 float64         `gorm:"not null" json:"score"`
	TotalPoints           int             `gorm:"not null" json:"total_points"`
	CompletionTime        int             `gorm:"default:0" json:"completion_time"` // minutes
	AccuracyRate          float64         `json:"accuracy_rate"`
	DifficultyProgression json.RawMessage `gorm:"type:json" json:"difficulty_progression"` // JSON: []Difficulty
	LearningInsights      json.RawMessage `gorm:"type:json" json:"learning_insights"`      // JSON: []string
	GradedAnswers         json.RawMessage `gorm:"type:json" json:"graded_answers"`         // JSON: []GradedAnswer
	DateTaken             time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"date_taken"`
}

func (TestResult) TableName() string {
	return "test_results"
}
