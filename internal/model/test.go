package model

type TestStatus string

const (
	TestDraft     TestStatus = "draft"
	TestPublished TestStatus = "published"
)

// swagger:model Test
type Test struct {
	UUIDBase
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Subject         string     `gorm:"size:100;not null;index" json:"subject"`
	Duration        int        `gorm:"default:60" json:"duration"` // minutes
	TotalQuestions  int        `gorm:"default:5" json:"total_questions"`
	DifficultyLevel Difficulty `gorm:"size:20;default:'medium'" json:"difficulty_level"`
	Adaptive        bool       `gorm:"default:true" json:"adaptive"`
	Status          TestStatus `gorm:"size:20;default:'draft'" json:"status"`
}

func (Test) TableName() string {
	return "tests"
}
