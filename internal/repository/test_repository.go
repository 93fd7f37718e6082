package repository

import (
	"edulift_backend/internal/model"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) CreateTest(test *model.Test) error {
	return r.DB.Create(test).Error
}

func (r *TestRepository) FindTestByID(id string) (*model.Test, error) {
	var t model.Test
	err := r.DB.Where("id = ?", id).First(&t).Error
	return &t, err
}

func (r *TestRepository) ListTests() ([]model.Test, error) {
	var tests []model.Test
	err := r.DB.Order("created_at asc").Find(&tests).Error
	return tests, err
}

func (r *TestRepository) UpdateTestStatus(id string, status model.TestStatus) error {
	return r.DB.Model(&model.Test{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TestRepository) CountTests() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Test{}).Count(&total).Error
	return total, err
}

func (r *TestRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *TestRepository) ListQuestions() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Order("created_at asc").Find(&qs).Error
	return qs, err
}

func (r *TestRepository) ListQuestionsBySubject(subject string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("subject = ?", subject).Order("created_at asc").Find(&qs).Error
	return qs, err
}

func (r *TestRepository) FindQuestionsByIDs(ids []string) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *TestRepository) CountQuestions() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).Count(&total).Error
	return total, err
}

func (r *TestRepository) CreateResult(result *model.TestResult) error {
	return r.DB.Create(result).Error
}

func (r *TestRepository) ListResults() ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Order("date_taken asc").Find(&results).Error
	return results, err
}

func (r *TestRepository) ListResultsByTest(testID string) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Where("test_id = ?", testID).Order("date_taken asc").Find(&results).Error
	return results, err
}

func (r *TestRepository) ListRecentResults(limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.DB.Order("date_taken desc").Limit(limit).Find(&results).Error
	return results, err
}
