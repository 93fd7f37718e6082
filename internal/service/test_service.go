package service

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"sync"
	"time"

	"edulift_backend/internal/model"
	"edulift_backend/internal/repository"
	"edulift_backend/internal/util"
	"edulift_backend/pkg/logger"
	"edulift_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionStore keeps the per-user, per-test adaptive performance history that
// spans the requests of one attempt.
type SessionStore interface {
	History(ctx context.Context, userID uint, testID string) ([]model.AnswerRecord, error)
	Append(ctx context.Context, userID uint, testID string, records []model.AnswerRecord) error
	Reset(ctx context.Context, userID uint, testID string) error
}

// TestService owns test/question management and the submission pipeline:
// adaptive question delivery, automated grading and learning insights. The
// random source is injected so question sampling is reproducible in tests.
type TestService struct {
	Repo     *repository.TestRepository
	Sessions SessionStore

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTestService(repo *repository.TestRepository, sessions SessionStore, rng *rand.Rand) *TestService {
	return &TestService{
		Repo:     repo,
		Sessions: sessions,
		rng:      rng,
	}
}

type TestRequest struct {
	Title           string           `json:"title" binding:"required"`
	Description     string           `json:"description"`
	Subject         string           `json:"subject" binding:"required"`
	Duration        int              `json:"duration"`
	TotalQuestions  int              `json:"total_questions"`
	DifficultyLevel model.Difficulty `json:"difficulty_level"`
	Adaptive        *bool            `json:"adaptive"`
	Status          model.TestStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type QuestionRequest struct {
	Question      string             `json:"question" binding:"required"`
	Type          model.QuestionType `json:"type" binding:"required"`
	Options       json.RawMessage    `json:"options"`
	CorrectAnswer string             `json:"correct_answer" binding:"required"`
	Difficulty    model.Difficulty   `json:"difficulty"`
	Subject       string             `json:"subject" binding:"required"`
	Topic         string             `json:"topic"`
	Points        int                `json:"points"`
}

// SubmittedAnswer pairs a question id with the raw student answer. Submission
// order is preserved; it drives the difficulty progression and the recency
// window of the insight generator.
type SubmittedAnswer struct {
	QuestionID string      `json:"question_id" binding:"required"`
	Answer     interface{} `json:"answer"`
}

type SubmitTestRequest struct {
	TestID         string            `json:"test_id" binding:"required"`
	Answers        []SubmittedAnswer `json:"answers" binding:"required"`
	CompletionTime int               `json:"completion_time"`
	StudentName    string            `json:"student_name"`
}

// StudentQuestion is the question view served to test takers, without the
// correct answer.
type StudentQuestion struct {
	ID         string             `json:"id"`
	Question   string             `json:"question"`
	Type       model.QuestionType `json:"type"`
	Options    json.RawMessage    `json:"options"`
	Difficulty model.Difficulty   `json:"difficulty"`
	Subject    string             `json:"subject"`
	Topic      string             `json:"topic"`
	Points     int                `json:"points"`
}

func (s *TestService) ListTests() ([]model.Test, error) {
	return s.Repo.ListTests()
}

func (s *TestService) CreateTest(req TestRequest) (*model.Test, error) {
	test := newTestFromRequest(req)
	if err := s.Repo.CreateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}

// newTestFromRequest applies the creation defaults: 60 minutes, 5 questions,
// medium difficulty, adaptive delivery, draft status.
func newTestFromRequest(req TestRequest) *model.Test {
	test := &model.Test{
		Title:           req.Title,
		Description:     req.Description,
		Subject:         req.Subject,
		Duration:        req.Duration,
		TotalQuestions:  req.TotalQuestions,
		DifficultyLevel: req.DifficultyLevel,
		Adaptive:        true,
		Status:          req.Status,
	}
	if test.Duration == 0 {
		test.Duration = 60
	}
	if test.TotalQuestions == 0 {
		test.TotalQuestions = 5
	}
	if test.DifficultyLevel == "" {
		test.DifficultyLevel = model.DifficultyMedium
	}
	if test.Status == "" {
		test.Status = model.TestDraft
	}
	if req.Adaptive != nil {
		test.Adaptive = *req.Adaptive
	}
	return test
}

// PublishTest moves a draft test to published so it can be delivered.
func (s *TestService) PublishTest(testID string) (*model.Test, error) {
	test, err := s.Repo.FindTestByID(testID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	if test.Status != model.TestPublished {
		if err := s.Repo.UpdateTestStatus(testID, model.TestPublished); err != nil {
			return nil, err
		}
		test.Status = model.TestPublished
	}
	return test, nil
}

func (s *TestService) ListQuestions() ([]model.Question, error) {
	return s.Repo.ListQuestions()
}

func (s *TestService) CreateQuestion(req QuestionRequest) (*model.Question, error) {
	question := &model.Question{
		Question:      req.Question,
		Type:          req.Type,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    req.Difficulty,
		Subject:       req.Subject,
		Topic:         req.Topic,
		Points:        req.Points,
	}
	if question.Difficulty == "" {
		question.Difficulty = model.DifficultyMedium
	}
	if question.Points == 0 {
		question.Points = 1
	}

	if err := s.Repo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetTestQuestions selects the questions for one delivery round. Adaptive
// tests filter the subject pool by the tier the session's performance history
// calls for before sampling; fixed tests sample the whole subject pool.
func (s *TestService) GetTestQuestions(ctx context.Context, testID string, userID uint) ([]StudentQuestion, bool, error) {
	test, err := s.Repo.FindTestByID(testID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, util.ErrTestNotFound
		}
		return nil, false, err
	}
	if test.Status != model.TestPublished {
		return nil, false, util.ErrTestNotPublished
	}

	pool, err := s.Repo.ListQuestionsBySubject(test.Subject)
	if err != nil {
		return nil, false, err
	}

	eligible := pool
	if test.Adaptive {
		history, err := s.Sessions.History(ctx, userID, testID)
		if err != nil {
			// A lost session degrades to the initial easy tier instead of
			// failing the request.
			logger.Log.Warn("adaptive history unavailable", zap.Error(err), zap.String("test_id", testID))
			history = nil
		}
		eligible = SelectAdaptiveQuestions(pool, test.DifficultyLevel, history)
	}

	selected := s.sampleQuestions(eligible, test.TotalQuestions)

	questions := make([]StudentQuestion, len(selected))
	for i, q := range selected {
		questions[i] = StudentQuestion{
			ID:         q.ID,
			Question:   q.Question,
			Type:       q.Type,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			Subject:    q.Subject,
			Topic:      q.Topic,
			Points:     q.Points,
		}
	}
	return questions, test.Adaptive, nil
}

// BeginAttempt marks an attempt boundary: the adaptive session history is
// cleared so the next delivery round starts on the easy tier again.
func (s *TestService) BeginAttempt(ctx context.Context, testID string, userID uint) error {
	return s.Sessions.Reset(ctx, userID, testID)
}

// submissionGrades is the aggregate of grading one submission. Graded,
// Performance and Progression are parallel slices in submission order.
type submissionGrades struct {
	Graded      []model.GradedAnswer
	Performance []model.AnswerRecord
	Progression []model.Difficulty
	Score       float64
	TotalPoints int
	Accuracy    float64
}

// gradeSubmission grades every answered question. Pure: the total score is
// the sum of the per-question points earned, accuracy is correct over
// answered, and answers naming unknown question ids are skipped, not
// rejected.
func gradeSubmission(questions []model.Question, answers []SubmittedAnswer) submissionGrades {
	questionByID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	grades := submissionGrades{
		Graded:      make([]model.GradedAnswer, 0, len(answers)),
		Performance: make([]model.AnswerRecord, 0, len(answers)),
		Progression: make([]model.Difficulty, 0, len(answers)),
	}

	correctCount := 0
	for _, answer := range answers {
		question, ok := questionByID[answer.QuestionID]
		if !ok {
			continue
		}

		grading := GradeAnswer(question, answer.Answer)
		grades.Score += grading.PointsEarned
		grades.TotalPoints += grading.MaxPoints
		if grading.Correct {
			correctCount++
		}

		grades.Graded = append(grades.Graded, model.GradedAnswer{
			QuestionID:    question.ID,
			StudentAnswer: normalizeAnswer(answer.Answer),
			CorrectAnswer: question.CorrectAnswer,
			Correct:       grading.Correct,
			PointsEarned:  grading.PointsEarned,
			MaxPoints:     grading.MaxPoints,
		})
		grades.Performance = append(grades.Performance, model.AnswerRecord{
			Correct:    grading.Correct,
			Difficulty: question.Difficulty,
			Subject:    question.Subject,
			Topic:      question.Topic,
		})
		grades.Progression = append(grades.Progression, question.Difficulty)
	}

	if len(grades.Graded) > 0 {
		grades.Accuracy = float64(correctCount) / float64(len(grades.Graded))
	}
	return grades
}

// SubmitTest grades a submission, stores the append-only result and extends
// the adaptive session history.
func (s *TestService) SubmitTest(ctx context.Context, userID uint, req SubmitTestRequest) (*model.TestResult, error) {
	test, err := s.Repo.FindTestByID(req.TestID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}

	ids := make([]string, 0, len(req.Answers))
	for _, answer := range req.Answers {
		ids = append(ids, answer.QuestionID)
	}
	questions, err := s.Repo.FindQuestionsByIDs(ids)
	if err != nil {
		return nil, err
	}

	grades := gradeSubmission(questions, req.Answers)
	insights := GenerateLearningInsights(grades.Performance)

	gradedJSON, _ := json.Marshal(grades.Graded)
	progressionJSON, _ := json.Marshal(grades.Progression)
	insightsJSON, _ := json.Marshal(insights)

	result := &model.TestResult{
		TestID:                test.ID,
		UserID:                userID,
		StudentName:           req.StudentName,
		Score:                 grades.Score,
		TotalPoints:           grades.TotalPoints,
		CompletionTime:        req.CompletionTime,
		AccuracyRate:          grades.Accuracy,
		DifficultyProgression: progressionJSON,
		LearningInsights:      insightsJSON,
		GradedAnswers:         gradedJSON,
		DateTaken:             time.Now(),
	}
	if err := s.Repo.CreateResult(result); err != nil {
		return nil, err
	}

	if err := s.Sessions.Append(ctx, userID, test.ID, grades.Performance); err != nil {
		logger.Log.Warn("failed to extend adaptive history", zap.Error(err), zap.String("test_id", test.ID))
	}

	monitoring.TestSubmissionCounter.WithLabelValues(test.Subject).Inc()

	return result, nil
}

func (s *TestService) ListResults() ([]model.TestResult, error) {
	return s.Repo.ListResults()
}

type TestAnalytics struct {
	TotalAttempts          int     `json:"total_attempts"`
	AverageScorePercentage float64 `json:"average_score_percentage"`
	AverageCompletionTime  float64 `json:"average_completion_time"`
	PassRate               float64 `json:"pass_rate"`
}

type TestResultsResponse struct {
	Results   []model.TestResult `json:"results"`
	Analytics TestAnalytics      `json:"analytics"`
}

// GetTestResults returns one test's results with aggregate analytics. Pass
// rate counts attempts scoring at least 60%.
func (s *TestService) GetTestResults(testID string) (*TestResultsResponse, error) {
	results, err := s.Repo.ListResultsByTest(testID)
	if err != nil {
		return nil, err
	}

	analytics := TestAnalytics{TotalAttempts: len(results)}
	if len(results) > 0 {
		scoreSum := 0.0
		timeSum := 0.0
		passed := 0
		for _, r := range results {
			ratio := scoreRatio(r)
			scoreSum += ratio
			timeSum += float64(r.CompletionTime)
			if ratio >= 0.6 {
				passed++
			}
		}
		analytics.AverageScorePercentage = round1(scoreSum / float64(len(results)) * 100)
		analytics.AverageCompletionTime = round1(timeSum / float64(len(results)))
		analytics.PassRate = float64(passed) / float64(len(results)) * 100
	}

	return &TestResultsResponse{Results: results, Analytics: analytics}, nil
}

type AnalyticsOverview struct {
	TotalTests     int64   `json:"total_tests"`
	TotalQuestions int64   `json:"total_questions"`
	TotalAttempts  int     `json:"total_attempts"`
	OverallAverage float64 `json:"overall_average"`
}

type SubjectStats struct {
	Average  float64 `json:"average"`
	Attempts int     `json:"attempts"`
}

type DifficultyStats struct {
	Accuracy       float64 `json:"accuracy"`
	TotalQuestions int     `json:"total_questions"`
}

type OverallAnalytics struct {
	Overview              AnalyticsOverview                    `json:"overview"`
	SubjectPerformance    map[string]SubjectStats              `json:"subject_performance"`
	DifficultyPerformance map[model.Difficulty]DifficultyStats `json:"difficulty_performance"`
	RecentActivity        []model.TestResult                   `json:"recent_activity"`
}

// GetAnalytics aggregates performance across all tests: overall average,
// per-subject averages and per-difficulty accuracy.
func (s *TestService) GetAnalytics() (*OverallAnalytics, error) {
	totalTests, err := s.Repo.CountTests()
	if err != nil {
		return nil, err
	}
	totalQuestions, err := s.Repo.CountQuestions()
	if err != nil {
		return nil, err
	}
	results, err := s.Repo.ListResults()
	if err != nil {
		return nil, err
	}
	tests, err := s.Repo.ListTests()
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.ListRecentResults(10)
	if err != nil {
		return nil, err
	}

	subjectByTest := make(map[string]string, len(tests))
	for _, t := range tests {
		subjectByTest[t.ID] = t.Subject
	}

	overallAverage := 0.0
	scoreSum := 0.0
	pointsSum := 0
	subjectScores := make(map[string][]float64)
	tierCorrect := make(map[model.Difficulty]int)
	tierTotal := make(map[model.Difficulty]int)

	for _, r := range results {
		scoreSum += r.Score
		pointsSum += r.TotalPoints

		if subject, ok := subjectByTest[r.TestID]; ok {
			subjectScores[subject] = append(subjectScores[subject], scoreRatio(r)*100)
		}

		// GradedAnswers and DifficultyProgression are parallel sequences in
		// submission order.
		var graded []model.GradedAnswer
		var progression []model.Difficulty
		if err := json.Unmarshal(r.GradedAnswers, &graded); err != nil {
			continue
		}
		if err := json.Unmarshal(r.DifficultyProgression, &progression); err != nil {
			continue
		}
		for i, answer := range graded {
			if i >= len(progression) {
				break
			}
			tierTotal[progression[i]]++
			if answer.Correct {
				tierCorrect[progression[i]]++
			}
		}
	}
	if pointsSum > 0 {
		overallAverage = round1(scoreSum / float64(pointsSum) * 100)
	}

	subjectPerformance := make(map[string]SubjectStats, len(subjectScores))
	for subject, scores := range subjectScores {
		sum := 0.0
		for _, score := range scores {
			sum += score
		}
		subjectPerformance[subject] = SubjectStats{
			Average:  round1(sum / float64(len(scores))),
			Attempts: len(scores),
		}
	}

	difficultyPerformance := make(map[model.Difficulty]DifficultyStats, 3)
	for _, tier := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		stats := DifficultyStats{TotalQuestions: tierTotal[tier]}
		if tierTotal[tier] > 0 {
			stats.Accuracy = round1(float64(tierCorrect[tier]) / float64(tierTotal[tier]) * 100)
		}
		difficultyPerformance[tier] = stats
	}

	return &OverallAnalytics{
		Overview: AnalyticsOverview{
			TotalTests:     totalTests,
			TotalQuestions: totalQuestions,
			TotalAttempts:  len(results),
			OverallAverage: overallAverage,
		},
		SubjectPerformance:    subjectPerformance,
		DifficultyPerformance: difficultyPerformance,
		RecentActivity:        recent,
	}, nil
}

// sampleQuestions draws up to n questions uniformly without replacement.
func (s *TestService) sampleQuestions(pool []model.Question, n int) []model.Question {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	selected := make([]model.Question, 0, n)
	for _, idx := range perm[:n] {
		selected = append(selected, pool[idx])
	}
	return selected
}

func scoreRatio(r model.TestResult) float64 {
	if r.TotalPoints == 0 {
		return 0
	}
	return r.Score / float64(r.TotalPoints)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
