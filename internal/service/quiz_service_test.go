package service_test

import (
	"fmt"
	"math/rand"
	"testing"

	"trivia_api/internal/config"
	"trivia_api/internal/model"
	"trivia_api/internal/repository"
	"trivia_api/internal/service"
	"trivia_api/internal/util"
	"trivia_api/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(&config.DatabaseConfig{
		Type:     config.DatabaseSQLite,
		Path:     ":memory:",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// seed 按 categories 中给出的分类依次写入题目
func seed(t *testing.T, db *gorm.DB, categories ...int) []model.Question {
	t.Helper()
	questions := make([]model.Question, len(categories))
	for i, c := range categories {
		questions[i] = model.Question{
			Question:   fmt.Sprintf("Question %d", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   c,
			Difficulty: 1,
		}
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

func ids(questions []model.Question) []int {
	out := make([]int, len(questions))
	for i, q := range questions {
		out[i] = int(q.ID)
	}
	return out
}

func TestNextQuestionFiltersCategory(t *testing.T) {
	db := newTestDB(t)
	questions := seed(t, db, 1, 2, 2, 3, 2)
	quiz := service.NewQuizService(repository.NewQuestionRepository(db))

	var asked []int
	for i := 0; i < 3; i++ {
		q, err := quiz.NextQuestion(asked, 2)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, 2, q.Category)
		assert.NotContains(t, asked, int(q.ID))
		asked = append(asked, int(q.ID))
	}
	assert.ElementsMatch(t, []int{int(questions[1].ID), int(questions[2].ID), int(questions[4].ID)}, asked)

	q, err := quiz.NextQuestion(asked, 2)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuestionAllCategories(t *testing.T) {
	db := newTestDB(t)
	questions := seed(t, db, 1, 2, 3, 4, 5, 6)
	quiz := service.NewQuizService(repository.NewQuestionRepository(db))

	previous := ids(questions[:5])
	for i := 0; i < 20; i++ {
		q, err := quiz.NextQuestion(previous, service.AllCategories)
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, questions[5].ID, q.ID)
	}

	q, err := quiz.NextQuestion(ids(questions), service.AllCategories)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuestionIgnoresUnknownPrevious(t *testing.T) {
	db := newTestDB(t)
	questions := seed(t, db, 3)
	quiz := service.NewQuizService(repository.NewQuestionRepository(db))

	q, err := quiz.NextQuestion([]int{0, -5, 9999}, 3)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, questions[0].ID, q.ID)
}

func TestNextQuestionEmptyStore(t *testing.T) {
	quiz := service.NewQuizService(repository.NewQuestionRepository(newTestDB(t)))

	q, err := quiz.NextQuestion(nil, service.AllCategories)
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = quiz.NextQuestion(nil, 4)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestNextQuestionNegativeCategory(t *testing.T) {
	quiz := service.NewQuizService(repository.NewQuestionRepository(newTestDB(t)))

	_, err := quiz.NextQuestion(nil, -1)
	assert.ErrorIs(t, err, util.ErrInvalidCategory)
}

func TestNextQuestionUniform(t *testing.T) {
	db := newTestDB(t)
	questions := seed(t, db, 1, 1, 1, 1, 1)
	rng := rand.New(rand.NewSource(42))
	quiz := service.NewQuizService(repository.NewQuestionRepository(db)).WithShuffle(rng.Shuffle)

	previous := ids(questions[:2])
	counts := make(map[uint]int)
	const trials = 3000
	for i := 0; i < trials; i++ {
		q, err := quiz.NextQuestion(previous, 1)
		require.NoError(t, err)
		require.NotNil(t, q)
		counts[q.ID]++
	}

	require.Len(t, counts, 3)
	for _, q := range questions[2:] {
		assert.InDelta(t, trials/3, counts[q.ID], 200, "question %d", q.ID)
	}
}
