package service_test

import (
	"context"
	"math"
	"testing"

	"trivia_api/internal/repository"
	"trivia_api/internal/service"
	"trivia_api/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionService(t *testing.T, pageSize int) (*service.QuestionService, func(...int)) {
	t.Helper()
	db := newTestDB(t)
	categories := service.NewCategoryService(repository.NewCategoryRepository(db), nil)
	svc := service.NewQuestionService(repository.NewQuestionRepository(db), categories, pageSize)
	return svc, func(c ...int) { seed(t, db, c...) }
}

func TestListQuestionsPages(t *testing.T) {
	svc, add := newQuestionService(t, 4)
	add(1, 2, 3, 4, 5, 6, 1, 2, 3, 4)

	cases := []struct {
		page  int
		count int
		first string
	}{
		{1, 4, "Question 1"},
		{2, 4, "Question 5"},
		{3, 2, "Question 9"},
		{4, 0, ""},
	}

	for _, tc := range cases {
		result, err := svc.ListQuestions(context.Background(), tc.page)
		require.NoError(t, err)
		assert.Equal(t, int64(10), result.Total)
		assert.Len(t, result.Categories, 6)
		require.NotNil(t, result.Questions)
		require.Len(t, result.Questions, tc.count, "page %d", tc.page)
		if tc.count > 0 {
			assert.Equal(t, tc.first, result.Questions[0].Question)
		}
	}
}

func TestListQuestionsHugePage(t *testing.T) {
	svc, add := newQuestionService(t, 10)
	add(1, 2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 1, 2, 3)

	for _, page := range []int{3, math.MaxInt / 10, math.MaxInt/10 + 1, math.MaxInt} {
		result, err := svc.ListQuestions(context.Background(), page)
		require.NoError(t, err)
		assert.Empty(t, result.Questions, "page %d", page)
		assert.Equal(t, int64(15), result.Total)
	}

	_, err := svc.ListQuestions(context.Background(), 0)
	assert.ErrorIs(t, err, util.ErrInvalidPage)
}

func TestCreateAndDeleteQuestion(t *testing.T) {
	svc, _ := newQuestionService(t, 10)

	q, err := svc.CreateQuestion(service.QuestionInput{
		Question: "Which element has the symbol Fe?", Answer: "Iron", Category: 1, Difficulty: 2,
	})
	require.NoError(t, err)
	require.NotZero(t, q.ID)

	found, err := svc.QuestionsByCategory(1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Iron", found[0].Answer)

	require.NoError(t, svc.DeleteQuestion(int(q.ID)))
	assert.ErrorIs(t, svc.DeleteQuestion(int(q.ID)), util.ErrQuestionNotFound)

	found, err = svc.SearchQuestions("symbol fe")
	require.NoError(t, err)
	assert.Empty(t, found)
}
