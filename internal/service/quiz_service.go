package service

import (
	"math/rand"

	"trivia_api/internal/model"
	"trivia_api/internal/repository"
	"trivia_api/internal/util"
	"trivia_api/pkg/monitoring"
)

// AllCategories quiz_category.id 为 0 时从全部题目中抽题
const AllCategories = 0

// ShuffleFunc 与 rand.Shuffle 签名一致
type ShuffleFunc func(n int, swap func(i, j int))

type QuizService struct {
	repo    *repository.QuestionRepository
	shuffle ShuffleFunc
}

func NewQuizService(repo *repository.QuestionRepository) *QuizService {
	return &QuizService{repo: repo, shuffle: rand.Shuffle}
}

// WithShuffle 替换洗牌函数，测试中用固定种子
func (s *QuizService) WithShuffle(shuffle ShuffleFunc) *QuizService {
	s.shuffle = shuffle
	return s
}

// NextQuestion 随机打乱候选题后返回第一道未出现在 previous 中的题；
// 全部答过时返回 nil，表示本轮测验结束
func (s *QuizService) NextQuestion(previous []int, categoryID int) (*model.Question, error) {
	if categoryID < 0 {
		return nil, util.ErrInvalidCategory
	}

	var (
		candidates []model.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.repo.FindAll()
	} else {
		candidates, err = s.repo.FindByCategory(categoryID)
	}
	if err != nil {
		return nil, err
	}

	asked := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		if id > 0 {
			asked[uint(id)] = struct{}{}
		}
	}

	s.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	scope := "category"
	if categoryID == AllCategories {
		scope = "all"
	}
	for i := range candidates {
		if _, ok := asked[candidates[i].ID]; !ok {
			monitoring.QuizQuestionsServed.WithLabelValues(scope).Inc()
			return &candidates[i], nil
		}
	}

	monitoring.QuizExhausted.WithLabelValues(scope).Inc()
	return nil, nil
}
