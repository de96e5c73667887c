package service

import (
	"context"

	"trivia_api/internal/model"
	"trivia_api/internal/repository"
	"trivia_api/internal/util"
)

type QuestionService struct {
	repo       *repository.QuestionRepository
	categories *CategoryService
	pageSize   int
}

func NewQuestionService(repo *repository.QuestionRepository, categories *CategoryService, pageSize int) *QuestionService {
	return &QuestionService{repo: repo, categories: categories, pageSize: pageSize}
}

// QuestionInput 创建题目所需字段
type QuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionPage 一页题目及分类映射
type QuestionPage struct {
	Questions  []model.Question
	Total      int64
	Categories map[uint]string
}

func (s *QuestionService) PageSize() int {
	return s.pageSize
}

// ListQuestions page 从 1 开始，超过最后一页时返回空列表
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, util.ErrInvalidPage
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	// 先按页数比较，page 很大时 (page-1)*pageSize 会溢出
	size := int64(s.pageSize)
	pages := (total + size - 1) / size
	questions := []model.Question{}
	if int64(page-1) < pages {
		questions, err = s.repo.FindPage((page-1)*s.pageSize, s.pageSize)
		if err != nil {
			return nil, err
		}
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

func (s *QuestionService) DeleteQuestion(id int) error {
	return s.repo.Delete(id)
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*model.Question, error) {
	question := &model.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.repo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// SearchQuestions 不分页，没有匹配时返回空列表
func (s *QuestionService) SearchQuestions(term string) ([]model.Question, error) {
	return s.repo.Search(term)
}

// QuestionsByCategory 不校验分类是否存在
func (s *QuestionService) QuestionsByCategory(categoryID int) ([]model.Question, error) {
	return s.repo.FindByCategory(categoryID)
}
