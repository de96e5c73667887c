package controller

import (
	"trivia_api/internal/model"
	"trivia_api/internal/util"
)

// CreateQuestionRequest category/difficulty 接受数字或数字字符串
type CreateQuestionRequest struct {
	Question   string        `json:"question" binding:"required"`
	Answer     string        `json:"answer" binding:"required"`
	Category   *util.FlexInt `json:"category" binding:"required" swaggertype:"integer"`
	Difficulty *util.FlexInt `json:"difficulty" binding:"required" swaggertype:"integer"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

type QuizCategory struct {
	ID   *util.FlexInt `json:"id" binding:"required" swaggertype:"integer"`
	Type string        `json:"type,omitempty"`
}

type QuizRequest struct {
	PreviousQuestions []util.FlexInt `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory  `json:"quiz_category" binding:"required"`
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
	Success    bool            `json:"success" example:"true"`
}

// QuestionListResponse 搜索和按分类查询的响应
type QuestionListResponse struct {
	Questions       []model.Question `json:"questions"`
	TotalQuestions  int64            `json:"total_questions"`
	CurrentCategory *string          `json:"current_category"`
	Success         bool             `json:"success" example:"true"`
}

// QuestionPageResponse 分页列表额外携带全部分类
type QuestionPageResponse struct {
	Questions       []model.Question `json:"questions"`
	TotalQuestions  int64            `json:"total_questions"`
	CurrentCategory *string          `json:"current_category"`
	Categories      map[uint]string  `json:"categories"`
	Success         bool             `json:"success" example:"true"`
}

type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

type DeletedResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted int  `json:"deleted" example:"24"`
}

type QuizResponse struct {
	Question *model.Question `json:"question"`
	Success  bool            `json:"success" example:"true"`
}

func listResponse(questions []model.Question) QuestionListResponse {
	if questions == nil {
		questions = []model.Question{}
	}
	return QuestionListResponse{
		Questions:      questions,
		TotalQuestions: int64(len(questions)),
		Success:        true,
	}
}
