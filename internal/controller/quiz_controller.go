package controller

import (
	"trivia_api/internal/service"
	"trivia_api/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{Service: s}
}

// NextQuestion godoc
// @Summary 获取下一道测验题
// @Description quiz_category.id 为 0 表示全部分类；题目都已答过时 question 为 null
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body QuizRequest true "已答题目和分类"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) NextQuestion(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(util.BindError(err))
		return
	}

	question, err := c.Service.NextQuestion(util.Ints(req.PreviousQuestions), req.QuizCategory.ID.Int())
	if err != nil {
		ctx.Error(err)
		return
	}

	util.Success(ctx, QuizResponse{Question: question, Success: true})
}
