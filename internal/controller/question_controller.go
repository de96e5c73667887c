package controller

import (
	"trivia_api/internal/service"
	"trivia_api/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// ListQuestions godoc
// @Summary 分页获取题目
// @Description 每页 10 条，超过最后一页返回空列表
// @Tags 题目
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} QuestionPageResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, err := util.ParsePage(ctx.Query("page"))
	if err != nil {
		ctx.Error(util.BadRequestError(err))
		return
	}

	result, err := c.Service.ListQuestions(ctx.Request.Context(), page)
	if err != nil {
		ctx.Error(err)
		return
	}

	util.Success(ctx, QuestionPageResponse{
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     result.Categories,
		Success:        true,
	})
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		ctx.Error(util.BadRequestError(err))
		return
	}

	if err := c.Service.DeleteQuestion(id); err != nil {
		ctx.Error(err)
		return
	}

	util.Success(ctx, DeletedResponse{Success: true, Deleted: id})
}

// CreateQuestion godoc
// @Summary 新建题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body CreateQuestionRequest true "题目内容"
// @Success 200 {object} CreatedResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(util.BindError(err))
		return
	}

	question, err := c.Service.CreateQuestion(service.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.Int(),
		Difficulty: req.Difficulty.Int(),
	})
	if err != nil {
		ctx.Error(util.UnprocessableError(err))
		return
	}

	util.Success(ctx, CreatedResponse{Success: true, Created: question.ID})
}

// SearchQuestions godoc
// @Summary 搜索题目
// @Description 题干不区分大小写的子串匹配，不分页
// @Tags 题目
// @Accept json
// @Produce json
// @Param body body SearchRequest true "搜索词"
// @Success 200 {object} QuestionListResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions/search [post]
func (c *QuestionController) SearchQuestions(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(util.BindError(err))
		return
	}

	questions, err := c.Service.SearchQuestions(*req.SearchTerm)
	if err != nil {
		ctx.Error(err)
		return
	}

	util.Success(ctx, listResponse(questions))
}
