package controller

import (
	"trivia_api/internal/service"
	"trivia_api/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Categories *service.CategoryService
	Questions  *service.QuestionService
}

func NewCategoryController(categories *service.CategoryService, questions *service.QuestionService) *CategoryController {
	return &CategoryController{Categories: categories, Questions: questions}
}

// ListCategories godoc
// @Summary 获取全部分类
// @Tags 分类
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.Categories.ListCategories(ctx.Request.Context())
	if err != nil {
		ctx.Error(util.UnprocessableError(err))
		return
	}

	util.Success(ctx, CategoriesResponse{
		Categories: categories,
		Success:    true,
	})
}

// QuestionsByCategory godoc
// @Summary 按分类获取题目
// @Description 精确匹配分类 ID，不存在的分类返回空列表
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} QuestionListResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /categories/{id}/questions [get]
func (c *CategoryController) QuestionsByCategory(ctx *gin.Context) {
	categoryID, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		ctx.Error(util.BadRequestError(err))
		return
	}

	questions, err := c.Questions.QuestionsByCategory(categoryID)
	if err != nil {
		ctx.Error(err)
		return
	}

	util.Success(ctx, listResponse(questions))
}
