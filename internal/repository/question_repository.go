package repository

import (
	"strings"

	"trivia_api/internal/model"
	"trivia_api/internal/util"
	"trivia_api/pkg/database"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Question{}).Count(&total).Error
	return total, err
}

// FindPage 按 ID 顺序分页，越界时返回空切片
func (r *QuestionRepository) FindPage(offset, limit int) ([]model.Question, error) {
	questions := []model.Question{}
	err := r.DB.Order("id asc").Offset(offset).Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	questions := []model.Question{}
	err := r.DB.Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id int) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByCategory(categoryID int) ([]model.Question, error) {
	questions := []model.Question{}
	err := r.DB.Where("category = ?", categoryID).Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// Delete 物理删除，没有匹配行时返回 ErrQuestionNotFound
func (r *QuestionRepository) Delete(id int) error {
	result := r.DB.Delete(&model.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

// Search 题干不区分大小写的子串匹配，term 中的 % 和 _ 按字面匹配
func (r *QuestionRepository) Search(term string) ([]model.Question, error) {
	questions := []model.Question{}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	err := r.DB.Where(r.lowerQuestion()+" LIKE ? ESCAPE '!'", pattern).Order("id asc").Find(&questions).Error
	return questions, err
}

// sqlite 内置 LOWER 只转换 ASCII，改用连接上注册的函数
func (r *QuestionRepository) lowerQuestion() string {
	if r.DB.Dialector.Name() == "sqlite" {
		return database.SQLiteLowerFunc + "(question)"
	}
	return "LOWER(question)"
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
