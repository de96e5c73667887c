package database

import (
	"fmt"
	"io"

	"trivia_api/internal/model"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile 题库导入文件格式
type SeedFile struct {
	Categories []SeedCategory `yaml:"categories"`
	Questions  []SeedQuestion `yaml:"questions"`
}

type SeedCategory struct {
	ID   uint   `yaml:"id"`
	Type string `yaml:"type"`
}

type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Category   int    `yaml:"category"`
	Difficulty int    `yaml:"difficulty"`
}

type SeedResult struct {
	Categories int
	Questions  int
	Skipped    int
}

// SeedQuestions 导入题库；已存在的分类 ID 和相同题干的题目会被跳过
func SeedQuestions(db *gorm.DB, r io.Reader) (*SeedResult, error) {
	var file SeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	result := &SeedResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, c := range file.Categories {
			if c.ID == 0 || c.Type == "" {
				return fmt.Errorf("category entry needs id and type: %+v", c)
			}
			var count int64
			if err := tx.Model(&model.Category{}).Where("id = ?", c.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				result.Skipped++
				continue
			}
			if err := tx.Create(&model.Category{ID: c.ID, Type: c.Type}).Error; err != nil {
				return err
			}
			result.Categories++
		}

		var questions []model.Question
		for _, q := range file.Questions {
			if q.Question == "" || q.Answer == "" {
				return fmt.Errorf("question entry needs question and answer: %+v", q)
			}
			var count int64
			if err := tx.Model(&model.Question{}).Where("question = ?", q.Question).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				result.Skipped++
				continue
			}
			questions = append(questions, model.Question{
				Question:   q.Question,
				Answer:     q.Answer,
				Category:   q.Category,
				Difficulty: q.Difficulty,
			})
		}
		if len(questions) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&questions, 100).Error; err != nil {
			return err
		}
		result.Questions = len(questions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
