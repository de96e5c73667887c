package model

// Question 题目，只创建和删除，不做原地更新
// swagger:model
type Question struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"index;not null" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
