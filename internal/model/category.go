package model

// Category 题目分类，Question.Category 引用其 ID，不建外键
// swagger:model
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMap 将分类列表转换为 {id: type}
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// DefaultCategories 分类表为空时写入的默认分类
var DefaultCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}
