package models

type Category struct {
	CategoryID  int    `json:"categoryId" gorm:"column:category_id;primaryKey;autoIncrement"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
