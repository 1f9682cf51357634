package models

type Keyword struct {
	ID          int    `gorm:"column:keyword_id;primaryKey;autoIncrement" json:"keyword_id"`
	KeywordName string `gorm:"size:100;not null" json:"keyword_name"`
}

func (Keyword) TableName() string {
	return "keyword"
}
