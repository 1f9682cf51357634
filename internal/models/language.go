package models

type Language struct {
	ID           int    `gorm:"column:language_id;primaryKey;autoIncrement" json:"language_id"`
	LanguageName string `gorm:"size:50;not null;uniqueIndex" json:"language_name"`
}

func (Language) TableName() string {
	return "language"
}
