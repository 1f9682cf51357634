package models

type University struct {
	ID   int    `gorm:"column:university_id;primaryKey;autoIncrement" json:"university_id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (University) TableName() string {
	return "university"
}
