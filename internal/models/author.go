package models

type Author struct {
	ID        int    `gorm:"column:author_id;primaryKey;autoIncrement" json:"author_id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
}

func (Author) TableName() string {
	return "author"
}
