package models

type Supervisor struct {
	ID        int    `gorm:"column:supervisor_id;primaryKey;autoIncrement" json:"supervisor_id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Title     string `gorm:"size:100" json:"title,omitempty"`
}

func (Supervisor) TableName() string {
	return "supervisor"
}
