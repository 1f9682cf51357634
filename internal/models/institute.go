package models

type Institute struct {
	ID           int    `gorm:"column:institute_id;primaryKey;autoIncrement" json:"institute_id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	UniversityID int    `gorm:"column:university_id;not null" json:"university_id"`

	// Relations
	University *University `gorm:"foreignKey:UniversityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"university,omitempty"`
}

func (Institute) TableName() string {
	return "institute"
}
