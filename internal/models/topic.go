package models

type SubjectTopic struct {
	ID        int    `gorm:"column:topic_id;primaryKey;autoIncrement" json:"topic_id"`
	TopicName string `gorm:"size:100;not null" json:"topic_name"`
}

func (SubjectTopic) TableName() string {
	return "subject_topic"
}
