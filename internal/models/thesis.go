package models

import "time"

// ThesisType is the closed set of degree types a thesis can carry.
type ThesisType string

const (
	TypeMaster                   ThesisType = "Master"
	TypeDoctorate                ThesisType = "Doctorate"
	TypeSpecializationInMedicine ThesisType = "Specialization in Medicine"
	TypeProficiencyInArt         ThesisType = "Proficiency in Art"
)

func (t ThesisType) Valid() bool {
	switch t {
	case TypeMaster, TypeDoctorate, TypeSpecializationInMedicine, TypeProficiencyInArt:
		return true
	}
	return false
}

type Thesis struct {
	ID             int        `gorm:"column:thesis_no;primaryKey;autoIncrement" json:"thesis_no"`
	Title          string     `gorm:"size:500;not null" json:"title"`
	Abstract       string     `gorm:"type:text;not null" json:"abstract"`
	AuthorID       int        `gorm:"column:author_id;not null" json:"author_id"`
	Year           int        `gorm:"not null" json:"year"`
	Type           ThesisType `gorm:"size:50;not null;check:thesis_type_check,type IN ('Master','Doctorate','Specialization in Medicine','Proficiency in Art')" json:"type"`
	UniversityID   int        `gorm:"column:university_id;not null" json:"university_id"`
	InstituteID    int        `gorm:"column:institute_id;not null" json:"institute_id"`
	NumberOfPages  int        `gorm:"not null" json:"number_of_pages"`
	SubmissionDate time.Time  `gorm:"type:date;not null" json:"submission_date"`
	LanguageID     int        `gorm:"column:language_id;not null" json:"language_id"`

	// Relations. Deleting an author, university or institute takes its
	// theses with it; a language stays deletable only while unreferenced.
	Author     *Author     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"author,omitempty"`
	University *University `gorm:"foreignKey:UniversityID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"university,omitempty"`
	Institute  *Institute  `gorm:"foreignKey:InstituteID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"institute,omitempty"`
	Language   *Language   `gorm:"foreignKey:LanguageID;references:ID;constraint:OnUpdate:CASCADE" json:"language,omitempty"`

	Keywords    []Keyword      `gorm:"many2many:thesis_keyword;foreignKey:ID;joinForeignKey:ThesisNo;references:ID;joinReferences:KeywordID" json:"keywords,omitempty"`
	Supervisors []Supervisor   `gorm:"many2many:thesis_supervisor;foreignKey:ID;joinForeignKey:ThesisNo;references:ID;joinReferences:SupervisorID" json:"supervisors,omitempty"`
	Topics      []SubjectTopic `gorm:"many2many:thesis_topic;foreignKey:ID;joinForeignKey:ThesisNo;references:ID;joinReferences:TopicID" json:"topics,omitempty"`
}

func (Thesis) TableName() string {
	return "thesis"
}

// ThesisKeyword links a thesis to a keyword. The thesis side cascades so
// join rows disappear with their thesis; the keyword side blocks deletes.
type ThesisKeyword struct {
	ThesisNo  int     `gorm:"column:thesis_no;primaryKey" json:"thesis_no"`
	KeywordID int     `gorm:"column:keyword_id;primaryKey" json:"keyword_id"`
	Thesis    Thesis  `gorm:"foreignKey:ThesisNo;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Keyword   Keyword `gorm:"foreignKey:KeywordID;references:ID;constraint:OnUpdate:CASCADE" json:"-"`
}

func (ThesisKeyword) TableName() string {
	return "thesis_keyword"
}

type ThesisSupervisor struct {
	ThesisNo       int        `gorm:"column:thesis_no;primaryKey" json:"thesis_no"`
	SupervisorID   int        `gorm:"column:supervisor_id;primaryKey" json:"supervisor_id"`
	IsCoSupervisor bool       `gorm:"column:is_co_supervisor;default:false" json:"is_co_supervisor"`
	Thesis         Thesis     `gorm:"foreignKey:ThesisNo;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Supervisor     Supervisor `gorm:"foreignKey:SupervisorID;references:ID;constraint:OnUpdate:CASCADE" json:"-"`
}

func (ThesisSupervisor) TableName() string {
	return "thesis_supervisor"
}

type ThesisTopic struct {
	ThesisNo int          `gorm:"column:thesis_no;primaryKey" json:"thesis_no"`
	TopicID  int          `gorm:"column:topic_id;primaryKey" json:"topic_id"`
	Thesis   Thesis       `gorm:"foreignKey:ThesisNo;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Topic    SubjectTopic `gorm:"foreignKey:TopicID;references:ID;constraint:OnUpdate:CASCADE" json:"-"`
}

func (ThesisTopic) TableName() string {
	return "thesis_topic"
}
