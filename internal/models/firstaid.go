package models

// FirstAidChat records one exchange with the first-aid assistant.
// Rows are immutable after creation. UserID is nullable so the chat
// survives deletion of the user.
type FirstAidChat struct {
	BaseModel
	UserID   *string `gorm:"size:36;index" json:"user_id"`
	Prompt   string  `gorm:"type:text" json:"prompt"`
	Response string  `gorm:"type:text" json:"response"`
}
