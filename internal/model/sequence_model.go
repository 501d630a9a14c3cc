package model

// Sequence backs the human-readable identifier counters (CT, U, AB, OB).
// Rows are locked with SELECT ... FOR UPDATE while a number is handed out.
type Sequence struct {
	Name  string `gorm:"type:varchar(30);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

func (Sequence) TableName() string {
	return "sequences"
}
