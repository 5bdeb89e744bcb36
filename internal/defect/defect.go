package defect

// Defect is a catalog entry of a possible inspection finding, grouped by
// category (fire safety, sanitation, and so on). Static reference data.
type Defect struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Category    string `json:"category" gorm:"not null"`
	Subject     string `json:"subject" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
}

func (Defect) TableName() string {
	return "inspection_defects"
}
