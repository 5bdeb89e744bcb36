package report

import (
	"time"

	"gorm.io/datatypes"

	"github.com/cityhall-dev/licensing-management/internal/auth"
	"github.com/cityhall-dev/licensing-management/internal/business"
)

// Inspection outcomes.
const (
	StatusPass            = "pass"
	StatusFail            = "fail"
	StatusConditionalPass = "conditional_pass"
)

var ValidStatuses = []string{StatusPass, StatusFail, StatusConditionalPass}

// Report is one on-site inspection visit. The AI risk assessment and the
// rendered PDF are both best-effort enrichments; either column may stay
// NULL without invalidating the report.
type Report struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	BusinessID  int64 `json:"business_id" gorm:"column:business_id;not null"`
	InspectorID int64 `json:"inspector_id" gorm:"column:inspector_id;not null"`

	VisitDate time.Time `json:"visit_date" gorm:"column:visit_date;not null"`
	Findings  string    `json:"findings" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"default:fail"`

	AIRiskAssessment datatypes.JSON `json:"ai_risk_assessment" gorm:"column:ai_risk_assessment"`
	PDFPath          *string        `json:"pdf_path" gorm:"column:pdf_path"`

	Business  *business.Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Inspector *auth.User         `json:"inspector,omitempty" gorm:"foreignKey:InspectorID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
