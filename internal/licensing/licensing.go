package licensing

// Licensing tracks from the business licensing order.
const (
	TrackRegular    = "regular"
	TrackExpeditedA = "expedited_a"
	TrackExpeditedB = "expedited_b"
	TrackAffidavit  = "affidavit"
)

// Item is one row of the licensing-item catalog. The table is static
// reference data and carries no timestamps.
type Item struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	ItemNumber     string `json:"item_number" gorm:"column:item_number;uniqueIndex;not null"`
	Name           string `json:"name" gorm:"not null"`
	Description    string `json:"description,omitempty"`
	LicensingTrack string `json:"licensing_track" gorm:"column:licensing_track;default:regular"`

	// Required approval bodies.
	NeedsPoliceApproval                  bool `json:"needs_police_approval" gorm:"column:needs_police_approval;default:false"`
	NeedsFireDeptApproval                bool `json:"needs_fire_dept_approval" gorm:"column:needs_fire_dept_approval;default:true"`
	NeedsHealthMinistryApproval          bool `json:"needs_health_ministry_approval" gorm:"column:needs_health_ministry_approval;default:false"`
	NeedsEnvironmentalProtectionApproval bool `json:"needs_environmental_protection_approval" gorm:"column:needs_environmental_protection_approval;default:false"`
	NeedsAgricultureMinistryApproval     bool `json:"needs_agriculture_ministry_approval" gorm:"column:needs_agriculture_ministry_approval;default:false"`

	ValidityYears int `json:"validity_years" gorm:"column:validity_years;default:1"`
}

func (Item) TableName() string {
	return "licensing_items"
}
