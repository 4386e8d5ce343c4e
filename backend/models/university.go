package models

// University is a partner college managed through its TPO (training and
// placement officer). Coins is a plain credit balance; UsedCoins counts what
// has been spent on allotted courses.
type University struct {
	Base
	TPOName     string   `gorm:"not null" json:"tpoName"`
	TPOEmail    string   `gorm:"uniqueIndex;not null" json:"tpoEmail"`
	TPOPhone    string   `json:"tpoPhone"`
	CollegeName string   `gorm:"not null;index" json:"collegeName"`
	Coins       int      `gorm:"default:0" json:"coins"`
	UsedCoins   int      `gorm:"default:0" json:"usedCoins"`
	Courses     []Course `gorm:"many2many:university_courses" json:"courses,omitempty"`
	Students    []User   `gorm:"foreignKey:UniversityID" json:"students,omitempty"`
}

func (u University) AvailableCoins() int { return u.Coins - u.UsedCoins }
