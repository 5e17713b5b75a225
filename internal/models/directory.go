package models

type Station struct {
	Seq  uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Code string `gorm:"uniqueIndex;size:8" json:"code"`
	Name string `gorm:"not null" json:"name"`
}

// Train is one leg of a timetable entry. The same train number can appear on
// more than one leg (the same physical train serving two route segments), so
// rows carry a surrogate key and preserve directory order.
type Train struct {
	Seq          uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	Number       string   `gorm:"index;not null" json:"id"`
	Name         string   `gorm:"not null" json:"name"`
	From         string   `gorm:"column:from_station;not null" json:"from"`
	To           string   `gorm:"column:to_station;not null" json:"to"`
	FromCode     string   `json:"fromCode"`
	ToCode       string   `json:"toCode"`
	Departure    string   `json:"departure"`
	Arrival      string   `json:"arrival"`
	Duration     string   `json:"duration"`
	Price        float64  `json:"price"`
	Availability string   `json:"availability"`
	Class        string   `json:"class"`
	Days         []string `gorm:"serializer:json" json:"days"`
}
