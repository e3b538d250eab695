package models

type Category struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"size:50;uniqueIndex;not null" json:"name"`
	IconURL *string `gorm:"size:255" json:"icon_url"`

	Reports []Report `gorm:"foreignKey:CategoryID" json:"-"`
}
