package entity

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Restaurants []Restaurant `json:"-"`
}
