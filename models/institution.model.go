package models

import "gorm.io/gorm"

// Institution represents a school or training institute
type Institution struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	District  string `json:"district" gorm:"default:''"`
	IsDeleted bool   `gorm:"default:false"`
}

// ClassRoom represents a class inside an institution, e.g. 8A, Grade 9 Science
type ClassRoom struct {
	gorm.Model
	Name          string `json:"name" gorm:"not null;uniqueIndex:idx_class_name_institution"`
	InstitutionID uint   `json:"institution_id" gorm:"not null;uniqueIndex:idx_class_name_institution"`
	Teachers      []User `json:"teachers,omitempty" gorm:"many2many:classroom_teachers;"`
	IsDeleted     bool   `gorm:"default:false"`
}
