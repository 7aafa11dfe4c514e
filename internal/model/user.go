package model

import (
	"time"
)

type UserRole string

const (
	Admin        UserRole = "admin"
	SuperAdmin   UserRole = "super_admin"
	Management   UserRole = "management"
	HealthWorker UserRole = "health_worker"
	Patient      UserRole = "patient"
)

// Segment is the first path component under the portal root, used as the
// role-routing key. Admin and super admin share the admin segment.
type Segment string

const (
	SegmentAdmin        Segment = "admin"
	SegmentManagement   Segment = "management"
	SegmentHealthWorker Segment = "health_worker"
	SegmentPatient      Segment = "patient"
)

func (r UserRole) Segment() Segment {
	switch r {
	case Admin, SuperAdmin:
		return SegmentAdmin
	case Management:
		return SegmentManagement
	case HealthWorker:
		return SegmentHealthWorker
	default:
		return SegmentPatient
	}
}

func (r UserRole) Valid() bool {
	switch r {
	case Admin, SuperAdmin, Management, HealthWorker, Patient:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('admin','super_admin','management','health_worker','patient');default:'patient'" json:"role"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
