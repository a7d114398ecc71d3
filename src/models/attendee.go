package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender ที่ระบบรองรับ (ใช้จับคู่ facilitator กับ attendee)
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Attendee ผู้เข้าร่วม service (ลงทะเบียนครั้งแรกหรือกลับมาใหม่)
type Attendee struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName        string              `bson:"firstName" json:"firstName"`
	LastName         string              `bson:"lastName" json:"lastName"`
	ContactNumber    *string             `bson:"contactNumber,omitempty" json:"contactNumber"` // +639xxxxxxxxx, อาจไม่มี
	Email            *string             `bson:"email,omitempty" json:"email"`
	Birthday         *string             `bson:"birthday,omitempty" json:"birthday"` // YYYY-MM-DD
	SchoolName       string              `bson:"schoolName" json:"schoolName"`
	Barangay         string              `bson:"barangay" json:"barangay"`
	City             string              `bson:"city" json:"city"`
	SocialMediaName  *string             `bson:"socialMediaName,omitempty" json:"socialMediaName"`
	Gender           string              `bson:"gender" json:"gender"` // "Male" หรือ "Female"
	IsDgroupMember   bool                `bson:"isDgroupMember" json:"isDgroupMember"`
	DgroupLeaderName *string             `bson:"dgroupLeaderName,omitempty" json:"dgroupLeaderName"`
	IsFirstTimer     bool                `bson:"isFirstTimer" json:"isFirstTimer"`
	FacilitatorID    *primitive.ObjectID `bson:"facilitatorId,omitempty" json:"facilitatorId"` // weak reference ไม่ใช่ ownership
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
}

// FullName ชื่อเต็มสำหรับแสดงผล
func (a *Attendee) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// RegisterAttendeeRequest ข้อมูลจากฟอร์มลงทะเบียน
type RegisterAttendeeRequest struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	HasMobileNumber  bool   `json:"hasMobileNumber"`
	ContactNumber    string `json:"contactNumber"`
	Email            string `json:"email" validate:"omitempty,email"`
	Birthday         string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	SchoolName       string `json:"schoolName" validate:"required"`
	Barangay         string `json:"barangay" validate:"required"`
	City             string `json:"city" validate:"required"`
	SocialMediaName  string `json:"socialMediaName"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female"`
	IsDgroupMember   bool   `json:"isDgroupMember"`
	DgroupLeaderName string `json:"dgroupLeaderName"`
}

// SearchResult ผลการค้นหา attendee (สำหรับ returning check-in)
type SearchResult struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	ContactNumber *string            `bson:"contactNumber,omitempty" json:"contactNumber"`
	FullName      string             `bson:"-" json:"fullName"` // computed
}
