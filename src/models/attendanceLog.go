package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceLog บันทึกการเช็คชื่อ หนึ่ง record ต่อ (attendee, serviceDate)
// สร้างตอนเช็คชื่อเท่านั้น ไม่มีการแก้ไข ลบได้เฉพาะตอน undo check-in
type AttendanceLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AttendeeID  primitive.ObjectID `bson:"attendeeId" json:"attendeeId"`
	ServiceDate string             `bson:"serviceDate" json:"serviceDate"` // YYYY-MM-DD ตาม reporting timezone
	CheckInTime time.Time          `bson:"checkInTime" json:"checkInTime"`
}

// CheckedInAttendee รูปแบบรายงานของคนที่เช็คชื่อแล้ววันนี้
type CheckedInAttendee struct {
	AttendanceLogID primitive.ObjectID `bson:"attendanceLogId" json:"attendanceLogId"`
	AttendeeID      primitive.ObjectID `bson:"attendeeId" json:"attendeeId"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	ContactNumber   *string            `bson:"contactNumber,omitempty" json:"contactNumber"`
	FullName        string             `bson:"-" json:"fullName"` // computed
	IsFirstTimer    bool               `bson:"isFirstTimer" json:"isFirstTimer"`
	CheckInTime     time.Time          `bson:"checkInTime" json:"checkInTime"`
}

// QRToken token สำหรับ kiosk self check-in (อายุสั้น หมดแล้วต้องขอใหม่)
type QRToken struct {
	Token     string `bson:"token" json:"token"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
	ExpiresAt int64  `bson:"expiresAt" json:"expiresAt"`
}
