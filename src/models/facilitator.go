package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facilitator พี่เลี้ยงประจำ service
// _id ใช้ id space เดียวกับ Attendee (ถ้า staff คนนั้นลงทะเบียนเป็น attendee ด้วย id จะตรงกัน)
type Facilitator struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Gender    string             `bson:"gender" json:"gender"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FacilitatorWithAttendees รายงาน roster ของ facilitator หนึ่งคนในวันนี้
type FacilitatorWithAttendees struct {
	Facilitator   `bson:",inline"`
	Attendees     []CheckedInAttendee `json:"attendees"`
	AttendeeCount int                 `json:"attendeeCount"`
}
