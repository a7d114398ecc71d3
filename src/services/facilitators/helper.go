package facilitators

import (
	"strings"
	"time"

	"Backend-Elevate-012/src/apperrors"
	"Backend-Elevate-012/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// checkedInRow คือหนึ่งแถวจากการ join attendance_log ของวันนี้กับ attendees
type checkedInRow struct {
	AttendanceLogID primitive.ObjectID  `bson:"attendanceLogId"`
	AttendeeID      primitive.ObjectID  `bson:"attendeeId"`
	FirstName       string              `bson:"firstName"`
	LastName        string              `bson:"lastName"`
	ContactNumber   *string             `bson:"contactNumber"`
	IsFirstTimer    bool                `bson:"isFirstTimer"`
	CheckInTime     time.Time           `bson:"checkInTime"`
	FacilitatorID   *primitive.ObjectID `bson:"facilitatorId"`
}

// buildRosters จัดกลุ่มแถวเช็คชื่อวันนี้ตาม facilitator
// กติกา: แถวที่ attendee เป็น facilitator เองต้องไม่ถูกนับเป็นลูกกลุ่มของใคร
// facilitator ที่ active แต่ไม่มีลูกกลุ่มยังต้องโผล่ใน result พร้อม count 0
// rows ต้องถูกเรียงตาม checkInTime จากใหม่ไปเก่ามาก่อนแล้ว ลำดับในแต่ละกลุ่มจะตามนั้น
func buildRosters(active []models.Facilitator, rows []checkedInRow, facilitatorIDs map[primitive.ObjectID]struct{}) []models.FacilitatorWithAttendees {
	byFacilitator := make(map[primitive.ObjectID][]models.CheckedInAttendee, len(active))
	for _, f := range active {
		byFacilitator[f.ID] = []models.CheckedInAttendee{}
	}

	for _, row := range rows {
		if row.FacilitatorID == nil {
			continue
		}
		if _, isFac := facilitatorIDs[row.AttendeeID]; isFac {
			continue
		}
		group, wanted := byFacilitator[*row.FacilitatorID]
		if !wanted {
			continue
		}
		byFacilitator[*row.FacilitatorID] = append(group, toCheckedInAttendee(row))
	}

	rosters := make([]models.FacilitatorWithAttendees, 0, len(active))
	for _, f := range active {
		attendees := byFacilitator[f.ID]
		rosters = append(rosters, models.FacilitatorWithAttendees{
			Facilitator:   f,
			Attendees:     attendees,
			AttendeeCount: len(attendees),
		})
	}
	return rosters
}

// computeLoads นับจำนวนลูกกลุ่มปัจจุบันของ facilitator แต่ละคน (เฉพาะที่เช็คชื่อวันนี้)
// facilitator ที่ยังไม่มีใครเลยต้องถูก seed เป็น 0 ไม่ใช่หายไปจาก map
func computeLoads(active []models.Facilitator, rows []checkedInRow, facilitatorIDs map[primitive.ObjectID]struct{}) map[primitive.ObjectID]int {
	loads := make(map[primitive.ObjectID]int, len(active))
	for _, f := range active {
		loads[f.ID] = 0
	}
	for _, row := range rows {
		if row.FacilitatorID == nil {
			continue
		}
		if _, isFac := facilitatorIDs[row.AttendeeID]; isFac {
			continue
		}
		if _, ok := loads[*row.FacilitatorID]; ok {
			loads[*row.FacilitatorID]++
		}
	}
	return loads
}

// pickLeastLoaded เลือก facilitator ที่ load น้อยที่สุด
// เสมอกันให้คนที่เจอก่อนตามลำดับของ active (เรียงตาม firstName แล้ว) เพื่อให้ผล deterministic
func pickLeastLoaded(active []models.Facilitator, loads map[primitive.ObjectID]int) *models.Facilitator {
	if len(active) == 0 {
		return nil
	}
	best := &active[0]
	for i := 1; i < len(active); i++ {
		if loads[active[i].ID] < loads[best.ID] {
			best = &active[i]
		}
	}
	return best
}

// validateTransferAttendee ตรวจฝั่ง attendee ของการย้ายกลุ่ม ตามลำดับ:
// id ต้องไม่ว่าง → ต้องเป็น ObjectID จริง → attendee ต้องไม่ใช่ facilitator เอง
func validateTransferAttendee(attendeeId string, isFacilitator bool) (primitive.ObjectID, error) {
	if strings.TrimSpace(attendeeId) == "" {
		return primitive.NilObjectID, apperrors.New(apperrors.KindInvalidArgument, "Invalid attendee ID.")
	}
	objID, err := primitive.ObjectIDFromHex(attendeeId)
	if err != nil {
		return primitive.NilObjectID, apperrors.New(apperrors.KindInvalidArgument, "Invalid attendee ID.")
	}
	if isFacilitator {
		return primitive.NilObjectID, apperrors.New(apperrors.KindPolicyViolation, "Facilitators cannot be assigned to a facilitator.")
	}
	return objID, nil
}

// checkGenderMatch บังคับกติกากลุ่ม: เพศ facilitator ต้องตรงกับ attendee
func checkGenderMatch(attendeeGender, facilitatorGender string) error {
	if attendeeGender != facilitatorGender {
		return apperrors.New(apperrors.KindPolicyViolation, "Facilitator gender must match attendee gender.")
	}
	return nil
}

func toCheckedInAttendee(row checkedInRow) models.CheckedInAttendee {
	return models.CheckedInAttendee{
		AttendanceLogID: row.AttendanceLogID,
		AttendeeID:      row.AttendeeID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		ContactNumber:   row.ContactNumber,
		FullName:        strings.TrimSpace(row.FirstName + " " + row.LastName),
		IsFirstTimer:    row.IsFirstTimer,
		CheckInTime:     row.CheckInTime,
	}
}
