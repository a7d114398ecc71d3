package facilitators

import (
	"testing"
	"time"

	"Backend-Elevate-012/src/apperrors"
	"Backend-Elevate-012/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newFacilitator(firstName, gender string) models.Facilitator {
	return models.Facilitator{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  "Cruz",
		Gender:    gender,
	}
}

func rowFor(attendeeID primitive.ObjectID, facID *primitive.ObjectID, checkInTime time.Time) checkedInRow {
	return checkedInRow{
		AttendanceLogID: primitive.NewObjectID(),
		AttendeeID:      attendeeID,
		FirstName:       "Juan",
		LastName:        "Dela Cruz",
		CheckInTime:     checkInTime,
		FacilitatorID:   facID,
	}
}

func TestPickLeastLoaded(t *testing.T) {
	t.Run("PicksFacilitatorWithFewestAttendees", func(t *testing.T) {
		// A มีลูกกลุ่ม 2 คน B มี 0 คน → คนใหม่ต้องไปอยู่กับ B
		a := newFacilitator("Andres", models.GenderMale)
		b := newFacilitator("Bayani", models.GenderMale)
		active := []models.Facilitator{a, b}
		loads := map[primitive.ObjectID]int{a.ID: 2, b.ID: 0}

		picked := pickLeastLoaded(active, loads)

		assert.NotNil(t, picked)
		assert.Equal(t, b.ID, picked.ID)
	})

	t.Run("TieBreaksByActiveOrder", func(t *testing.T) {
		// เสมอกันต้องได้คนแรกตามลำดับ active (เรียงตาม firstName มาแล้ว)
		a := newFacilitator("Andres", models.GenderMale)
		b := newFacilitator("Bayani", models.GenderMale)
		c := newFacilitator("Crisanto", models.GenderMale)
		active := []models.Facilitator{a, b, c}
		loads := map[primitive.ObjectID]int{a.ID: 1, b.ID: 1, c.ID: 1}

		picked := pickLeastLoaded(active, loads)

		assert.Equal(t, a.ID, picked.ID)
	})

	t.Run("StrictlySmallerWins", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		b := newFacilitator("Bayani", models.GenderMale)
		c := newFacilitator("Crisanto", models.GenderMale)
		active := []models.Facilitator{a, b, c}
		loads := map[primitive.ObjectID]int{a.ID: 3, b.ID: 2, c.ID: 1}

		picked := pickLeastLoaded(active, loads)

		assert.Equal(t, c.ID, picked.ID)
	})

	t.Run("NoActiveFacilitators", func(t *testing.T) {
		picked := pickLeastLoaded(nil, map[primitive.ObjectID]int{})
		assert.Nil(t, picked)
	})
}

func TestComputeLoads(t *testing.T) {
	now := time.Now()

	t.Run("SeedsZeroForEveryActiveFacilitator", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		b := newFacilitator("Bayani", models.GenderMale)
		active := []models.Facilitator{a, b}

		loads := computeLoads(active, nil, map[primitive.ObjectID]struct{}{})

		// facilitator ที่ยังไม่มีใครต้องเป็น 0 ไม่ใช่หายจาก map
		assert.Len(t, loads, 2)
		assert.Equal(t, 0, loads[a.ID])
		assert.Equal(t, 0, loads[b.ID])
	})

	t.Run("CountsOnlyAssignedNonFacilitatorRows", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		active := []models.Facilitator{a}
		facIDs := map[primitive.ObjectID]struct{}{a.ID: {}}

		staffAttendee := a.ID // facilitator ที่ลงทะเบียนเป็น attendee ด้วย id เดียวกัน
		rows := []checkedInRow{
			rowFor(primitive.NewObjectID(), &a.ID, now),
			rowFor(primitive.NewObjectID(), &a.ID, now),
			rowFor(primitive.NewObjectID(), nil, now),  // ยังไม่ถูก assign → ไม่นับ
			rowFor(staffAttendee, &a.ID, now),          // facilitator เอง → ไม่นับ
		}

		loads := computeLoads(active, rows, facIDs)

		assert.Equal(t, 2, loads[a.ID])
	})

	t.Run("IgnoresRowsForInactiveFacilitators", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		inactive := newFacilitator("Zacarias", models.GenderMale)
		active := []models.Facilitator{a}

		rows := []checkedInRow{
			rowFor(primitive.NewObjectID(), &inactive.ID, now),
		}

		loads := computeLoads(active, rows, map[primitive.ObjectID]struct{}{})

		assert.Len(t, loads, 1)
		assert.Equal(t, 0, loads[a.ID])
	})
}

func TestBuildRosters(t *testing.T) {
	now := time.Now()

	t.Run("GroupsAttendeesByFacilitator", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		b := newFacilitator("Bayani", models.GenderMale)
		active := []models.Facilitator{a, b}

		rows := []checkedInRow{
			rowFor(primitive.NewObjectID(), &a.ID, now),
			rowFor(primitive.NewObjectID(), &b.ID, now.Add(-time.Minute)),
			rowFor(primitive.NewObjectID(), &a.ID, now.Add(-2*time.Minute)),
		}

		rosters := buildRosters(active, rows, map[primitive.ObjectID]struct{}{})

		assert.Len(t, rosters, 2)
		assert.Equal(t, a.ID, rosters[0].ID)
		assert.Equal(t, 2, rosters[0].AttendeeCount)
		assert.Equal(t, b.ID, rosters[1].ID)
		assert.Equal(t, 1, rosters[1].AttendeeCount)
	})

	t.Run("ActiveFacilitatorWithNoAttendeesStillAppears", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		rosters := buildRosters([]models.Facilitator{a}, nil, map[primitive.ObjectID]struct{}{})

		assert.Len(t, rosters, 1)
		assert.Equal(t, 0, rosters[0].AttendeeCount)
		assert.NotNil(t, rosters[0].Attendees) // ต้องเป็น list ว่าง ไม่ใช่ null
		assert.Empty(t, rosters[0].Attendees)
	})

	t.Run("FacilitatorNeverAppearsAsAttendeeOfAnother", func(t *testing.T) {
		// F เช็คชื่อและลงทะเบียนเป็น attendee ที่ชี้ไปหา facilitator อื่น
		// roster ของคนอื่นต้องไม่มี F โผล่มา
		a := newFacilitator("Andres", models.GenderMale)
		f := newFacilitator("Felipe", models.GenderMale)
		active := []models.Facilitator{a, f}
		facIDs := map[primitive.ObjectID]struct{}{a.ID: {}, f.ID: {}}

		rows := []checkedInRow{
			rowFor(f.ID, &a.ID, now), // F ในฐานะ attendee ชี้ไปหา A
			rowFor(primitive.NewObjectID(), &a.ID, now),
		}

		rosters := buildRosters(active, rows, facIDs)

		assert.Equal(t, 1, rosters[0].AttendeeCount)
		for _, att := range rosters[0].Attendees {
			assert.NotEqual(t, f.ID, att.AttendeeID)
		}
	})

	t.Run("PreservesCheckInTimeOrderWithinGroup", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		// rows มาจาก pipeline ที่เรียงใหม่ไปเก่าแล้ว
		first := rowFor(primitive.NewObjectID(), &a.ID, now)
		second := rowFor(primitive.NewObjectID(), &a.ID, now.Add(-time.Hour))
		rosters := buildRosters([]models.Facilitator{a}, []checkedInRow{first, second}, map[primitive.ObjectID]struct{}{})

		assert.Len(t, rosters[0].Attendees, 2)
		assert.True(t, rosters[0].Attendees[0].CheckInTime.After(rosters[0].Attendees[1].CheckInTime))
	})

	t.Run("UnassignedAttendeesAppearNowhere", func(t *testing.T) {
		a := newFacilitator("Andres", models.GenderMale)
		rows := []checkedInRow{rowFor(primitive.NewObjectID(), nil, now)}

		rosters := buildRosters([]models.Facilitator{a}, rows, map[primitive.ObjectID]struct{}{})

		assert.Equal(t, 0, rosters[0].AttendeeCount)
	})
}

func TestValidateTransferAttendee(t *testing.T) {
	t.Run("EmptyIdIsInvalidArgument", func(t *testing.T) {
		_, err := validateTransferAttendee("  ", false)
		assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
	})

	t.Run("EmptyIdCheckedBeforeFacilitatorFlag", func(t *testing.T) {
		// ลำดับตรวจสำคัญ: id ว่างต้องตอบ invalid ก่อนเรื่อง policy
		_, err := validateTransferAttendee("", true)
		assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
	})

	t.Run("MalformedIdIsInvalidArgument", func(t *testing.T) {
		_, err := validateTransferAttendee("not-a-hex-id", false)
		assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
	})

	t.Run("FacilitatorAttendeeIsPolicyViolation", func(t *testing.T) {
		// facilitator ห้ามถูกจับไปเป็นลูกกลุ่มของ facilitator คนอื่น
		_, err := validateTransferAttendee(primitive.NewObjectID().Hex(), true)
		assert.Equal(t, apperrors.KindPolicyViolation, apperrors.KindOf(err))
	})

	t.Run("ValidAttendeePasses", func(t *testing.T) {
		id := primitive.NewObjectID()
		objID, err := validateTransferAttendee(id.Hex(), false)
		assert.NoError(t, err)
		assert.Equal(t, id, objID)
	})
}

func TestCheckGenderMatch(t *testing.T) {
	t.Run("MismatchIsPolicyViolation", func(t *testing.T) {
		err := checkGenderMatch(models.GenderFemale, models.GenderMale)
		assert.Equal(t, apperrors.KindPolicyViolation, apperrors.KindOf(err))
	})

	t.Run("MatchPasses", func(t *testing.T) {
		assert.NoError(t, checkGenderMatch(models.GenderMale, models.GenderMale))
	})
}
