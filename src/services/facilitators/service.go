package facilitators

import (
	"context"
	"strings"
	"time"

	"Backend-Elevate-012/src/apperrors"
	DB "Backend-Elevate-012/src/database"
	"Backend-Elevate-012/src/models"
	"Backend-Elevate-012/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IsFacilitator ตรวจว่า id นี้อยู่ในชุด facilitator หรือไม่
// หาไม่เจอหรือ store มีปัญหา → false (fail open) เพื่อไม่ให้ lookup ชั่วคราวพัง
// ไปบล็อกการ assign ห้ามใช้ผลนี้ตัดสินใจด้าน security
func IsFacilitator(attendeeId string) bool {
	objID, err := primitive.ObjectIDFromHex(attendeeId)
	if err != nil {
		return false
	}
	err = DB.FacilitatorCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Err()
	return err == nil
}

// facilitatorIDSet โหลด id ของ facilitator ทุกคนมาเป็น set ครั้งเดียว
// full scan ตรงนี้จงใจ: facilitator มีหลักสิบคน จ่าย O(n) หนึ่ง query
// ดีกว่ายิง query ต่อแถวตอน join
func facilitatorIDSet(ctx context.Context) (map[primitive.ObjectID]struct{}, error) {
	cursor, err := DB.FacilitatorCollection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to load facilitators.")
	}
	defer cursor.Close(ctx)

	ids := make(map[primitive.ObjectID]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		ids[doc.ID] = struct{}{}
	}
	return ids, nil
}

// ActiveFacilitators คืน facilitator ที่เช็คชื่อแล้ววันนี้ เรียงตาม firstName
// gender ว่าง = ทุกเพศ ยังไม่มีใครเช็คชื่อเลยคืน slice ว่าง (ไม่ใช่ error)
func ActiveFacilitators(gender string) ([]models.Facilitator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	today := utils.TodayServiceDate()
	ids, err := DB.AttendanceLogCollection.Distinct(ctx, "attendeeId", bson.M{"serviceDate": today})
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to resolve today's attendance.")
	}
	if len(ids) == 0 {
		return []models.Facilitator{}, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	if gender != "" {
		filter["gender"] = gender
	}

	cursor, err := DB.FacilitatorCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}}))
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to load active facilitators.")
	}
	defer cursor.Close(ctx)

	var active []models.Facilitator
	if err := cursor.All(ctx, &active); err != nil {
		return nil, apperrors.FromMongo(err, "Failed to load active facilitators.")
	}
	if active == nil {
		active = []models.Facilitator{}
	}
	return active, nil
}

// fetchTodayRows ดึง attendance_log ของวันนี้ join กับ attendees
// $unwind ทิ้ง log ที่ attendee หายไปแล้ว (referential anomaly) โดยไม่ถือเป็น error
// ผลเรียงตาม checkInTime ใหม่ไปเก่า ให้ buildRosters ใช้ลำดับนี้ต่อได้เลย
func fetchTodayRows(ctx context.Context) ([]checkedInRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"serviceDate": utils.TodayServiceDate()}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "attendees",
			"localField":   "attendeeId",
			"foreignField": "_id",
			"as":           "attendee",
		}}},
		bson.D{{Key: "$unwind", Value: "$attendee"}},
		bson.D{{Key: "$sort", Value: bson.M{"checkInTime": -1}}},
		bson.D{{Key: "$project", Value: bson.M{
			"attendanceLogId": "$_id",
			"attendeeId":      "$attendee._id",
			"firstName":       "$attendee.firstName",
			"lastName":        "$attendee.lastName",
			"contactNumber":   "$attendee.contactNumber",
			"isFirstTimer":    "$attendee.isFirstTimer",
			"facilitatorId":   "$attendee.facilitatorId",
			"checkInTime":     1,
		}}},
	}

	cursor, err := DB.AttendanceLogCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to fetch today's check-ins.")
	}
	defer cursor.Close(ctx)

	var rows []checkedInRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, apperrors.FromMongo(err, "Failed to fetch today's check-ins.")
	}
	return rows, nil
}

// AllRosters รายงานลูกกลุ่มวันนี้ของ facilitator ที่ active ทุกคน
func AllRosters() ([]models.FacilitatorWithAttendees, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	active, err := ActiveFacilitators("")
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return []models.FacilitatorWithAttendees{}, nil
	}

	facilitatorIDs, err := facilitatorIDSet(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := fetchTodayRows(ctx)
	if err != nil {
		return nil, err
	}

	return buildRosters(active, rows, facilitatorIDs), nil
}

// RosterFor รายงานลูกกลุ่มวันนี้ของ facilitator คนเดียว
func RosterFor(facilitatorId string) (*models.FacilitatorWithAttendees, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(facilitatorId)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalidArgument, "Invalid facilitator ID.")
	}

	var fac models.Facilitator
	if err := DB.FacilitatorCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&fac); err != nil {
		return nil, apperrors.FromMongo(err, "Facilitator not found.")
	}

	facilitatorIDs, err := facilitatorIDSet(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := fetchTodayRows(ctx)
	if err != nil {
		return nil, err
	}

	rosters := buildRosters([]models.Facilitator{fac}, rows, facilitatorIDs)
	return &rosters[0], nil
}

// AutoAssign เลือก facilitator เพศเดียวกันที่ load น้อยสุดให้ attendee ที่ยังไม่มีกลุ่ม
// คืน (nil, nil) เมื่อ attendee เป็น facilitator เอง หรือไม่มี facilitator ที่ active
// สองกรณีนี้ไม่ใช่ความล้มเหลว attendee แค่ยังไม่ถูก assign
//
// การนับ load ไม่มี lock: สอง check-in พร้อมกันอาจอ่านค่าเดียวกันแล้วเทไปคนเดียวกัน
// ยอมรับ skew ชั่วคราวนี้ รอบ check-in ถัดไปจะเกลี่ยกลับเอง
func AutoAssign(attendeeId, gender string) (*primitive.ObjectID, error) {
	if IsFacilitator(attendeeId) {
		return nil, nil
	}

	active, err := ActiveFacilitators(gender)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	facilitatorIDs, err := facilitatorIDSet(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := fetchTodayRows(ctx)
	if err != nil {
		return nil, err
	}

	loads := computeLoads(active, rows, facilitatorIDs)
	picked := pickLeastLoaded(active, loads)

	pickedId := picked.ID.Hex()
	if err := Transfer(attendeeId, &pickedId); err != nil {
		return nil, err
	}
	return &picked.ID, nil
}

// Transfer ย้าย attendee ไปอยู่กับ facilitator คนใหม่ (nil = ปลดออกจากกลุ่ม)
// ตรวจตามลำดับ: id ต้องไม่ว่าง → attendee ต้องไม่ใช่ facilitator →
// ถ้ามีเป้าหมาย เพศทั้งสองฝั่งต้องมีอยู่จริงและตรงกัน → ค่อย update แถวเดียว
func Transfer(attendeeId string, newFacilitatorId *string) error {
	attendeeObjID, err := validateTransferAttendee(attendeeId, IsFacilitator(attendeeId))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update bson.M
	if newFacilitatorId != nil {
		facObjID, err := primitive.ObjectIDFromHex(*newFacilitatorId)
		if err != nil {
			return apperrors.New(apperrors.KindInvalidArgument, "Invalid facilitator ID.")
		}

		var attendee struct {
			Gender string `bson:"gender"`
		}
		err = DB.AttendeeCollection.FindOne(ctx, bson.M{"_id": attendeeObjID},
			options.FindOne().SetProjection(bson.M{"gender": 1})).Decode(&attendee)
		if err != nil {
			return apperrors.FromMongo(err, "Attendee not found.")
		}

		var fac struct {
			Gender string `bson:"gender"`
		}
		err = DB.FacilitatorCollection.FindOne(ctx, bson.M{"_id": facObjID},
			options.FindOne().SetProjection(bson.M{"gender": 1})).Decode(&fac)
		if err != nil {
			return apperrors.FromMongo(err, "Facilitator not found.")
		}

		if err := checkGenderMatch(attendee.Gender, fac.Gender); err != nil {
			return err
		}

		update = bson.M{"$set": bson.M{"facilitatorId": facObjID}}
	} else {
		update = bson.M{"$unset": bson.M{"facilitatorId": ""}}
	}

	res, err := DB.AttendeeCollection.UpdateOne(ctx, bson.M{"_id": attendeeObjID}, update)
	if err != nil {
		return apperrors.FromMongo(err, "Failed to update facilitator assignment.")
	}
	if res.MatchedCount == 0 {
		return apperrors.New(apperrors.KindNotFound, "Attendee not found.")
	}
	return nil
}

// GetFacilitators ดึง facilitator ทุกคน เรียงตาม firstName
func GetFacilitators() ([]models.Facilitator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.FacilitatorCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}}))
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to load facilitators.")
	}
	defer cursor.Close(ctx)

	var facs []models.Facilitator
	if err := cursor.All(ctx, &facs); err != nil {
		return nil, apperrors.FromMongo(err, "Failed to load facilitators.")
	}
	if facs == nil {
		facs = []models.Facilitator{}
	}
	return facs, nil
}

// CreateFacilitator เพิ่ม facilitator ใหม่
func CreateFacilitator(fac *models.Facilitator) error {
	fac.FirstName = strings.TrimSpace(fac.FirstName)
	fac.LastName = strings.TrimSpace(fac.LastName)

	if fac.FirstName == "" || fac.LastName == "" {
		return apperrors.New(apperrors.KindInvalidArgument, "First name and last name are required.")
	}
	if fac.Gender != models.GenderMale && fac.Gender != models.GenderFemale {
		return apperrors.New(apperrors.KindInvalidArgument, "Gender must be Male or Female.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fac.CreatedAt = time.Now()
	res, err := DB.FacilitatorCollection.InsertOne(ctx, fac)
	if err != nil {
		return apperrors.FromMongo(err, "Failed to create facilitator.")
	}
	fac.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// DeleteFacilitator ลบ facilitator และเคลียร์ reference ที่ค้างอยู่ใน attendees
// ห้าม cascade-delete attendee แค่ null reference ทิ้งเท่านั้น
func DeleteFacilitator(facilitatorId string) error {
	objID, err := primitive.ObjectIDFromHex(facilitatorId)
	if err != nil {
		return apperrors.New(apperrors.KindInvalidArgument, "Invalid facilitator ID.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := DB.FacilitatorCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperrors.FromMongo(err, "Failed to delete facilitator.")
	}
	if res.DeletedCount == 0 {
		return apperrors.New(apperrors.KindNotFound, "Facilitator not found.")
	}

	_, err = DB.AttendeeCollection.UpdateMany(ctx,
		bson.M{"facilitatorId": objID},
		bson.M{"$unset": bson.M{"facilitatorId": ""}})
	if err != nil {
		return apperrors.FromMongo(err, "Facilitator deleted but failed to clear attendee references.")
	}
	return nil
}
