package attendance

import (
	"context"
	"log"
	"strings"
	"time"

	"Backend-Elevate-012/src/apperrors"
	DB "Backend-Elevate-012/src/database"
	"Backend-Elevate-012/src/jobs"
	"Backend-Elevate-012/src/models"
	"Backend-Elevate-012/src/services/facilitators"
	"Backend-Elevate-012/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const alreadyCheckedInMsg = "You are already checked in for today's service."

// RegisterAndCheckIn ลงทะเบียน attendee ใหม่แล้วเช็คชื่อวันนี้ทันที
// ไม่มี cross-table transaction: ถ้า insert attendee สำเร็จแต่ log ล้มเหลว
// จะรายงานเป็น partial failure บอกชัดว่าขั้นไหนพัง ไม่ rollback
func RegisterAndCheckIn(req *models.RegisterAttendeeRequest) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ValidateRegistration(req, ContactNumberPolicy()); err != nil {
		return nil, err
	}

	attendee := models.Attendee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		ContactNumber:    optional(req.ContactNumber),
		Email:            optional(req.Email),
		Birthday:         optional(req.Birthday),
		SchoolName:       req.SchoolName,
		Barangay:         req.Barangay,
		City:             req.City,
		SocialMediaName:  optional(req.SocialMediaName),
		Gender:           req.Gender,
		IsDgroupMember:   req.IsDgroupMember,
		IsFirstTimer:     true,
		CreatedAt:        time.Now(),
	}
	if req.IsDgroupMember && req.DgroupLeaderName != "" {
		attendee.DgroupLeaderName = optional(req.DgroupLeaderName)
	}

	res, err := DB.AttendeeCollection.InsertOne(ctx, attendee)
	if err != nil {
		return nil, mapRegisterError(err)
	}
	attendee.ID = res.InsertedID.(primitive.ObjectID)

	// เช็คชื่อวันนี้ทันทีหลังลงทะเบียน
	logEntry := models.AttendanceLog{
		AttendeeID:  attendee.ID,
		ServiceDate: utils.TodayServiceDate(),
		CheckInTime: time.Now(),
	}
	if _, err := DB.AttendanceLogCollection.InsertOne(ctx, logEntry); err != nil {
		classified := apperrors.FromMongo(err, "")
		return nil, apperrors.Wrap(classified.Kind,
			"Attendee registered but check-in failed: "+err.Error(), err)
	}

	attendee.FacilitatorID = autoAssign(attendee.ID.Hex(), attendee.Gender)
	enqueueFirstTimerFollowup(&attendee)

	return &attendee, nil
}

// CheckIn เช็คชื่อ attendee เดิมสำหรับ service วันนี้
func CheckIn(attendeeId string) (*models.Attendee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if strings.TrimSpace(attendeeId) == "" {
		return nil, apperrors.New(apperrors.KindInvalidArgument, "Invalid attendee ID.")
	}
	attendeeObjID, err := primitive.ObjectIDFromHex(attendeeId)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalidArgument, "Invalid attendee ID.")
	}

	var attendee models.Attendee
	if err := DB.AttendeeCollection.FindOne(ctx, bson.M{"_id": attendeeObjID}).Decode(&attendee); err != nil {
		return nil, apperrors.FromMongo(err, "Attendee not found.")
	}

	today := utils.TodayServiceDate()

	// pre-check กันยิงซ้ำ เป็นแค่ optimization ตัวกันจริงคือ unique index
	count, err := DB.AttendanceLogCollection.CountDocuments(ctx,
		bson.M{"attendeeId": attendeeObjID, "serviceDate": today})
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to check existing attendance.")
	}
	if count > 0 {
		return nil, apperrors.New(apperrors.KindDuplicateKey, alreadyCheckedInMsg)
	}

	logEntry := models.AttendanceLog{
		AttendeeID:  attendeeObjID,
		ServiceDate: today,
		CheckInTime: time.Now(),
	}
	if _, err := DB.AttendanceLogCollection.InsertOne(ctx, logEntry); err != nil {
		// แพ้ race กับอีก request → ผลลัพธ์ต้องเหมือนกรณี pre-check เจอ
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.New(apperrors.KindDuplicateKey, alreadyCheckedInMsg)
		}
		return nil, apperrors.FromMongo(err, "Failed to check in.")
	}

	// auto-assign เฉพาะคนที่ยังไม่มี facilitator (idempotent สำหรับคนที่มีแล้ว)
	// ใส่ผลกลับลง attendee ด้วย เพื่อให้ response สะท้อนกลุ่มที่เพิ่งได้
	if attendee.FacilitatorID == nil {
		attendee.FacilitatorID = autoAssign(attendeeId, attendee.Gender)
	}

	return &attendee, nil
}

// assignFacilitator ชี้ไป engine จริง แยกไว้ให้ test สลับเป็น stub ได้
var assignFacilitator = facilitators.AutoAssign

// autoAssign มอบหมาย facilitator แบบ best-effort การเช็คชื่อสำเร็จไปแล้ว
// ความล้มเหลวของการ assign ไม่ทำให้ check-in ล้ม คืน id ที่ได้ (nil = ยังไม่มีกลุ่ม)
func autoAssign(attendeeId, gender string) *primitive.ObjectID {
	facID, err := assignFacilitator(attendeeId, gender)
	if err != nil {
		log.Println("⚠️ Auto-assign failed for attendee", attendeeId+":", err)
		return nil
	}
	if facID != nil {
		log.Println("✅ Attendee", attendeeId, "assigned to facilitator", facID.Hex())
	}
	return facID
}

// SearchAttendees ค้นหา attendee จากชื่อหรือเบอร์ (ไม่สนตัวพิมพ์เล็กใหญ่)
func SearchAttendees(searchString string) ([]models.SearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	term := strings.TrimSpace(searchString)
	if len(term) < 2 {
		return []models.SearchResult{}, nil
	}

	regex := bson.M{"$regex": regexEscape(term), "$options": "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"firstName": regex},
		bson.M{"lastName": regex},
		bson.M{"contactNumber": regex},
	}}

	opts := options.Find().
		SetProjection(bson.M{"firstName": 1, "lastName": 1, "contactNumber": 1}).
		SetSort(bson.D{{Key: "firstName", Value: 1}}).
		SetLimit(10)

	cursor, err := DB.AttendeeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to search attendees.")
	}
	defer cursor.Close(ctx)

	var results []models.SearchResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, apperrors.FromMongo(err, "Failed to search attendees.")
	}
	for i := range results {
		results[i].FullName = strings.TrimSpace(results[i].FirstName + " " + results[i].LastName)
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}

// GetAttendees ดึง attendee ทั้งหมดพร้อม pagination และคำค้นหา
func GetAttendees(params models.PaginationParams) ([]models.Attendee, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": regexEscape(params.Search), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"contactNumber": regex},
		}
	}

	total, err := DB.AttendeeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.FromMongo(err, "Failed to fetch attendees.")
	}

	opts := options.Find().
		SetSort(params.SortBson()).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.AttendeeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.FromMongo(err, "Failed to fetch attendees.")
	}
	defer cursor.Close(ctx)

	var attendees []models.Attendee
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, 0, apperrors.FromMongo(err, "Failed to fetch attendees.")
	}
	return attendees, total, nil
}

// GetCheckedInToday ดึงรายชื่อคนที่เช็คชื่อแล้ววันนี้ เรียงเวลาเช็คชื่อล่าสุดก่อน
func GetCheckedInToday() ([]models.CheckedInAttendee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// join attendance_log → attendees; $unwind จะทิ้ง log ที่หา attendee ไม่เจอให้เอง
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
			"checkInTime":     1,
		}}},
	}

	cursor, err := DB.AttendanceLogCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.FromMongo(err, "Failed to fetch checked-in attendees.")
	}
	defer cursor.Close(ctx)

	var checkedIn []models.CheckedInAttendee
	if err := cursor.All(ctx, &checkedIn); err != nil {
		return nil, apperrors.FromMongo(err, "Failed to fetch checked-in attendees.")
	}
	for i := range checkedIn {
		checkedIn[i].FullName = strings.TrimSpace(checkedIn[i].FirstName + " " + checkedIn[i].LastName)
	}
	if checkedIn == nil {
		checkedIn = []models.CheckedInAttendee{}
	}
	return checkedIn, nil
}

// RemoveCheckIn ลบการเช็คชื่อของวันนี้ (undo check-in)
func RemoveCheckIn(attendanceLogId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logObjID, err := primitive.ObjectIDFromHex(attendanceLogId)
	if err != nil {
		return apperrors.New(apperrors.KindInvalidArgument, "Invalid attendance log ID.")
	}

	res, err := DB.AttendanceLogCollection.DeleteOne(ctx, bson.M{"_id": logObjID})
	if err != nil {
		return apperrors.FromMongo(err, "Failed to remove check-in.")
	}
	if res.DeletedCount == 0 {
		return apperrors.New(apperrors.KindNotFound, "No attendance record was deleted.")
	}
	return nil
}

// mapRegisterError แปลง error ตอน insert attendee เป็นข้อความที่ผู้ใช้เข้าใจ
func mapRegisterError(err error) error {
	classified := apperrors.FromMongo(err, "")
	switch classified.Kind {
	case apperrors.KindDuplicateKey:
		classified.Message = "This contact number is already registered. Please use the returning check-in instead."
	case apperrors.KindPermissionDenied:
		classified.Message = "Permission denied by the database. Please check collection access rules."
	case apperrors.KindStoreUnavailable:
		classified.Message = "Unable to reach the database. Please check your connection."
	default:
		classified.Message = "Failed to register attendee: " + err.Error()
	}
	return classified
}

// enqueueFirstTimerFollowup ตั้งงานส่งเมลต้อนรับ first timer (ทำได้ค่อยทำ ไม่มี Redis ก็ข้าม)
func enqueueFirstTimerFollowup(attendee *models.Attendee) {
	if DB.AsynqClient == nil || attendee.Email == nil {
		return
	}
	task, err := jobs.NewFirstTimerFollowupTask(attendee.ID.Hex())
	if err != nil {
		log.Println("⚠️ Failed to create follow-up task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue follow-up task:", err)
		return
	}
	log.Println("✅ Follow-up email queued for first timer:", attendee.FullName())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// regexEscape กัน special character ของ regex ในคำค้นหา
func regexEscape(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
		`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
		`^`, `\^`, `$`, `\$`, `|`, `\|`,
	)
	return replacer.Replace(s)
}
