package attendance

import (
	"context"
	"log"
	"time"

	"Backend-Elevate-012/src/apperrors"
	DB "Backend-Elevate-012/src/database"
	"Backend-Elevate-012/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// QR_TOKEN_EXPIRY อายุ QR token ของ kiosk (วินาที) หมดแล้วหน้าจอต้องขอ token ใหม่
const QR_TOKEN_EXPIRY = 30

// CreateQRToken สร้าง token สำหรับแสดงบนหน้าจอ kiosk
func CreateQRToken() (string, int64, error) {
	token := uuid.NewString()
	now := time.Now().Unix()
	expiresAt := now + QR_TOKEN_EXPIRY

	qrToken := models.QRToken{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if _, err := DB.QrTokenCollection.InsertOne(context.TODO(), qrToken); err != nil {
		log.Println("❌ [CreateQRToken] Failed to insert:", err)
		return "", 0, apperrors.FromMongo(err, "Failed to create QR token.")
	}
	return token, expiresAt, nil
}

// ClaimQRToken เช็คชื่อผ่าน QR ที่สแกนจาก kiosk
// token ต้องยังไม่หมดอายุ จากนั้นเดินเส้นทางเดียวกับ CheckIn ปกติ
func ClaimQRToken(token, attendeeId string) (*models.Attendee, error) {
	ctx := context.TODO()

	var qrToken models.QRToken
	err := DB.QrTokenCollection.FindOne(ctx,
		bson.M{"token": token, "expiresAt": bson.M{"$gt": time.Now().Unix()}},
	).Decode(&qrToken)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalidArgument, "QR token expired or invalid.")
	}

	return CheckIn(attendeeId)
}
