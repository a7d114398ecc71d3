package apperrors

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo server error codes ที่ระบบต้องแยกแยะ
const (
	mongoCodeUnauthorized = 13
)

// FromMongo จัดหมวด error ดิบจาก mongo-driver ให้เป็น *Error หนึ่งครั้งที่ขอบ adapter
// โค้ดชั้น service จะเห็นเฉพาะ kind ที่จัดแล้ว ไม่ต้องไปเทียบ error code ของ store เอง
// message คือข้อความสำหรับผู้ใช้ของ operation ที่ล้มเหลว
func FromMongo(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return Wrap(KindNotFound, message, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return Wrap(KindDuplicateKey, message, err)
	}
	if isUnauthorized(err) {
		return Wrap(KindPermissionDenied, message, err)
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return Wrap(KindStoreUnavailable, message, err)
	}
	return Wrap(KindUnknown, message, err)
}

func isUnauthorized(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == mongoCodeUnauthorized {
		return true
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == mongoCodeUnauthorized {
				return true
			}
		}
	}
	return false
}
