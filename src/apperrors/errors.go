package apperrors

import (
	"errors"
	"fmt"
)

// Kind จัดหมวดหมู่ error ทั้งหมดที่ engine มองเห็น
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindNotFound
	KindDuplicateKey
	KindPermissionDenied
	KindPolicyViolation
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindPermissionDenied:
		return "permission_denied"
	case KindPolicyViolation:
		return "policy_violation"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error คือ error ที่ผ่านการจัดหมวดแล้ว พร้อมข้อความสำหรับผู้ใช้
type Error struct {
	Kind    Kind
	Message string
	Err     error // error ต้นทาง (ถ้ามี)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New สร้าง Error ใหม่จาก kind และข้อความ
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf เหมือน New แต่ format ข้อความได้
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap ห่อ error ต้นทางพร้อม kind และข้อความใหม่
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf คืนหมวดของ error (Unknown ถ้าไม่ใช่ *Error)
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// MessageOf คืนข้อความสำหรับผู้ใช้ของ error
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// Is รายงานว่า err อยู่ในหมวด kind หรือไม่
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
