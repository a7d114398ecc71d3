package utils

import (
	"os"
	"time"
)

// ReportingLocation timezone ที่ใช้ตัดวันของ service (ค่าเริ่มต้น Asia/Manila)
func ReportingLocation() *time.Location {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "Asia/Manila"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ServiceDate แปลงเวลาเป็น service date (YYYY-MM-DD) ตาม location ที่กำหนด
// เป็น pure function ห้าม cache ค่า "วันนี้" ไว้ที่อื่น ไม่งั้นข้ามเที่ยงคืนแล้ววันค้าง
func ServiceDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// TodayServiceDate คืน service date ของตอนนี้ คำนวณใหม่ทุกครั้งที่เรียก
func TodayServiceDate() string {
	return ServiceDate(time.Now(), ReportingLocation())
}
