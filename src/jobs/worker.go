package jobs

import (
	"log"

	"Backend-Elevate-012/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker เปิด asynq worker สำหรับงาน background ทั้งหมด
// ถ้าไม่มี Redis ระบบหลักยังทำงานได้ แค่ไม่มีงาน background
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFirstTimerFollowup, HandleFirstTimerFollowupTask)

	go func() {
		log.Println("✅ Background worker started")
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Background worker stopped:", err)
		}
	}()
}
