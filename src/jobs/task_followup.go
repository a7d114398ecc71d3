package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"Backend-Elevate-012/src/database"
	"Backend-Elevate-012/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const TypeFirstTimerFollowup = "attendee:firsttimer_followup"

type FirstTimerFollowupPayload struct {
	AttendeeID string `json:"attendee_id"`
}

func NewFirstTimerFollowupTask(attendeeID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FirstTimerFollowupPayload{AttendeeID: attendeeID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFirstTimerFollowup, payload), nil
}

// HandleFirstTimerFollowupTask ส่งเมลต้อนรับให้ first timer หลังเช็คชื่อครั้งแรก
func HandleFirstTimerFollowupTask(ctx context.Context, t *asynq.Task) error {
	var payload FirstTimerFollowupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	objID, err := primitive.ObjectIDFromHex(payload.AttendeeID)
	if err != nil {
		return err
	}

	var attendee models.Attendee
	err = database.GetCollection("attendees").FindOne(ctx, bson.M{"_id": objID}).Decode(&attendee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// attendee ถูกลบก่อนงานรัน ข้ามไปเลยไม่ใช่ error
			log.Println("⚠️ Attendee not found. Skipping follow-up:", payload.AttendeeID)
			return nil
		}
		return err
	}

	if attendee.Email == nil {
		log.Println("⚠️ Attendee has no email. Skipping follow-up:", payload.AttendeeID)
		return nil
	}

	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("⚠️ SMTP not configured. Skipping follow-up:", err)
		return nil
	}

	subject := "Welcome! We're glad you joined us"
	html := firstTimerEmailHTML(attendee.FullName())
	if err := sender.Send(*attendee.Email, subject, html); err != nil {
		log.Println("❌ Failed to send follow-up email:", err)
		return err
	}

	log.Println("✅ Follow-up email sent to:", *attendee.Email)
	return nil
}

func firstTimerEmailHTML(fullName string) string {
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 560px;">
			<h2>Hi %s 👋</h2>
			<p>Thank you for visiting our service today — it was great to have you!</p>
			<p>We'd love to see you again next week. If you have any questions,
			just reply to this email and your facilitator will get back to you.</p>
			<p>See you soon!</p>
		</div>`, fullName)
}
