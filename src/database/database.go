package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	appDB      *mongo.Database
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	AttendeeCollection      *mongo.Collection
	FacilitatorCollection   *mongo.Collection
	AttendanceLogCollection *mongo.Collection
	QrTokenCollection       *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ElevateDB"
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		appDB = client.Database(dbName)
		AttendeeCollection = appDB.Collection("attendees")
		FacilitatorCollection = appDB.Collection("facilitators")
		AttendanceLogCollection = appDB.Collection("attendance_log")
		QrTokenCollection = appDB.Collection("qr_tokens")

		log.Println("✅ MongoDB connected successfully")
		ListDatabases()
		ensureIndexes(appDB)
	})

	return connectErr
}

// ensureIndexes สร้าง unique index ที่ระบบต้องพึ่งพา
// attendance_log: ห้ามมี record ซ้ำใน (attendeeId, serviceDate) เดียวกัน → กันเช็คชื่อซ้ำแม้ยิงพร้อมกัน
// attendees: contactNumber ห้ามซ้ำ (sparse เพราะบางคนไม่มีเบอร์มือถือ)
func ensureIndexes(db *mongo.Database) {
	ctx := context.TODO()

	_, err := db.Collection("attendance_log").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "attendeeId", Value: 1}, {Key: "serviceDate", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create attendance_log index:", err)
	}

	_, err = db.Collection("attendees").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "contactNumber", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create attendees index:", err)
	}
}

// GetCollection รับ Collection จาก database ที่เชื่อมต่ออยู่
func GetCollection(collectionName string) *mongo.Collection {
	if appDB == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return appDB.Collection(collectionName)
}

// ListDatabases แสดงรายการ Database ทั้งหมด
func ListDatabases() {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}

	// บาง deployment จำกัดสิทธิ์ listDatabases แค่เตือนพอ ไม่ต้องล้มทั้งแอป
	dbs, err := client.ListDatabaseNames(context.TODO(), bson.M{})
	if err != nil {
		log.Println("⚠️ Error listing databases:", err)
		return
	}

	fmt.Println("📌 Databases in MongoDB:")
	for _, db := range dbs {
		fmt.Println(" -", db)
	}
}
