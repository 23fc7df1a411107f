package service

import (
	"os"

	"github.com/KyryloYefremov/go-blog/database"
	"github.com/KyryloYefremov/go-blog/logger"

	"github.com/op/go-logging"
)

const testDBPath = "test.db"

func setup() {
	os.Setenv("BLOG_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	removeTestDB()
	database.InitDB(testDBPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	removeTestDB()
}

func removeTestDB() {
	os.Remove(testDBPath)
	os.Remove(testDBPath + "-wal")
	os.Remove(testDBPath + "-shm")
}
