package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"TalentBoard-backend/internal/core"
	"TalentBoard-backend/internal/database"
	"TalentBoard-backend/internal/storage"
	"TalentBoard-backend/internal/store"
)

// MyServer contain the application core shared by every route handler.
type MyServer struct {
	Core *core.Core
	DB   *database.DBinstanceStruct // nil when remote is not configured
}

// NewServer construct new Server instance. The local snapshot backend always
// comes up; the remote backend attaches only when both REMOTE_DATABASE_URL
// and STORAGE_BUCKET are present.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))

	snapshotDir := os.Getenv("SNAPSHOT_PATH")
	if snapshotDir == "" {
		snapshotDir = "."
	}

	attachments := storage.NewSessionStore()
	local := store.OpenLocal(snapshotDir, attachments)

	var (
		remote *store.RemoteStore
		db     *database.DBinstanceStruct
	)
	remoteURL := os.Getenv("REMOTE_DATABASE_URL")
	bucket := os.Getenv("STORAGE_BUCKET")
	if remoteURL != "" && bucket != "" {
		var err error
		db, err = database.GetMainDB()
		if err != nil {
			log.Fatalf("Database failed to initialized: %s", err)
		}
		cloud, err := storage.NewCloudStorageClient(context.Background(), bucket)
		if err != nil {
			log.Fatalf("Cloud storage failed to initialized: %s", err)
		}
		timeout := time.Duration(0)
		if secs, err := strconv.Atoi(os.Getenv("REMOTE_TIMEOUT_SECONDS")); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
		remote = store.NewRemoteStore(db, cloud, timeout)
	} else {
		log.Println("Remote backend not configured, running local-only")
	}

	s := &MyServer{
		Core: core.New(local, remote, attachments),
		DB:   db,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
