package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "TalentBoard-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records for tests
var (
	TestJobFrontend m.Job
	TestJobBackend  m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		Constr: fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two jobs with a handful of candidates if empty.
func seedTestData(db *DBinstanceStruct) error {
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		return loadTestData(db)
	}

	dept := "Engineering"
	locRemote := "Remote"
	email1, email2, email3 := "rohit.verma@example.com", "ananya.iyer@example.com", "sofia.marin@example.com"
	score := 68

	frontendID, backendID := uuid.New(), uuid.New()

	jobs := []m.Job{
		{
			ID: frontendID,
			EditableJobInfo: m.EditableJobInfo{
				Title:      "Frontend Engineer",
				Department: &dept,
				Location:   &locRemote,
			},
			Candidates: []m.Candidate{
				{
					ID:    uuid.New(),
					JobID: frontendID,
					EditableCandidateInfo: m.EditableCandidateInfo{
						Name:  "Rohit Verma",
						Email: &email1,
						Tags:  pq.StringArray{"react", "typescript"},
						Stage: m.StageSourced,
					},
					AppliedAt: time.Now().AddDate(0, 0, -6),
				},
				{
					ID:    uuid.New(),
					JobID: frontendID,
					EditableCandidateInfo: m.EditableCandidateInfo{
						Name:  "Ananya Iyer",
						Email: &email2,
						Tags:  pq.StringArray{"react", "css"},
						Score: &score,
						Stage: m.StageInterviewFirst,
					},
					AppliedAt: time.Now().AddDate(0, 0, -4),
				},
			},
		},
		{
			ID: backendID,
			EditableJobInfo: m.EditableJobInfo{
				Title:      "Backend Engineer",
				Department: &dept,
				Location:   &locRemote,
			},
			Candidates: []m.Candidate{
				{
					ID:    uuid.New(),
					JobID: backendID,
					EditableCandidateInfo: m.EditableCandidateInfo{
						Name:  "Sofia Marin",
						Email: &email3,
						Tags:  pq.StringArray{"go", "postgres"},
						Stage: m.StageSourced,
					},
					AppliedAt: time.Now().AddDate(0, 0, -2),
				},
			},
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	TestJobFrontend = jobs[0]
	TestJobBackend = jobs[1]
	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var jobs []m.Job
	if err := db.Preload("Candidates").Order("created_at ASC").Limit(2).Find(&jobs).Error; err != nil {
		return err
	}
	if len(jobs) > 0 {
		TestJobFrontend = jobs[0]
	}
	if len(jobs) > 1 {
		TestJobBackend = jobs[1]
	}
	return nil
}
