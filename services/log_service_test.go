package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mikespe/calcalc2.0/config"
	"github.com/mikespe/calcalc2.0/models"

	"gorm.io/gorm"
)

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hash", Name: "Test"}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func TestWeightUpsertIdempotentPerDay(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	day, _ := ParseLogDate("2024-01-01")

	first, err := UpsertWeightLog(user.ID, 150, day)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := UpsertWeightLog(user.ID, 155, day)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert id = %d, want %d (same row)", second.ID, first.ID)
	}
	if second.Weight != 155 {
		t.Errorf("weight = %v, want 155 (last write wins)", second.Weight)
	}

	logs, err := ListWeightLogs(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("rows for day = %d, want 1", len(logs))
	}
	if logs[0].Weight != 155 {
		t.Errorf("stored weight = %v, want 155", logs[0].Weight)
	}
}

func TestWeightUpsertDistinctDays(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	d1, _ := ParseLogDate("2024-01-01")
	d2, _ := ParseLogDate("2024-01-02")

	if _, err := UpsertWeightLog(user.ID, 150, d1); err != nil {
		t.Fatalf("day one: %v", err)
	}
	if _, err := UpsertWeightLog(user.ID, 151, d2); err != nil {
		t.Fatalf("day two: %v", err)
	}

	logs, _ := ListWeightLogs(user.ID)
	if len(logs) != 2 {
		t.Fatalf("rows = %d, want 2", len(logs))
	}
	// Newest date first.
	if !logs[0].Date.After(logs[1].Date) {
		t.Error("list is not ordered newest first")
	}
}

// Times within the same local calendar day collapse to the same row even
// when the raw timestamps differ.
func TestWeightUpsertNormalizesToDay(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	morning := time.Date(2024, 3, 10, 8, 30, 0, 0, time.Local)
	evening := time.Date(2024, 3, 10, 22, 15, 0, 0, time.Local)

	a, err := UpsertWeightLog(user.ID, 150, morning)
	if err != nil {
		t.Fatalf("morning: %v", err)
	}
	b, err := UpsertWeightLog(user.ID, 152, evening)
	if err != nil {
		t.Fatalf("evening: %v", err)
	}
	if a.ID != b.ID {
		t.Errorf("same-day timestamps produced different rows: %d vs %d", a.ID, b.ID)
	}
}

func TestLogOwnershipScoping(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice@x.com")
	bob := createTestUser(t, "bob@x.com")

	log, err := CreateCalorieLog(alice.ID, 500, time.Now())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Bob cannot see, update or delete Alice's row even with its real id.
	if _, err := UpdateCalorieLog(bob.ID, log.ID, 9000); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("update as bob err = %v, want ErrRecordNotFound", err)
	}
	if err := DeleteCalorieLog(bob.ID, log.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("delete as bob err = %v, want ErrRecordNotFound", err)
	}

	bobLogs, _ := ListCalorieLogs(bob.ID)
	if len(bobLogs) != 0 {
		t.Errorf("bob sees %d foreign logs", len(bobLogs))
	}

	// The row is untouched.
	fresh, err := UpdateCalorieLog(alice.ID, log.ID, 600)
	if err != nil {
		t.Fatalf("update as alice: %v", err)
	}
	if fresh.Calories != 600 {
		t.Errorf("calories = %d, want 600", fresh.Calories)
	}
}

func TestWeightLogOwnershipScoping(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice@x.com")
	bob := createTestUser(t, "bob@x.com")

	log, err := UpsertWeightLog(alice.ID, 150, time.Now())
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := UpdateWeightLog(bob.ID, log.ID, 100); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("update as bob err = %v, want ErrRecordNotFound", err)
	}
	if err := DeleteWeightLog(bob.ID, log.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("delete as bob err = %v, want ErrRecordNotFound", err)
	}
}

func TestDeleteCalorieLog(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	log, err := CreateCalorieLog(user.ID, 500, time.Now())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := DeleteCalorieLog(user.ID, log.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := DeleteCalorieLog(user.ID, log.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestListCalorieLogsOrder(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	for _, d := range []string{"2024-01-02", "2024-01-05", "2024-01-03"} {
		date, _ := ParseLogDate(d)
		if _, err := CreateCalorieLog(user.ID, 500, date); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	logs, err := ListCalorieLogs(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Date.After(logs[i-1].Date) {
			t.Fatalf("logs not ordered newest first: %v", logs)
		}
	}
}

func TestParseLogDate(t *testing.T) {
	if _, err := ParseLogDate("2024-01-01"); err != nil {
		t.Errorf("bare date rejected: %v", err)
	}
	if _, err := ParseLogDate("2024-01-01T10:30:00Z"); err != nil {
		t.Errorf("RFC3339 rejected: %v", err)
	}
	if _, err := ParseLogDate("January 1st"); err == nil {
		t.Error("expected error for free-text date")
	}
}

func TestCreateActivityLogRequiresActivity(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ann@x.com")

	if _, err := CreateActivityLog(user.ID, "", time.Now()); err == nil {
		t.Error("expected error for empty activity")
	}
}
