package repository

import (
	"testing"
	"time"

	"novelhub/internal/api/models"
)

func testUser(id string, role models.Role) *models.User {
	return &models.User{ID: id, Username: id, Role: role}
}

func TestNotificationDirectory_AddAndRemove(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	record := d.Add(models.Notification{
		Kind:       models.KindContactMessage,
		SenderID:   "reader-1",
		TargetRole: models.TargetAdmin,
		Title:      "Contact: Hello",
	})

	if record.ID == "" {
		t.Error("Expected assigned id")
	}
	if record.IsRead {
		t.Error("Expected new record to be unread")
	}
	if d.Count() != 1 {
		t.Errorf("Expected 1 record, got %d", d.Count())
	}

	got, exists := d.GetByID(record.ID)
	if !exists {
		t.Fatal("Expected record to exist")
	}
	if got.Title != "Contact: Hello" {
		t.Errorf("Expected title 'Contact: Hello', got '%s'", got.Title)
	}

	d.Remove(record.ID)
	if d.Count() != 0 {
		t.Errorf("Expected 0 records after removal, got %d", d.Count())
	}

	// Removing again must not panic or change anything
	d.Remove(record.ID)
	if d.Count() != 0 {
		t.Errorf("Expected 0 records, got %d", d.Count())
	}
}

func TestNotificationDirectory_MarkRead(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	record := d.Add(models.Notification{
		Kind:       models.KindComment,
		TargetRole: models.TargetWriter,
	})

	d.MarkRead(record.ID)
	got, _ := d.GetByID(record.ID)
	if !got.IsRead {
		t.Error("Expected record to be read")
	}

	// Unknown id is a no-op
	d.MarkRead("missing")
	if d.Count() != 1 {
		t.Errorf("Expected 1 record, got %d", d.Count())
	}
}

func TestNotificationDirectory_RoleVisibility(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin})
	d.Add(models.Notification{Kind: models.KindContactMessage, TargetRole: models.TargetAdmin})
	d.Add(models.Notification{Kind: models.KindCoffee, TargetRole: models.TargetWriter})
	d.Add(models.Notification{Kind: models.KindComment, TargetRole: models.TargetWriter})
	d.Add(models.Notification{Kind: models.KindTopUpResult, TargetRole: models.TargetReader})
	d.Add(models.Notification{Kind: models.KindContactReply, TargetRole: models.TargetReader})

	cases := []struct {
		role models.Role
		want map[models.NotificationKind]bool
	}{
		{models.RoleAdmin, map[models.NotificationKind]bool{
			models.KindTopUpRequest:   true,
			models.KindContactMessage: true,
		}},
		{models.RoleWriter, map[models.NotificationKind]bool{
			models.KindCoffee:  true,
			models.KindComment: true,
		}},
		{models.RoleReader, map[models.NotificationKind]bool{
			models.KindTopUpResult:  true,
			models.KindContactReply: true,
		}},
	}

	for _, tc := range cases {
		visible := d.VisibleTo(testUser("u-"+string(tc.role), tc.role))
		if len(visible) != len(tc.want) {
			t.Errorf("Role %s: expected %d records, got %d", tc.role, len(tc.want), len(visible))
		}
		for _, record := range visible {
			if !tc.want[record.Kind] {
				t.Errorf("Role %s: unexpected kind %s", tc.role, record.Kind)
			}
		}
	}
}

func TestNotificationDirectory_TargetUserOverride(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	// Comment kind normally routes to writers, but the explicit target pins it
	d.Add(models.Notification{
		Kind:         models.KindComment,
		TargetRole:   models.TargetWriter,
		TargetUserID: "writer-1",
	})

	if got := d.VisibleTo(testUser("writer-1", models.RoleWriter)); len(got) != 1 {
		t.Errorf("Expected target writer to see the record, got %d", len(got))
	}
	if got := d.VisibleTo(testUser("writer-2", models.RoleWriter)); len(got) != 0 {
		t.Errorf("Expected other writer to see nothing, got %d", len(got))
	}
	// Even a role that would never see this kind sees it when targeted
	d.Add(models.Notification{
		Kind:         models.KindComment,
		TargetUserID: "reader-1",
	})
	if got := d.VisibleTo(testUser("reader-1", models.RoleReader)); len(got) != 1 {
		t.Errorf("Expected targeted reader to see the record, got %d", len(got))
	}
}

func TestNotificationDirectory_BroadcastVisibility(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	d.Add(models.Notification{Kind: models.KindContactReply, TargetRole: models.TargetAll})

	for _, role := range []models.Role{models.RoleAdmin, models.RoleWriter, models.RoleReader} {
		if got := d.VisibleTo(testUser("u", role)); len(got) != 1 {
			t.Errorf("Role %s: expected broadcast to be visible, got %d", role, len(got))
		}
	}
}

func TestNotificationDirectory_NewestFirst(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	d.now = func() time.Time { return current }

	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin, Title: "first"})
	current = base.Add(time.Hour)
	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin, Title: "second"})
	current = base.Add(2 * time.Hour)
	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin, Title: "third"})

	visible := d.VisibleTo(testUser("admin", models.RoleAdmin))
	if len(visible) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(visible))
	}
	if visible[0].Title != "third" || visible[1].Title != "second" || visible[2].Title != "first" {
		t.Errorf("Expected newest first, got %s, %s, %s",
			visible[0].Title, visible[1].Title, visible[2].Title)
	}
}

func TestNotificationDirectory_ExpiredHiddenBeforeSweep(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	d.now = func() time.Time { return current }

	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin})

	// Two days later: still visible
	current = base.Add(48 * time.Hour)
	if got := d.VisibleTo(testUser("admin", models.RoleAdmin)); len(got) != 1 {
		t.Errorf("Expected record visible at T+48h, got %d", len(got))
	}

	// Four days later: hidden from reads even though the sweep has not run
	current = base.Add(96 * time.Hour)
	if got := d.VisibleTo(testUser("admin", models.RoleAdmin)); len(got) != 0 {
		t.Errorf("Expected record hidden at T+96h, got %d", len(got))
	}
	if d.Count() != 1 {
		t.Errorf("Expected record still held before sweep, got count %d", d.Count())
	}
}

func TestNotificationDirectory_SweepExpired(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	d.now = func() time.Time { return current }

	d.Add(models.Notification{Kind: models.KindTopUpRequest, TargetRole: models.TargetAdmin})
	current = base.Add(48 * time.Hour)
	d.Add(models.Notification{Kind: models.KindContactMessage, TargetRole: models.TargetAdmin})

	// At T+96h only the first record is past the 72h retention
	removed := d.SweepExpired(base.Add(96 * time.Hour))
	if removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if d.Count() != 1 {
		t.Errorf("Expected 1 record left, got %d", d.Count())
	}

	// Sweeping again at the same instant removes nothing
	removed = d.SweepExpired(base.Add(96 * time.Hour))
	if removed != 0 {
		t.Errorf("Expected 0 removed on second sweep, got %d", removed)
	}
}

func TestNotificationDirectory_TakeByID(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	record := d.Add(models.Notification{
		Kind:       models.KindTopUpRequest,
		TargetRole: models.TargetAdmin,
	})

	// Wrong kind does not consume the record
	if _, taken := d.TakeByID(record.ID, models.KindContactMessage); taken {
		t.Error("Expected kind mismatch to miss")
	}
	if d.Count() != 1 {
		t.Errorf("Expected record to survive a kind mismatch, got count %d", d.Count())
	}

	taken, ok := d.TakeByID(record.ID, models.KindTopUpRequest)
	if !ok {
		t.Fatal("Expected take to succeed")
	}
	if taken.ID != record.ID {
		t.Errorf("Expected record %s, got %s", record.ID, taken.ID)
	}
	if d.Count() != 0 {
		t.Errorf("Expected empty directory after take, got %d", d.Count())
	}

	// Already consumed
	if _, ok := d.TakeByID(record.ID, models.KindTopUpRequest); ok {
		t.Error("Expected second take to miss")
	}
}

func TestNotificationDirectory_TakeByID_SingleWinner(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	record := d.Add(models.Notification{
		Kind:       models.KindTopUpRequest,
		TargetRole: models.TargetAdmin,
	})

	wins := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, ok := d.TakeByID(record.ID, models.KindTopUpRequest)
			wins <- ok
		}()
	}

	winners := 0
	for i := 0; i < 10; i++ {
		if <-wins {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("Expected exactly 1 winner, got %d", winners)
	}
	if d.Count() != 0 {
		t.Errorf("Expected empty directory, got %d", d.Count())
	}
}

func TestNotificationDirectory_Concurrent(t *testing.T) {
	d := NewNotificationDirectory(72 * time.Hour)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			d.Add(models.Notification{Kind: models.KindComment, TargetRole: models.TargetWriter})
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	if d.Count() != 10 {
		t.Errorf("Expected 10 records, got %d", d.Count())
	}
}
