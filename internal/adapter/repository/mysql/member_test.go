package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "coopfin/internal/domain/member"
	"coopfin/pkg/id"
)

type memberSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	MemberID     string         `gorm:"size:32;uniqueIndex;column:member_id"`
	Name         string         `gorm:"size:191;column:name"`
	Email        string         `gorm:"size:191;uniqueIndex;column:email"`
	PasswordHash string         `gorm:"size:191;column:password_hash"`
	Role         string         `gorm:"type:text;column:role"` // ← no enum
	Phone        string         `gorm:"size:32;column:phone"`
	Address      string         `gorm:"type:text;column:address"`
	Active       bool           `gorm:"column:active"`
	JoinedAt     time.Time      `gorm:"column:joined_at"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

func openMemberTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&memberSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeMember(name, email string, role domain.Role) *domain.Member {
	return &domain.Member{
		MemberID: id.NewID32(),
		Name:     name,
		Email:    email,
		Role:     role,
		Active:   true,
		JoinedAt: time.Now().UTC(),
	}
}

func TestMemberCreateAndGet(t *testing.T) {
	db := openMemberTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := makeMember("Maria Santos", "maria@example.com", domain.RoleMember)
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByMemberID(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if byID.Email != "maria@example.com" {
		t.Errorf("unexpected member: %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.MemberID != m.MemberID {
		t.Errorf("GetByEmail returned %s, want %s", byEmail.MemberID, m.MemberID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMemberList_OnlyMembers(t *testing.T) {
	db := openMemberTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	for _, m := range []*domain.Member{
		makeMember("Zenaida Reyes", "zen@example.com", domain.RoleMember),
		makeMember("Ana Lopez", "ana@example.com", domain.RoleMember),
		makeMember("Jose Cruz", "jose@example.com", domain.RoleOfficer),
	} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (staff excluded)", len(got))
	}
	// name ascending
	if got[0].Name != "Ana Lopez" || got[1].Name != "Zenaida Reyes" {
		t.Errorf("order = %s, %s", got[0].Name, got[1].Name)
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered len = %d, want 3", len(all))
	}
}

func TestMemberCountActive(t *testing.T) {
	db := openMemberTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	active := makeMember("Maria Santos", "maria@example.com", domain.RoleMember)
	inactive := makeMember("Pedro Garcia", "pedro@example.com", domain.RoleMember)
	inactive.Active = false
	staff := makeMember("Jose Cruz", "jose@example.com", domain.RoleOfficer)

	for _, m := range []*domain.Member{active, inactive, staff} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.CountActive(ctx, domain.RoleMember)
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	// the false flag must survive insert and read-back
	got, err := repo.GetByMemberID(ctx, inactive.MemberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if got.Active {
		t.Error("inactive member stored as active")
	}
}
