package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("member not found")
	ErrEmailTaken = errors.New("a member with this email already exists")
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleOfficer Role = "OFFICER"
	RoleMember  Role = "MEMBER"
)

type Member struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	MemberID     string         `gorm:"size:32;uniqueIndex:ux_members_member_id_active" json:"member_id"`
	Name         string         `gorm:"size:191" json:"name"`
	Email        string         `gorm:"size:191;uniqueIndex:ux_members_email_active" json:"email"`
	PasswordHash string         `gorm:"size:191" json:"-"`
	Role         Role           `gorm:"type:enum('ADMIN','OFFICER','MEMBER');default:'MEMBER'" json:"role"`
	Phone        string         `gorm:"size:32" json:"phone"`
	Address      string         `gorm:"type:text" json:"address"`
	Active       bool           `json:"active"`
	JoinedAt     time.Time      `gorm:"autoCreateTime" json:"joined_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }
