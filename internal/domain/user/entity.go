package user

import (
	"time"

	"github.com/google/uuid"
)

// Compliance is the KYC/agreement verification state of a user, required
// before crypto-to-fiat payout paths are permitted.
type Compliance struct {
	IsCompliant     bool
	KYCStatus       string
	AgreementStatus string
}

type User struct {
	id         uuid.UUID
	email      string
	compliance Compliance
	createdAt  time.Time
}

func Reconstruct(id uuid.UUID, email string, compliance Compliance, createdAt time.Time) *User {
	return &User{
		id:         id,
		email:      email,
		compliance: compliance,
		createdAt:  createdAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() string          { return u.email }
func (u *User) Compliance() Compliance { return u.compliance }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
