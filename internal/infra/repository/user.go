package repository

import (
	"context"

	"invopay/internal/domain/user"
	"invopay/internal/infra"
	"invopay/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const updateComplianceSQL = `
UPDATE users
SET is_compliant = $2, kyc_status = $3, agreement_status = $4, updated_at = now()
WHERE email = $1`

func (r *UserRepository) UpdateComplianceByEmail(ctx context.Context, tx db.DBTX, email string, compliance user.Compliance) (int64, error) {
	tag, err := tx.Exec(ctx, updateComplianceSQL,
		email,
		compliance.IsCompliant,
		compliance.KYCStatus,
		compliance.AgreementStatus,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update user compliance", err)
	}
	return tag.RowsAffected(), nil
}
