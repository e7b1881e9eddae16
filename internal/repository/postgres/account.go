package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nikhilkumar-05/MediCare/internal/model"
)

func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (
			id, name, email, password_hash, role, is_blocked,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.IsBlocked,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// CreateWithProfile creates a doctor account and its profile in one
// transaction so the 1:1 invariant holds: both rows exist or neither does.
func (r *accountRepository) CreateWithProfile(ctx context.Context, account *model.Account, profile *model.DoctorProfile) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		now := time.Now()
		account.ID = uuid.New()
		account.CreatedAt = now
		account.UpdatedAt = now

		accountQuery := `
			INSERT INTO accounts (
				id, name, email, password_hash, role, is_blocked,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.ExecContext(ctx, accountQuery,
			account.ID,
			account.Name,
			account.Email,
			account.PasswordHash,
			account.Role,
			account.IsBlocked,
			account.CreatedAt,
			account.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		profile.ID = uuid.New()
		profile.AccountID = account.ID
		profile.CreatedAt = now
		profile.UpdatedAt = now

		profileQuery := `
			INSERT INTO doctor_profiles (
				id, account_id, specialization, experience_years,
				fee_amount, hospital_name, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := tx.ExecContext(ctx, profileQuery,
			profile.ID,
			profile.AccountID,
			profile.Specialization,
			profile.ExperienceYears,
			profile.FeeAmount,
			profile.HospitalName,
			profile.CreatedAt,
			profile.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create doctor profile: %w", err)
		}

		return nil
	})
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_blocked,
			   created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account model.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_blocked,
			   created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	var account model.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, is_blocked = $2, updated_at = $3
		WHERE id = $4
	`
	account.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		account.Name,
		account.IsBlocked,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found")
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*model.Account, error) {
	query := `
		SELECT id, name, email, password_hash, role, is_blocked,
			   created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
	`
	var accounts []*model.Account
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
