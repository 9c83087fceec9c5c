package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"pixsoft/internal/models/db_models"
	"pixsoft/pkg/utils"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	ListEmails(ctx context.Context, subscribersOnly bool) ([]string, error)

	GetProfile(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	UpsertProfile(ctx context.Context, profile *db_models.Profile) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return utils.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (a *accountRepository) ListEmails(ctx context.Context, subscribersOnly bool) ([]string, error) {
	var emails []string
	query := a.db.WithContext(ctx).Model(&db_models.Account{})
	if subscribersOnly {
		query = query.Where("newsletter_opt_in = TRUE")
	}
	if err := query.Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

func (a *accountRepository) GetProfile(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := a.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (a *accountRepository) UpsertProfile(ctx context.Context, profile *db_models.Profile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Profile
		err := tx.First(&existing, "account_id = ?", profile.AccountID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(profile).Error
			}
			return err
		}

		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Save(profile).Error
	})
}
