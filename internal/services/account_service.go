package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"pixsoft/internal/models/db_models"
	"pixsoft/internal/models/request_models"
	"pixsoft/internal/models/response_models"
	"pixsoft/internal/repositories"
	mem "pixsoft/pkg/memcache"
	"pixsoft/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error

	GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
	mailService IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token: token,
		Role:  account.Role,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:            request.DisplayName,
		Email:           request.Email,
		PasswordHash:    hashedPassword,
		Role:            "user", // default role
		NewsletterOptIn: request.NewsletterOptIn,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if err == utils.ErrEmailAlreadyExists {
			return err
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email is registered.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 15*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("failed to send reset mail to %s: %v", account.Email, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := &response_models.AccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		Email:           account.Email,
		Role:            account.Role,
		NewsletterOptIn: account.NewsletterOptIn,
	}

	profile, err := a.accountRepo.GetProfile(ctx, account.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile != nil {
		resp.Profile = toProfileResponse(profile)
	}
	return resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile := &db_models.Profile{
		AccountID:       account.ID,
		FatherLastName:  request.FatherLastName,
		MotherLastName:  request.MotherLastName,
		ShippingAddress: request.ShippingAddress,
		BillingAddress:  request.BillingAddress,
		PhoneNumber:     request.PhoneNumber,
	}
	if err := a.accountRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		FatherLastName:  profile.FatherLastName,
		MotherLastName:  profile.MotherLastName,
		ShippingAddress: profile.ShippingAddress,
		BillingAddress:  profile.BillingAddress,
		PhoneNumber:     profile.PhoneNumber,
	}
}
