package impl

import (
	"context"
	"log/slog"

	deliverycontext "acorn/internal/delivery/context"
	"acorn/internal/domain/entity"
	domainerrors "acorn/internal/domain/errors"
	"acorn/internal/domain/repository"
	"acorn/internal/domain/service"
	"acorn/internal/usecase"
	"acorn/internal/usecase/schema"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	MsgSignupInvalid  = "Missing or invalid fields. Failed to create account."
	MsgSignupFailed   = "Database error: failed to create account."
	MsgEmailTaken     = "An account with this email already exists."
	MsgAccountCreated = "Account created. Please log in."
)

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	auth      usecase.AuthUsecase
	logger    *slog.Logger
}

type SignupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Auth      usecase.AuthUsecase
	Logger    *slog.Logger
}

func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	return &signupService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		auth:      params.Auth,
		logger:    params.Logger,
	}
}

func (srv *signupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates an account and then signs it in with the submitted password.
// A failed sign-in keeps the account and asks the user to log in manually.
func (srv *signupService) SignUp(ctx context.Context, input usecase.SignupInput, meta usecase.SessionMeta) *usecase.AuthOutcome {
	fields, fieldErrs := schema.ParseSignup(input)
	if fieldErrs != nil {
		srv.log(ctx).Info("Signup rejected", slog.Any("fields", fieldErrs))

		return &usecase.AuthOutcome{Result: usecase.Invalid(fieldErrs, MsgSignupInvalid)}
	}

	user := &entity.User{Name: fields.Name, Email: fields.Email}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Reject known emails before paying for a hash
		_, err := userRepo.FindByEmail(ctx, fields.Email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		// 2. Hash
		hash, err := srv.hasher.Hash(fields.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		user.PasswordHash = hash

		// 3. Insert; a concurrent signup surfaces as ErrUserAlreadyExists
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Signup rejected, email already registered")

			return &usecase.AuthOutcome{
				Result: usecase.Invalid(usecase.FieldErrors{"email": {MsgEmailTaken}}, MsgSignupInvalid),
			}
		}
		srv.log(ctx).Error("Failed to create account", slog.Any("error", err))

		return &usecase.AuthOutcome{Result: usecase.Failed(MsgSignupFailed)}
	}

	srv.log(ctx).Info("Account created", slog.String("user_id", user.ID.String()))

	outcome := srv.auth.Authenticate(ctx, usecase.LoginInput{Email: fields.Email, Password: fields.Password}, meta)
	if outcome == nil || !outcome.Result.IsSuccess() {
		srv.log(ctx).Warn("Automatic sign-in after signup failed", slog.String("user_id", user.ID.String()))

		return &usecase.AuthOutcome{Result: usecase.RedirectWithMessage(usecase.PathLogin, MsgAccountCreated)}
	}

	return outcome
}
