package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

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
	MsgInvalidCredentials = "Invalid credentials."

	maxUserAgentLength = 512
	maxIPAddressLength = 64

	unknownUserPassword = "acorn-unknown-user"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	// unknownUserHash is checked when no account matches, so both sign-in failures run bcrypt.
	unknownUserHash func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
	srv.unknownUserHash = sync.OnceValue(func() string {
		hash, err := params.Hasher.Hash(unknownUserPassword)
		if err != nil {
			params.Logger.Error("Failed to prepare unknown user hash", slog.Any("error", err))

			return ""
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize checks credentials. A wrong password and an unknown email both return nil, nil.
func (srv *authService) Authorize(ctx context.Context, email, password string) (*entity.User, error) {
	creds, ok := schema.ParseLogin(email, password)
	if !ok {
		return nil, nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.Check(creds.Password, srv.unknownUserHash())

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(creds.Password, user.PasswordHash) {
		return nil, nil
	}

	return user, nil
}

// Authenticate signs a user in and issues a session.
func (srv *authService) Authenticate(ctx context.Context, input usecase.LoginInput, meta usecase.SessionMeta) *usecase.AuthOutcome {
	user, err := srv.Authorize(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Error("Sign-in failed", slog.Any("error", err))

		return credentialsRejected()
	}
	if user == nil {
		srv.log(ctx).Info("Sign-in rejected")

		return credentialsRejected()
	}

	issued, err := srv.issueSession(ctx, user, meta)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("error", err), slog.String("user_id", user.ID.String()))

		return credentialsRejected()
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", user.ID.String()))

	return &usecase.AuthOutcome{
		Result:  usecase.Redirect(usecase.PathDashboard),
		Session: issued,
	}
}

func (srv *authService) issueSession(ctx context.Context, user *entity.User, meta usecase.SessionMeta) (*usecase.IssuedSession, error) {
	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	session := &entity.Session{
		ID:        token.SessionID,
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(token.Token),
		UserAgent: truncate(meta.UserAgent, maxUserAgentLength),
		IPAddress: truncate(meta.IPAddress, maxIPAddressLength),
		ExpiresAt: token.ExpiresAt,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	return &usecase.IssuedSession{Token: token.Token, ExpiresAt: token.ExpiresAt}, nil
}

// SignOut revokes the session behind token. It redirects home even when nothing was revoked.
func (srv *authService) SignOut(ctx context.Context, token string) *usecase.ActionResult {
	if token != "" {
		if err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(token)); err != nil {
			srv.log(ctx).Error("Failed to revoke session", slog.Any("error", err))
		}
	}

	return usecase.Redirect(usecase.PathHome)
}

// ResolveSession returns the principal of token, or ErrSessionInvalid.
func (srv *authService) ResolveSession(ctx context.Context, token string) (*entity.SessionUser, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage(err.Error())
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session revoked")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.ID != claims.SessionID || session.UserID != claims.UserID {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session does not match token")
	}
	if session.IsExpired(srv.now()) {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session expired")
	}

	return &entity.SessionUser{
		SessionID: session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// CleanupExpiredSessions removes expired session rows.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	return removed, nil
}

func credentialsRejected() *usecase.AuthOutcome {
	return &usecase.AuthOutcome{
		Result: usecase.Invalid(usecase.FieldErrors{"credentials": {MsgInvalidCredentials}}, MsgInvalidCredentials),
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
