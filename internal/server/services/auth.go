// Package services contains server-side business logic. This file implements
// AuthService, which handles account registration, login, token rotation,
// device activation and password changes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardianos/guardian-sync/internal/common"
	"github.com/guardianos/guardian-sync/internal/dbx"
	"github.com/guardianos/guardian-sync/internal/server/auth"
	"github.com/guardianos/guardian-sync/internal/server/config"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/repositories/repomanager"
)

// dummyPasswordHash is verified against when login hits an unknown email, so
// that existing and non-existing accounts take the same time to reject.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// TokenPair bundles a short-lived access token and a long-lived refresh
// token. Plaintexts leave the server exactly once; only hashes are stored.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthResult is what register and login return to the gateway.
type AuthResult struct {
	AccountHash string
	DisplayName string
	Tokens      TokenPair
}

// DeviceCredentials is the result of activating a device.
type DeviceCredentials struct {
	DeviceID    string
	DeviceToken string
	ExpiresAt   time.Time
}

// AuthService provides authentication-related operations:
// - Register / Login: create accounts, verify credentials, mint tokens
// - RefreshToken: single-use refresh rotation
// - RegisterDevice / VerifyDevice: long-lived device credentials
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	deviceTTL   time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		accessTTL:   cfg.AccessTokenTTL,
		refreshTTL:  cfg.RefreshTokenTTL,
		deviceTTL:   cfg.DeviceTokenTTL,
	}
}

// Register creates a new account and returns its first token pair.
// A taken email yields common.ErrAccountAlreadyExists.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrInvalidInput)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		AccountHash:  uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Status:       models.AccountStatusActive,
	}

	repo := s.repomanager.Accounts(s.db)
	created, err := repo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, s.db, created.AccountHash, "")
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccountHash: created.AccountHash,
		DisplayName: created.DisplayName,
		Tokens:      *pair,
	}, nil
}

// Login verifies credentials and mints a fresh token pair. Unknown emails and
// wrong passwords are indistinguishable: both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, deviceID string) (*AuthResult, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			// burn the same hashing cost as the found path
			_, _ = auth.VerifyPassword(password, dummyPasswordHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching account: %w", err)
	}

	ok, err := auth.VerifyPassword(password, account.PasswordHash)
	if err != nil || !ok {
		return nil, common.ErrInvalidCredentials
	}
	if account.Status != models.AccountStatusActive {
		return nil, common.ErrPermissionDenied
	}

	pair, err := s.issueTokenPair(ctx, s.db, account.AccountHash, deviceID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccountHash: account.AccountHash,
		DisplayName: account.DisplayName,
		Tokens:      *pair,
	}, nil
}

// RefreshToken validates a refresh token and rotates it transactionally. The
// presented token is revoked in the same transaction that persists its
// replacement, so each refresh token is usable exactly once.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, common.ErrInvalidToken
	}

	tokenHash := auth.HashToken(refreshToken)
	stored, err := s.repomanager.AuthTokens(s.db).GetByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, common.ErrTokenNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var genErr error
		// new pair first, old revocation second: a failure in between leaves
		// the presented token valid rather than locking the client out
		pair, genErr = s.issueTokenPair(ctx, tx, claims.Subject, stored.DeviceID)
		if genErr != nil {
			return genErr
		}
		return s.repomanager.AuthTokens(tx).Revoke(ctx, tokenHash)
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the presented refresh token, or every token of the account
// when allDevices is set.
func (s *AuthService) Logout(ctx context.Context, refreshToken string, allDevices bool) error {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return err
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return common.ErrInvalidToken
	}

	repo := s.repomanager.AuthTokens(s.db)
	if allDevices {
		return repo.RevokeAllForAccount(ctx, claims.Subject)
	}
	return repo.Revoke(ctx, auth.HashToken(refreshToken))
}

// RegisterDevice activates a device for the account and mints a long-lived
// device token. Re-activation with a known hardware id is idempotent and
// returns the existing device id; a hardware id owned by another account
// yields common.ErrDeviceAlreadyExists.
func (s *AuthService) RegisterDevice(ctx context.Context, accountHash, name, deviceType, osVersion, hardwareID string) (*DeviceCredentials, error) {
	if name == "" || deviceType == "" {
		return nil, fmt.Errorf("%w: device name and type are required", common.ErrInvalidInput)
	}

	devRepo := s.repomanager.Devices(s.db)

	if hardwareID != "" {
		existing, err := devRepo.GetByHardwareID(ctx, hardwareID)
		if err != nil && !errors.Is(err, common.ErrDeviceNotFound) {
			return nil, fmt.Errorf("error searching device: %w", err)
		}
		if existing != nil {
			if existing.AccountID != accountHash {
				return nil, common.ErrDeviceAlreadyExists
			}
			if err := devRepo.TouchLastSeen(ctx, existing.ID); err != nil {
				return nil, fmt.Errorf("error updating device: %w", err)
			}
			return s.issueDeviceToken(ctx, accountHash, existing.ID)
		}
	}

	device := &models.Device{
		ID:         uuid.NewString(),
		AccountID:  accountHash,
		Name:       name,
		DeviceType: deviceType,
		OSVersion:  osVersion,
		HardwareID: hardwareID,
		Status:     models.DeviceStatusActive,
	}
	if err := devRepo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("error creating device: %w", err)
	}

	return s.issueDeviceToken(ctx, accountHash, device.ID)
}

// VerifyDevice validates a device token, checks the stored credential and the
// device's status, and bumps the device's last_seen_at.
func (s *AuthService) VerifyDevice(ctx context.Context, deviceToken string) (accountHash, deviceID string, err error) {
	claims, err := auth.ParseToken(deviceToken, s.jwtSecret)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != auth.TokenTypeDevice || claims.DeviceID == "" {
		return "", "", common.ErrInvalidToken
	}

	if _, err := s.repomanager.AuthTokens(s.db).GetByHash(ctx, auth.HashToken(deviceToken)); err != nil {
		if errors.Is(err, common.ErrTokenNotFound) {
			return "", "", common.ErrInvalidToken
		}
		return "", "", fmt.Errorf("error searching device token: %w", err)
	}

	devRepo := s.repomanager.Devices(s.db)
	device, err := devRepo.GetByID(ctx, claims.DeviceID)
	if err != nil {
		if errors.Is(err, common.ErrDeviceNotFound) {
			return "", "", common.ErrInvalidToken
		}
		return "", "", fmt.Errorf("error searching device: %w", err)
	}
	if device.Status != models.DeviceStatusActive {
		return "", "", common.ErrInvalidToken
	}

	if err := devRepo.TouchLastSeen(ctx, device.ID); err != nil {
		return "", "", fmt.Errorf("error updating device: %w", err)
	}
	return claims.Subject, device.ID, nil
}

// ListDevices returns the account's active devices, most recently seen first.
func (s *AuthService) ListDevices(ctx context.Context, accountHash string) ([]*models.Device, error) {
	return s.repomanager.Devices(s.db).ListForAccount(ctx, accountHash)
}

// RevokeDevice marks a device revoked. Its device tokens stop verifying on
// the next VerifyDevice call.
func (s *AuthService) RevokeDevice(ctx context.Context, accountHash, deviceID string) error {
	device, err := s.repomanager.Devices(s.db).GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if device.AccountID != accountHash {
		return common.ErrPermissionDenied
	}
	return s.repomanager.Devices(s.db).Revoke(ctx, deviceID)
}

// ChangePassword verifies the current password, stores the new hash, and
// revokes every token of the account so all sessions must log in again.
func (s *AuthService) ChangePassword(ctx context.Context, accountHash, current, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", common.ErrInvalidInput)
	}

	account, err := s.repomanager.Accounts(s.db).GetByHash(ctx, accountHash)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(current, account.PasswordHash)
	if err != nil || !ok {
		return common.ErrInvalidCredentials
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).UpdatePassword(ctx, accountHash, newHash); err != nil {
			return err
		}
		return s.repomanager.AuthTokens(tx).RevokeAllForAccount(ctx, accountHash)
	})
}

// CleanupExpiredTokens deletes token rows past their expiry and returns how
// many were removed. Run periodically by the app.
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.repomanager.AuthTokens(s.db).PurgeExpired(ctx)
}

// TouchDevice bumps the device's last_seen_at. The gateway calls this on
// every authenticated request whose token carries a device id.
func (s *AuthService) TouchDevice(ctx context.Context, deviceID string) error {
	return s.repomanager.Devices(s.db).TouchLastSeen(ctx, deviceID)
}

// VerifyAccessToken validates a stateless access token and returns the
// account hash and optional device id. Used by the gateway interceptors.
func (s *AuthService) VerifyAccessToken(tokenString string) (accountHash, deviceID string, err error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != auth.TokenTypeAccess {
		return "", "", common.ErrInvalidToken
	}
	return claims.Subject, claims.DeviceID, nil
}

// issueTokenPair mints an access and refresh token for the account and
// persists the refresh token's hash through db.
func (s *AuthService) issueTokenPair(ctx context.Context, db dbx.DBTX, accountHash, deviceID string) (*TokenPair, error) {
	access, accessExp, err := auth.GenerateToken(accountHash, deviceID, auth.TokenTypeAccess, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}
	refresh, refreshExp, err := auth.GenerateToken(accountHash, deviceID, auth.TokenTypeRefresh, s.jwtSecret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	row := &models.AuthToken{
		ID:        uuid.NewString(),
		AccountID: accountHash,
		DeviceID:  deviceID,
		TokenHash: auth.HashToken(refresh),
		TokenType: string(auth.TokenTypeRefresh),
		ExpiresAt: refreshExp,
	}
	if err := s.repomanager.AuthTokens(db).Create(ctx, row); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: accessExp}, nil
}

// issueDeviceToken mints a long-lived device token and persists its hash.
func (s *AuthService) issueDeviceToken(ctx context.Context, accountHash, deviceID string) (*DeviceCredentials, error) {
	token, exp, err := auth.GenerateToken(accountHash, deviceID, auth.TokenTypeDevice, s.jwtSecret, s.deviceTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating device token: %w", err)
	}

	row := &models.AuthToken{
		ID:        uuid.NewString(),
		AccountID: accountHash,
		DeviceID:  deviceID,
		TokenHash: auth.HashToken(token),
		TokenType: string(auth.TokenTypeDevice),
		ExpiresAt: exp,
	}
	if err := s.repomanager.AuthTokens(s.db).Create(ctx, row); err != nil {
		return nil, fmt.Errorf("error storing device token: %w", err)
	}

	return &DeviceCredentials{DeviceID: deviceID, DeviceToken: token, ExpiresAt: exp}, nil
}
