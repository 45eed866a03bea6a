package services

import (
	"context"
	"strings"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
	"nagaralert-be/storage"
	authUtils "nagaralert-be/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterRequest is the citizen self-registration form
type RegisterRequest struct {
	Name           string   `json:"name" form:"name" binding:"required,min=2,max=50"`
	Email          string   `json:"email" form:"email" binding:"required,email"`
	Password       string   `json:"password" form:"password" binding:"required,min=6"`
	Phone          string   `json:"phone" form:"phone" binding:"required,npphone"`
	MunicipalityID string   `json:"municipalityId" form:"municipalityId" binding:"required,objectid"`
	Address        string   `json:"address" form:"address" binding:"required,min=5"`
	Ward           string   `json:"ward" form:"ward" binding:"required,digits"`
	Latitude       *float64 `json:"latitude" form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude" form:"longitude" binding:"omitempty,min=-180,max=180"`
}

type ActivateRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,nefield=CurrentPassword"`
}

// UpdateProfileRequest edits the caller's own profile. Citizen-only fields
// are ignored for other roles.
type UpdateProfileRequest struct {
	Name      *string  `json:"name" form:"name" binding:"omitempty,min=2,max=50"`
	Phone     *string  `json:"phone" form:"phone" binding:"omitempty,npphone"`
	Address   *string  `json:"address" form:"address" binding:"omitempty,min=5"`
	Ward      *string  `json:"ward" form:"ward" binding:"omitempty,digits"`
	Latitude  *float64 `json:"latitude" form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" form:"longitude" binding:"omitempty,min=-180,max=180"`
}

// AdminUpdateUserRequest lets a system admin edit another account.
type AdminUpdateUserRequest struct {
	Name   *string            `json:"name" binding:"omitempty,min=2,max=50"`
	Phone  *string            `json:"phone" binding:"omitempty,npphone"`
	Status *models.UserStatus `json:"status" binding:"omitempty,oneof=pending active inactive suspended"`
}

// LoginResult is returned by Login
type LoginResult struct {
	authUtils.TokenPair
	Detail *models.UserDetail `json:"detail"`
}

// AuthService handles registration, activation, login and password flows
type AuthService struct {
	users          repositories.UserRepositoryInterface
	municipalities repositories.MunicipalityRepositoryInterface
	media          MediaStorage
	notifier       *Notifier
	tokens         *authUtils.TokenManager
	passwordCost   int
	log            *logger.Logger
}

func NewAuthService(
	users repositories.UserRepositoryInterface,
	municipalities repositories.MunicipalityRepositoryInterface,
	media MediaStorage,
	notifier *Notifier,
	tokens *authUtils.TokenManager,
	passwordCost int,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		users:          users,
		municipalities: municipalities,
		media:          media,
		notifier:       notifier,
		tokens:         tokens,
		passwordCost:   passwordCost,
		log:            log,
	}
}

func newOTP() (string, time.Time, error) {
	code, err := authUtils.GenerateOTP()
	if err != nil {
		return "", time.Time{}, err
	}
	return code, time.Now().Add(authUtils.OTPValidity), nil
}

// Register creates a pending citizen and emails the activation code.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest, image *models.MediaFile) (*models.UserDetail, error) {
	municipalityID, err := primitive.ObjectIDFromHex(req.MunicipalityID)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid municipality ID")
	}
	if _, err := s.municipalities.FindByID(ctx, municipalityID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}

	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check email", err)
	}
	if taken {
		return nil, apperrors.NewValidation("Email already registered")
	}

	code, expiry, err := newOTP()
	if err != nil {
		return nil, apperrors.NewInternal("Failed to generate activation code", err)
	}

	user := &models.User{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Password:        req.Password,
		Phone:           req.Phone,
		Role:            models.RoleCitizen,
		Status:          models.UserPending,
		MunicipalityID:  &municipalityID,
		ActivationToken: code,
		TokenExpiry:     &expiry,
	}
	profile := models.CitizenProfile{Address: req.Address, Ward: req.Ward}
	if req.Latitude != nil && req.Longitude != nil {
		profile.Location = &models.Coordinates{Lat: *req.Latitude, Lng: *req.Longitude}
	}
	if err := user.SetProfile(profile); err != nil {
		return nil, apperrors.NewInternal("Failed to build profile", err)
	}
	if err := user.HashPassword(s.passwordCost); err != nil {
		return nil, apperrors.NewInternal("Failed to hash password", err)
	}

	tx := newSaga("register", s.log)
	if image != nil {
		uploaded, err := s.media.Upload(ctx, image.Path, storage.FolderUsers, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload profile image", err)
		}
		user.ProfileImage = uploaded.URL
		tx.onUndo("delete profile image", func(ctx context.Context) error {
			return s.media.Delete(ctx, uploaded.PublicID, models.MediaImage)
		})
	}

	if err := s.users.Create(ctx, user); err != nil {
		tx.rollback(ctx)
		if appErr, ok := apperrors.As(err); ok {
			return nil, appErr
		}
		return nil, apperrors.NewInternal("Failed to register user", err)
	}

	s.notifier.Activation(ctx, user.Name, user.Email, code, authUtils.OTPValidity)

	detail, err := models.NewUserDetail(user)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to build user detail", err)
	}
	return detail, nil
}

// Activate consumes the activation code of a pending account.
func (s *AuthService) Activate(ctx context.Context, email, otp string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation("User not found")
		}
		return apperrors.NewInternal("Failed to load user", err)
	}
	if user.Status != models.UserPending {
		return apperrors.NewValidation("Account already activated or not eligible")
	}
	if user.ActivationToken == "" || user.ActivationToken != strings.ToUpper(strings.TrimSpace(otp)) {
		return apperrors.NewValidation("Invalid activation code")
	}
	if user.TokenExpiry == nil || time.Now().After(*user.TokenExpiry) {
		return apperrors.NewValidation("Activation code expired")
	}

	_, err = s.users.Update(ctx, user.ID, bson.M{
		"status":          models.UserActive,
		"activationToken": "",
		"tokenExpiry":     nil,
	})
	if err != nil {
		return apperrors.NewInternal("Failed to activate account", err)
	}
	return nil
}

// ResendOTP issues a fresh activation code while the account is still pending.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation("User not found")
		}
		return apperrors.NewInternal("Failed to load user", err)
	}
	if user.Status != models.UserPending {
		return apperrors.NewValidation("Account already activated or not eligible")
	}

	code, expiry, err := newOTP()
	if err != nil {
		return apperrors.NewInternal("Failed to generate activation code", err)
	}
	if _, err := s.users.Update(ctx, user.ID, bson.M{"activationToken": code, "tokenExpiry": expiry}); err != nil {
		return apperrors.NewInternal("Failed to store activation code", err)
	}

	s.notifier.Activation(ctx, user.Name, user.Email, code, authUtils.OTPValidity)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("User not found")
		}
		return nil, apperrors.NewInternal("Failed to load user", err)
	}
	if user.Status != models.UserActive {
		return nil, apperrors.NewNotActivated("Account not active.")
	}
	if !user.ComparePassword(password) {
		return nil, apperrors.NewCredentialsMismatch("Invalid credentials.")
	}

	pair, err := s.issueTokens(user.ID, user.Role, user.MunicipalityID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if updated, err := s.users.Update(ctx, user.ID, bson.M{"lastLogin": now}); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("stamping last login failed")
		user.LastLogin = &now
	} else {
		user = updated
	}

	detail, err := models.NewUserDetail(user)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to build user detail", err)
	}
	return &LoginResult{TokenPair: *pair, Detail: detail}, nil
}

// Refresh re-issues both tokens for an identity authenticated by refresh token.
func (s *AuthService) Refresh(ctx context.Context, identity *models.Identity) (*authUtils.TokenPair, error) {
	return s.issueTokens(identity.ID, identity.Role, identity.MunicipalityID)
}

func (s *AuthService) issueTokens(id primitive.ObjectID, role models.Role, municipalityID *primitive.ObjectID) (*authUtils.TokenPair, error) {
	municipality := ""
	if municipalityID != nil {
		municipality = municipalityID.Hex()
	}
	pair, err := s.tokens.GeneratePair(id.Hex(), string(role), municipality)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to issue tokens", err)
	}
	return pair, nil
}

// ForgetPassword emails a reset code to an active account.
func (s *AuthService) ForgetPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation("User not found")
		}
		return apperrors.NewInternal("Failed to load user", err)
	}
	if user.Status != models.UserActive {
		return apperrors.NewNotActivated("Account not active.")
	}

	code, expiry, err := newOTP()
	if err != nil {
		return apperrors.NewInternal("Failed to generate reset code", err)
	}
	if _, err := s.users.Update(ctx, user.ID, bson.M{"resetToken": code, "tokenExpiry": expiry}); err != nil {
		return apperrors.NewInternal("Failed to store reset code", err)
	}

	s.notifier.PasswordReset(ctx, user.Name, user.Email, code, authUtils.OTPValidity)
	return nil
}

// ResetPassword consumes a reset code. Codes are single use.
func (s *AuthService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewValidation("User not found")
		}
		return apperrors.NewInternal("Failed to load user", err)
	}
	if user.ResetToken == "" || user.TokenExpiry == nil {
		return apperrors.NewValidation("Reset code not requested or already used")
	}
	if user.ResetToken != strings.ToUpper(strings.TrimSpace(req.OTP)) {
		return apperrors.NewValidation("Invalid reset code")
	}
	if time.Now().After(*user.TokenExpiry) {
		return apperrors.NewValidation("Reset code expired")
	}

	hashed, err := models.HashPassword(req.NewPassword, s.passwordCost)
	if err != nil {
		return apperrors.NewInternal("Failed to hash password", err)
	}
	_, err = s.users.Update(ctx, user.ID, bson.M{
		"password":    hashed,
		"resetToken":  "",
		"tokenExpiry": nil,
	})
	if err != nil {
		return apperrors.NewInternal("Failed to reset password", err)
	}
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("User Not Found")
		}
		return apperrors.NewInternal("Failed to load user", err)
	}
	if !user.ComparePassword(req.CurrentPassword) {
		return apperrors.NewValidation("Current password is incorrect")
	}

	hashed, err := models.HashPassword(req.NewPassword, s.passwordCost)
	if err != nil {
		return apperrors.NewInternal("Failed to hash password", err)
	}
	if _, err := s.users.Update(ctx, user.ID, bson.M{"password": hashed}); err != nil {
		return apperrors.NewInternal("Failed to change password", err)
	}
	return nil
}

func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.UserDetail, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("User Not Found")
		}
		return nil, apperrors.NewInternal("Failed to load user", err)
	}
	detail, err := models.NewUserDetail(user)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to build user detail", err)
	}
	return detail, nil
}

// UpdateProfile edits the caller's own name, phone, image and citizen profile.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req UpdateProfileRequest, image *models.MediaFile) (*models.UserDetail, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("User Not Found")
		}
		return nil, apperrors.NewInternal("Failed to load user", err)
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}

	if user.Role == models.RoleCitizen {
		current, err := user.Profile()
		if err != nil {
			return nil, apperrors.NewInternal("Failed to read profile", err)
		}
		profile, _ := current.(models.CitizenProfile)
		changed := false
		if req.Address != nil {
			profile.Address = *req.Address
			changed = true
		}
		if req.Ward != nil {
			profile.Ward = *req.Ward
			changed = true
		}
		if req.Latitude != nil && req.Longitude != nil {
			profile.Location = &models.Coordinates{Lat: *req.Latitude, Lng: *req.Longitude}
			changed = true
		}
		if changed {
			if err := user.SetProfile(profile); err != nil {
				return nil, apperrors.NewInternal("Failed to build profile", err)
			}
			set["profile"] = user.RawProfile
		}
	}

	if image != nil {
		uploaded, err := s.media.Upload(ctx, image.Path, storage.FolderUsers, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload profile image", err)
		}
		set["profileImage"] = uploaded.URL
		s.deleteMedia(ctx, user.ProfileImage, models.MediaImage)
	}

	if len(set) == 0 {
		return userDetail(user)
	}
	updated, err := s.users.Update(ctx, user.ID, set)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update profile", err)
	}
	return userDetail(updated)
}

// AdminUpdateUser lets a system admin edit another user's name, phone or status.
func (s *AuthService) AdminUpdateUser(ctx context.Context, id primitive.ObjectID, req AdminUpdateUserRequest) (*models.UserDetail, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if len(set) == 0 {
		return nil, apperrors.NewValidation("Nothing to update")
	}

	updated, err := s.users.Update(ctx, id, set)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("User Not Found")
		}
		return nil, apperrors.NewInternal("Failed to update user", err)
	}
	return userDetail(updated)
}

// deleteMedia removes a previously uploaded asset. Failures are only logged.
func (s *AuthService) deleteMedia(ctx context.Context, url string, kind models.MediaKind) {
	removeMedia(ctx, s.media, s.log, url, kind)
}

func removeMedia(ctx context.Context, media MediaStorage, log *logger.Logger, url string, kind models.MediaKind) {
	publicID := storage.PublicIDFromURL(url)
	if publicID == "" {
		return
	}
	if err := media.Delete(ctx, publicID, kind); err != nil {
		log.WithContext(ctx).WithError(err).WithField("public_id", publicID).Warn("deleting media failed")
	}
}

func userDetail(user *models.User) (*models.UserDetail, error) {
	detail, err := models.NewUserDetail(user)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to build user detail", err)
	}
	return detail, nil
}
