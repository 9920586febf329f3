package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"darasa/config"
	"darasa/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const credentialsDetail = "Could not validate credentials"

// AuthService owns user credentials and the bearer tokens issued for them.
// Tokens are never revoked; they stay valid until they expire.
type AuthService struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		secret: []byte(cfg.JWTKey),
		ttl:    cfg.TokenTTL,
		cost:   cfg.SaltRound,
		now:    time.Now,
	}
}

// Register stores a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*UserOut, error) {
	db := s.db.WithContext(ctx)

	// Check if username already exists
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, storageError("count users", err)
	}
	if count > 0 {
		logrus.WithField("username", in.Username).Warn("registration rejected: username taken")
		return nil, Conflict("Username already registered")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, storageError("hash password", err)
	}

	// Create User
	user := models.User{
		Username:       in.Username,
		HashedPassword: string(hashedPassword),
		FullName:       in.FullName,
		Bio:            in.Bio,
		Role:           models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, writeError("create user", err, "Username already registered")
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return NewUserOut(&user), nil
}

// Login checks the password and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*TokenOut, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", in.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unauthorized("Incorrect username or password")
	}
	if err != nil {
		return nil, storageError("find user", err)
	}

	// Compare Password
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		logrus.WithField("username", in.Username).Warn("login rejected: password mismatch")
		return nil, Unauthorized("Incorrect username or password")
	}

	token, err := s.IssueToken(user.Username)
	if err != nil {
		return nil, storageError("sign token", err)
	}
	return &TokenOut{AccessToken: token, TokenType: "bearer"}, nil
}

// IssueToken signs an HS256 token whose subject is username.
func (s *AuthService) IssueToken(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify resolves a bearer token to its user. Every failure, whatever the
// cause, is reported with the same Unauthorized detail.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*models.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		logrus.WithError(err).Debug("token rejected")
		return nil, Unauthorized(credentialsDetail)
	}
	if claims.Subject == "" || claims.ExpiresAt == nil || !claims.VerifyExpiresAt(s.now(), true) {
		return nil, Unauthorized(credentialsDetail)
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("username = ?", claims.Subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unauthorized(credentialsDetail)
	}
	if err != nil {
		return nil, storageError("find user", err)
	}
	return &user, nil
}
