package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/carbontrack/internal/api"
	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/pkg/entity"
	jwtservice "github.com/limbo/carbontrack/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret", 2*time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "ann"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "ann", claims.Username)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejects(t *testing.T) {
	s := jwtservice.New("secret", 0)
	other := jwtservice.New("other", 0)
	user := &entity.User{ID: uuid.New(), Name: "ann"}
	foreign, err := other.GenerateToken(user)
	require.NoError(t, err)

	expiredClaims := &api.JWTClaims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "carbontrack",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "garbage", Token: "not.a.token"},
		{Desc: "wrong secret", Token: foreign},
		{Desc: "expired", Token: expired},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}

func TestGenerateNilUser(t *testing.T) {
	_, err := jwtservice.New("secret", time.Hour).GenerateToken(nil)
	assert.Error(t, err)
}
