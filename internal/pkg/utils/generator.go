package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"clinicare-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateOrderCode builds the gateway correlation key: a yymmdd prefix
// followed by random digits. Uniqueness is probabilistic; callers must check
// the store and retry on collision.
func GenerateOrderCode(now time.Time) (string, error) {
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))

	suffix := make([]byte, constvars.OrderCodeSuffixLength)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = digits[num.Int64()]
	}

	return fmt.Sprintf("%s%s", now.Format("060102"), string(suffix)), nil
}

func GenerateAttachmentObjectName(medicalRecordID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("record_%s_%s%s", medicalRecordID, timestamp, fileExtension)
}
