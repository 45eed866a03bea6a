package authUtils

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	OTPLength   = 6
	OTPValidity = 5 * time.Minute
	otpAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateOTP returns a random code of uppercase letters and digits.
func GenerateOTP() (string, error) {
	return RandomString(OTPLength, otpAlphabet)
}

// RandomString draws n characters uniformly from alphabet.
func RandomString(n int, alphabet string) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// TemporaryPassword is handed to newly created staff by email.
func TemporaryPassword() (string, error) {
	return RandomString(12, "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789")
}
