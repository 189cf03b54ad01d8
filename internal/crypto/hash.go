package crypto

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost is the bcrypt work factor used for password hashing,
// tuned for roughly 100ms+ per hash on commodity hardware.
const DefaultHashCost = 12

// HashPassword derives a salted one-way hash of the password. The raw
// password is never stored or logged.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultHashCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
