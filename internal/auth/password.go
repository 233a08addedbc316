package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a login names an unknown user, so both
// failure paths spend the same bcrypt time.
var dummyHash = []byte("$2a$12$C6UzMDM.H6dfI/f/IKcEeO5s2tqZ6Ymm2Pnq5T0qSYl3Xl9X4bOQq")

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// BurnCompare performs a throwaway comparison.
func BurnCompare(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}
