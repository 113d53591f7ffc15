// Package cryptox implements password hashing and the verification function
// the user store authenticates against. Two formats are supported: bcrypt
// ("$2a$..." etc.) and argon2id encoded as
//
//	argon2id$<time>$<memory>$<threads>$<keylen>$<salt b64>$<hash b64>
//
// Verification never returns an error; anything that cannot be parsed, or
// whose argon2id parameters exceed fixed limits, simply does not verify.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ticketbooking/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"

	argon2SaltLen = 16

	// Upper bounds for parameters read back from a stored argon2id hash.
	argon2MaxTime      = 10
	argon2MaxMemoryKiB = 1 << 20
	argon2MaxKeyLen    = 64
	argon2MaxSaltLen   = 64
)

// Verifier reports whether plaintext matches a stored hash.
type Verifier interface {
	Verify(plaintext, hashed string) bool
}

// Hasher produces hashes that the same value's Verify accepts.
type Hasher interface {
	Verifier
	Hash(plaintext string) (string, error)
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(plaintext, hashed string) bool

func (f VerifierFunc) Verify(plaintext, hashed string) bool { return f(plaintext, hashed) }

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// Argon2Hasher hashes with argon2id. Zero fields take the defaults used by
// DefaultArgon2Hasher.
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

func DefaultArgon2Hasher() Argon2Hasher {
	return Argon2Hasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32}
}

func (h Argon2Hasher) withDefaults() Argon2Hasher {
	d := DefaultArgon2Hasher()
	if h.Time == 0 {
		h.Time = d.Time
	}
	if h.Memory == 0 {
		h.Memory = d.Memory
	}
	if h.Threads == 0 {
		h.Threads = d.Threads
	}
	if h.KeyLen == 0 {
		h.KeyLen = d.KeyLen
	}
	return h
}

func (h Argon2Hasher) Hash(plaintext string) (string, error) {
	h = h.withDefaults()
	if h.Time > argon2MaxTime || h.Memory > argon2MaxMemoryKiB || h.KeyLen > argon2MaxKeyLen {
		return "", fmt.Errorf("argon2id: parameters exceed limits")
	}
	salt := common.GenerateRandByteArray(argon2SaltLen)
	key := argon2.IDKey([]byte(plaintext), salt, h.Time, h.Memory, h.Threads, h.KeyLen)

	return fmt.Sprintf("%s$%d$%d$%d$%d$%s$%s",
		AlgorithmArgon2id, h.Time, h.Memory, h.Threads, h.KeyLen,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h Argon2Hasher) Verify(plaintext, hashed string) bool {
	p, err := parseArgon2(hashed)
	if err != nil {
		return false
	}
	want := argon2.IDKey([]byte(plaintext), p.salt, p.time, p.memory, p.threads, p.keyLen)
	return subtle.ConstantTimeCompare(want, p.key) == 1
}

type argon2Params struct {
	time, memory, keyLen uint32
	threads              uint8
	salt, key            []byte
}

func parseArgon2(enc string) (*argon2Params, error) {
	parts := strings.Split(enc, "$")
	if len(parts) != 7 || parts[0] != AlgorithmArgon2id {
		return nil, fmt.Errorf("argon2id: invalid hash format")
	}

	nums := make([]uint64, 4)
	bits := []int{32, 32, 8, 32}
	limits := []uint64{argon2MaxTime, argon2MaxMemoryKiB, 255, argon2MaxKeyLen}
	for i := range nums {
		n, err := strconv.ParseUint(parts[i+1], 10, bits[i])
		if err != nil || n == 0 || n > limits[i] {
			return nil, fmt.Errorf("argon2id: invalid parameter %q", parts[i+1])
		}
		nums[i] = n
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("argon2id: salt: %w", err)
	}
	if len(salt) > argon2MaxSaltLen {
		return nil, fmt.Errorf("argon2id: salt too long")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[6])
	if err != nil {
		return nil, fmt.Errorf("argon2id: key: %w", err)
	}
	if uint64(len(key)) != nums[3] {
		return nil, fmt.Errorf("argon2id: key length mismatch")
	}

	return &argon2Params{
		time:    uint32(nums[0]),
		memory:  uint32(nums[1]),
		threads: uint8(nums[2]),
		keyLen:  uint32(nums[3]),
		salt:    salt,
		key:     key,
	}, nil
}

// MultiVerifier accepts both bcrypt and argon2id hashes, picking the scheme
// from the hash prefix. Hashes in any other format never verify.
type MultiVerifier struct{}

func (MultiVerifier) Verify(plaintext, hashed string) bool {
	switch {
	case strings.HasPrefix(hashed, AlgorithmArgon2id+"$"):
		return Argon2Hasher{}.Verify(plaintext, hashed)
	case isBcrypt(hashed):
		return BcryptHasher{}.Verify(plaintext, hashed)
	default:
		return false
	}
}

func isBcrypt(hashed string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hashed, p) {
			return true
		}
	}
	return false
}

// NewHasher returns the hasher configured by algorithm. bcryptCost is only
// used for bcrypt; zero means bcrypt.DefaultCost.
func NewHasher(algorithm string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBcrypt:
		if bcryptCost != 0 && (bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost) {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return BcryptHasher{Cost: bcryptCost}, nil
	case AlgorithmArgon2id:
		return DefaultArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedHash, algorithm)
	}
}
