package cryptox

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ticketbooking/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHashers() map[string]Hasher {
	return map[string]Hasher{
		"bcrypt":   BcryptHasher{Cost: bcrypt.MinCost},
		"argon2id": Argon2Hasher{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32},
	}
}

func TestHashers_HashAndVerify(t *testing.T) {
	for name, h := range testHashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("pw1")
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			assert.NotContains(t, hash, "pw1")

			assert.True(t, h.Verify("pw1", hash))
			assert.False(t, h.Verify("wrong", hash))
			assert.False(t, h.Verify("", hash))
		})
	}
}

func TestHashers_SaltedHashesDiffer(t *testing.T) {
	for name, h := range testHashers() {
		t.Run(name, func(t *testing.T) {
			a, err := h.Hash("same")
			require.NoError(t, err)
			b, err := h.Hash("same")
			require.NoError(t, err)
			assert.NotEqual(t, a, b)
		})
	}
}

func TestArgon2Hasher_EncodedFormat(t *testing.T) {
	hash, err := Argon2Hasher{Time: 2, Memory: 8 * 1024, Threads: 1, KeyLen: 16}.Hash("pw")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 7)
	assert.Equal(t, []string{"argon2id", "2", "8192", "1", "16"}, parts[:5])
}

func TestArgon2Hasher_MalformedHashes(t *testing.T) {
	h := Argon2Hasher{}
	for _, enc := range []string{
		"",
		"argon2id",
		"argon2id$1$8192$1$32$salt",
		"argon2i$1$8192$1$32$c2FsdA$a2V5",
		"argon2id$x$8192$1$32$c2FsdA$a2V5",
		"argon2id$1$8192$300$32$c2FsdA$a2V5",
		"argon2id$1$8192$1$32$!!!$a2V5",
		"argon2id$1$8192$1$32$c2FsdA$a2V5",
	} {
		assert.False(t, h.Verify("pw", enc), enc)
	}
}

func TestArgon2Hasher_ParametersOverLimits(t *testing.T) {
	salt := base64.RawStdEncoding.EncodeToString(make([]byte, 16))
	key := base64.RawStdEncoding.EncodeToString(make([]byte, 32))
	longSalt := base64.RawStdEncoding.EncodeToString(make([]byte, argon2MaxSaltLen+1))
	longKey := base64.RawStdEncoding.EncodeToString(make([]byte, argon2MaxKeyLen+1))

	tests := []struct {
		name string
		enc  string
	}{
		{"time", fmt.Sprintf("argon2id$%d$8192$1$32$%s$%s", argon2MaxTime+1, salt, key)},
		{"huge time", fmt.Sprintf("argon2id$200000$8192$1$32$%s$%s", salt, key)},
		{"memory", fmt.Sprintf("argon2id$1$%d$1$32$%s$%s", argon2MaxMemoryKiB+1, salt, key)},
		{"max uint32", fmt.Sprintf("argon2id$4294967295$4294967295$255$32$%s$%s", salt, key)},
		{"key length", fmt.Sprintf("argon2id$1$8192$1$%d$%s$%s", argon2MaxKeyLen+1, salt, longKey)},
		{"salt length", fmt.Sprintf("argon2id$1$8192$1$32$%s$%s", longSalt, key)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgon2(tt.enc)
			require.Error(t, err)

			start := time.Now()
			assert.False(t, Argon2Hasher{}.Verify("pw", tt.enc))
			assert.False(t, MultiVerifier{}.Verify("pw", tt.enc))
			assert.Less(t, time.Since(start), time.Second)
		})
	}
}

func TestArgon2Hasher_HashRejectsParametersOverLimits(t *testing.T) {
	for _, h := range []Argon2Hasher{
		{Time: argon2MaxTime + 1},
		{Memory: argon2MaxMemoryKiB + 1},
		{KeyLen: argon2MaxKeyLen + 1},
	} {
		_, err := h.Hash("pw")
		assert.Error(t, err)
	}
}

func TestArgon2Hasher_ParametersAtLimitsParse(t *testing.T) {
	salt := base64.RawStdEncoding.EncodeToString(make([]byte, argon2MaxSaltLen))
	key := base64.RawStdEncoding.EncodeToString(make([]byte, argon2MaxKeyLen))
	enc := fmt.Sprintf("argon2id$%d$%d$1$%d$%s$%s", argon2MaxTime, argon2MaxMemoryKiB, argon2MaxKeyLen, salt, key)

	p, err := parseArgon2(enc)
	require.NoError(t, err)
	assert.Equal(t, uint32(argon2MaxTime), p.time)
	assert.Equal(t, uint32(argon2MaxMemoryKiB), p.memory)
}

func TestMultiVerifier(t *testing.T) {
	bh, err := BcryptHasher{Cost: bcrypt.MinCost}.Hash("pw1")
	require.NoError(t, err)
	ah, err := Argon2Hasher{Memory: 8 * 1024, Threads: 1}.Hash("pw1")
	require.NoError(t, err)

	v := MultiVerifier{}
	assert.True(t, v.Verify("pw1", bh))
	assert.True(t, v.Verify("pw1", ah))
	assert.False(t, v.Verify("pw2", bh))
	assert.False(t, v.Verify("pw2", ah))
	assert.False(t, v.Verify("pw1", "pw1"), "plaintext stored as hash must not verify")
	assert.False(t, v.Verify("pw1", "sha256$abc"))
}

func TestVerifierFunc(t *testing.T) {
	v := VerifierFunc(func(p, h string) bool { return "h:"+p == h })
	assert.True(t, v.Verify("x", "h:x"))
	assert.False(t, v.Verify("x", "h:y"))
}

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		cost      int
		wantType  Hasher
		wantErr   error
	}{
		{name: "default is bcrypt", algorithm: "", wantType: BcryptHasher{}},
		{name: "bcrypt with cost", algorithm: "bcrypt", cost: 12, wantType: BcryptHasher{Cost: 12}},
		{name: "case insensitive", algorithm: "BCRYPT", cost: 4, wantType: BcryptHasher{Cost: 4}},
		{name: "argon2id", algorithm: "argon2id", wantType: DefaultArgon2Hasher()},
		{name: "unknown", algorithm: "md5", wantErr: common.ErrUnsupportedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.algorithm, tt.cost)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, h)
		})
	}
}

func TestNewHasher_BcryptCostOutOfRange(t *testing.T) {
	_, err := NewHasher("bcrypt", 2)
	require.Error(t, err)
	_, err = NewHasher("bcrypt", 99)
	require.Error(t, err)
}
