package twofactor

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSetup(t *testing.T) {
	setup, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)

	assert.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.OTPAuthURL, "otpauth://totp/")
	assert.Contains(t, setup.OTPAuthURL, "secret="+setup.Secret)
	assert.Contains(t, setup.OTPAuthURL, "issuer=AramisTech")
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))
	assert.Len(t, setup.BackupCodes, BackupCodeCount)
}

func TestGenerateSetup_UniqueSecrets(t *testing.T) {
	first, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)
	second, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestGenerateBackupCodes(t *testing.T) {
	codes, err := GenerateBackupCodes()
	require.NoError(t, err)

	assert.Len(t, codes, 10)
	format := regexp.MustCompile(`^[A-F0-9]{8}$`)
	for _, code := range codes {
		assert.Regexp(t, format, code)
	}
}

func TestVerifyTOTP(t *testing.T) {
	setup, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)

	token, err := totp.GenerateCode(setup.Secret, time.Now())
	require.NoError(t, err)

	assert.True(t, VerifyTOTP(token, setup.Secret))
}

func TestVerifyTOTP_WrongSecret(t *testing.T) {
	first, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)
	second, err := GenerateSetup("AramisTech", "admin@aramistech.com")
	require.NoError(t, err)

	token, err := totp.GenerateCode(first.Secret, time.Now())
	require.NoError(t, err)

	assert.False(t, VerifyTOTP(token, second.Secret))
}

func TestVerifyTOTP_FailsClosed(t *testing.T) {
	assert.False(t, VerifyTOTP("123456", "not a base32 secret!!"))
	assert.False(t, VerifyTOTP("", ""))
	assert.False(t, VerifyTOTP("abcdef", "JBSWY3DPEHPK3PXP"))
}

func TestVerifyBackupCode(t *testing.T) {
	codes := []string{"AAAA1111", "BBBB2222", "CCCC3333"}

	assert.True(t, VerifyBackupCode("AAAA1111", codes))
	assert.True(t, VerifyBackupCode("aaaa1111", codes), "input is case-insensitive")
	assert.False(t, VerifyBackupCode("DDDD4444", codes))

	// Pure membership test, nothing consumed.
	assert.Len(t, codes, 3)
}

func TestConsumeBackupCode(t *testing.T) {
	codes := []string{"AAAA1111", "BBBB2222", "CCCC3333"}

	remaining := ConsumeBackupCode("bbbb2222", codes)
	assert.Len(t, remaining, 2)
	assert.NotContains(t, remaining, "BBBB2222")
	assert.Contains(t, remaining, "AAAA1111")
	assert.Contains(t, remaining, "CCCC3333")

	// Consuming the same code again is a no-op.
	again := ConsumeBackupCode("BBBB2222", remaining)
	assert.Equal(t, remaining, again)
}

func TestConsumeBackupCode_Absent(t *testing.T) {
	codes := []string{"AAAA1111"}
	assert.Equal(t, codes, ConsumeBackupCode("FFFF9999", codes))
}

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		code     string
		isTOTP   bool
		isBackup bool
	}{
		{"123456", true, false},
		{"000000", true, false},
		{"A1B2C3D4", false, true},
		{"a1b2c3d4", false, true},
		{"12345678", false, true}, // 8 digits is a valid hex shape, not a TOTP token
		{"abc", false, false},
		{"1234567", false, false},
		{"G1B2C3D4", false, false}, // G is not hex
		{"", false, false},
		{"123456 ", false, false},
	}

	for _, tt := range tests {
		got := ClassifyCode(tt.code)
		assert.Equal(t, tt.isTOTP, got.IsTOTP, "IsTOTP for %q", tt.code)
		assert.Equal(t, tt.isBackup, got.IsBackup, "IsBackup for %q", tt.code)
	}
}
