package twofactor

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image/png"
	"regexp"
	"strings"

	"github.com/pquerna/otp/totp"
)

const BackupCodeCount = 10

var (
	totpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
	backupPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}$`)
)

// Setup is the enrollment package for a new 2FA registration. It is shown
// to the user exactly once; the caller persists Secret and BackupCodes and
// discards the struct.
type Setup struct {
	Secret      string
	OTPAuthURL  string
	QRCode      string
	BackupCodes []string
}

// GenerateSetup creates a fresh TOTP secret for accountName, the otpauth://
// enrollment URL, a scannable QR code as a data URI and a new set of backup
// codes. It fails only when the system random source is unavailable.
func GenerateSetup(issuer, accountName string) (Setup, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		SecretSize:  20,
	})
	if err != nil {
		return Setup{}, fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	img, err := key.Image(200, 200)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Setup{}, fmt.Errorf("failed to encode QR code: %w", err)
	}

	codes, err := GenerateBackupCodes()
	if err != nil {
		return Setup{}, err
	}

	return Setup{
		Secret:      key.Secret(),
		OTPAuthURL:  key.URL(),
		QRCode:      "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		BackupCodes: codes,
	}, nil
}

// GenerateBackupCodes returns BackupCodeCount single-use codes, each 4
// random bytes rendered as 8 uppercase hex characters. Codes within a batch
// are not checked for uniqueness; a collision is a 1-in-2^32 event per pair.
func GenerateBackupCodes() ([]string, error) {
	codes := make([]string, BackupCodeCount)
	for i := range codes {
		raw := make([]byte, 4)
		if _, err := rand.Read(raw); err != nil {
			return nil, fmt.Errorf("failed to generate backup code: %w", err)
		}
		codes[i] = strings.ToUpper(hex.EncodeToString(raw))
	}
	return codes, nil
}

// VerifyTOTP reports whether token is a valid 6-digit code for secret at the
// current time, allowing one 30-second step of clock skew either side (the
// otp library default). Malformed secrets or tokens verify as false rather
// than returning an error, so a broken record is indistinguishable from a
// wrong code.
func VerifyTOTP(token, secret string) bool {
	return totp.Validate(token, secret)
}

// VerifyBackupCode reports whether code, normalized to uppercase, is present
// in codes. It does not consume the code.
func VerifyBackupCode(code string, codes []string) bool {
	normalized := strings.ToUpper(code)
	for _, c := range codes {
		if c == normalized {
			return true
		}
	}
	return false
}

// ConsumeBackupCode returns codes with the first entry matching code
// removed. When code is not present the slice is returned unchanged, so
// consuming an already-spent code is a no-op.
func ConsumeBackupCode(code string, codes []string) []string {
	normalized := strings.ToUpper(code)
	for i, c := range codes {
		if c == normalized {
			remaining := make([]string, 0, len(codes)-1)
			remaining = append(remaining, codes[:i]...)
			return append(remaining, codes[i+1:]...)
		}
	}
	return codes
}

// Classification tells the login flow which verification path a submitted
// second factor should take.
type Classification struct {
	IsTOTP   bool
	IsBackup bool
}

// ClassifyCode inspects the shape of a submitted code: exactly 6 decimal
// digits is a TOTP token, exactly 8 hex characters (case-insensitive) is a
// backup code. A code matching neither is rejected up front without running
// either verifier.
func ClassifyCode(code string) Classification {
	return Classification{
		IsTOTP:   totpPattern.MatchString(code),
		IsBackup: backupPattern.MatchString(code),
	}
}
