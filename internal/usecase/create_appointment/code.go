package create_appointment

import (
	"crypto/rand"
	"fmt"

	"github.com/itpmanager/ITP-SchedulingService/internal/domain"
)

// Confirmation code alphabet without the ambiguous 0/O/1/I glyphs, the
// code is read out loud over the phone.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// generateConfirmationCode produces a random 6-character code.
func generateConfirmationCode() (string, error) {
	buf := make([]byte, domain.ConfirmationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCodeGeneration, err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(buf), nil
}
