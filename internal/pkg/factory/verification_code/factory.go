package verification_code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeModulus = 1000000

// CodeFactory выдаёт шестизначные коды подтверждения вручения.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

func (f *CodeFactory) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeModulus))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}

	// ведущие нули сохраняются: код всегда шесть цифр
	return fmt.Sprintf("%06d", n.Int64()), nil
}
