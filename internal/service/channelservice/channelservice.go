// Package channelservice renders human-readable payment instructions for
// the channel set on a student, teacher or course. Unusable channel data
// soft-fails to a neutral message so the instructional text is always
// renderable.
package channelservice

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/shulepay/shulepay/internal/config"
	"github.com/shulepay/shulepay/internal/domain"
)

var ErrUnsupportedChannel = errors.New("unsupported payment channel")

const FallbackInstructions = "No payment method selected. Please contact the school accounts office for payment instructions."

type Service struct {
	schoolName string
	accounts   map[string]string
	bankNames  map[string]string
}

func New(cfg *config.Config) *Service {
	return &Service{
		schoolName: cfg.SchoolName,
		accounts:   cfg.BankAccounts,
		bankNames:  cfg.BankNames,
	}
}

// RenderInstructions never fails: channel data that cannot be resolved
// yields the neutral fallback text.
func (s *Service) RenderInstructions(channel domain.PaymentChannel, targetName, purpose string) string {
	text, err := s.render(channel, targetName, purpose)
	if err != nil {
		zap.L().Warn("falling back to neutral payment instructions",
			zap.String("kind", string(channel.Kind)),
			zap.String("bankCode", channel.BankCode),
			zap.Error(err))
		return FallbackInstructions
	}
	return text
}

func (s *Service) render(channel domain.PaymentChannel, targetName, purpose string) (string, error) {
	switch channel.Kind {
	case domain.ChannelMobileMoney:
		if channel.PayBillNumber == "" {
			return "", fmt.Errorf("%w: mobile money channel without paybill number", ErrUnsupportedChannel)
		}
		accountName := channel.AccountName
		if accountName == "" {
			accountName = targetName
		}
		return fmt.Sprintf("Pay %s for %s via mobile money: PayBill %s, account name %q.",
			purpose, targetName, channel.PayBillNumber, accountName), nil

	case domain.ChannelBank:
		bankName, ok := s.bankNames[channel.BankCode]
		if !ok {
			return "", fmt.Errorf("%w: unknown bank code %q", ErrUnsupportedChannel, channel.BankCode)
		}
		account, ok := s.accounts[channel.BankCode]
		if !ok {
			return "", fmt.Errorf("%w: no receiving account configured for bank code %q", ErrUnsupportedChannel, channel.BankCode)
		}
		return fmt.Sprintf("Pay %s for %s by deposit to %s, account %s (%s).",
			purpose, targetName, bankName, account, s.schoolName), nil

	default:
		return "", fmt.Errorf("%w: no channel selected", ErrUnsupportedChannel)
	}
}
