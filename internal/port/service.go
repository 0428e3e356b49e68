package port

import (
	"bankops/internal/domain"
)

type BankingService interface {
	CreateAccount(account domain.BankAccount) (domain.BankAccount, error)
	ProcessWithdrawal(account domain.BankAccount, withdrawal domain.WithdrawalRequest) (domain.WithdrawalResult, error)
}
