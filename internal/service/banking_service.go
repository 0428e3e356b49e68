package service

import (
	"bankops/internal/domain"
	"bankops/internal/port"

	"go.uber.org/zap"
)

type bankingService struct {
	clock  port.Clock
	ids    port.IDGenerator
	logger *zap.Logger
}

func NewBankingService(
	clock port.Clock,
	ids port.IDGenerator,
	logger *zap.Logger,
) port.BankingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &bankingService{
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

func (s *bankingService) CreateAccount(account domain.BankAccount) (domain.BankAccount, error) {
	if account.Balance.IsNegative() {
		return domain.BankAccount{}, s.reject(account.ID, domain.CodeInvalidAmount, "Account balance cannot be negative")
	}

	if account.Balance.IsZero() {
		return domain.BankAccount{}, s.reject(account.ID, domain.CodeInvalidAmount, "Initial account balance must be positive")
	}

	s.logger.Debug("account accepted",
		zap.String("account_id", account.ID),
		zap.String("currency", account.Currency),
	)
	return account, nil
}

// ProcessWithdrawal validates the request against the account snapshot and
// computes the resulting transaction. The first failing check wins; the
// account itself is never modified.
func (s *bankingService) ProcessWithdrawal(account domain.BankAccount, withdrawal domain.WithdrawalRequest) (domain.WithdrawalResult, error) {
	if account.ID != withdrawal.AccountID {
		return domain.WithdrawalResult{}, s.reject(withdrawal.AccountID, domain.CodeAccountNotFound, "Account not found")
	}

	// INVALID_AMOUNT is the historical code for a currency mismatch.
	if account.Currency != withdrawal.Currency {
		return domain.WithdrawalResult{}, s.reject(account.ID, domain.CodeInvalidAmount, "Currency mismatch")
	}

	if !withdrawal.Amount.IsPositive() {
		return domain.WithdrawalResult{}, s.reject(account.ID, domain.CodeInvalidAmount, "Amount must be positive")
	}

	if withdrawal.Amount.GreaterThan(account.Balance) {
		return domain.WithdrawalResult{}, s.reject(account.ID, domain.CodeInsufficientFunds, "Insufficient funds")
	}

	now := s.clock.Now()
	txn := domain.Transaction{
		ID:               s.ids.NewTransactionID(now),
		Amount:           withdrawal.Amount,
		Currency:         withdrawal.Currency,
		Timestamp:        now,
		RemainingBalance: account.Balance.Sub(withdrawal.Amount),
	}

	s.logger.Info("withdrawal processed",
		zap.String("account_id", account.ID),
		zap.String("transaction_id", txn.ID),
		zap.String("amount", txn.Amount.String()),
		zap.String("currency", txn.Currency),
		zap.String("remaining_balance", txn.RemainingBalance.String()),
	)

	return domain.WithdrawalResult{
		Success:     true,
		Transaction: txn,
	}, nil
}

func (s *bankingService) reject(accountID string, code domain.ErrorCode, message string) error {
	s.logger.Debug("operation rejected",
		zap.String("account_id", accountID),
		zap.String("code", string(code)),
		zap.String("message", message),
	)
	return domain.NewWithdrawalError(code, message)
}
