package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"bankops/internal/domain"
	"bankops/internal/port"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	ExitOK       = 0
	ExitRejected = 1
	ExitUsage    = 2
)

const usage = `usage: bankctl [--config path] <command> [flags]

commands:
  create-account   validate a new account
  withdraw         process a single withdrawal against an account
`

type accountInput struct {
	ID       string `validate:"required"`
	Balance  string `validate:"required,numeric"`
	Currency string `validate:"required"`
}

type withdrawalInput struct {
	Account   accountInput
	AccountID string `validate:"required"`
	Amount    string `validate:"required,numeric"`
	Currency  string `validate:"required"`
}

type BankingHandler struct {
	service  port.BankingService
	validate *validator.Validate
	out      io.Writer
	errOut   io.Writer
	logger   *zap.Logger
}

func NewBankingHandler(service port.BankingService, out, errOut io.Writer, logger *zap.Logger) *BankingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankingHandler{
		service:  service,
		validate: validator.New(),
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

// Run dispatches args (command first) and returns the process exit code.
func (h *BankingHandler) Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(h.errOut, usage)
		return ExitUsage
	}

	switch args[0] {
	case "create-account":
		return h.createAccount(args[1:])
	case "withdraw":
		return h.withdraw(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(h.out, usage)
		return ExitOK
	default:
		fmt.Fprintf(h.errOut, "unknown command %q\n\n%s", args[0], usage)
		return ExitUsage
	}
}

func (h *BankingHandler) createAccount(args []string) int {
	fs := h.newFlagSet("create-account")
	var in accountInput
	bindAccountFlags(fs, &in)

	if code, done := h.parse(fs, args); done {
		return code
	}
	if err := h.validate.Struct(&in); err != nil {
		return h.usageError(fs, err)
	}

	acc, err := toAccount(in)
	if err != nil {
		return h.usageError(fs, err)
	}

	created, err := h.service.CreateAccount(acc)
	if err != nil {
		return h.fail(err)
	}
	return h.print(created)
}

func (h *BankingHandler) withdraw(args []string) int {
	fs := h.newFlagSet("withdraw")
	var in withdrawalInput
	bindAccountFlags(fs, &in.Account)
	fs.StringVar(&in.AccountID, "account-id", "", "account id named by the withdrawal (defaults to --id)")
	fs.StringVar(&in.Amount, "amount", "", "amount to withdraw")
	fs.StringVar(&in.Currency, "withdraw-currency", "", "currency of the withdrawal (defaults to --currency)")

	if code, done := h.parse(fs, args); done {
		return code
	}
	if !fs.Changed("account-id") {
		in.AccountID = in.Account.ID
	}
	if !fs.Changed("withdraw-currency") {
		in.Currency = in.Account.Currency
	}
	if err := h.validate.Struct(&in); err != nil {
		return h.usageError(fs, err)
	}

	acc, err := toAccount(in.Account)
	if err != nil {
		return h.usageError(fs, err)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return h.usageError(fs, fmt.Errorf("amount: %w", err))
	}

	result, err := h.service.ProcessWithdrawal(acc, domain.WithdrawalRequest{
		AccountID: in.AccountID,
		Amount:    amount,
		Currency:  in.Currency,
	})
	if err != nil {
		return h.fail(err)
	}
	return h.print(result)
}

func bindAccountFlags(fs *pflag.FlagSet, in *accountInput) {
	fs.StringVar(&in.ID, "id", "", "account id")
	fs.StringVar(&in.Balance, "balance", "", "account balance")
	fs.StringVar(&in.Currency, "currency", "", "account currency code")
}

func toAccount(in accountInput) (domain.BankAccount, error) {
	balance, err := decimal.NewFromString(in.Balance)
	if err != nil {
		return domain.BankAccount{}, fmt.Errorf("balance: %w", err)
	}
	return domain.BankAccount{ID: in.ID, Balance: balance, Currency: in.Currency}, nil
}

func (h *BankingHandler) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(h.errOut)
	return fs
}

func (h *BankingHandler) parse(fs *pflag.FlagSet, args []string) (int, bool) {
	err := fs.Parse(args)
	switch {
	case err == nil:
		return ExitOK, false
	case errors.Is(err, pflag.ErrHelp):
		return ExitOK, true
	default:
		fmt.Fprintf(h.errOut, "%s: %v\n", fs.Name(), err)
		return ExitUsage, true
	}
}

func (h *BankingHandler) usageError(fs *pflag.FlagSet, err error) int {
	fmt.Fprintf(h.errOut, "%s: %v\n", fs.Name(), err)
	fs.PrintDefaults()
	return ExitUsage
}

func (h *BankingHandler) fail(err error) int {
	var we *domain.WithdrawalError
	if !errors.As(err, &we) {
		h.logger.Error("operation failed", zap.Error(err))
		fmt.Fprintf(h.errOut, "error: %v\n", err)
		return ExitRejected
	}
	h.print(we)
	return ExitRejected
}

func (h *BankingHandler) print(v any) int {
	enc := json.NewEncoder(h.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		h.logger.Error("write output", zap.Error(err))
		return ExitRejected
	}
	return ExitOK
}
