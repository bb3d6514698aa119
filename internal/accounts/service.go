package accounts

import (
	"fmt"
	"os"

	"github.com/aifina/aifina/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byName[model.CanonicalAccount(a.Name)] = a
	}
	return &Service{accounts: accounts, byName: byName}
}

// Default returns a Service over DefaultChart.
func Default() *Service {
	return NewService(DefaultChart())
}

// Canonical lowercases and trims name, then resolves known aliases.
func Canonical(name string) string {
	n := model.CanonicalAccount(name)
	if c, ok := aliases[n]; ok {
		return c
	}
	return n
}

// Classify returns the account for name. Unknown names report false.
func (s *Service) Classify(name string) (model.Account, bool) {
	a, ok := s.byName[Canonical(name)]
	return a, ok
}

// Exists reports whether name is classified.
func (s *Service) Exists(name string) bool {
	_, ok := s.Classify(name)
	return ok
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Names returns the names of the given accounts, in order.
func Names(accts []model.Account) []string {
	names := make([]string, len(accts))
	for i, a := range accts {
		names[i] = a.Name
	}
	return names
}

// Save writes the chart of accounts to path as CSV.
func (s *Service) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
