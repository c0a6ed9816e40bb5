// Package wealth binds the REST client to the query cache and carries the
// invalidation contract between writes and views: any change to transactions
// can move account balances and aggregate net worth, so transaction writes
// widen to accounts and the dashboard; membership changes touch the per-family
// member list and the family summaries, nothing else.
package wealth

import (
	"context"
	"io"

	"github.com/wealthnest/client-go/api"
	"github.com/wealthnest/client-go/models"
	"github.com/wealthnest/client-go/querycache"
	"github.com/wealthnest/client-go/session"
)

type Config struct {
	API      *api.Client
	Cache    *querycache.Cache
	Notifier session.Notifier
}

type Service struct {
	api    *api.Client
	cache  *querycache.Cache
	notify session.Notifier
}

func NewService(cfg Config) *Service {
	s := &Service{api: cfg.API, cache: cfg.Cache, notify: cfg.Notifier}
	if s.notify == nil {
		s.notify = session.LogNotifier{}
	}
	return s
}

// Reads go through the cache; a fresh key is served from memory.

func (s *Service) Families(ctx context.Context) ([]models.Family, error) {
	return querycache.Fetch(ctx, s.cache, FamiliesKey(), func(ctx context.Context) ([]models.Family, error) {
		return s.api.ListFamilies(ctx)
	})
}

func (s *Service) FamilyMembers(ctx context.Context, familyID int64) ([]models.FamilyMember, error) {
	return querycache.Fetch(ctx, s.cache, FamilyMembersKey(familyID), func(ctx context.Context) ([]models.FamilyMember, error) {
		return s.api.ListFamilyMembers(ctx, familyID)
	})
}

func (s *Service) Accounts(ctx context.Context) ([]models.Account, error) {
	return querycache.Fetch(ctx, s.cache, AccountsKey(), func(ctx context.Context) ([]models.Account, error) {
		return s.api.ListAccounts(ctx)
	})
}

func (s *Service) Transactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	return querycache.Fetch(ctx, s.cache, TransactionsKey(), func(ctx context.Context) ([]models.Transaction, error) {
		return s.api.ListTransactions(ctx, limit)
	})
}

func (s *Service) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return querycache.Fetch(ctx, s.cache, DashboardKey(), func(ctx context.Context) (models.Dashboard, error) {
		return s.api.Dashboard(ctx)
	})
}

// Mutations invalidate their declared keys on success, strictly before the
// success notification, so a read in the same turn already refetches. A
// failed mutation invalidates nothing and the cache keeps serving its
// last-known-fresh value.

func (s *Service) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateAccount(ctx, req)
	}, AccountsKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to create account"))
		return models.Account{}, err
	}
	s.notify.Success("Account created successfully")
	return value.(models.Account), nil
}

func (s *Service) ImportAccountsCSV(ctx context.Context, filename string, csv io.Reader) ([]models.Account, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.ImportAccountsCSV(ctx, filename, csv)
	}, AccountsKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to import CSV"))
		return nil, err
	}
	s.notify.Success("CSV imported successfully")
	return value.([]models.Account), nil
}

func (s *Service) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateTransaction(ctx, req)
	}, TransactionsKey(), AccountsKey(), DashboardKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to create transaction"))
		return models.Transaction{}, err
	}
	s.notify.Success("Transaction created successfully")
	return value.(models.Transaction), nil
}

func (s *Service) ImportTransactionsCSV(ctx context.Context, filename string, csv io.Reader) ([]models.Transaction, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.ImportTransactionsCSV(ctx, filename, csv)
	}, TransactionsKey(), AccountsKey(), DashboardKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to import CSV"))
		return nil, err
	}
	s.notify.Success("CSV imported successfully")
	return value.([]models.Transaction), nil
}

func (s *Service) CreateFamily(ctx context.Context, req models.CreateFamilyRequest) (models.Family, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateFamily(ctx, req)
	}, FamiliesKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to create family"))
		return models.Family{}, err
	}
	s.notify.Success("Family created successfully")
	return value.(models.Family), nil
}

func (s *Service) InviteMember(ctx context.Context, familyID int64, req models.InviteMemberRequest) (models.FamilyMember, error) {
	value, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.InviteMember(ctx, familyID, req)
	}, FamilyMembersKey(familyID), FamiliesKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to invite member"))
		return models.FamilyMember{}, err
	}
	s.notify.Success("Member invited successfully")
	return value.(models.FamilyMember), nil
}

func (s *Service) RemoveMember(ctx context.Context, familyID, memberID int64) error {
	_, err := s.cache.Mutate(ctx, func(ctx context.Context) (any, error) {
		return nil, s.api.RemoveMember(ctx, familyID, memberID)
	}, FamilyMembersKey(familyID), FamiliesKey())
	if err != nil {
		s.notify.Error(api.Detail(err, "Failed to remove member"))
		return err
	}
	s.notify.Success("Member removed successfully")
	return nil
}

// Exports stream straight from the server and never touch the cache.

func (s *Service) ExportNetWorthCSV(ctx context.Context) ([]byte, error) {
	return s.api.ExportNetWorthCSV(ctx)
}

func (s *Service) ExportNetWorthPDF(ctx context.Context) ([]byte, error) {
	return s.api.ExportNetWorthPDF(ctx)
}

func (s *Service) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	return s.api.ExportTransactionsCSV(ctx)
}
