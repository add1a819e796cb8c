package admin

import (
	"errors"

	"uniwise/internal/models"
	"uniwise/internal/repositories"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrReasonRequired   = errors.New("reason is required")
	ErrCannotBlacklist  = errors.New("cannot blacklist an admin")
	ErrNoPendingRequest = errors.New("user has not applied for blockchain verification")
)

// DashboardStats is the back-office overview.
type DashboardStats struct {
	Stats struct {
		TotalUsers     int64 `json:"totalUsers"`
		TotalProducts  int64 `json:"totalProducts"`
		SoldProducts   int64 `json:"soldProducts"`
		ActiveProducts int64 `json:"activeProducts"`
		Transactions   int64 `json:"transactions"`
	} `json:"stats"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	NewUsers           []models.User        `json:"newUsers"`
}

type Service interface {
	Users() ([]models.User, error)
	UserByID(id uint) (*models.User, error)
	Blacklist(id uint, reason string) (*models.User, error)
	Unblacklist(id uint) (*models.User, error)
	ApproveVerification(id uint) (*models.User, error)
	RejectVerification(id uint, reason string) (*models.User, error)
	PendingVerifications() ([]models.User, error)
	Transactions() ([]models.Transaction, error)
	Dashboard() (*DashboardStats, error)
}

type service struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	txnRepo     repositories.TransactionRepository
}

func NewService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, txnRepo repositories.TransactionRepository) Service {
	return &service{
		userRepo:    userRepo,
		productRepo: productRepo,
		txnRepo:     txnRepo,
	}
}

func (s *service) Users() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *service) UserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *service) Blacklist(id uint, reason string) (*models.User, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.IsAdmin {
		return nil, ErrCannotBlacklist
	}

	user.IsBlacklisted = true
	user.BlacklistReason = reason
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Unblacklist(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.IsBlacklisted = false
	user.BlacklistReason = ""
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ApproveVerification moves a pending verification request to approved and
// marks the user blockchain verified.
func (s *service) ApproveVerification(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.BlockchainVerificationStatus != models.VerificationPending {
		return nil, ErrNoPendingRequest
	}

	user.BlockchainVerificationStatus = models.VerificationApproved
	user.IsBlockchainVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RejectVerification moves a pending request to rejected. The user stays
// unverified and may re-apply from the rejected state.
func (s *service) RejectVerification(id uint, reason string) (*models.User, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.BlockchainVerificationStatus != models.VerificationPending {
		return nil, ErrNoPendingRequest
	}

	user.BlockchainVerificationStatus = models.VerificationRejected
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) PendingVerifications() ([]models.User, error) {
	return s.userRepo.GetPendingVerifications()
}

func (s *service) Transactions() ([]models.Transaction, error) {
	return s.txnRepo.All()
}

func (s *service) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Stats.TotalProducts, err = s.productRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.Stats.SoldProducts, err = s.productRepo.CountSold(); err != nil {
		return nil, err
	}
	stats.Stats.ActiveProducts = stats.Stats.TotalProducts - stats.Stats.SoldProducts
	if stats.Stats.Transactions, err = s.txnRepo.Count(); err != nil {
		return nil, err
	}

	if stats.RecentTransactions, err = s.txnRepo.Recent(5); err != nil {
		return nil, err
	}
	if stats.NewUsers, err = s.userRepo.Recent(5); err != nil {
		return nil, err
	}

	return &stats, nil
}
