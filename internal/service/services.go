package service

import (
	"github.com/AVoropaev/go-money-keeper/internal/config"
	"github.com/AVoropaev/go-money-keeper/internal/crypto"
	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/internal/store"
)

type Services struct {
	AuthService   AuthService
	LedgerService LedgerService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		LedgerService: NewLedgerService(storages.TransactionRepository, logger),
	}
}
