package pgsql

import (
	portsrepo "github.com/Tushar3330/Mytube/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		ChannelRepo: newPgxChannelRepository(dbPool),
	}
}
