package pgsql

import (
	portsrepo "github.com/mindfulhq/mindful_journal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo: newPgxEntryRepository(dbPool),
		PhotoRepo: newPgxPhotoRepository(dbPool),
		TagRepo:   newPgxTagRepository(dbPool),
	}
}
