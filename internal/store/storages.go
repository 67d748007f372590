package store

import "github.com/MKhiriev/go-bio-console/internal/logger"

// Storages aggregates every persistence component of the server.
type Storages struct {
	UserRepository     UserRepository
	TemplateRepository TemplateRepository
	SessionStorage     SessionStorage
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		TemplateRepository: NewTemplateRepository(db, log),
		SessionStorage:     NewSessionStorage(log),
	}
}
