// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/models"
)

const templatesTable = "biometric_templates"

var templateColumns = []string{"id", "owner_id", "modality", "enrolled", "encrypted_blob", "created_at", "updated_at"}

// templateRepository is the SQL implementation of [TemplateRepository].
// Every write is a single statement, so a concurrent reader observes either
// the old or the new row.
type templateRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTemplateRepository(db *DB, logger *logger.Logger) TemplateRepository {
	logger.Debug().Msg("creating template repository")
	return &templateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *templateRepository) Upsert(ctx context.Context, record models.BiometricRecord) (models.BiometricRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(templatesTable).
		Columns("owner_id", "modality", "enrolled", "encrypted_blob").
		Values(record.OwnerID, record.Modality.String(), record.Enrolled, record.EncryptedBlob).
		Suffix(`ON CONFLICT (owner_id, modality) DO UPDATE
			SET encrypted_blob = excluded.encrypted_blob,
			    enrolled = excluded.enrolled,
			    updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return models.BiometricRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.Upsert").
			Int64("owner_id", record.OwnerID).
			Str("modality", record.Modality.String()).
			Msg("error saving biometric template")
		return models.BiometricRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (r *templateRepository) Get(ctx context.Context, ownerID int64, modality models.Modality) (models.BiometricRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(templateColumns...).
		From(templatesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"modality": modality.String()}).
		ToSql()
	if err != nil {
		return models.BiometricRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.BiometricRecord
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		record, scanErr = scanTemplate(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.BiometricRecord{}, ErrTemplateNotFound
	case err != nil:
		log.Err(err).Str("func", "*templateRepository.Get").Msg("error loading biometric template")
		return models.BiometricRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *templateRepository) SetEnrolled(ctx context.Context, ownerID int64, modality models.Modality, enrolled bool) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(templatesTable).
		Set("enrolled", enrolled).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"modality": modality.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.SetEnrolled").Msg("error updating biometric template")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func (r *templateRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.BiometricRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(templateColumns...).
		From(templatesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("modality").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*templateRepository.ListByOwner").Msg("error listing biometric templates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.BiometricRecord, 0, len(models.Modalities))
	for rows.Next() {
		record, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (models.BiometricRecord, error) {
	var (
		record   models.BiometricRecord
		modality string
	)
	err := row.Scan(&record.ID, &record.OwnerID, &modality, &record.Enrolled, &record.EncryptedBlob, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return models.BiometricRecord{}, err
	}

	record.Modality, err = models.ParseModality(modality)
	if err != nil {
		return models.BiometricRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return record, nil
}
