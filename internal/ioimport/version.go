package ioimport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// nsFoodSurveys is the UUID v5 namespace for dataset-version
// identifiers.
var nsFoodSurveys = uuid.NewSHA1(
	uuid.NameSpaceDNS, []byte("foodsurveys.org"),
)

// versionUUID derives the deterministic identifier of one release.
// Re-imports of the same release always produce the same UUID.
func versionUUID(family datasets.Family, v datasets.Version) string {
	seed := fmt.Sprintf("%s-%d-%d", family, v.BeginYear, v.EndYear)
	return uuid.NewSHA1(nsFoodSurveys, []byte(seed)).String()
}

// refreshVersionRecord replaces the dataset_versions row for one
// release. Uses DELETE + INSERT for idempotency: importing the same
// release twice leaves exactly one record, bearing the second run's
// timestamp.
func refreshVersionRecord(
	ctx context.Context,
	pool *pgxpool.Pool,
	family datasets.Family,
	v datasets.Version,
) error {
	delQuery := `
		DELETE FROM dataset_versions
		WHERE version_id = $1 AND family = $2
	`
	res, err := pool.Exec(ctx, delQuery, v.ID, string(family))
	if err != nil {
		return VersionRecordError(v.ID, err)
	}
	if res.RowsAffected() > 0 {
		slog.Info("Replacing prior version record",
			"version_id", v.ID, "family", family)
	}

	insQuery := `
		INSERT INTO dataset_versions
			(version_id, family, uuid, begin_year, end_year,
			 major_revision, minor_revision, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = pool.Exec(ctx, insQuery,
		v.ID,
		string(family),
		versionUUID(family, v),
		v.BeginYear,
		v.EndYear,
		v.Major,
		v.Minor,
		time.Now(),
	)
	if err != nil {
		return VersionRecordError(v.ID, err)
	}

	return nil
}
