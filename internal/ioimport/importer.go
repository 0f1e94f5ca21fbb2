package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/foodsurveys/fsdb/pkg/config"
	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/foodsurveys/fsdb/pkg/db"
	"github.com/foodsurveys/fsdb/pkg/lifecycle"
	"github.com/foodsurveys/fsdb/pkg/source"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// importer implements the lifecycle.Importer interface for one
// dataset release.
type importer struct {
	cfg        *config.Config
	operator   db.Operator
	reader     source.Reader
	family     datasets.Family
	versionID  int
	sourcePath string
}

// New creates a new Importer for one release of one dataset family.
func New(
	cfg *config.Config,
	op db.Operator,
	rd source.Reader,
	family datasets.Family,
	versionID int,
	sourcePath string,
) lifecycle.Importer {
	return &importer{
		cfg:        cfg,
		operator:   op,
		reader:     rd,
		family:     family,
		versionID:  versionID,
		sourcePath: sourcePath,
	}
}

// Import runs the whole pipeline for the configured release:
// resolve the version, open the source, build the loader list, refresh
// the version record and run every loader in sequence.
//
// Loaders execute strictly one after another. Later tables reference
// identifiers inserted by earlier ones, and the source connection is
// not shareable across goroutines. The first failure aborts the run;
// rows already committed by earlier loaders stay committed.
func (p *importer) Import(
	ctx context.Context,
) ([]lifecycle.TableReport, error) {
	pool := p.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	// Resolve the version before touching anything: an unknown code
	// aborts with no source opened and no rows written.
	version, err := datasets.Resolve(p.versionID)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	slog.Info("Starting dataset import",
		"family", p.family,
		"version_id", version.ID,
		"years", version.BeginYear,
		"source", p.sourcePath,
	)

	loaders, err := p.buildLoaders(version)
	if err != nil {
		return nil, err
	}

	if len(loaders) == 0 {
		// FPED releases outside the eligible range have no source
		// tables; the run succeeds touching nothing.
		gn.Info(
			"Version <em>%d</em> has no FPED source tables, nothing to load",
			version.ID,
		)
		slog.Info("No loaders for version", "version_id", version.ID)
		return nil, nil
	}

	if err = p.reader.Open(ctx, p.sourcePath); err != nil {
		return nil, err
	}
	defer p.reader.Close()

	gn.Info("Opened source database <em>%s</em>", p.sourcePath)

	if err = refreshVersionRecord(ctx, pool, p.family, version); err != nil {
		return nil, err
	}

	reports, err := p.runLoaders(ctx, loaders)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, r := range reports {
		total += r.Rows
	}

	totalDuration := time.Since(startTime)
	slog.Info("Import complete",
		"family", p.family,
		"version_id", version.ID,
		"tables", len(reports),
		"rows", total,
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Import complete
Tables loaded: %d, records: %s.
		Elapsed time: <em>%s</em>
`,
		len(reports),
		humanize.Comma(total),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	return reports, nil
}

// buildLoaders assembles the ordered loader list for the release.
//
// For FNDDS the list is fixed: source table names do not vary by
// release. For FPED the source table names derive from the version
// code, and the mod-equivalents loader participates only for releases
// that ship its table (codes below 64).
func (p *importer) buildLoaders(
	version datasets.Version,
) ([]Loader, error) {
	base := tableLoader{
		pool:      p.operator.Pool(),
		reader:    p.reader,
		versionID: version.ID,
		batchSize: p.cfg.Database.BatchSize,
	}

	switch p.family {
	case datasets.FNDDS:
		return fnddsLoaders(base), nil
	case datasets.FPED:
		equivTable, ok := datasets.EquivTable(version.ID)
		if !ok {
			return nil, nil
		}
		modTable, _ := datasets.ModEquivTable(version.ID)
		return fpedLoaders(base, equivTable, modTable), nil
	}

	return nil, UnknownFamilyError(p.family)
}

// runLoaders executes the loaders sequentially and collects one
// report per loader.
func (p *importer) runLoaders(
	ctx context.Context,
	loaders []Loader,
) ([]lifecycle.TableReport, error) {
	reports := make([]lifecycle.TableReport, 0, len(loaders))

	for i, l := range loaders {
		// Check context cancellation between loaders.
		select {
		case <-ctx.Done():
			return nil, CancelledError(ctx.Err())
		default:
		}

		gn.Info("(%d/%d) Loading <em>%s</em>...",
			i+1, len(loaders), l.TableName())

		loaderStart := time.Now()
		count, err := l.Load(ctx)
		if err != nil {
			slog.Error("Loader failed",
				"table", l.TableName(), "error", err)
			return nil, err
		}

		slog.Info("Table loaded",
			"table", l.TableName(),
			"rows", count,
			"duration", gnfmt.TimeString(time.Since(loaderStart).Seconds()),
		)
		gn.Message("<em>Loaded %s records into %s</em>",
			humanize.Comma(count), l.TableName())

		reports = append(reports, lifecycle.TableReport{
			Table: l.TableName(),
			Rows:  count,
		})
	}

	return reports, nil
}
