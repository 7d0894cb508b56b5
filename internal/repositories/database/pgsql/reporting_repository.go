package pgsql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool DBPool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetPastureSummaryData aggregates a pasture's distinct occupancy and the
// allocated total of its pasture-scoped cost records over [from, to].
func (r *PgxReportingRepository) GetPastureSummaryData(ctx context.Context, pastureID string, from, to time.Time) (int, decimal.Decimal, error) {
	var animalCount int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT m.animal_id)
		FROM movements m
		WHERE m.destination_pasture_id = $1
		  AND m.entry_date <= $3
		  AND (m.exit_date >= $2 OR m.exit_date IS NULL);
	`, pastureID, from, to).Scan(&animalCount)
	if err != nil {
		return 0, decimal.Zero, apperrors.NewAppError(500, "failed to count occupancy for pasture "+pastureID, err)
	}

	var totalCost decimal.Decimal
	err = r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(d.allocated), 0)
		FROM cost_allocation_details d
		JOIN cost_records c ON c.cost_id = d.cost_id
		WHERE c.pasture_id = $1 AND c.cost_date >= $2 AND c.cost_date <= $3;
	`, pastureID, from, to).Scan(&totalCost)
	if err != nil {
		return 0, decimal.Zero, apperrors.NewAppError(500, "failed to sum allocated cost for pasture "+pastureID, err)
	}

	return animalCount, totalCost, nil
}

// GetCostTotalsByCategory sums allocated cost by category over [from, to],
// largest first.
func (r *PgxReportingRepository) GetCostTotalsByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryCost, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT cat.category_id, cat.name, COALESCE(SUM(d.allocated), 0) AS total
		FROM cost_categories cat
		JOIN cost_records c ON c.category_id = cat.category_id
		JOIN cost_allocation_details d ON d.cost_id = c.cost_id
		WHERE c.cost_date >= $1 AND c.cost_date <= $2
		GROUP BY cat.category_id, cat.name
		ORDER BY total DESC, cat.name;
	`, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cost totals by category", err)
	}
	defer rows.Close()

	totals := []domain.CategoryCost{}
	for rows.Next() {
		var cc domain.CategoryCost
		if err := rows.Scan(&cc.CategoryID, &cc.CategoryName, &cc.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category total row", err)
		}
		totals = append(totals, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category total rows", err)
	}

	return totals, nil
}

// GetAllocatedTotalForAnimal sums every allocation row attributed to the
// animal.
func (r *PgxReportingRepository) GetAllocatedTotalForAnimal(ctx context.Context, animalID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(allocated), 0) FROM cost_allocation_details WHERE animal_id = $1;`,
		animalID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum allocated cost for animal "+animalID, err)
	}
	return total, nil
}
