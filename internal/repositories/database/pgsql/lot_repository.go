package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxLotRepository struct {
	BaseRepository
}

func newPgxLotRepository(pool DBPool) portsrepo.LotRepositoryFacade {
	return &PgxLotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LotRepositoryFacade = (*PgxLotRepository)(nil)

const lotColumns = `lot_id, name, purpose, current_pasture_id,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanLot(row pgx.Row) (*models.Lot, error) {
	var l models.Lot
	err := row.Scan(
		&l.LotID,
		&l.Name,
		&l.Purpose,
		&l.CurrentPastureID,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// SaveLot persists a new lot.
func (r *PgxLotRepository) SaveLot(ctx context.Context, lot domain.Lot) error {
	m := mapping.ToModelLot(lot)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO lots (
			lot_id, name, purpose, current_pasture_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		m.LotID, m.Name, m.Purpose, m.CurrentPastureID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lot name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save lot "+m.LotID, err)
	}
	return nil
}

// UpdateLot updates a lot's descriptive fields. The pasture pointer is owned
// by ReassignPasture and is not touched here.
func (r *PgxLotRepository) UpdateLot(ctx context.Context, lot domain.Lot) error {
	m := mapping.ToModelLot(lot)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE lots SET name = $2, purpose = $3, last_updated_at = $4, last_updated_by = $5
		WHERE lot_id = $1;
	`,
		m.LotID, m.Name, m.Purpose, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lot name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to update lot "+m.LotID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("lot " + m.LotID + " not found for update")
	}
	return nil
}

// FindLotByID retrieves a lot by its ID.
func (r *PgxLotRepository) FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE lot_id = $1;`
	l, err := scanLot(r.Pool.QueryRow(ctx, query, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find lot by ID "+lotID, err)
	}
	result := mapping.ToDomainLot(*l)
	return &result, nil
}

// FindLotByName retrieves a lot by its unique name.
func (r *PgxLotRepository) FindLotByName(ctx context.Context, name string) (*domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE name = $1;`
	l, err := scanLot(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find lot by name "+name, err)
	}
	result := mapping.ToDomainLot(*l)
	return &result, nil
}

// ListLots lists all lots ordered by name.
func (r *PgxLotRepository) ListLots(ctx context.Context) ([]domain.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lots", err)
	}
	defer rows.Close()

	lots := []domain.Lot{}
	for rows.Next() {
		l, err := scanLot(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan lot row", err)
		}
		lots = append(lots, mapping.ToDomainLot(*l))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating lot rows", err)
	}

	return lots, nil
}

// ListAnimalsInLot retrieves the lot's current members ordered by tag.
func (r *PgxLotRepository) ListAnimalsInLot(ctx context.Context, lotID string) ([]domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE current_lot_id = $1 ORDER BY tag;`
	rows, err := r.Pool.Query(ctx, query, lotID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query animals in lot "+lotID, err)
	}
	defer rows.Close()

	animals := []models.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan animal row for lot "+lotID, err)
		}
		animals = append(animals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating animal rows for lot "+lotID, err)
	}

	return mapping.ToDomainAnimalSlice(animals), nil
}

// lockLotMembers locks the given animal rows in a fixed order and validates
// every one is ALIVE. One bad member fails the whole call.
func lockLotMembers(ctx context.Context, tx pgx.Tx, animalIDs []string) ([]*lockedAnimal, error) {
	ids := append([]string(nil), animalIDs...)
	sort.Strings(ids)

	members := make([]*lockedAnimal, 0, len(ids))
	for _, id := range ids {
		a, err := lockAnimalRow(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: animal %s not found", apperrors.ErrNotFound, id)
			}
			return nil, err
		}
		if a.LifeStatus != models.Alive {
			return nil, fmt.Errorf("%w: animal %s is %s and cannot be moved", apperrors.ErrValidation, a.AnimalID, a.LifeStatus)
		}
		members = append(members, a)
	}
	return members, nil
}

// moveMemberTx opens a ledger movement for one locked member headed to the
// given pasture.
func moveMemberTx(ctx context.Context, tx pgx.Tx, member *lockedAnimal, pastureID string, entryDate time.Time, reason, actorID string, now time.Time) error {
	movement := models.Movement{
		MovementID:           uuid.New().String(),
		AnimalID:             member.AnimalID,
		OriginPastureID:      nil,
		DestinationPastureID: pastureID,
		EntryDate:            entryDate,
		Reason:               reason,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	_, err := openMovementTx(ctx, tx, member, movement)
	return err
}

// ReassignPasture moves the whole lot to a new pasture in one transaction.
// Every ALIVE member whose current pasture differs gets a ledger movement;
// any member failing validation rolls back the entire operation.
func (r *PgxLotRepository) ReassignPasture(ctx context.Context, lotID, pastureID string, entryDate time.Time, reason, actorID string, now time.Time) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var lotExists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lots WHERE lot_id = $1);`, lotID).Scan(&lotExists)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to check lot "+lotID, err)
	}
	if !lotExists {
		return 0, apperrors.NewNotFoundError("lot " + lotID + " not found")
	}

	rows, err := tx.Query(ctx, `SELECT animal_id FROM animals WHERE current_lot_id = $1;`, lotID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to query members of lot "+lotID, err)
	}
	memberIDs, err := collectIDs(rows)
	if err != nil {
		return 0, err
	}

	members, err := lockLotMembers(ctx, tx, memberIDs)
	if err != nil {
		return 0, err
	}

	moved := 0
	for _, member := range members {
		if member.CurrentPastureID != nil && *member.CurrentPastureID == pastureID {
			continue
		}
		if err := moveMemberTx(ctx, tx, member, pastureID, entryDate, reason, actorID, now); err != nil {
			return 0, err
		}
		moved++
	}

	_, err = tx.Exec(ctx,
		`UPDATE lots SET current_pasture_id = $2, last_updated_at = $3, last_updated_by = $4 WHERE lot_id = $1;`,
		lotID, pastureID, now, actorID,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to update pasture for lot "+lotID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return moved, nil
}

// AssignAnimals places the given animals into the lot in one transaction.
// Members joining a lot that sits on a different pasture also get a ledger
// movement there.
func (r *PgxLotRepository) AssignAnimals(ctx context.Context, lotID string, animalIDs []string, entryDate time.Time, reason, actorID string, now time.Time) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	lot, err := scanLot(tx.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE lot_id = $1 FOR UPDATE;`, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("lot " + lotID + " not found")
		}
		return 0, apperrors.NewAppError(500, "failed to lock lot "+lotID, err)
	}

	members, err := lockLotMembers(ctx, tx, animalIDs)
	if err != nil {
		return 0, err
	}

	for _, member := range members {
		if lot.CurrentPastureID != nil && (member.CurrentPastureID == nil || *member.CurrentPastureID != *lot.CurrentPastureID) {
			if err := moveMemberTx(ctx, tx, member, *lot.CurrentPastureID, entryDate, reason, actorID, now); err != nil {
				return 0, err
			}
		}
		_, err := tx.Exec(ctx,
			`UPDATE animals SET current_lot_id = $2, last_updated_at = $3, last_updated_by = $4 WHERE animal_id = $1;`,
			member.AnimalID, lotID, now, actorID,
		)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to assign animal "+member.AnimalID+" to lot "+lotID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(members), nil
}

func collectIDs(rows pgx.Rows) ([]string, error) {
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ID row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ID rows", err)
	}
	return ids, nil
}
