package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/utils/mapping"
)

type PgxAnimalRepository struct {
	BaseRepository
}

func newPgxAnimalRepository(pool DBPool) portsrepo.AnimalRepositoryFacade {
	return &PgxAnimalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AnimalRepositoryFacade = (*PgxAnimalRepository)(nil)

const animalColumns = `animal_id, tag, name, birth_date, sex, life_status, mother_id, father_id,
	       notes, current_pasture_id, current_lot_id, created_at, created_by, last_updated_at, last_updated_by`

// animalColumnsPrefixed qualifies the animal columns for joined queries.
var animalColumnsPrefixed = "a." + strings.ReplaceAll(animalColumns, ", ", ", a.")

func scanAnimal(row pgx.Row) (*models.Animal, error) {
	var a models.Animal
	err := row.Scan(
		&a.AnimalID,
		&a.Tag,
		&a.Name,
		&a.BirthDate,
		&a.Sex,
		&a.LifeStatus,
		&a.MotherID,
		&a.FatherID,
		&a.Notes,
		&a.CurrentPastureID,
		&a.CurrentLotID,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SaveAnimal persists a new animal.
func (r *PgxAnimalRepository) SaveAnimal(ctx context.Context, animal domain.Animal) error {
	m := mapping.ToModelAnimal(animal)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO animals (
			animal_id, tag, name, birth_date, sex, life_status, mother_id, father_id,
			notes, current_pasture_id, current_lot_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`,
		m.AnimalID, m.Tag, m.Name, m.BirthDate, m.Sex, m.LifeStatus, m.MotherID, m.FatherID,
		m.Notes, m.CurrentPastureID, m.CurrentLotID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: animal tag %s already exists", apperrors.ErrDuplicate, m.Tag)
		}
		return apperrors.NewAppError(500, "failed to save animal "+m.AnimalID, err)
	}
	return nil
}

// UpdateAnimal updates an animal's descriptive fields. The materialized
// pasture and lot pointers are owned by the movement and lot repositories and
// are not touched here.
func (r *PgxAnimalRepository) UpdateAnimal(ctx context.Context, animal domain.Animal) error {
	m := mapping.ToModelAnimal(animal)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE animals
		SET tag = $2, name = $3, birth_date = $4, sex = $5, mother_id = $6, father_id = $7,
		    notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE animal_id = $1;
	`,
		m.AnimalID, m.Tag, m.Name, m.BirthDate, m.Sex, m.MotherID, m.FatherID,
		m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: animal tag %s already exists", apperrors.ErrDuplicate, m.Tag)
		}
		return apperrors.NewAppError(500, "failed to update animal "+m.AnimalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("animal " + m.AnimalID + " not found for update")
	}
	return nil
}

// FindAnimalByID retrieves an animal by its ID.
func (r *PgxAnimalRepository) FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE animal_id = $1;`
	a, err := scanAnimal(r.Pool.QueryRow(ctx, query, animalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find animal by ID "+animalID, err)
	}
	result := mapping.ToDomainAnimal(*a)
	return &result, nil
}

// FindAnimalByTag retrieves an animal by its ear tag.
func (r *PgxAnimalRepository) FindAnimalByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE tag = $1;`
	a, err := scanAnimal(r.Pool.QueryRow(ctx, query, tag))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find animal by tag "+tag, err)
	}
	result := mapping.ToDomainAnimal(*a)
	return &result, nil
}

// FindAnimalsByIDs retrieves several animals keyed by ID.
func (r *PgxAnimalRepository) FindAnimalsByIDs(ctx context.Context, animalIDs []string) (map[string]domain.Animal, error) {
	result := make(map[string]domain.Animal, len(animalIDs))
	if len(animalIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + animalColumns + ` FROM animals WHERE animal_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, animalIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query animals by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan animal row", err)
		}
		result[a.AnimalID] = mapping.ToDomainAnimal(*a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating animal rows", err)
	}

	return result, nil
}

// ListAnimals lists animals ordered by tag with pagination.
func (r *PgxAnimalRepository) ListAnimals(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	if activeOnly {
		query += ` WHERE life_status = 'ALIVE'`
	}
	query += ` ORDER BY tag LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query animals", err)
	}
	defer rows.Close()

	animals := []models.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan animal row", err)
		}
		animals = append(animals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating animal rows", err)
	}

	return mapping.ToDomainAnimalSlice(animals), nil
}

// FindDispositionByAnimal retrieves the animal's disposition record.
func (r *PgxAnimalRepository) FindDispositionByAnimal(ctx context.Context, animalID string) (*domain.Disposition, error) {
	var m models.Disposition
	err := r.Pool.QueryRow(ctx, `
		SELECT disposition_id, animal_id, kind, disposition_date, weight_kg, amount,
		       counterparty, cause, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM dispositions WHERE animal_id = $1;
	`, animalID).Scan(
		&m.DispositionID, &m.AnimalID, &m.Kind, &m.DispositionDate, &m.WeightKg, &m.Amount,
		&m.Counterparty, &m.Cause, &m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find disposition for animal "+animalID, err)
	}
	result := mapping.ToDomainDisposition(m)
	return &result, nil
}

// SaveDisposition records the animal's exit from the herd atomically: insert
// the disposition, flip the animal to the matching terminal life status and
// close the open movement at the disposition date.
func (r *PgxAnimalRepository) SaveDisposition(ctx context.Context, disposition domain.Disposition) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	animal, err := lockAnimalRow(ctx, tx, disposition.AnimalID)
	if err != nil {
		return err
	}
	if animal.LifeStatus != models.Alive {
		return fmt.Errorf("%w: animal %s is already %s", apperrors.ErrValidation, animal.AnimalID, animal.LifeStatus)
	}

	m := mapping.ToModelDisposition(disposition)
	_, err = tx.Exec(ctx, `
		INSERT INTO dispositions (
			disposition_id, animal_id, kind, disposition_date, weight_kg, amount,
			counterparty, cause, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		m.DispositionID, m.AnimalID, m.Kind, m.DispositionDate, m.WeightKg, m.Amount,
		m.Counterparty, m.Cause, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: animal %s already has a disposition", apperrors.ErrDuplicate, m.AnimalID)
		}
		return apperrors.NewAppError(500, "failed to save disposition for animal "+m.AnimalID, err)
	}

	terminal := disposition.Kind.LifeStatus()
	_, err = tx.Exec(ctx,
		`UPDATE animals SET life_status = $2, current_pasture_id = NULL, last_updated_at = $3, last_updated_by = $4 WHERE animal_id = $1;`,
		m.AnimalID, string(terminal), m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update life status for animal "+m.AnimalID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE movements SET exit_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE animal_id = $1 AND exit_date IS NULL;
	`,
		m.AnimalID, m.DispositionDate, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close open movement for animal "+m.AnimalID, err)
	}

	return r.Commit(ctx, tx)
}

// PgxWeighingRepository persists weight measurements.
type PgxWeighingRepository struct {
	BaseRepository
}

func newPgxWeighingRepository(pool DBPool) portsrepo.WeighingRepositoryFacade {
	return &PgxWeighingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WeighingRepositoryFacade = (*PgxWeighingRepository)(nil)

// SaveWeighing persists a weight measurement.
func (r *PgxWeighingRepository) SaveWeighing(ctx context.Context, weighing domain.Weighing) error {
	m := mapping.ToModelWeighing(weighing)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO weighings (
			weighing_id, animal_id, weigh_date, weight_kg, event,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.WeighingID, m.AnimalID, m.WeighDate, m.WeightKg, m.Event,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save weighing for animal "+m.AnimalID, err)
	}
	return nil
}

// ListWeighingsByAnimal retrieves weighings ordered by date ascending.
func (r *PgxWeighingRepository) ListWeighingsByAnimal(ctx context.Context, animalID string) ([]domain.Weighing, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT weighing_id, animal_id, weigh_date, weight_kg, event,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM weighings WHERE animal_id = $1 ORDER BY weigh_date ASC, created_at ASC;
	`, animalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query weighings for animal "+animalID, err)
	}
	defer rows.Close()

	weighings := []models.Weighing{}
	for rows.Next() {
		var m models.Weighing
		err := rows.Scan(
			&m.WeighingID, &m.AnimalID, &m.WeighDate, &m.WeightKg, &m.Event,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan weighing row", err)
		}
		weighings = append(weighings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating weighing rows", err)
	}

	return mapping.ToDomainWeighingSlice(weighings), nil
}

// PgxTreatmentRepository persists health treatments.
type PgxTreatmentRepository struct {
	BaseRepository
}

func newPgxTreatmentRepository(pool DBPool) portsrepo.TreatmentRepositoryFacade {
	return &PgxTreatmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TreatmentRepositoryFacade = (*PgxTreatmentRepository)(nil)

const treatmentColumns = `treatment_id, animal_id, treat_date, kind, product, dose, notes, next_due_date,
	       created_at, created_by, last_updated_at, last_updated_by`

func scanTreatment(row pgx.Row) (*models.Treatment, error) {
	var m models.Treatment
	err := row.Scan(
		&m.TreatmentID,
		&m.AnimalID,
		&m.TreatDate,
		&m.Kind,
		&m.Product,
		&m.Dose,
		&m.Notes,
		&m.NextDueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTreatment persists a health treatment.
func (r *PgxTreatmentRepository) SaveTreatment(ctx context.Context, treatment domain.Treatment) error {
	m := mapping.ToModelTreatment(treatment)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO treatments (
			treatment_id, animal_id, treat_date, kind, product, dose, notes, next_due_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		m.TreatmentID, m.AnimalID, m.TreatDate, m.Kind, m.Product, m.Dose, m.Notes, m.NextDueDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save treatment for animal "+m.AnimalID, err)
	}
	return nil
}

// ListTreatmentsByAnimal retrieves treatments ordered by date ascending.
func (r *PgxTreatmentRepository) ListTreatmentsByAnimal(ctx context.Context, animalID string) ([]domain.Treatment, error) {
	query := `SELECT ` + treatmentColumns + ` FROM treatments
		WHERE animal_id = $1 ORDER BY treat_date ASC, created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, animalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query treatments for animal "+animalID, err)
	}
	return collectTreatments(rows)
}

// ListTreatmentsDueBy retrieves treatments with a follow-up date on or before
// dueBy, soonest first. Only living animals are included.
func (r *PgxTreatmentRepository) ListTreatmentsDueBy(ctx context.Context, dueBy time.Time) ([]domain.Treatment, error) {
	query := `SELECT t.treatment_id, t.animal_id, t.treat_date, t.kind, t.product, t.dose, t.notes, t.next_due_date,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM treatments t
		JOIN animals a ON a.animal_id = t.animal_id
		WHERE t.next_due_date IS NOT NULL AND t.next_due_date <= $1 AND a.life_status = 'ALIVE'
		ORDER BY t.next_due_date ASC;`
	rows, err := r.Pool.Query(ctx, query, dueBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due treatments", err)
	}
	return collectTreatments(rows)
}

func collectTreatments(rows pgx.Rows) ([]domain.Treatment, error) {
	defer rows.Close()
	treatments := []models.Treatment{}
	for rows.Next() {
		m, err := scanTreatment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan treatment row", err)
		}
		treatments = append(treatments, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating treatment rows", err)
	}
	return mapping.ToDomainTreatmentSlice(treatments), nil
}
