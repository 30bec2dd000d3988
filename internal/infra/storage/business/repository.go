package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/dbmetrics"
	"github.com/DennizCann/RandevuApp-sub000/pkg/psqlbuilder"
)

const tableName = "businesses"

var columns = []string{
	"id",
	"owner_id",
	"name",
	"working_days",
	"opening_time",
	"closing_time",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository справочник бизнесов в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый бизнес. Пустой ID генерируется
func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx = dbmetrics.WithOperation(ctx, "business.Create")

	created := *b
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"owner_id",
			"name",
			"working_days",
			"opening_time",
			"closing_time",
			"slot_duration_minutes",
		).
		Values(
			created.ID,
			created.OwnerID,
			created.Name,
			pq.Array(weekdaysToInts(created.WorkingDays)),
			created.OpeningTime,
			created.ClosingTime,
			created.SlotDurationMinutes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrBusinessExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	ctx = dbmetrics.WithOperation(ctx, "business.GetByID")

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		b    domain.Business
		days []int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		pq.Array(&days),
		&b.OpeningTime,
		&b.ClosingTime,
		&b.SlotDurationMinutes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	b.WorkingDays = intsToWeekdays(days)
	return &b, nil
}

// UpdateWorkingHours перезаписывает рабочие дни и часы бизнеса
func (r *Repository) UpdateWorkingHours(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx = dbmetrics.WithOperation(ctx, "business.UpdateWorkingHours")

	query, args, err := psqlbuilder.Update(tableName).
		Set("working_days", pq.Array(weekdaysToInts(b.WorkingDays))).
		Set("opening_time", b.OpeningTime).
		Set("closing_time", b.ClosingTime).
		Set("slot_duration_minutes", b.SlotDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: UpdateWorkingHours - execute update: %v", ErrExecQuery, err)
	}

	updated := *b
	updated.UpdatedAt = updatedAt
	return &updated, nil
}

func weekdaysToInts(days []time.Weekday) []int64 {
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

func intsToWeekdays(days []int64) []time.Weekday {
	out := make([]time.Weekday, len(days))
	for i, d := range days {
		out[i] = time.Weekday(d)
	}
	return out
}
