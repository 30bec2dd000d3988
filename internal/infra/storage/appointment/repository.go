package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/DennizCann/RandevuApp-sub000/internal/domain"
	"github.com/DennizCann/RandevuApp-sub000/pkg/dbmetrics"
	"github.com/DennizCann/RandevuApp-sub000/pkg/psqlbuilder"
)

const (
	tableName = "appointments"

	// Код ошибки Postgres unique_violation
	uniqueViolationCode = "23505"
)

var columns = []string{
	"id",
	"business_id",
	"customer_id",
	"appointment_date",
	"start_time",
	"status",
	"note",
	"idempotency_key",
	"created_at",
	"updated_at",
}

// Repository хранилище записей в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertIfAbsent атомарно занимает слот (business_id, appointment_date, start_time).
// Проверка занятости и вставка выполняются одним запросом: частичный уникальный индекс
// по не отмененным записям + ON CONFLICT DO NOTHING. Отдельного SELECT перед вставкой нет.
//
// Если вставка не прошла и у записи есть ключ идемпотентности, ищем ранее созданную
// запись этого же клиента с этим ключом: повтор того же запроса возвращает исходную запись.
func (r *Repository) InsertIfAbsent(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.InsertIfAbsent")

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"business_id",
			"customer_id",
			"appointment_date",
			"start_time",
			"status",
			"note",
			"idempotency_key",
		).
		Values(
			id,
			appt.BusinessID,
			nullableString(appt.CustomerID),
			appt.AppointmentDate.Format(domain.DateFormat),
			appt.StartTime,
			appt.Status,
			appt.Note,
			appt.IdempotencyKey,
		).
		Suffix("ON CONFLICT DO NOTHING RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	switch {
	case err == nil:
		created := *appt
		created.ID = id
		created.CreatedAt = createdAt
		created.UpdatedAt = updatedAt
		return &created, nil
	case errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err):
		return r.resolveConflict(ctx, appt)
	default:
		return nil, fmt.Errorf("%w: InsertIfAbsent - execute insert: %v", ErrExecQuery, err)
	}
}

// resolveConflict отличает повтор запроса с тем же ключом идемпотентности от настоящего конфликта
func (r *Repository) resolveConflict(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if appt.IdempotencyKey == nil {
		return nil, ErrSlotConflict
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"business_id":     appt.BusinessID,
			"customer_id":     nullableString(appt.CustomerID),
			"idempotency_key": *appt.IdempotencyKey,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: InsertIfAbsent - build idempotency query: %v", ErrBuildQuery, err)
	}

	existing, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	// Ключ переиспользован для другого слота или вида записи: для вызывающего это занятый слот
	if !existing.IsReplayOf(appt) {
		return nil, ErrSlotConflict
	}

	return existing, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.GetByID")

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return scanAppointment(r.db.QueryRowContext(ctx, query, args...))
}

// ListByBusinessAndDate возвращает все записи бизнеса на дату, отсортированные по времени
func (r *Repository) ListByBusinessAndDate(ctx context.Context, businessID string, date time.Time) ([]*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.ListByBusinessAndDate")

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{
			"business_id":      businessID,
			"appointment_date": date.Format(domain.DateFormat),
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinessAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "ListByBusinessAndDate", query, args)
}

// ListByCustomer возвращает историю записей клиента, новые первыми
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.ListByCustomer")

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("appointment_date DESC", "start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "ListByCustomer", query, args)
}

// UpdateStatus меняет статус только если запись все еще в статусе from (compare-and-set).
// Отсутствующая запись: ErrAppointmentNotFound, другой текущий статус: ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.UpdateStatus")

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrAppointmentNotFound) {
		return nil, err
	}

	// Ни одна строка не обновилась: записи нет или статус уже другой
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrStatusConflict
}

// Delete удаляет запись (жесткое удаление). Операция идемпотентна: отсутствующая запись
// не ошибка, возвращается nil, nil. Если переданы expected, запись удаляется только
// в одном из этих статусов, иначе ErrStatusConflict
func (r *Repository) Delete(ctx context.Context, id string, expected ...domain.AppointmentStatus) (*domain.Appointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "appointment.Delete")

	where := squirrel.Eq{"id": id}
	if len(expected) > 0 {
		where["status"] = expected
	}

	query, args, err := psqlbuilder.Delete(tableName).
		Where(where).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	deleted, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return deleted, nil
	}
	if !errors.Is(err, ErrAppointmentNotFound) {
		return nil, err
	}
	if len(expected) == 0 {
		return nil, nil
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		if errors.Is(getErr, ErrAppointmentNotFound) {
			return nil, nil
		}
		return nil, getErr
	}
	return nil, ErrStatusConflict
}

func (r *Repository) queryList(ctx context.Context, op, query string, args []interface{}) ([]*domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrExecQuery, op, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt           domain.Appointment
		customerID     sql.NullString
		note           sql.NullString
		idempotencyKey sql.NullString
	)

	err := row.Scan(
		&appt.ID,
		&appt.BusinessID,
		&customerID,
		&appt.AppointmentDate,
		&appt.StartTime,
		&appt.Status,
		&note,
		&idempotencyKey,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	appt.CustomerID = customerID.String
	appt.AppointmentDate = domain.DateOnly(appt.AppointmentDate)
	if note.Valid {
		appt.Note = &note.String
	}
	if idempotencyKey.Valid {
		appt.IdempotencyKey = &idempotencyKey.String
	}

	return &appt, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
