package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"sogrinha/internal/model"
	"sogrinha/internal/repository"
)

const (
	partyColumns = `id, user_id, full_name, marital_status, profession, rg, issuing_body, cpf, cellphone, email,
		state, city, neighborhood, street, number, complement, cep, note, created_at`
	realEstateColumns = `id, user_id, municipal_registration, kind, status, has_inspection, has_proof_document,
		owner_id, lessee_id, state, city, neighborhood, street, number, complement, cep, note, created_at`
)

var contractColumns = []string{
	"id", "identifier", "user_id", "kind", "status", "start_date", "end_date",
	"payment_day", "payment_value", "duration", "owner_id", "lessee_id", "real_estate_id", "created_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// RecordsPostgres is a PostgreSQL implementation of repository.RecordRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RecordsPostgres struct {
	db *sql.DB
}

// NewRecordsPostgres creates a new RecordsPostgres repository.
func NewRecordsPostgres(db *sql.DB) *RecordsPostgres {
	return &RecordsPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordsPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *RecordsPostgres) CreateOwner(ctx context.Context, o *model.Owner) (*model.Owner, error) {
	p, err := r.insertParty(ctx, "owners", &o.Party)
	if err != nil {
		return nil, err
	}
	return &model.Owner{Party: *p}, nil
}

func (r *RecordsPostgres) FindOwner(ctx context.Context, id string) (*model.Owner, error) {
	p, err := r.findParty(ctx, "owners", id)
	if err != nil {
		return nil, err
	}
	return &model.Owner{Party: *p}, nil
}

func (r *RecordsPostgres) CreateLessee(ctx context.Context, l *model.Lessee) (*model.Lessee, error) {
	p, err := r.insertParty(ctx, "lessees", &l.Party)
	if err != nil {
		return nil, err
	}
	return &model.Lessee{Party: *p}, nil
}

func (r *RecordsPostgres) FindLessee(ctx context.Context, id string) (*model.Lessee, error) {
	p, err := r.findParty(ctx, "lessees", id)
	if err != nil {
		return nil, err
	}
	return &model.Lessee{Party: *p}, nil
}

// insertParty writes an owner or lessee row; both tables share the party columns.
func (r *RecordsPostgres) insertParty(ctx context.Context, table string, p *model.Party) (*model.Party, error) {
	q := `INSERT INTO ` + table + ` (` + partyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + partyColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID, p.UserID, p.FullName, p.MaritalStatus, p.Profession, p.RG, p.IssuingBody, p.CPF,
		p.Cellphone, p.Email, p.State, p.City, p.Neighborhood, p.Street, p.Number,
		p.Complement, p.CEP, p.Note, p.CreatedAt,
	)
	return scanParty(row)
}

func (r *RecordsPostgres) findParty(ctx context.Context, table, id string) (*model.Party, error) {
	q := `SELECT ` + partyColumns + ` FROM ` + table + ` WHERE id = $1`
	p, err := scanParty(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func scanParty(row rowScanner) (*model.Party, error) {
	var p model.Party
	if err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.MaritalStatus, &p.Profession, &p.RG, &p.IssuingBody, &p.CPF,
		&p.Cellphone, &p.Email, &p.State, &p.City, &p.Neighborhood, &p.Street, &p.Number,
		&p.Complement, &p.CEP, &p.Note, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RecordsPostgres) CreateRealEstate(ctx context.Context, re *model.RealEstate) (*model.RealEstate, error) {
	const q = `
		INSERT INTO real_estates (` + realEstateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + realEstateColumns
	row := r.db.QueryRowContext(ctx, q,
		re.ID, re.UserID, re.MunicipalRegistration, string(re.Kind), string(re.Status), re.HasInspection, re.HasProofDocument,
		re.OwnerID, nullString(re.LesseeID), re.State, re.City, re.Neighborhood, re.Street, re.Number,
		re.Complement, re.CEP, re.Note, re.CreatedAt,
	)
	return scanRealEstate(row)
}

func (r *RecordsPostgres) FindRealEstate(ctx context.Context, id string) (*model.RealEstate, error) {
	const q = `SELECT ` + realEstateColumns + ` FROM real_estates WHERE id = $1`
	re, err := scanRealEstate(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, notFound(err)
	}
	return re, nil
}

func scanRealEstate(row rowScanner) (*model.RealEstate, error) {
	var (
		re     model.RealEstate
		lessee sql.NullString
	)
	if err := row.Scan(
		&re.ID, &re.UserID, &re.MunicipalRegistration, &re.Kind, &re.Status, &re.HasInspection, &re.HasProofDocument,
		&re.OwnerID, &lessee, &re.State, &re.City, &re.Neighborhood, &re.Street, &re.Number,
		&re.Complement, &re.CEP, &re.Note, &re.CreatedAt,
	); err != nil {
		return nil, err
	}
	re.LesseeID = lessee.String
	return &re, nil
}

func (r *RecordsPostgres) CreateContract(ctx context.Context, c *model.Contract) (*model.Contract, error) {
	q, args, err := psql.Insert("contracts").
		Columns(contractColumns...).
		Values(
			c.ID, c.Identifier, c.UserID, string(c.Kind), string(c.Status), c.StartDate, c.EndDate,
			c.PaymentDay, c.PaymentValue, c.Duration, c.OwnerID, nullString(c.LesseeID), nullString(c.RealEstateID), c.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(contractColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert contract: %w", err)
	}
	return scanContract(r.db.QueryRowContext(ctx, q, args...))
}

func (r *RecordsPostgres) FindContract(ctx context.Context, id string) (*model.Contract, error) {
	q, args, err := psql.Select(contractColumns...).From("contracts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find contract: %w", err)
	}
	c, err := scanContract(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// ListContracts returns contracts using LIMIT/OFFSET pagination and a total count.
func (r *RecordsPostgres) ListContracts(ctx context.Context, f repository.ContractFilter, pq repository.PageQuery) (*repository.PageResult[model.Contract], error) {
	countQ, countArgs, err := applyFilter(psql.Select("COUNT(*)").From("contracts"), f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count contracts: %w", err)
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, err
	}

	listQ, listArgs, err := applyFilter(psql.Select(contractColumns...).From("contracts"), f).
		OrderBy("start_date DESC", "id DESC").
		Limit(uint64(pq.Limit)).
		Offset(uint64(pq.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contracts: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, listQ, listArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Contract]{
		Items: items,
		Total: total,
	}, nil
}

func (r *RecordsPostgres) DeleteContract(ctx context.Context, id string) error {
	const q = `DELETE FROM contracts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// applyFilter adds one predicate per set field, in a fixed order.
func applyFilter(b sq.SelectBuilder, f repository.ContractFilter) sq.SelectBuilder {
	if f.UserID != "" {
		b = b.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.OwnerID != "" {
		b = b.Where(sq.Eq{"owner_id": f.OwnerID})
	}
	if f.LesseeID != "" {
		b = b.Where(sq.Eq{"lessee_id": f.LesseeID})
	}
	if f.Kind != "" {
		b = b.Where(sq.Eq{"kind": string(f.Kind)})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": string(f.Status)})
	}
	if !f.EndsAfter.IsZero() {
		b = b.Where(sq.GtOrEq{"end_date": f.EndsAfter})
	}
	return b
}

func scanContract(row rowScanner) (*model.Contract, error) {
	var (
		c                  model.Contract
		lessee, realEstate sql.NullString
	)
	if err := row.Scan(
		&c.ID, &c.Identifier, &c.UserID, &c.Kind, &c.Status, &c.StartDate, &c.EndDate,
		&c.PaymentDay, &c.PaymentValue, &c.Duration, &c.OwnerID, &lessee, &realEstate, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.LesseeID = lessee.String
	c.RealEstateID = realEstate.String
	return &c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
