package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-ads-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-ads-api/internal/domain"
)

const companyAccountsTable = "company_accounts ca"

type CompanyRepository interface {
	GetAccountByCompanyID(ctx context.Context, companyID string) (*domain.CompanyAccount, error)
	ListLinkedCompanies(ctx context.Context) ([]*domain.CompanyAccount, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

// GetAccountByCompanyID busca o vínculo conta/site/usuário da empresa.
// Retorna nil sem erro quando a empresa não tem conta vinculada.
func (r *companyRepository) GetAccountByCompanyID(ctx context.Context, companyID string) (*domain.CompanyAccount, error) {
	query, args, err := squirrel.
		Select("ca.company_id, ca.account_id, ca.site_id, ca.user_id, ca.status").
		From(companyAccountsTable).
		Where(squirrel.Eq{"ca.company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	account, err := r.scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta da empresa: %w", err)
	}

	return account, nil
}

// ListLinkedCompanies lista as empresas com conta ativa no marketplace,
// candidatas à sincronização em lote
func (r *companyRepository) ListLinkedCompanies(ctx context.Context) ([]*domain.CompanyAccount, error) {
	query, args, err := squirrel.
		Select("ca.company_id, ca.account_id, ca.site_id, ca.user_id, ca.status").
		From(companyAccountsTable).
		Where(squirrel.Eq{"ca.status": domain.CompanyAccountStatusActive}).
		OrderBy("ca.company_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.CompanyAccount, 0)
	for rows.Next() {
		account := &domain.CompanyAccount{}
		if err := rows.Scan(
			&account.CompanyID,
			&account.AccountID,
			&account.SiteID,
			&account.UserID,
			&account.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta da empresa: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *companyRepository) scanAccount(row *sql.Row) (*domain.CompanyAccount, error) {
	account := &domain.CompanyAccount{}

	err := row.Scan(
		&account.CompanyID,
		&account.AccountID,
		&account.SiteID,
		&account.UserID,
		&account.Status,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
