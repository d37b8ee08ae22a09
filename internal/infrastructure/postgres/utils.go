package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bigdata/clientes-api/internal/domain"
)

// duplicado traduz violação de constraint único (23505) para o erro de domínio
// correspondente. Devolve nil quando o erro não é de duplicidade.
func duplicado(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "clientes_cpf_key":
		return domain.ErrCPFJaCadastrado
	case "clientes_email_key":
		return domain.ErrEmailJaCadastrado
	}
	return domain.ErrDuplicado
}
