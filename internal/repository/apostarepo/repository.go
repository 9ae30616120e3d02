package apostarepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/database"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/query"
)

// Todas as leituras fazem JOIN com usuarios para devolver o username do dono.
const selectAposta = `
        SELECT a.id, a.usuario_id, a.categoria, a.jogo, a.valor, a.resultado, a.data, u.username
        FROM apostas a
        JOIN usuarios u ON u.id = a.usuario_id`

const invalidValorMessage = "O valor deve estar entre 0,01 e 9999999999999999,99"

// sortColumns são os campos aceitos em orderBy na pesquisa.
var sortColumns = map[string]string{
	"data":      "a.data",
	"valor":     "a.valor",
	"categoria": "a.categoria",
	"jogo":      "a.jogo",
	"resultado": "a.resultado",
	"id":        "a.id",
}

// ApostaRepository implementa as operações de persistência de apostas.
type ApostaRepository struct {
	DB        database.DBTX
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewApostaRepository cria e retorna uma nova instância do repositório de apostas.
func NewApostaRepository(db database.DBTX, dbTimeout time.Duration, logger logger.Logger) *ApostaRepository {
	return &ApostaRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAposta(s scanner) (domain.Aposta, error) {
	var a domain.Aposta
	err := s.Scan(&a.ID, &a.UsuarioID, &a.Categoria, &a.Jogo, &a.Valor, &a.Resultado, &a.Data, &a.Username)
	return a, err
}

// Create insere a aposta e devolve o registro com o ID gerado. Username não é
// gravado; quem chama já o conhece.
func (r *ApostaRepository) Create(ctx context.Context, aposta domain.Aposta) (domain.Aposta, error) {
	r.logger.Debug("Iniciando Create de aposta no repositório.", map[string]interface{}{"usuario_id": aposta.UsuarioID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `
        INSERT INTO apostas (usuario_id, categoria, jogo, valor, resultado, data)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	err := r.DB.QueryRowContext(ctxTimeout, stmt,
		aposta.UsuarioID, aposta.Categoria, aposta.Jogo, aposta.Valor, aposta.Resultado, aposta.Data,
	).Scan(&aposta.ID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.Aposta{}, apperror.NewInvalidOperationError("Usuário não encontrado")
		}
		if database.IsInvalidValue(err) {
			r.logger.Info("Aposta recusada pelo banco.", map[string]interface{}{"valor": aposta.Valor, "error": err.Error()})
			return domain.Aposta{}, apperror.NewValidationError(invalidValorMessage)
		}
		r.logger.Error("Falha ao inserir aposta no DB.", err)
		return domain.Aposta{}, apperror.NewDBError("Falha ao criar aposta", err)
	}

	r.logger.Info("Aposta criada com sucesso.", map[string]interface{}{"id": aposta.ID, "usuario_id": aposta.UsuarioID})
	return aposta, nil
}

// FindByIDAndUsername busca a aposta apenas se ela pertencer a username.
// Aposta de outro usuário é indistinguível de aposta inexistente.
func (r *ApostaRepository) FindByIDAndUsername(ctx context.Context, id int64, username string) (domain.Aposta, error) {
	r.logger.Debug("Iniciando FindByIDAndUsername no repositório.", map[string]interface{}{"id": id, "username": username})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	aposta, err := scanAposta(r.DB.QueryRowContext(ctxTimeout, selectAposta+` WHERE a.id = $1 AND u.username = $2`, id, username))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Aposta não encontrada para o usuário.", map[string]interface{}{"id": id, "username": username})
		return domain.Aposta{}, apperror.NewNotFoundError("Aposta não encontrada")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar aposta no DB.", err)
		return domain.Aposta{}, apperror.NewDBError("Falha ao buscar aposta", err)
	}

	return aposta, nil
}

// Update regrava categoria, jogo, valor, resultado e data. ID e dono não mudam; o
// WHERE inclui usuario_id.
func (r *ApostaRepository) Update(ctx context.Context, aposta domain.Aposta) (domain.Aposta, error) {
	r.logger.Debug("Iniciando Update de aposta no repositório.", map[string]interface{}{"id": aposta.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `
        UPDATE apostas
        SET categoria = $1, jogo = $2, valor = $3, resultado = $4, data = $5
        WHERE id = $6 AND usuario_id = $7`

	result, err := r.DB.ExecContext(ctxTimeout, stmt,
		aposta.Categoria, aposta.Jogo, aposta.Valor, aposta.Resultado, aposta.Data, aposta.ID, aposta.UsuarioID,
	)
	if err != nil {
		if database.IsInvalidValue(err) {
			r.logger.Info("Aposta recusada pelo banco.", map[string]interface{}{"id": aposta.ID, "valor": aposta.Valor, "error": err.Error()})
			return domain.Aposta{}, apperror.NewValidationError(invalidValorMessage)
		}
		r.logger.Error("Falha ao atualizar aposta no DB.", err)
		return domain.Aposta{}, apperror.NewDBError("Falha ao atualizar aposta", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Update.", err)
		return domain.Aposta{}, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return domain.Aposta{}, apperror.NewNotFoundError("Aposta não encontrada")
	}

	r.logger.Info("Aposta atualizada com sucesso.", map[string]interface{}{"id": aposta.ID})
	return aposta, nil
}

// DeleteByIDAndUsername remove a aposta se ela pertencer a username.
func (r *ApostaRepository) DeleteByIDAndUsername(ctx context.Context, id int64, username string) error {
	r.logger.Debug("Iniciando Delete de aposta no repositório.", map[string]interface{}{"id": id, "username": username})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `
        DELETE FROM apostas a
        USING usuarios u
        WHERE a.usuario_id = u.id AND a.id = $1 AND u.username = $2`

	result, err := r.DB.ExecContext(ctxTimeout, stmt, id, username)
	if err != nil {
		r.logger.Error("Falha ao deletar aposta do DB.", err)
		return apperror.NewDBError("Falha ao deletar aposta", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Delete.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Aposta não encontrada para exclusão.", map[string]interface{}{"id": id, "username": username})
		return apperror.NewNotFoundError("Aposta não encontrada")
	}

	r.logger.Info("Aposta deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// ListByUsername lista as apostas do usuário, mais recentes primeiro.
func (r *ApostaRepository) ListByUsername(ctx context.Context, username string) ([]domain.Aposta, error) {
	sqlQuery, args := query.New(selectAposta).
		Where("u.username = ?", username).
		OrderBy("a.data", false).
		OrderBy("a.id", false).
		Build()
	return r.queryApostas(ctx, sqlQuery, args...)
}

// ListByPeriodo lista apostas de todos os usuários com data em [inicio, fim].
func (r *ApostaRepository) ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]domain.Aposta, error) {
	sqlQuery, args := query.New(selectAposta).
		Since("a.data", &inicio).
		Until("a.data", &fim).
		OrderBy("a.data", false).
		OrderBy("a.id", false).
		Build()
	return r.queryApostas(ctx, sqlQuery, args...)
}

// ListByUsernameEPeriodo combina os dois filtros anteriores.
func (r *ApostaRepository) ListByUsernameEPeriodo(ctx context.Context, username string, inicio, fim time.Time) ([]domain.Aposta, error) {
	sqlQuery, args := query.New(selectAposta).
		Where("u.username = ?", username).
		Since("a.data", &inicio).
		Until("a.data", &fim).
		OrderBy("a.data", false).
		OrderBy("a.id", false).
		Build()
	return r.queryApostas(ctx, sqlQuery, args...)
}

// Search aplica os filtros presentes, ordena pelo campo da lista branca (data por
// padrão, desempate por id) e pagina. filter já deve vir normalizado.
func (r *ApostaRepository) Search(ctx context.Context, filter domain.ApostaFilter) ([]domain.Aposta, error) {
	r.logger.Debug("Iniciando Search de apostas no repositório.", map[string]interface{}{
		"order_by": filter.OrderBy, "ascending": filter.Ascending, "page": filter.Page, "page_size": filter.PageSize,
	})

	column := query.SortColumn(filter.OrderBy, sortColumns, "a.data")

	b := query.New(selectAposta).
		Contains("a.categoria", filter.Categoria).
		Contains("a.jogo", filter.Jogo).
		Equals("a.resultado", filter.Resultado).
		Since("a.data", filter.DataInicio).
		Until("a.data", filter.DataFim).
		AtLeast("a.valor", filter.ValorMinimo).
		AtMost("a.valor", filter.ValorMaximo).
		OrderBy(column, filter.Ascending)
	if column != "a.id" {
		b.OrderBy("a.id", filter.Ascending)
	}

	sqlQuery, args := b.Paginate(filter.Page, filter.PageSize).Build()
	return r.queryApostas(ctx, sqlQuery, args...)
}

func (r *ApostaRepository) queryApostas(ctx context.Context, sqlQuery string, args ...interface{}) ([]domain.Aposta, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, sqlQuery, args...)
	if err != nil {
		r.logger.Error("Falha ao executar consulta de apostas.", err)
		return nil, apperror.NewDBError("Falha ao buscar apostas", err)
	}
	defer rows.Close()

	apostas := make([]domain.Aposta, 0)
	for rows.Next() {
		a, err := scanAposta(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear aposta na iteração.", err)
			return nil, apperror.NewDBError("Falha ao mapear apostas do DB", err)
		}
		apostas = append(apostas, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de apostas.", err)
		return nil, apperror.NewDBError("Erro após iteração de apostas", err)
	}

	r.logger.Info("Consulta de apostas concluída.", map[string]interface{}{"total": len(apostas)})
	return apostas, nil
}
