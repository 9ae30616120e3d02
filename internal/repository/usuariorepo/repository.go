package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/database"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/query"
)

const selectUsuario = `
        SELECT id, username, nome, cpf, cep, endereco, senha, email, perfil
        FROM usuarios`

// UsuarioRepository implementa o acesso à tabela usuarios.
type UsuarioRepository struct {
	DB        database.DBTX
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUsuarioRepository cria uma nova instância do UsuarioRepository, injetando o DB.
func NewUsuarioRepository(db database.DBTX, dbTimeout time.Duration, logger logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUsuario(s scanner) (domain.Usuario, error) {
	var u domain.Usuario
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Nome,
		&u.CPF,
		&u.CEP,
		&u.Endereco,
		&u.SenhaHash,
		&u.Email,
		&u.Perfil,
	)
	return u, err
}

// Create insere um novo usuário e devolve o registro com o ID gerado.
// Violação de índice único vira Conflict.
func (r *UsuarioRepository) Create(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	r.logger.Debug("Iniciando Create de usuário no repositório.", map[string]interface{}{"username": usuario.Username})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `
        INSERT INTO usuarios (username, nome, cpf, cep, endereco, senha, email, perfil)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id`

	err := r.DB.QueryRowContext(ctxTimeout, stmt,
		usuario.Username,
		usuario.Nome,
		usuario.CPF,
		usuario.CEP,
		usuario.Endereco,
		usuario.SenhaHash,
		usuario.Email,
		usuario.Perfil,
	).Scan(&usuario.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			r.logger.Info("Cadastro rejeitado por índice único.", map[string]interface{}{"username": usuario.Username, "constraint": database.ConstraintName(err)})
			return domain.Usuario{}, apperror.NewConflictError("Usuário já existe com estes dados")
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao criar usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"id": usuario.ID, "username": usuario.Username})
	return usuario, nil
}

// FindByUsername busca um usuário pelo username (usado no login e na criação de apostas).
func (r *UsuarioRepository) FindByUsername(ctx context.Context, username string) (domain.Usuario, error) {
	r.logger.Debug("Iniciando FindByUsername no repositório.", map[string]interface{}{"username": username})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	usuario, err := scanUsuario(r.DB.QueryRowContext(ctxTimeout, selectUsuario+` WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("Usuário não encontrado por username.", map[string]interface{}{"username": username})
			return domain.Usuario{}, apperror.NewNotFoundError("Usuário não encontrado")
		}
		r.logger.Error("Falha ao buscar usuário por username no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao buscar usuário", err)
	}

	return usuario, nil
}

// FindByID busca um usuário pelo ID, já com as apostas associadas (data desc).
func (r *UsuarioRepository) FindByID(ctx context.Context, id int64) (domain.Usuario, error) {
	r.logger.Debug("Iniciando FindByID de usuário no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	usuario, err := scanUsuario(r.DB.QueryRowContext(ctxTimeout, selectUsuario+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("Usuário não encontrado por ID.", map[string]interface{}{"id": id})
			return domain.Usuario{}, apperror.NewNotFoundError("Usuário não encontrado")
		}
		r.logger.Error("Falha ao buscar usuário por ID no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao buscar usuário", err)
	}

	apostasQuery := `
        SELECT id, usuario_id, categoria, jogo, valor, resultado, data
        FROM apostas
        WHERE usuario_id = $1
        ORDER BY data DESC, id DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, apostasQuery, id)
	if err != nil {
		r.logger.Error("Falha ao buscar apostas do usuário.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao buscar apostas do usuário", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.Aposta
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.Categoria, &a.Jogo, &a.Valor, &a.Resultado, &a.Data); err != nil {
			r.logger.Error("Falha ao mapear aposta do usuário.", err)
			return domain.Usuario{}, apperror.NewDBError("Falha ao mapear apostas do DB", err)
		}
		a.Username = usuario.Username
		usuario.Apostas = append(usuario.Apostas, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das apostas do usuário.", err)
		return domain.Usuario{}, apperror.NewDBError("Erro após iteração de apostas", err)
	}

	return usuario, nil
}

// List devolve todos os usuários ordenados por nome.
func (r *UsuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	r.logger.Debug("Iniciando List de usuários no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	return r.queryUsuarios(ctxTimeout, selectUsuario+` ORDER BY nome ASC, id ASC`)
}

// Search aplica os filtros presentes em filter (substring em nome/username/email,
// igualdade em perfil), ordena por nome e pagina. filter já deve vir normalizado.
func (r *UsuarioRepository) Search(ctx context.Context, filter domain.UsuarioFilter) ([]domain.Usuario, error) {
	r.logger.Debug("Iniciando Search de usuários no repositório.", map[string]interface{}{"page": filter.Page, "page_size": filter.PageSize})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	sqlQuery, args := query.New(selectUsuario).
		Contains("nome", filter.Nome).
		Contains("username", filter.Username).
		Contains("email", filter.Email).
		Equals("perfil", filter.Perfil).
		OrderBy("nome", true).
		OrderBy("id", true).
		Paginate(filter.Page, filter.PageSize).
		Build()

	return r.queryUsuarios(ctxTimeout, sqlQuery, args...)
}

func (r *UsuarioRepository) queryUsuarios(ctx context.Context, sqlQuery string, args ...interface{}) ([]domain.Usuario, error) {
	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		r.logger.Error("Falha ao executar consulta de usuários.", err)
		return nil, apperror.NewDBError("Falha ao buscar usuários", err)
	}
	defer rows.Close()

	usuarios := make([]domain.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear usuário na iteração.", err)
			return nil, apperror.NewDBError("Falha ao mapear usuários do DB", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de usuários.", err)
		return nil, apperror.NewDBError("Erro após iteração de usuários", err)
	}

	r.logger.Info("Consulta de usuários concluída.", map[string]interface{}{"total": len(usuarios)})
	return usuarios, nil
}

// ExistsByIdentity indica, numa única consulta, se username, email ou cpf já estão em uso.
func (r *UsuarioRepository) ExistsByIdentity(ctx context.Context, username, email, cpf string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `SELECT EXISTS (SELECT 1 FROM usuarios WHERE username = $1 OR email = $2 OR cpf = $3)`

	var exists bool
	if err := r.DB.QueryRowContext(ctxTimeout, stmt, username, email, cpf).Scan(&exists); err != nil {
		r.logger.Error("Falha ao verificar unicidade do usuário.", err)
		return false, apperror.NewDBError("Falha ao verificar usuário existente", err)
	}
	return exists, nil
}

// ExistsUsernameForOther indica se o username pertence a outro usuário que não id.
func (r *UsuarioRepository) ExistsUsernameForOther(ctx context.Context, username string, id int64) (bool, error) {
	return r.existsForOther(ctx, "username", username, id)
}

// ExistsEmailForOther indica se o email pertence a outro usuário que não id.
func (r *UsuarioRepository) ExistsEmailForOther(ctx context.Context, email string, id int64) (bool, error) {
	return r.existsForOther(ctx, "email", email, id)
}

// column vem sempre de constantes deste pacote.
func (r *UsuarioRepository) existsForOther(ctx context.Context, column, value string, id int64) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM usuarios WHERE %s = $1 AND id <> $2)`, column)

	var exists bool
	if err := r.DB.QueryRowContext(ctxTimeout, stmt, value, id).Scan(&exists); err != nil {
		r.logger.Error("Falha ao verificar duplicidade de "+column+".", err)
		return false, apperror.NewDBError("Falha ao verificar duplicidade", err)
	}
	return exists, nil
}

// Update grava os dados cadastrais (a senha não é tocada).
func (r *UsuarioRepository) Update(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	r.logger.Debug("Iniciando Update de usuário no repositório.", map[string]interface{}{"id": usuario.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stmt := `
        UPDATE usuarios
        SET username = $1, nome = $2, cpf = $3, cep = $4, endereco = $5, email = $6, perfil = $7
        WHERE id = $8
        RETURNING id, username, nome, cpf, cep, endereco, senha, email, perfil`

	updated, err := scanUsuario(r.DB.QueryRowContext(ctxTimeout, stmt,
		usuario.Username,
		usuario.Nome,
		usuario.CPF,
		usuario.CEP,
		usuario.Endereco,
		usuario.Email,
		usuario.Perfil,
		usuario.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("Usuário não encontrado para atualização.", map[string]interface{}{"id": usuario.ID})
			return domain.Usuario{}, apperror.NewNotFoundError("Usuário não encontrado")
		}
		if database.IsUniqueViolation(err) {
			return domain.Usuario{}, apperror.NewConflictError(conflictMessage(database.ConstraintName(err)))
		}
		r.logger.Error("Falha ao atualizar usuário no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao atualizar usuário", err)
	}

	r.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

func conflictMessage(constraint string) string {
	switch constraint {
	case "ux_usuarios_username":
		return "Username já está em uso"
	case "ux_usuarios_email":
		return "Email já está em uso"
	case "ux_usuarios_cpf":
		return "CPF já está em uso"
	default:
		return "Usuário já existe com estes dados"
	}
}

// HasApostas indica se o usuário possui ao menos uma aposta.
func (r *UsuarioRepository) HasApostas(ctx context.Context, id int64) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT EXISTS (SELECT 1 FROM apostas WHERE usuario_id = $1)`, id).Scan(&exists)
	if err != nil {
		r.logger.Error("Falha ao verificar apostas do usuário.", err)
		return false, apperror.NewDBError("Falha ao verificar apostas do usuário", err)
	}
	return exists, nil
}

// Delete remove o usuário pelo ID.
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando Delete de usuário no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar usuário do DB.", err)
		return apperror.NewDBError("Falha ao deletar usuário", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Delete.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Usuário não encontrado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError("Usuário não encontrado")
	}

	r.logger.Info("Usuário deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
