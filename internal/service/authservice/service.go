package authservice

import (
	"context"
	"errors"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/token"
)

// UsuarioRepository é o subconjunto do repositório de usuários usado na autenticação.
type UsuarioRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Usuario, error)
	ExistsByIdentity(ctx context.Context, username, email, cpf string) (bool, error)
	Create(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error)
}

// PasswordHasher gera e confere hashes de senha.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hashed, plain string) bool
}

// TokenIssuer emite o JWT de acesso.
type TokenIssuer interface {
	GenerateToken(subject token.Subject) (string, error)
}

// Validator valida os payloads de entrada.
type Validator interface {
	Struct(s interface{}) error
}

// Service implementa login e cadastro.
type Service struct {
	repo      UsuarioRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	validator Validator
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de autenticação.
func NewService(repo UsuarioRepository, hasher PasswordHasher, tokens TokenIssuer, validator Validator, logger logger.Logger) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

// Login confere as credenciais e emite o token. Usuário inexistente e senha errada
// produzem o mesmo erro.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.JwtResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.JwtResponse{}, err
	}

	usuario, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.logger.Info("Login recusado: usuário inexistente.", map[string]interface{}{"username": req.Username})
			return domain.JwtResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas")
		}
		return domain.JwtResponse{}, err
	}

	if !s.hasher.Verify(usuario.SenhaHash, req.Senha) {
		s.logger.Info("Login recusado: senha incorreta.", map[string]interface{}{"username": req.Username})
		return domain.JwtResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas")
	}

	tokenString, err := s.tokens.GenerateToken(token.Subject{
		Username: usuario.Username,
		Nome:     usuario.Nome,
		Role:     string(usuario.Perfil),
	})
	if err != nil {
		return domain.JwtResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado.", map[string]interface{}{"username": usuario.Username})
	return domain.JwtResponse{
		Token:    tokenString,
		Username: usuario.Username,
		Nome:     usuario.Nome,
		Perfil:   usuario.Perfil,
	}, nil
}

// Register cria uma conta com perfil USER. Username, email e CPF precisam ser
// inéditos; a senha é gravada apenas como hash.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.Usuario, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Usuario{}, err
	}

	exists, err := s.repo.ExistsByIdentity(ctx, req.Username, req.Email, req.CPF)
	if err != nil {
		return domain.Usuario{}, err
	}
	if exists {
		s.logger.Info("Cadastro recusado: dados já utilizados.", map[string]interface{}{"username": req.Username})
		return domain.Usuario{}, apperror.NewConflictError("Usuário já existe com estes dados")
	}

	hashed, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return domain.Usuario{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// Uma corrida entre a verificação e o INSERT chega aqui como Conflict (índice único).
	usuario, err := s.repo.Create(ctx, domain.Usuario{
		Username:  req.Username,
		Nome:      req.Nome,
		CPF:       req.CPF,
		CEP:       req.CEP,
		Endereco:  req.Endereco,
		SenhaHash: hashed,
		Email:     req.Email,
		Perfil:    domain.PerfilUser,
	})
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"id": usuario.ID, "username": usuario.Username})
	return usuario, nil
}
