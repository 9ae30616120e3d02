package usuarioservice

import (
	"context"
	"errors"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/query"
)

// UsuarioRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência.
type UsuarioRepository interface {
	List(ctx context.Context) ([]domain.Usuario, error)
	FindByID(ctx context.Context, id int64) (domain.Usuario, error)
	ExistsUsernameForOther(ctx context.Context, username string, id int64) (bool, error)
	ExistsEmailForOther(ctx context.Context, email string, id int64) (bool, error)
	Update(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error)
	HasApostas(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter domain.UsuarioFilter) ([]domain.Usuario, error)
}

// Validator valida os payloads de entrada.
type Validator interface {
	Struct(s interface{}) error
}

// Service é a administração de usuários (rotas exclusivas de ADMIN).
type Service struct {
	repo        UsuarioRepository
	validator   Validator
	logger      logger.Logger
	maxPageSize int
}

// NewService cria e retorna uma nova instância do Serviço de Usuário.
func NewService(repo UsuarioRepository, validator Validator, logger logger.Logger, maxPageSize int) *Service {
	return &Service{
		repo:        repo,
		validator:   validator,
		logger:      logger,
		maxPageSize: maxPageSize,
	}
}

// List devolve todos os usuários ordenados por nome.
func (s *Service) List(ctx context.Context) ([]domain.Usuario, error) {
	return s.repo.List(ctx)
}

// Get devolve o usuário com as apostas associadas.
func (s *Service) Get(ctx context.Context, id int64) (domain.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

// Update altera os dados cadastrais e o perfil. Senha fica de fora.
func (s *Service) Update(ctx context.Context, id int64, req domain.UsuarioUpdateRequest) (domain.Usuario, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Usuario{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return domain.Usuario{}, apperror.NewInvalidOperationError("Usuário não encontrado")
		}
		return domain.Usuario{}, err
	}

	if req.Username != current.Username {
		taken, err := s.repo.ExistsUsernameForOther(ctx, req.Username, id)
		if err != nil {
			return domain.Usuario{}, err
		}
		if taken {
			return domain.Usuario{}, apperror.NewConflictError("Username já está em uso")
		}
	}

	if req.Email != current.Email {
		taken, err := s.repo.ExistsEmailForOther(ctx, req.Email, id)
		if err != nil {
			return domain.Usuario{}, err
		}
		if taken {
			return domain.Usuario{}, apperror.NewConflictError("Email já está em uso")
		}
	}

	current.Username = req.Username
	current.Nome = req.Nome
	current.CPF = req.CPF
	current.CEP = req.CEP
	current.Endereco = req.Endereco
	current.Email = req.Email
	current.Perfil = req.Perfil
	current.Apostas = nil

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário atualizado.", map[string]interface{}{"id": id, "perfil": updated.Perfil})
	return updated, nil
}

// Delete remove o usuário. Usuário com apostas não pode ser removido.
func (s *Service) Delete(ctx context.Context, id int64) error {
	hasApostas, err := s.repo.HasApostas(ctx, id)
	if err != nil {
		return err
	}
	if hasApostas {
		return apperror.NewConflictError("Não é possível deletar usuário com apostas associadas")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Usuário removido.", map[string]interface{}{"id": id})
	return nil
}

// Search normaliza a paginação e delega a pesquisa ao repositório.
func (s *Service) Search(ctx context.Context, filter domain.UsuarioFilter) ([]domain.Usuario, error) {
	filter.Page, filter.PageSize = query.NormalizePage(filter.Page, filter.PageSize, s.maxPageSize)
	return s.repo.Search(ctx, filter)
}
