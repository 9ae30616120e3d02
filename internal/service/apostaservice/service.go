package apostaservice

import (
	"context"
	"errors"
	"time"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/events"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/metrics"
	"betaware/internal/pkg/query"
)

// ApostaRepository define o contrato que este serviço espera da persistência de apostas.
type ApostaRepository interface {
	Create(ctx context.Context, aposta domain.Aposta) (domain.Aposta, error)
	FindByIDAndUsername(ctx context.Context, id int64, username string) (domain.Aposta, error)
	Update(ctx context.Context, aposta domain.Aposta) (domain.Aposta, error)
	DeleteByIDAndUsername(ctx context.Context, id int64, username string) error
	ListByUsername(ctx context.Context, username string) ([]domain.Aposta, error)
	ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]domain.Aposta, error)
	ListByUsernameEPeriodo(ctx context.Context, username string, inicio, fim time.Time) ([]domain.Aposta, error)
	Search(ctx context.Context, filter domain.ApostaFilter) ([]domain.Aposta, error)
}

// UsuarioFinder resolve o dono da aposta pelo username do token.
type UsuarioFinder interface {
	FindByUsername(ctx context.Context, username string) (domain.Usuario, error)
}

// Validator valida os payloads de entrada.
type Validator interface {
	Struct(s interface{}) error
}

// Service implementa o CRUD de apostas com escopo no dono.
type Service struct {
	repo        ApostaRepository
	usuarios    UsuarioFinder
	publisher   events.Publisher
	validator   Validator
	logger      logger.Logger
	maxPageSize int
	now         func() time.Time
}

// NewService cria e retorna uma nova instância do serviço de apostas.
func NewService(repo ApostaRepository, usuarios UsuarioFinder, publisher events.Publisher, validator Validator, logger logger.Logger, maxPageSize int) *Service {
	return &Service{
		repo:        repo,
		usuarios:    usuarios,
		publisher:   publisher,
		validator:   validator,
		logger:      logger,
		maxPageSize: maxPageSize,
		now:         time.Now,
	}
}

// Create registra uma aposta para username. Resultado vazio vira PENDENTE e data
// ausente vira o instante atual.
func (s *Service) Create(ctx context.Context, req domain.ApostaRequest, username string) (domain.Aposta, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Aposta{}, err
	}

	usuario, err := s.usuarios.FindByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return domain.Aposta{}, apperror.NewInvalidOperationError("Usuário não encontrado")
		}
		return domain.Aposta{}, err
	}

	aposta := s.apply(domain.Aposta{UsuarioID: usuario.ID}, req)
	if aposta.Data.IsZero() {
		aposta.Data = s.now().UTC()
	}

	created, err := s.repo.Create(ctx, aposta)
	if err != nil {
		return domain.Aposta{}, err
	}
	created.Username = usuario.Username

	metrics.ApostasCriadas.WithLabelValues(created.Categoria).Inc()
	s.publish(ctx, events.ApostaCriada, created)

	return created, nil
}

// Get devolve a aposta se ela pertencer a username; caso contrário NotFound.
func (s *Service) Get(ctx context.Context, id int64, username string) (domain.Aposta, error) {
	return s.repo.FindByIDAndUsername(ctx, id, username)
}

// Update substitui categoria, jogo, valor, resultado e data. Aposta inexistente ou de
// outro usuário é uma operação inválida.
func (s *Service) Update(ctx context.Context, id int64, req domain.ApostaRequest, username string) (domain.Aposta, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Aposta{}, err
	}

	current, err := s.repo.FindByIDAndUsername(ctx, id, username)
	if err != nil {
		if isNotFound(err) {
			return domain.Aposta{}, apperror.NewInvalidOperationError("Aposta não encontrada")
		}
		return domain.Aposta{}, err
	}

	updated := s.apply(current, req)
	if updated.Data.IsZero() {
		updated.Data = current.Data
	}

	saved, err := s.repo.Update(ctx, updated)
	if err != nil {
		if isNotFound(err) {
			return domain.Aposta{}, apperror.NewInvalidOperationError("Aposta não encontrada")
		}
		return domain.Aposta{}, err
	}
	saved.Username = current.Username

	s.publish(ctx, events.ApostaAtualizada, saved)
	return saved, nil
}

// Delete remove a aposta se ela pertencer a username.
func (s *Service) Delete(ctx context.Context, id int64, username string) error {
	if err := s.repo.DeleteByIDAndUsername(ctx, id, username); err != nil {
		return err
	}

	s.publish(ctx, events.ApostaRemovida, domain.Aposta{ID: id, Username: username})
	return nil
}

// ListByUsuario lista as apostas de username, mais recentes primeiro.
func (s *Service) ListByUsuario(ctx context.Context, username string) ([]domain.Aposta, error) {
	return s.repo.ListByUsername(ctx, username)
}

// ListByPeriodo lista as apostas de todos os usuários em [inicio, fim].
func (s *Service) ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]domain.Aposta, error) {
	if err := checkPeriodo(inicio, fim); err != nil {
		return nil, err
	}
	return s.repo.ListByPeriodo(ctx, inicio, fim)
}

// ListByUsuarioEPeriodo lista as apostas de username em [inicio, fim].
func (s *Service) ListByUsuarioEPeriodo(ctx context.Context, username string, inicio, fim time.Time) ([]domain.Aposta, error) {
	if err := checkPeriodo(inicio, fim); err != nil {
		return nil, err
	}
	return s.repo.ListByUsernameEPeriodo(ctx, username, inicio, fim)
}

// Search normaliza a paginação e delega a pesquisa ao repositório.
func (s *Service) Search(ctx context.Context, filter domain.ApostaFilter) ([]domain.Aposta, error) {
	filter.Page, filter.PageSize = query.NormalizePage(filter.Page, filter.PageSize, s.maxPageSize)
	return s.repo.Search(ctx, filter)
}

func (s *Service) apply(aposta domain.Aposta, req domain.ApostaRequest) domain.Aposta {
	aposta.Categoria = req.Categoria
	aposta.Jogo = req.Jogo
	aposta.Valor = req.Valor
	aposta.Resultado = req.Resultado
	if aposta.Resultado == "" {
		aposta.Resultado = domain.ResultadoPendente
	}
	aposta.Data = req.Data
	return aposta
}

// publish nunca falha a requisição: erro de broker só gera log e métrica.
func (s *Service) publish(ctx context.Context, tipo string, aposta domain.Aposta) {
	ev := events.ApostaEvent{
		Tipo:      tipo,
		ApostaID:  aposta.ID,
		Username:  aposta.Username,
		Categoria: aposta.Categoria,
		Jogo:      aposta.Jogo,
		Valor:     aposta.Valor,
		Resultado: aposta.Resultado,
		Data:      aposta.Data,
	}

	if err := s.publisher.PublishApostaEvent(context.WithoutCancel(ctx), ev); err != nil {
		metrics.EventosPublicados.WithLabelValues(tipo, "erro").Inc()
		s.logger.Warn("Falha ao publicar evento de aposta.", map[string]interface{}{"tipo": tipo, "aposta_id": aposta.ID, "error": err.Error()})
		return
	}
	metrics.EventosPublicados.WithLabelValues(tipo, "ok").Inc()
}

func checkPeriodo(inicio, fim time.Time) error {
	if fim.Before(inicio) {
		return apperror.NewValidationError("A data de início deve ser anterior à data de fim")
	}
	return nil
}

func isNotFound(err error) bool {
	var notFoundErr *apperror.NotFoundError
	return errors.As(err, &notFoundErr)
}
