package externalservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/cache"
	"betaware/internal/pkg/logger"
)

// Config reúne endereços e TTLs das integrações externas.
type Config struct {
	ViaCEPURL       string
	ExchangeRateURL string
	Timeout         time.Duration
	CEPCacheTTL     time.Duration
	CotacaoCacheTTL time.Duration
}

var (
	temperaturas = []int{18, 22, 25, 28, 31, 24, 20}
	condicoes    = []string{"Ensolarado", "Parcialmente nublado", "Nublado", "Chuvoso", "Tempestade"}
)

// Service consulta CEP e câmbio em APIs públicas (com cache) e simula jogos e clima.
type Service struct {
	client *http.Client
	cache  cache.Client
	cfg    Config
	logger logger.Logger
	now    func() time.Time
}

// NewService cria o serviço de integrações externas.
func NewService(cfg Config, cacheClient cache.Client, logger logger.Logger) *Service {
	return &Service{
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  cacheClient,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

type viaCEPResponse struct {
	domain.Endereco
	// O ViaCEP responde "erro": true, e em versões novas "erro": "true".
	Erro json.RawMessage `json:"erro,omitempty"`
}

func (r viaCEPResponse) notFound() bool {
	v := strings.Trim(string(r.Erro), `"`)
	return v != "" && v != "false"
}

// BuscarCEP consulta o endereço de um CEP. Caracteres não numéricos são descartados.
func (s *Service) BuscarCEP(ctx context.Context, cep string) (domain.Endereco, error) {
	cep = onlyDigits(cep)
	if len(cep) != 8 {
		return domain.Endereco{}, apperror.NewValidationError("CEP deve conter 8 dígitos")
	}

	key := "cep:" + cep
	var endereco domain.Endereco
	if s.fromCache(ctx, key, &endereco) {
		return endereco, nil
	}

	var resp viaCEPResponse
	found, err := s.getJSON(ctx, fmt.Sprintf("%s/%s/json/", strings.TrimRight(s.cfg.ViaCEPURL, "/"), cep), &resp)
	if err != nil {
		return domain.Endereco{}, apperror.NewUpstreamError("Falha ao consultar o ViaCEP", err)
	}
	if !found || resp.notFound() {
		s.logger.Info("CEP não encontrado.", map[string]interface{}{"cep": cep})
		return domain.Endereco{}, apperror.NewNotFoundError("CEP não encontrado")
	}

	s.toCache(ctx, key, resp.Endereco, s.cfg.CEPCacheTTL)
	return resp.Endereco, nil
}

type exchangeRateResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// ObterCotacao devolve a taxa de câmbio origem → destino (padrão USD → BRL).
func (s *Service) ObterCotacao(ctx context.Context, origem, destino string) (domain.Cotacao, error) {
	origem = strings.ToUpper(strings.TrimSpace(origem))
	destino = strings.ToUpper(strings.TrimSpace(destino))
	if origem == "" {
		origem = "USD"
	}
	if destino == "" {
		destino = "BRL"
	}

	key := "cotacao:" + origem + ":" + destino
	var cotacao domain.Cotacao
	if s.fromCache(ctx, key, &cotacao) {
		return cotacao, nil
	}

	var resp exchangeRateResponse
	found, err := s.getJSON(ctx, strings.TrimRight(s.cfg.ExchangeRateURL, "/")+"/"+origem, &resp)
	if err != nil {
		return domain.Cotacao{}, apperror.NewUpstreamError("Falha ao consultar a cotação", err)
	}
	taxa, ok := resp.Rates[destino]
	if !found || !ok {
		return domain.Cotacao{}, apperror.NewNotFoundError("Cotação não encontrada")
	}

	cotacao = domain.Cotacao{
		MoedaOrigem:     origem,
		MoedaDestino:    destino,
		Taxa:            taxa,
		DataAtualizacao: s.now().UTC(),
	}
	s.toCache(ctx, key, cotacao, s.cfg.CotacaoCacheTTL)
	return cotacao, nil
}

// ListarJogos devolve a grade simulada de jogos disponíveis.
func (s *Service) ListarJogos(_ context.Context) []domain.JogoEsportivo {
	now := s.now()
	empate := 3.2
	return []domain.JogoEsportivo{
		{ID: 1, Categoria: "Futebol", TimeCasa: "Flamengo", TimeVisitante: "Palmeiras", DataJogo: now.AddDate(0, 0, 1), OddsCasa: 2.1, OddsEmpate: &empate, OddsVisitante: 3.8, Status: "Agendado"},
		{ID: 2, Categoria: "Basquete", TimeCasa: "Lakers", TimeVisitante: "Warriors", DataJogo: now.AddDate(0, 0, 2), OddsCasa: 1.9, OddsVisitante: 2.0, Status: "Agendado"},
		{ID: 3, Categoria: "Tênis", TimeCasa: "Djokovic", TimeVisitante: "Nadal", DataJogo: now.Add(6 * time.Hour), OddsCasa: 1.7, OddsVisitante: 2.3, Status: "Agendado"},
	}
}

// PrevisaoTempo gera uma previsão simulada para a cidade.
func (s *Service) PrevisaoTempo(_ context.Context, cidade string) (domain.PrevisaoTempo, error) {
	cidade = strings.TrimSpace(cidade)
	if cidade == "" {
		return domain.PrevisaoTempo{}, apperror.NewValidationError("A cidade é obrigatória")
	}

	return domain.PrevisaoTempo{
		Cidade:       cidade,
		Temperatura:  temperaturas[rand.IntN(len(temperaturas))],
		Condicao:     condicoes[rand.IntN(len(condicoes))],
		Umidade:      40 + rand.IntN(50),
		DataConsulta: s.now(),
	}, nil
}

// Dashboard combina localização, clima, três jogos e a cotação do dólar para um CEP.
// Só a consulta de CEP é obrigatória; cotação indisponível vira null.
func (s *Service) Dashboard(ctx context.Context, cep string) (domain.Dashboard, error) {
	endereco, err := s.BuscarCEP(ctx, cep)
	if err != nil {
		var validationErr *apperror.ValidationError
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) {
			return domain.Dashboard{}, apperror.NewValidationError("CEP inválido")
		}
		return domain.Dashboard{}, err
	}

	dashboard := domain.Dashboard{
		Localizacao: domain.Localizacao{
			Cidade: endereco.Localidade,
			Estado: endereco.UF,
			Bairro: endereco.Bairro,
		},
		DataConsulta: s.now(),
	}

	if tempo, err := s.PrevisaoTempo(ctx, endereco.Localidade); err == nil {
		dashboard.Tempo = &tempo
	}

	jogos := s.ListarJogos(ctx)
	if len(jogos) > 3 {
		jogos = jogos[:3]
	}
	dashboard.JogosDisponiveis = jogos

	cotacao, err := s.ObterCotacao(ctx, "USD", "BRL")
	if err != nil {
		s.logger.Warn("Cotação indisponível para o dashboard.", map[string]interface{}{"error": err.Error()})
	} else {
		dashboard.CotacaoUSD = &cotacao
	}

	return dashboard, nil
}

// getJSON faz o GET e decodifica a resposta. found=false indica status fora de 2xx.
func (s *Service) getJSON(ctx context.Context, url string, dest interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Debug("API externa respondeu sem sucesso.", map[string]interface{}{"url": url, "status": resp.StatusCode})
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return false, fmt.Errorf("decodificar resposta de %s: %w", url, err)
	}
	return true, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dest interface{}) bool {
	err := cache.GetJSON(ctx, s.cache, key, dest)
	if err == nil {
		s.logger.Debug("Cache hit.", map[string]interface{}{"key": key})
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
	return false
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := cache.SetJSON(ctx, s.cache, key, value, ttl); err != nil {
		s.logger.Warn("Falha ao gravar no cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
