package authservice_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/password"
	"betaware/internal/pkg/token"
	"betaware/internal/pkg/validation"
	"betaware/internal/service/authservice"
)

// MockUsuarioRepository é uma implementação mock do repositório de usuários.
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) FindByUsername(ctx context.Context, username string) (domain.Usuario, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) ExistsByIdentity(ctx context.Context, username, email, cpf string) (bool, error) {
	args := m.Called(ctx, username, email, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	args := m.Called(ctx, usuario)
	return args.Get(0).(domain.Usuario), args.Error(1)
}

// memoryRepo guarda usuários em memória e aplica as mesmas regras de unicidade do banco.
type memoryRepo struct {
	mu       sync.Mutex
	nextID   int64
	usuarios map[string]domain.Usuario
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{usuarios: map[string]domain.Usuario{}}
}

func (r *memoryRepo) FindByUsername(_ context.Context, username string) (domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.usuarios[username]
	if !ok {
		return domain.Usuario{}, apperror.NewNotFoundError("Usuário não encontrado")
	}
	return u, nil
}

func (r *memoryRepo) ExistsByIdentity(_ context.Context, username, email, cpf string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.usuarios {
		if u.Username == username || u.Email == email || u.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) Create(_ context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	usuario.ID = r.nextID
	r.usuarios[usuario.Username] = usuario
	return usuario, nil
}

func newTestLogger() logger.Logger {
	return logger.NewNop()
}

func newTokenService() *token.Service {
	return token.NewService("chave-de-teste-auth", "BetAware", "BetAwareUsers", time.Hour)
}

func newService(repo authservice.UsuarioRepository, tokens *token.Service) *authservice.Service {
	return authservice.NewService(repo, password.NewHasher(bcrypt.MinCost), tokens, validation.New(), newTestLogger())
}

func aliceRegistration() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username: "alice",
		Nome:     "Alice Souza",
		CPF:      "11122233344",
		CEP:      "01310100",
		Senha:    "s3nh@-forte",
		Email:    "alice@x.com",
	}
}

// --- Testes de Register ---

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())
	req := aliceRegistration()

	mockRepo.On("ExistsByIdentity", mock.Anything, "alice", "alice@x.com", "11122233344").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.Usuario) bool {
		return u.Username == "alice" &&
			u.Perfil == domain.PerfilUser &&
			u.SenhaHash != "" &&
			u.SenhaHash != req.Senha &&
			bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(req.Senha)) == nil
	})).Return(domain.Usuario{ID: 7, Username: "alice", Nome: "Alice Souza", Perfil: domain.PerfilUser}, nil)

	result, err := svc.Register(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, domain.PerfilUser, result.Perfil)
	mockRepo.AssertExpectations(t)
}

func TestRegister_Fail_Duplicate(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())

	mockRepo.On("ExistsByIdentity", mock.Anything, "alice", "alice@x.com", "11122233344").Return(true, nil)

	_, err := svc.Register(context.Background(), aliceRegistration())

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Fail_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.RegisterRequest)
		msg    string
	}{
		{"cpf curto", func(r *domain.RegisterRequest) { r.CPF = "123" }, "CPF deve conter 11 dígitos"},
		{"cpf com letras", func(r *domain.RegisterRequest) { r.CPF = "1112223334a" }, "CPF deve conter 11 dígitos"},
		{"cep invalido", func(r *domain.RegisterRequest) { r.CEP = "0131-010" }, "CEP deve conter 8 dígitos"},
		{"email invalido", func(r *domain.RegisterRequest) { r.Email = "alice" }, "Email inválido"},
		{"sem senha", func(r *domain.RegisterRequest) { r.Senha = "" }, "A senha é obrigatória"},
		{"senha com 100 bytes", func(r *domain.RegisterRequest) { r.Senha = strings.Repeat("x", 100) }, "A senha deve ter no máximo 72 bytes"},
		{"senha multibyte com 74 bytes", func(r *domain.RegisterRequest) { r.Senha = strings.Repeat("é", 37) }, "A senha deve ter no máximo 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUsuarioRepository)
			svc := newService(mockRepo, newTokenService())
			req := aliceRegistration()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			require.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Equal(t, tt.msg, err.(apperror.AppError).Message())
			mockRepo.AssertNotCalled(t, "ExistsByIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_Fail_RaceSurfacesConflict(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())

	mockRepo.On("ExistsByIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.Usuario{}, apperror.NewConflictError("Usuário já existe com estes dados"))

	_, err := svc.Register(context.Background(), aliceRegistration())

	assert.IsType(t, &apperror.ConflictError{}, err)
}

// --- Testes de Login ---

func TestLogin_Fail_UnknownUser(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())

	mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(domain.Usuario{}, apperror.NewNotFoundError("Usuário não encontrado"))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "ghost", Senha: "x"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Equal(t, "Credenciais inválidas", err.(apperror.AppError).Message())
}

func TestLogin_Fail_WrongPassword(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())

	hashed, err := password.NewHasher(bcrypt.MinCost).Hash("certa")
	require.NoError(t, err)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(domain.Usuario{Username: "alice", SenhaHash: hashed}, nil)

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "alice", Senha: "errada"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Equal(t, "Credenciais inválidas", err.(apperror.AppError).Message())
}

func TestLogin_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	svc := newService(mockRepo, newTokenService())

	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(domain.Usuario{}, apperror.NewDBError("falha", errors.New("connection refused")))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "alice", Senha: "x"})

	assert.IsType(t, &apperror.InternalError{}, err)
}

// Cadastro seguido de login devolve um token cujo conteúdo é o usuário cadastrado.
func TestRegisterThenLogin(t *testing.T) {
	tokens := newTokenService()
	svc := newService(newMemoryRepo(), tokens)
	ctx := context.Background()

	registrations := []domain.RegisterRequest{
		aliceRegistration(),
		{Username: "bob", Nome: "Bob", CPF: "55566677788", CEP: "20040002", Senha: "outra", Email: "bob@x.com"},
	}

	for _, reg := range registrations {
		_, err := svc.Register(ctx, reg)
		require.NoError(t, err)

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: reg.Username, Senha: reg.Senha})
		require.NoError(t, err)
		assert.Equal(t, reg.Username, resp.Username)
		assert.Equal(t, domain.PerfilUser, resp.Perfil)

		claims, err := tokens.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, reg.Username, claims.Username)
		assert.Equal(t, string(domain.PerfilUser), claims.Role)
	}
}

// O bcrypt só aceita senhas de até 72 bytes; no limite o cadastro e o login funcionam.
func TestRegister_SenhaNoLimiteDoBcrypt(t *testing.T) {
	senhas := map[string]string{
		"ascii":     strings.Repeat("x", 72),
		"multibyte": strings.Repeat("é", 36),
	}

	for name, senha := range senhas {
		t.Run(name, func(t *testing.T) {
			svc := newService(newMemoryRepo(), newTokenService())
			ctx := context.Background()
			req := aliceRegistration()
			req.Senha = senha

			_, err := svc.Register(ctx, req)
			require.NoError(t, err)

			resp, err := svc.Login(ctx, domain.LoginRequest{Username: req.Username, Senha: senha})
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
		})
	}
}

// Cada um dos três campos únicos, sozinho, basta para recusar o cadastro.
func TestRegister_DuplicateEachIdentityField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.RegisterRequest)
	}{
		{"username", func(r *domain.RegisterRequest) { r.Email = "novo@x.com"; r.CPF = "99988877766" }},
		{"email", func(r *domain.RegisterRequest) { r.Username = "alice2"; r.CPF = "99988877766" }},
		{"cpf", func(r *domain.RegisterRequest) { r.Username = "alice2"; r.Email = "novo@x.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newMemoryRepo(), newTokenService())
			ctx := context.Background()

			_, err := svc.Register(ctx, aliceRegistration())
			require.NoError(t, err)

			dup := aliceRegistration()
			tt.mutate(&dup)
			_, err = svc.Register(ctx, dup)

			assert.IsType(t, &apperror.ConflictError{}, err)
		})
	}
}
