package domain

// Perfil é o papel do usuário no sistema.
type Perfil string

const (
	PerfilUser  Perfil = "USER"
	PerfilAdmin Perfil = "ADMIN"
)

// Usuario representa a conta de um apostador.
type Usuario struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Nome      string   `json:"nome"`
	CPF       string   `json:"cpf"`
	CEP       string   `json:"cep"`
	Endereco  *string  `json:"endereco,omitempty"`
	SenhaHash string   `json:"-"` // nunca sai na resposta
	Email     string   `json:"email"`
	Perfil    Perfil   `json:"perfil"`
	Apostas   []Aposta `json:"apostas,omitempty"`
}

// LoginRequest é o payload de POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

// RegisterRequest é o payload de POST /v1/auth/register.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,max=255"`
	Nome     string  `json:"nome" validate:"required,max=255"`
	CPF      string  `json:"cpf" validate:"required,len=11,digits"`
	CEP      string  `json:"cep" validate:"required,len=8,digits"`
	Endereco *string `json:"endereco,omitempty" validate:"omitempty,max=255"`
	Senha    string  `json:"senha" validate:"required,maxbytes=72"`
	Email    string  `json:"email" validate:"required,email,max=255"`
}

// UsuarioUpdateRequest é o payload de PUT /v1/usuarios/{id}. A senha não é alterável por aqui.
type UsuarioUpdateRequest struct {
	Username string  `json:"username" validate:"required,max=255"`
	Nome     string  `json:"nome" validate:"required,max=255"`
	CPF      string  `json:"cpf" validate:"required,len=11,digits"`
	CEP      string  `json:"cep" validate:"required,len=8,digits"`
	Endereco *string `json:"endereco,omitempty" validate:"omitempty,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Perfil   Perfil  `json:"perfil" validate:"required,oneof=USER ADMIN"`
}

// JwtResponse é devolvido no login.
type JwtResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Nome     string `json:"nome"`
	Perfil   Perfil `json:"perfil"`
}

// UsuarioFilter são os parâmetros de GET /v1/usuarios/pesquisar.
// Campos vazios não filtram; a ordenação é sempre por nome.
type UsuarioFilter struct {
	Nome     string
	Username string
	Email    string
	Perfil   string
	Page     int
	PageSize int
}
