// Package query monta consultas SQL (PostgreSQL) com filtros opcionais,
// ordenação por lista branca e paginação.
//
// Cada filtro só entra na cláusula WHERE quando o valor está presente: string
// vazia ou ponteiro nulo não restringe nada.
package query

import (
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Builder acumula predicados, ordenação e paginação sobre uma consulta base.
// Os valores viram parâmetros posicionais ($1, $2, ...); nada do usuário é
// concatenado ao SQL.
type Builder struct {
	base       string
	conditions []string
	args       []interface{}
	orderBy    []string
	limit      int
	offset     int
	paginate   bool
}

// New cria um Builder a partir de um SELECT sem WHERE.
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where adiciona um predicado incondicional. Cada "?" em cond é trocado, na ordem,
// pelo próximo parâmetro posicional.
func (b *Builder) Where(cond string, args ...interface{}) *Builder {
	for _, arg := range args {
		b.args = append(b.args, arg)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(b.args)), 1)
	}
	b.conditions = append(b.conditions, cond)
	return b
}

// Contains filtra por substring (LIKE) quando value não é vazio. A sensibilidade a
// maiúsculas segue a collation da coluna.
func (b *Builder) Contains(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+` LIKE '%' || ? || '%' ESCAPE '\'`, escapeLike(value))
}

// Equals filtra por igualdade exata quando value não é vazio.
func (b *Builder) Equals(column, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Where(column+" = ?", value)
}

// Since filtra column >= t (inclusivo) quando t não é nulo.
func (b *Builder) Since(column string, t *time.Time) *Builder {
	if t == nil {
		return b
	}
	return b.Where(column+" >= ?", *t)
}

// Until filtra column <= t (inclusivo) quando t não é nulo.
func (b *Builder) Until(column string, t *time.Time) *Builder {
	if t == nil {
		return b
	}
	return b.Where(column+" <= ?", *t)
}

// AtLeast filtra column >= v quando v não é nulo.
func (b *Builder) AtLeast(column string, v *float64) *Builder {
	if v == nil {
		return b
	}
	return b.Where(column+" >= ?", *v)
}

// AtMost filtra column <= v quando v não é nulo.
func (b *Builder) AtMost(column string, v *float64) *Builder {
	if v == nil {
		return b
	}
	return b.Where(column+" <= ?", *v)
}

// OrderBy adiciona uma coluna de ordenação. column deve vir de uma lista branca
// (ver SortColumn), nunca direto da requisição.
func (b *Builder) OrderBy(column string, ascending bool) *Builder {
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	b.orderBy = append(b.orderBy, column+" "+dir)
	return b
}

// Paginate aplica LIMIT/OFFSET para a página (1-indexada) já normalizada.
func (b *Builder) Paginate(page, size int) *Builder {
	b.paginate = true
	b.limit = size
	b.offset = (page - 1) * size
	return b
}

// Build devolve o SQL final e os argumentos na ordem dos placeholders.
func (b *Builder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(b.base)

	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conditions, " AND "))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	args := append([]interface{}(nil), b.args...)
	if b.paginate {
		args = append(args, b.limit, b.offset)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)))
	}

	return sb.String(), args
}

// NormalizePage aplica os padrões (página 1, tamanho 10) e limita o tamanho a maxSize.
// maxSize <= 0 desativa o limite.
func NormalizePage(page, size, maxSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return page, size
}

// SortColumn resolve o campo pedido (sem diferenciar maiúsculas) para uma coluna da
// lista branca; campos desconhecidos usam fallback.
func SortColumn(field string, allowed map[string]string, fallback string) string {
	if column, ok := allowed[strings.ToLower(strings.TrimSpace(field))]; ok {
		return column
	}
	return fallback
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
