package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Tipos de evento do ciclo de vida de uma aposta.
const (
	ApostaCriada     = "APOSTA_CRIADA"
	ApostaAtualizada = "APOSTA_ATUALIZADA"
	ApostaRemovida   = "APOSTA_REMOVIDA"
)

// batchTimeout limita a espera do writer para fechar um lote; a publicação
// acontece dentro da requisição.
const batchTimeout = 10 * time.Millisecond

// ApostaEvent é o payload publicado a cada alteração de aposta.
type ApostaEvent struct {
	EventID    string    `json:"eventId"`
	Tipo       string    `json:"tipo"`
	ApostaID   int64     `json:"apostaId"`
	Username   string    `json:"username"`
	Categoria  string    `json:"categoria,omitempty"`
	Jogo       string    `json:"jogo,omitempty"`
	Valor      float64   `json:"valor,omitempty"`
	Resultado  string    `json:"resultado,omitempty"`
	Data       time.Time `json:"data,omitempty"`
	OcorridoEm time.Time `json:"ocorridoEm"`
}

// Publisher publica eventos de aposta.
type Publisher interface {
	PublishApostaEvent(ctx context.Context, ev ApostaEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica em um tópico Kafka, com o username como chave
// (mantém a ordem dos eventos de um mesmo usuário na partição).
type KafkaPublisher struct {
	w   messageWriter
	now func() time.Time
}

// NewKafkaPublisher cria o writer para os brokers informados.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			WriteTimeout:           5 * time.Second,
			BatchTimeout:           batchTimeout,
		},
		now: time.Now,
	}
}

// PublishApostaEvent completa EventID/OcorridoEm quando vazios e envia o evento.
func (p *KafkaPublisher) PublishApostaEvent(ctx context.Context, ev ApostaEvent) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.OcorridoEm.IsZero() {
		ev.OcorridoEm = p.now().UTC()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", ev.Tipo, err)
	}

	msg := kafka.Message{
		Key:   []byte(ev.Username),
		Value: payload,
		Time:  ev.OcorridoEm,
		Headers: []kafka.Header{
			{Key: "tipo", Value: []byte(ev.Tipo)},
		},
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publicar evento %s: %w", ev.Tipo, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher descarta os eventos (Kafka não configurado).
type NopPublisher struct{}

func (NopPublisher) PublishApostaEvent(context.Context, ApostaEvent) error { return nil }
func (NopPublisher) Close() error                                         { return nil }
