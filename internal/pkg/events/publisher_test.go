package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	fixed := time.Date(2025, 9, 21, 12, 0, 0, 0, time.UTC)
	p := &KafkaPublisher{w: fw, now: func() time.Time { return fixed }}

	err := p.PublishApostaEvent(context.Background(), ApostaEvent{
		Tipo:      ApostaCriada,
		ApostaID:  42,
		Username:  "alice",
		Categoria: "Futebol",
		Jogo:      "A vs B",
		Valor:     50,
		Resultado: "PENDENTE",
	})
	require.NoError(t, err)
	require.Len(t, fw.msgs, 1)

	msg := fw.msgs[0]
	assert.Equal(t, "alice", string(msg.Key))
	assert.Equal(t, fixed, msg.Time)
	assert.Equal(t, "tipo", msg.Headers[0].Key)
	assert.Equal(t, ApostaCriada, string(msg.Headers[0].Value))

	var ev ApostaEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, int64(42), ev.ApostaID)
	assert.Equal(t, 50.0, ev.Valor)
	assert.True(t, fixed.Equal(ev.OcorridoEm))
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{w: &fakeWriter{err: errors.New("broker indisponível")}, now: time.Now}

	err := p.PublishApostaEvent(context.Background(), ApostaEvent{Tipo: ApostaRemovida, ApostaID: 1, Username: "bob"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "APOSTA_REMOVIDA")
}

func TestNewKafkaPublisher_WriterConfig(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "betaware.apostas.v1")

	w, ok := p.w.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "betaware.apostas.v1", w.Topic)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.PublishApostaEvent(context.Background(), ApostaEvent{}))
	assert.NoError(t, p.Close())
}
