package utils

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	IDStrategyUUID      = "uuid"
	IDStrategyTimestamp = "timestamp"
)

// IDGenerator produce identificadores de cliente.
type IDGenerator interface {
	Generate() string
}

// NewIDGenerator devuelve el generador de la estrategia configurada.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case IDStrategyUUID, "":
		return NewUUIDGenerator(), nil
	case IDStrategyTimestamp:
		return NewTimestampGenerator(), nil
	}
	return nil, fmt.Errorf("estrategia de id desconocida: %q", strategy)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate devuelve un UUIDv7; si falla el reloj cae a un UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

const (
	alfanumericos = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sufijoLen     = 6
	formatoFecha  = "20060102150405"
)

// TimestampGenerator reproduce el formato histórico YYYYMMDDHHMMSS_xxxxxx.
// No comprueba colisiones; el índice único de id las rechaza.
type TimestampGenerator struct {
	now func() time.Time
}

func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

func (g *TimestampGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(len(formatoFecha) + 1 + sufijoLen)
	sb.WriteString(g.now().Format(formatoFecha))
	sb.WriteByte('_')
	for range sufijoLen {
		sb.WriteByte(alfanumericos[rand.IntN(len(alfanumericos))])
	}
	return sb.String()
}
