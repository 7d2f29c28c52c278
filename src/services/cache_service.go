// services/cache_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"api_clientes/src/logger"
	"api_clientes/src/models"
)

// ClienteRepository son las operaciones que el API ejecuta sobre los clientes.
type ClienteRepository interface {
	List(ctx context.Context, page int) ([]models.Cliente, error)
	Get(ctx context.Context, id string) (models.Cliente, error)
	Insert(ctx context.Context, cliente models.Cliente) error
	Replace(ctx context.Context, id string, cliente models.Cliente) error
	Patch(ctx context.Context, id string, patch models.ClientePatch) error
	Delete(ctx context.Context, id string) error
}

// Cache es un almacén clave/valor con expiración.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

const (
	PrefijoPagina  = "clientes:page_"
	PrefijoCliente = "cliente:"
)

func PaginaKey(page int) string   { return fmt.Sprintf("%s%d", PrefijoPagina, page) }
func ClienteKey(id string) string { return PrefijoCliente + id }

// CachedClienteRepository aplica cache-aside sobre otro repositorio. Las lecturas
// se sirven desde la caché cuando existe la entrada; cada escritura invalida el
// cliente afectado y todas las páginas del listado. Un fallo de la caché nunca
// falla la petición: se registra y se usa el repositorio.
//
// Una lectura que coincide con una escritura en este proceso no repuebla la caché
// con el valor viejo: cada escritura avanza gen antes de ejecutarse y la lectura
// solo guarda si gen no cambió desde que consultó el repositorio.
type CachedClienteRepository struct {
	next  ClienteRepository
	cache Cache
	ttl   time.Duration
	log   *logger.Logger

	mu  sync.RWMutex
	gen uint64
}

func NewCachedClienteRepository(next ClienteRepository, cache Cache, ttl time.Duration, log *logger.Logger) *CachedClienteRepository {
	return &CachedClienteRepository{next: next, cache: cache, ttl: ttl, log: log}
}

func (r *CachedClienteRepository) List(ctx context.Context, page int) ([]models.Cliente, error) {
	key := PaginaKey(page)

	var clientes []models.Cliente
	if r.load(ctx, key, &clientes) {
		return clientes, nil
	}

	gen := r.generation()
	clientes, err := r.next.List(ctx, page)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, clientes, gen)
	return clientes, nil
}

func (r *CachedClienteRepository) Get(ctx context.Context, id string) (models.Cliente, error) {
	key := ClienteKey(id)

	var cliente models.Cliente
	if r.load(ctx, key, &cliente) {
		return cliente, nil
	}

	// Los no encontrados no se cachean
	gen := r.generation()
	cliente, err := r.next.Get(ctx, id)
	if err != nil {
		return models.Cliente{}, err
	}
	r.store(ctx, key, cliente, gen)
	return cliente, nil
}

func (r *CachedClienteRepository) Insert(ctx context.Context, cliente models.Cliente) error {
	r.advance()
	err := r.next.Insert(ctx, cliente)
	r.invalidate(ctx, "")
	return err
}

func (r *CachedClienteRepository) Replace(ctx context.Context, id string, cliente models.Cliente) error {
	r.advance()
	err := r.next.Replace(ctx, id, cliente)
	r.invalidate(ctx, id)
	return err
}

func (r *CachedClienteRepository) Patch(ctx context.Context, id string, patch models.ClientePatch) error {
	r.advance()
	err := r.next.Patch(ctx, id, patch)
	r.invalidate(ctx, id)
	return err
}

func (r *CachedClienteRepository) Delete(ctx context.Context, id string) error {
	r.advance()
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

// load devuelve true si key estaba en caché y se pudo decodificar en dst.
func (r *CachedClienteRepository) load(ctx context.Context, key string, dst any) bool {
	data, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("no se pudo leer la caché")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// Entrada corrupta: se limpia y se va a la base de datos
		r.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		if err := r.cache.Delete(ctx, key); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("no se pudo limpiar la caché")
		}
		return false
	}
	r.log.Debug().Str("key", key).Msg("cache hit")
	return true
}

func (r *CachedClienteRepository) generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

func (r *CachedClienteRepository) advance() {
	r.mu.Lock()
	r.gen++
	r.mu.Unlock()
}

// store guarda value salvo que alguna escritura haya empezado después de gen.
func (r *CachedClienteRepository) store(ctx context.Context, key string, value any, gen uint64) {
	data, err := json.Marshal(value)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("no se pudo serializar para caché")
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.gen != gen {
		r.log.Debug().Str("key", key).Msg("escritura concurrente, no se cachea")
		return
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir la caché")
	}
}

// invalidate borra el cliente id (si no está vacío) y todas las páginas.
func (r *CachedClienteRepository) invalidate(ctx context.Context, id string) {
	if id != "" {
		if err := r.cache.Delete(ctx, ClienteKey(id)); err != nil {
			r.log.Warn().Err(err).Str("id", id).Msg("no se pudo invalidar el cliente en caché")
		}
	}
	if err := r.cache.DeletePrefix(ctx, PrefijoPagina); err != nil {
		r.log.Warn().Err(err).Msg("no se pudieron invalidar las páginas en caché")
	}
}
