package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"api_clientes/src/models"
)

// LimiteListado es el máximo de clientes que devuelve una página del listado.
const LimiteListado = 100

// ClienteStore ejecuta cada operación del API como una sola llamada al driver.
type ClienteStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewClienteStore envuelve la colección; timeout acota cada llamada al driver.
func NewClienteStore(collection *mongo.Collection, timeout time.Duration) *ClienteStore {
	return &ClienteStore{collection: collection, timeout: timeout}
}

func (s *ClienteStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func byID(id string) bson.M {
	return bson.M{models.CampoID: id}
}

// EnsureIndexes crea el índice único sobre id. Si la colección ya tiene ids
// repetidos devuelve un error que envuelve models.ErrIDDuplicado.
func (s *ClienteStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: models.CampoID, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unico"),
	})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("error creando índice de id: %w: %w", models.ErrIDDuplicado, err)
	}
	if err != nil {
		return fmt.Errorf("error creando índice de id: %w", err)
	}
	return nil
}

// List devuelve hasta LimiteListado clientes en el orden natural de la colección.
// page empieza en 1.
func (s *ClienteStore) List(ctx context.Context, page int) ([]models.Cliente, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetLimit(LimiteListado).
		SetSkip(int64((page - 1) * LimiteListado))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error al obtener clientes: %w", err)
	}
	defer cursor.Close(ctx)

	clientes := make([]models.Cliente, 0)
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("error al decodificar clientes: %w", err)
	}
	return clientes, nil
}

func (s *ClienteStore) Get(ctx context.Context, id string) (models.Cliente, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cliente models.Cliente
	err := s.collection.FindOne(ctx, byID(id)).Decode(&cliente)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cliente{}, models.ErrClienteNotFound
	}
	if err != nil {
		return models.Cliente{}, fmt.Errorf("error al obtener cliente %s: %w", id, err)
	}
	return cliente, nil
}

func (s *ClienteStore) Insert(ctx context.Context, cliente models.Cliente) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, cliente); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", models.ErrIDDuplicado, cliente.ID)
		}
		return fmt.Errorf("error al insertar cliente: %w", err)
	}
	return nil
}

// InsertMany se usa para el sembrado; no pasa por el API.
func (s *ClienteStore) InsertMany(ctx context.Context, clientes []models.Cliente) error {
	if len(clientes) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	docs := make([]any, len(clientes))
	for i, c := range clientes {
		docs[i] = c
	}
	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error al insertar %d clientes: %w", len(clientes), err)
	}
	return nil
}

// Replace sobrescribe el documento completo. El id persistido siempre es el de la ruta.
func (s *ClienteStore) Replace(ctx context.Context, id string, cliente models.Cliente) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cliente.ID = id
	result, err := s.collection.ReplaceOne(ctx, byID(id), cliente)
	if err != nil {
		return fmt.Errorf("error al reemplazar cliente %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrClienteNotFound
	}
	return nil
}

// Patch aplica $set con los campos ya validados.
func (s *ClienteStore) Patch(ctx context.Context, id string, patch models.ClientePatch) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx, byID(id), bson.M{"$set": patch.ToBSON()})
	if err != nil {
		return fmt.Errorf("error al actualizar cliente %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrClienteNotFound
	}
	return nil
}

func (s *ClienteStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("error al eliminar cliente %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return models.ErrClienteNotFound
	}
	return nil
}

func (s *ClienteStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := s.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}
	return count, nil
}
