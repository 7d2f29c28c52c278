package config

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"api_clientes/src/logger"
)

// ConnectDB abre el cliente de MongoDB y verifica la conexión con un ping al primario.
func ConnectDB(ctx context.Context, cfg *Config, log *logger.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.DBURI).
		SetConnectTimeout(cfg.DBConnectTimeout).
		SetSocketTimeout(cfg.DBConnectTimeout).
		SetServerSelectionTimeout(cfg.DBConnectTimeout).
		SetMaxPoolSize(cfg.DBMaxPoolSize).
		SetMinPoolSize(cfg.DBMinPoolSize)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("error al conectar a MongoDB: %w", err)
	}

	if err := PingDB(connectCtx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("no se pudo hacer ping a MongoDB: %w", err)
	}

	log.Info().Str("db", cfg.DBName).Msg("conexión a MongoDB establecida")
	return client, nil
}

func PingDB(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}

// GetCollection devuelve la colección de clientes configurada.
func GetCollection(client *mongo.Client, cfg *Config) *mongo.Collection {
	return client.Database(cfg.DBName).Collection(cfg.DBCollection)
}

// DisconnectDB cierra el cliente; los errores solo se registran.
func DisconnectDB(ctx context.Context, client *mongo.Client, log *logger.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("error al desconectar de MongoDB")
		return
	}
	log.Info().Msg("desconectado de MongoDB")
}
