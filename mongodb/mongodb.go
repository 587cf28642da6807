package mongodb

import (
	"context"
	"errors"

	"github.com/supakorn-kn/go-book-crud/env"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDBConn owns the client for one database. It is created once by main and
// injected into the models; nothing holds it globally.
type MongoDBConn struct {
	Client *mongo.Client
	opts   *options.ClientOptions
	dbName string
}

func (db *MongoDBConn) Connect(ctx context.Context) error {

	client, err := mongo.Connect(ctx, db.opts)
	if err != nil {
		return err
	}

	db.Client = client

	return nil
}

func (db *MongoDBConn) Disconnect(ctx context.Context) error {

	if db.Client == nil {
		return nil
	}

	return db.Client.Disconnect(ctx)
}

func (db *MongoDBConn) Ping(ctx context.Context) error {

	if db.Client == nil {
		return errors.New("mongodb: not connected")
	}

	return db.Client.Ping(ctx, readpref.Primary())
}

func (db *MongoDBConn) GetDatabase() *mongo.Database {

	return db.Client.Database(db.dbName)
}

func (db *MongoDBConn) GetCollection(collectionName string) *mongo.Collection {

	return db.GetDatabase().Collection(collectionName)
}

func New(config env.MongoDBConfig) (*MongoDBConn, error) {

	if config.URI == "" {
		return nil, errors.New("mongodb: URI must not be empty")
	}

	if config.DB == "" {
		return nil, errors.New("mongodb: database name must not be empty")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(config.URI).SetServerAPIOptions(serverAPI)

	return &MongoDBConn{
		opts:   opts,
		dbName: config.DB,
	}, nil
}

// InitConnection creates the handle, connects and checks the server answers.
func InitConnection(ctx context.Context, config env.MongoDBConfig) (*MongoDBConn, error) {

	conn, err := New(config)
	if err != nil {
		return nil, err
	}

	if err := conn.Connect(ctx); err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, conn.abort(ctx, err)
	}

	return conn, nil
}

// abort disconnects after a failed setup step and reports both failures.
func (db *MongoDBConn) abort(ctx context.Context, cause error) error {
	return errors.Join(cause, db.Disconnect(context.WithoutCancel(ctx)))
}
