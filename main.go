package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/supakorn-kn/go-book-crud/apis"
	booksAPI "github.com/supakorn-kn/go-book-crud/apis/books"
	"github.com/supakorn-kn/go-book-crud/assets"
	"github.com/supakorn-kn/go-book-crud/docs"
	"github.com/supakorn-kn/go-book-crud/env"
	"github.com/supakorn-kn/go-book-crud/logging"
	booksModel "github.com/supakorn-kn/go-book-crud/models/books"
	"github.com/supakorn-kn/go-book-crud/mongodb"
	booksService "github.com/supakorn-kn/go-book-crud/services/books"
	"github.com/supakorn-kn/go-book-crud/uploads"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//	@title						Book Management Documentation
//	@version					1.0.0
//	@description				Documentation for a comprehensive API for managing a book collection
//	@contact.name				Backend Repo
//	@BasePath					/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	config, err := env.Load()
	if err != nil {
		os.Stderr.WriteString("load config failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, flush := logging.New(config.Log)
	defer flush()

	if err := run(config, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		flush()
		os.Exit(1)
	}
}

func run(config *env.Env, logger *zap.Logger) error {

	if config.Log.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := mongodb.InitConnection(connectCtx, config.MongoDB)
	if err != nil {
		return err
	}

	logger.Info("connected to database", zap.String("database", config.MongoDB.DB))

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()

		if err := conn.Disconnect(ctx); err != nil {
			logger.Warn("disconnect database failed", zap.Error(err))
		}
	}()

	model, err := booksModel.NewBooksModel(connectCtx, conn)
	if err != nil {
		return err
	}

	host, err := assets.NewCloudinaryHost(config.Cloudinary, logger)
	if err != nil {
		return err
	}

	uploader, err := uploads.New(config.Uploads, logger)
	if err != nil {
		return err
	}

	service := booksService.NewBooksService(model, host, logger)

	api, err := booksAPI.NewBooksAPI(service)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(config.Server.Port),
		Handler:           newRouter(config.Server, logger, conn, api, uploader),
		ReadHeaderTimeout: 10 * time.Second,
	}

	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(nCtx)

	g.Go(func() error {

		logger.Info("server is running", zap.Int("port", config.Server.Port), zap.String("basePath", config.Server.BasePath))

		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	})

	g.Go(func() error {

		<-gCtx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()

		err := server.Shutdown(sCtx)
		switch {
		case err == nil:
			logger.Info("server graceful shutdown succeeded")
		case errors.Is(err, context.DeadlineExceeded):
			logger.Warn("server graceful shutdown timed out", zap.Error(server.Close()))
		default:
			logger.Warn("server graceful shutdown failed", zap.Error(err), zap.NamedError("close", server.Close()))
		}

		return nil
	})

	return g.Wait()
}

func newRouter(config env.ServerConfig, logger *zap.Logger, conn *mongodb.MongoDBConn, api apis.BookAPI, uploader *uploads.Uploader) *gin.Engine {

	g := gin.New()
	g.Use(logging.RequestID(logger), logging.Logger(), logging.Recovery())

	g.GET("/healthz", func(ctx *gin.Context) {

		if err := conn.Ping(ctx.Request.Context()); err != nil {
			logging.FromContext(ctx).Warn("health check failed", zap.Error(err))
			ctx.JSON(http.StatusServiceUnavailable, apis.Response{Message: err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, apis.Response{Message: "OK"})
	})

	if config.DocsEnable {
		docs.SwaggerInfo.BasePath = config.BasePath
		g.GET("/documentation/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apis.RegisterBookAPI(api, g.Group(config.BasePath), uploader)

	return g
}
