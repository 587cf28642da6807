package env

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type Env struct {
	Server     ServerConfig
	MongoDB    MongoDBConfig
	Cloudinary CloudinaryConfig
	Uploads    UploadsConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"2653"`
	BasePath        string        `envconfig:"BASE_PATH" default:"/v1"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	DocsEnable      bool          `envconfig:"DOCS_ENABLE" default:"true"`
}

type MongoDBConfig struct {
	URI string `envconfig:"DATABASE_URI" required:"true"`
	DB  string `envconfig:"DATABASE_NAME" default:"book-management"`
}

// CloudinaryConfig holds either a full CLOUDINARY_URL or the three separate credentials.
type CloudinaryConfig struct {
	URL       string `envconfig:"CLOUDINARY_URL"`
	CloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	Folder    string `envconfig:"CLOUDINARY_FOLDER"`
}

type UploadsConfig struct {
	Dir     string `envconfig:"UPLOAD_DIR" default:"images"`
	MaxSize int64  `envconfig:"UPLOAD_MAX_SIZE" default:"52428800"`
}

type LogConfig struct {
	Level        zapcore.Level `envconfig:"LOG_LEVEL" default:"info"`
	IsProduction bool          `envconfig:"IS_PRODUCTION"`
}

// Load reads the optional env files then the process environment. Values already
// present in the environment win over the files.
func Load(files ...string) (*Env, error) {

	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (e Env) validate() error {

	if e.Server.Port < 1 {
		return errors.New("PORT can be only positive integer")
	}

	if e.Uploads.MaxSize < 1 {
		return errors.New("UPLOAD_MAX_SIZE can be only positive integer")
	}

	c := e.Cloudinary
	if c.URL == "" && (c.CloudName == "" || c.APIKey == "" || c.APISecret == "") {
		return errors.New("set CLOUDINARY_URL or all of CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
	}

	return nil
}
