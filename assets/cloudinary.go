package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/supakorn-kn/go-book-crud/env"
	serverError "github.com/supakorn-kn/go-book-crud/errors"
	"github.com/supakorn-kn/go-book-crud/objects"
	"go.uber.org/zap"
)

// uploadAPI is the part of the Cloudinary upload API used by CloudinaryHost.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryHost keeps cover photos on Cloudinary.
type CloudinaryHost struct {
	api    uploadAPI
	folder string
	logger *zap.Logger
}

func NewCloudinaryHost(config env.CloudinaryConfig, logger *zap.Logger) (*CloudinaryHost, error) {

	var cld *cloudinary.Cloudinary
	var err error

	if config.URL != "" {
		cld, err = cloudinary.NewFromURL(config.URL)
	} else {
		cld, err = cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	}

	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}

	return newCloudinaryHost(&cld.Upload, config.Folder, logger), nil
}

func newCloudinaryHost(api uploadAPI, folder string, logger *zap.Logger) *CloudinaryHost {

	return &CloudinaryHost{
		api:    api,
		folder: folder,
		logger: logger,
	}
}

// Upload sends the local file and returns the reference of the stored asset.
func (h *CloudinaryHost) Upload(ctx context.Context, localPath string) (objects.CoverPhoto, error) {

	result, err := h.api.Upload(ctx, localPath, uploader.UploadParams{Folder: h.folder})
	if err != nil {
		return objects.CoverPhoto{}, err
	}

	if result.Error.Message != "" {
		return objects.CoverPhoto{}, errors.New(result.Error.Message)
	}

	if result.PublicID == "" || result.SecureURL == "" {
		return objects.CoverPhoto{}, serverError.UnknownError.New("cloudinary upload returned no asset")
	}

	h.logger.Debug("asset uploaded", zap.String("asset.id", result.PublicID))

	return objects.CoverPhoto{
		AssetID: result.PublicID,
		URL:     result.SecureURL,
	}, nil
}

// Destroy removes the asset. An asset that is already gone is not an error.
func (h *CloudinaryHost) Destroy(ctx context.Context, assetID string) error {

	result, err := h.api.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return err
	}

	if result.Error.Message != "" {
		return errors.New(result.Error.Message)
	}

	if result.Result != "ok" {
		h.logger.Warn("asset was not destroyed", zap.String("asset.id", assetID), zap.String("result", result.Result))
	}

	return nil
}
