package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"
	"travel_manager/database"
	"travel_manager/logger"
	"travel_manager/model"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gosimple/slug"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		logger.Error("Cloudinary init failed", err)
		panic(err)
	}
	return cld
}

// UploadPassportPhoto stores a scanned passport under passports/ and
// returns the delivery URL plus the public id needed for later destroys.
func UploadPassportPhoto(cld *cloudinary.Cloudinary, file *multipart.FileHeader, customerName string) (string, string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("could not read passport photo: %w", err)
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "passports",
		PublicID:     fmt.Sprintf("%s_%d", slug.Make(customerName), time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", "", fmt.Errorf("could not upload passport photo: %w", err)
	}
	return result.SecureURL, result.PublicID, nil
}

// DestroyPassportPhoto removes a stored photo. When the storage call
// fails the public id is queued in orphan_photos so the hourly sweep can
// retry, keeping record deletion independent of the file backend.
func DestroyPassportPhoto(cld *cloudinary.Cloudinary, publicId string) {
	_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicId})
	if err == nil {
		return
	}
	logger.Error("passport photo destroy failed, queueing "+publicId, err)
	orphan := model.OrphanPhoto{PublicId: publicId}
	if err := database.DB.Where(model.OrphanPhoto{PublicId: publicId}).FirstOrCreate(&orphan).Error; err != nil {
		logger.Error("could not queue orphan photo "+publicId, err)
	}
}
