package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var (
	ErrEmptyFilename        = errors.New("image filename is empty")
	ErrInvalidCloudinaryURL = errors.New("invalid cloudinary url")
	ErrUnknownImageURL      = errors.New("image url does not belong to cloudinary")
)

// LocalImageStore только вычисляет публичный URL вида /uploads/<filename>
// Содержимое файла не сохраняется
type LocalImageStore struct {
	baseURL string
}

// NewLocalImageStore создает хранилище, которое только строит URL без загрузки
func NewLocalImageStore(baseURL string) *LocalImageStore {
	return &LocalImageStore{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalImageStore) Store(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	name := sanitizeFilename(file.Filename)
	if name == "" {
		return "", ErrEmptyFilename
	}
	return s.baseURL + "/" + name, nil
}

// Delete ничего не делает: локальное хранилище не сохраняет содержимое
func (s *LocalImageStore) Delete(ctx context.Context, imageURL string) error {
	return nil
}

// CloudinaryImageStore загружает картинки отзывов в Cloudinary
// Папка: <folder>/<userID>
type CloudinaryImageStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryImageStore ждет URL вида cloudinary://<api_key>:<api_secret>@<cloud_name>
// SDK принимает любой URL, поэтому схему и учетные данные проверяем сами
func NewCloudinaryImageStore(cloudinaryURL, folder string) (*CloudinaryImageStore, error) {
	if err := validateCloudinaryURL(cloudinaryURL); err != nil {
		return nil, err
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryImageStore{cld: cld, folder: folder}, nil
}

// Store загружает картинку в папку пользователя в Cloudinary
func (s *CloudinaryImageStore) Store(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	name := sanitizeFilename(file.Filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer src.Close()

	uniqueFilename := true
	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         s.folder + "/" + userID,
		PublicID:       strings.TrimSuffix(name, path.Ext(name)),
		UniqueFilename: &uniqueFilename,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", name, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image %s: %s", name, result.Error.Message)
	}

	return result.SecureURL, nil
}

// Delete удаляет загруженную картинку; public_id восстанавливается из secure URL
func (s *CloudinaryImageStore) Delete(ctx context.Context, imageURL string) error {
	publicID, err := publicIDFromURL(imageURL)
	if err != nil {
		return err
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete image %s: %s", publicID, result.Error.Message)
	}

	return nil
}

func validateCloudinaryURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCloudinaryURL, err)
	}
	if u.Scheme != "cloudinary" {
		return fmt.Errorf("%w: scheme must be cloudinary", ErrInvalidCloudinaryURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: cloud name is empty", ErrInvalidCloudinaryURL)
	}
	if u.User == nil || u.User.Username() == "" {
		return fmt.Errorf("%w: api key is empty", ErrInvalidCloudinaryURL)
	}
	if secret, _ := u.User.Password(); secret == "" {
		return fmt.Errorf("%w: api secret is empty", ErrInvalidCloudinaryURL)
	}
	return nil
}

// publicIDFromURL: .../image/upload/v1712/reviews/user-1/campus_ab12.jpg -> reviews/user-1/campus_ab12
func publicIDFromURL(imageURL string) (string, error) {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownImageURL, err)
	}

	const marker = "/upload/"
	i := strings.Index(u.Path, marker)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnknownImageURL, imageURL)
	}

	rest := u.Path[i+len(marker):]
	if first, tail, ok := strings.Cut(rest, "/"); ok && isVersion(first) {
		rest = tail
	}

	publicID := strings.TrimSuffix(rest, path.Ext(rest))
	if publicID == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownImageURL, imageURL)
	}
	return publicID, nil
}

// isVersion - сегмент вида v1712345678
func isVersion(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// sanitizeFilename отрезает каталоги, чтобы имя файла нельзя было использовать для обхода путей
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
