package filestorage

import "mime/multipart"

// Upload subdirectories for the different image kinds.
const (
	ProfilePhotoDir = "profile_photos"
	AlbumCoverDir   = "albums/covers"
	AlbumPhotoDir   = "albums/photos"
)

// FileStorage defines the interface for image storage operations. The rest of
// the application stores only the opaque references this interface returns.
type FileStorage interface {
	// SaveFile saves an uploaded file under the given subdirectory and
	// returns the reference to store.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing file
	// is not an error.
	DeleteFile(fileRef string) error

	// ResolveURL maps a stored reference to a client-retrievable URL.
	ResolveURL(fileRef string) string
}
