package domain

// UploadedFile is a file staged on local disk waiting to be pushed to object storage.
type UploadedFile struct {
	Path        string
	Filename    string
	ContentType string
	Size        int64
}

// AssetFolder groups uploaded objects by purpose.
type AssetFolder string

const (
	AvatarFolder     AssetFolder = "avatars"
	CoverImageFolder AssetFolder = "covers"
)
