package media

import (
	"context"
	"io"
)

// Upload is a file received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Storage persists uploaded files and returns their path relative to the media root.
type Storage interface {
	Save(ctx context.Context, folder string, upload *Upload) (string, error)
	Delete(ctx context.Context, path string) error
}
