package store

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fileLogPrefix = "files"

	// AttestationsBucket is the historical name of the document library.
	AttestationsBucket = "AttestationsPdf"
)

var (
	ErrFileNotFound   = fmt.Errorf("the file does not exist")
	ErrInvalidFileRef = fmt.Errorf("malformed file reference")
)

// AllowedExtensions is the upload allowlist, shared by attachments and
// publications. The lenient policy: generated attestations come back as
// pdf or docx and publications carry xlsx exports, so all three pass.
var AllowedExtensions = []string{"pdf", "docx", "xlsx"}

// AllowedExtension reports whether a filename carries an extension from
// the allowlist. The check is done before any upload call is made.
func AllowedExtension(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// FileStore - interface for the uploaded-document library
type FileStore interface {
	Upload(ctx context.Context, filename string, source io.Reader) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)
}

type gridFileStore struct {
	bucket *gridfs.Bucket
}

// NewFileStore returns a file store backed by a GridFS bucket named
// after the historical document library.
func NewFileStore(client *mongo.Client, database string) (FileStore, error) {
	bucket, err := gridfs.NewBucket(
		client.Database(database),
		options.GridFSBucket().SetName(AttestationsBucket),
	)
	if err != nil {
		return nil, err
	}

	return &gridFileStore{
		bucket: bucket,
	}, nil
}

// Upload stores the file content and returns the server-relative
// reference written back onto the owning record. The reference embeds
// the object id, so two uploads of the same filename never collide.
func (f *gridFileStore) Upload(ctx context.Context, filename string, source io.Reader) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := f.bucket.SetWriteDeadline(deadline); err != nil {
			return "", err
		}
	}

	id, err := f.bucket.UploadFromStream(filename, source)
	if err != nil {
		return "", err
	}

	log.WithField("prefix", fileLogPrefix).WithField("file", filename).Debug("uploaded file")
	return fmt.Sprintf("/%s/%s/%s", AttestationsBucket, id.Hex(), filename), nil
}

// Open resolves a reference produced by Upload and streams the content
// back along with the original filename.
func (f *gridFileStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	parts := strings.SplitN(strings.TrimPrefix(ref, "/"), "/", 3)
	if len(parts) != 3 || parts[0] != AttestationsBucket {
		return nil, "", ErrInvalidFileRef
	}

	id, err := primitive.ObjectIDFromHex(parts[1])
	if err != nil {
		return nil, "", ErrInvalidFileRef
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := f.bucket.SetReadDeadline(deadline); err != nil {
			return nil, "", err
		}
	}

	stream, err := f.bucket.OpenDownloadStream(id)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil, "", ErrFileNotFound
		}
		return nil, "", err
	}

	return stream, parts[2], nil
}
