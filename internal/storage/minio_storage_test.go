package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/minio/minio-go/v7"
)

type mockMinio struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn   func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	listObjectsFn  func(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	removeObjectFn func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	statObjectFn   func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	getObjectFn    func(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	putObjectFn    func(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	copyObjectFn   func(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	return m.listObjectsFn(ctx, bucketName, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.statObjectFn(ctx, bucket, key, opts)
}
func (m *mockMinio) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return m.getObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (m *mockMinio) CopyObject(ctx context.Context, dst minio.CopyDestOptions, src minio.CopySrcOptions) (minio.UploadInfo, error) {
	return m.copyObjectFn(ctx, dst, src)
}

func TestInitBucket(t *testing.T) {
	tests := []struct {
		name           string
		exists         bool
		existsErr      error
		makeErr        error
		wantMakeCalled bool
		wantErr        bool
	}{
		{name: "bucket exists, no create", exists: true},
		{name: "bucket missing, create succeeds", wantMakeCalled: true},
		{name: "BucketExists error bubbles up", existsErr: errors.New("exist fail"), wantErr: true},
		{name: "MakeBucket error bubbles up", makeErr: errors.New("make fail"), wantMakeCalled: true, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			makeCalled := false
			client := &mockMinio{
				bucketExistsFn: func(ctx context.Context, bucketName string) (bool, error) {
					return tc.exists, tc.existsErr
				},
				makeBucketFn: func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
					makeCalled = true
					return tc.makeErr
				},
			}
			s := &MinioStorage{client: client, bucketName: "media"}

			err := s.InitBucket()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if makeCalled != tc.wantMakeCalled {
				t.Errorf("MakeBucket called = %v; want %v", makeCalled, tc.wantMakeCalled)
			}
		})
	}
}

func TestStatFile_MapsNotFound(t *testing.T) {
	client := &mockMinio{
		statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
		},
	}
	s := &MinioStorage{client: client, bucketName: "media"}

	_, err := s.StatFile(context.Background(), "thumbnails/ghost.jpg")
	if !errors.Is(err, port.ErrObjectNotFound) {
		t.Fatalf("got error %v; want ErrObjectNotFound", err)
	}
}

func TestStatFile_Success(t *testing.T) {
	client := &mockMinio{
		statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
			return minio.ObjectInfo{Size: 1234, ContentType: "image/jpeg"}, nil
		},
	}
	s := &MinioStorage{client: client, bucketName: "media"}

	info, err := s.StatFile(context.Background(), "thumbnails/clip.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.SizeBytes != 1234 || info.ContentType != "image/jpeg" {
		t.Errorf("info = %+v", info)
	}
}

func TestFileExists(t *testing.T) {
	tests := []struct {
		name    string
		statErr error
		want    bool
		wantErr bool
	}{
		{name: "present", want: true},
		{name: "absent", statErr: minio.ErrorResponse{Code: "NoSuchKey"}},
		{name: "backend failure", statErr: errors.New("i/o timeout"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &mockMinio{
				statObjectFn: func(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
					return minio.ObjectInfo{Size: 1}, tc.statErr
				},
			}
			s := &MinioStorage{client: client, bucketName: "media"}

			got, err := s.FileExists(context.Background(), "thumbnails/clip.jpg")
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("exists = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestListKeys(t *testing.T) {
	client := &mockMinio{
		listObjectsFn: func(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 2)
			ch <- minio.ObjectInfo{Key: opts.Prefix + "a.jpg"}
			ch <- minio.ObjectInfo{Key: opts.Prefix + "b.mov"}
			close(ch)
			return ch
		},
	}
	s := &MinioStorage{client: client, bucketName: "media"}

	keys, err := s.ListKeys(context.Background(), "thumbnails/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "thumbnails/a.jpg" || keys[1] != "thumbnails/b.mov" {
		t.Errorf("keys = %v", keys)
	}
}

func TestListKeys_PropagatesListingError(t *testing.T) {
	client := &mockMinio{
		listObjectsFn: func(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Err: errors.New("listing blew up")}
			close(ch)
			return ch
		},
	}
	s := &MinioStorage{client: client, bucketName: "media"}

	if _, err := s.ListKeys(context.Background(), "thumbnails/"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMapMinioErr(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", port.ErrObjectNotFound},
		{"NoSuchBucket", port.ErrBucketNotFound},
		{"AccessDenied", port.ErrUnauthorized},
		{"InvalidAccessKeyId", port.ErrUnauthorized},
		{"SignatureDoesNotMatch", port.ErrUnauthorized},
		{"SlowDown", port.ErrInternal},
	}
	for _, tc := range tests {
		got := mapMinioErr(minio.ErrorResponse{Code: tc.code})
		if !errors.Is(got, tc.want) {
			t.Errorf("mapMinioErr(%s) = %v; want %v", tc.code, got, tc.want)
		}
	}
	if mapMinioErr(nil) != nil {
		t.Error("nil must map to nil")
	}
}

func TestMapMinioErr_KeepsCauseInChain(t *testing.T) {
	got := mapMinioErr(context.DeadlineExceeded)
	if !errors.Is(got, port.ErrInternal) {
		t.Fatalf("got %v; want ErrInternal", got)
	}
	if !errors.Is(got, context.DeadlineExceeded) {
		t.Errorf("cause lost from chain: %v", got)
	}
}
