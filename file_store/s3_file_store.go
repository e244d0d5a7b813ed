package file_store

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	CloudFrontPrefix = "https://d20uffqoe1h0vv.cloudfront.net/"
)

// S3AssetStore uploads assets to a public S3 bucket fronted by CloudFront.
type S3AssetStore struct {
	bucket           string
	uploader         *s3manager.Uploader
	svc              *s3.S3
	customizeKeyFunc CustomizeKeyFuncType
}

func NewS3AssetStore(bucket string) (*S3AssetStore, error) {
	// AWS client session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String("us-west-1"),
	})
	if err != nil {
		return nil, err
	}

	return &S3AssetStore{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
		svc:      s3.New(sess),
	}, nil
}

func (s *S3AssetStore) SetCustomizeKeyFunc(f CustomizeKeyFuncType) {
	s.customizeKeyFunc = f
}

func (s *S3AssetStore) Store(r io.Reader, ownerId string, fileName string) (key string, err error) {
	if s.customizeKeyFunc != nil {
		key = s.customizeKeyFunc(ownerId, fileName)
	} else {
		key, err = GenerateAssetKey(ownerId, fileName)
		if err != nil {
			return "", err
		}
	}

	if !s.IsKeyExisted(key) {
		// Upload the file to S3.
		_, err = s.uploader.Upload(&s3manager.UploadInput{
			ACL:    aws.String("public-read"),
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   r,
		})
	}
	return key, err
}

func (s *S3AssetStore) IsKeyExisted(key string) bool {
	_, err := s.svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err == nil
}

func (s *S3AssetStore) GetUrlFromKey(key string) string {
	return CloudFrontPrefix + key
}

func (s *S3AssetStore) CleanUp() {
	// do nothing for s3
}
