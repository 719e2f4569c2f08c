package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Bucket bootstrap for the logo blob store. Run once against a fresh
// MinIO/R2 account before starting the API.
func main() {
	godotenv.Load()

	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := os.Getenv("S3_REGION")

	fmt.Println("CareRelay logo bucket setup")
	fmt.Printf("Endpoint: %s\n", endpoint)
	fmt.Printf("Bucket:   %s\n", bucket)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			log.Fatalf("Failed to create bucket '%s': %v", bucket, err)
		}
		fmt.Printf("Bucket '%s' created\n", bucket)
	} else {
		fmt.Printf("Bucket '%s' exists\n", bucket)
	}

	// Verify the access key can do what the logo flow needs: PUT via
	// presigned URL, stat on registration, delete on cleanup.
	fmt.Print("Testing PutObject... ")
	testContent := []byte("upload permission check")
	_, err = client.PutObject(ctx, bucket, "logos/setup-test.txt",
		bytes.NewReader(testContent), int64(len(testContent)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")

	fmt.Print("Testing StatObject... ")
	if _, err := client.StatObject(ctx, bucket, "logos/setup-test.txt", minio.StatObjectOptions{}); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")

	fmt.Print("Testing RemoveObject... ")
	if err := client.RemoveObject(ctx, bucket, "logos/setup-test.txt", minio.RemoveObjectOptions{}); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")

	fmt.Println(`
Remember to configure CORS on the bucket so browsers can PUT to
presigned URLs:

[
  {
    "AllowedOrigins": ["*"],
    "AllowedMethods": ["GET", "HEAD", "PUT"],
    "AllowedHeaders": ["*"],
    "ExposeHeaders": ["ETag", "Content-Length"],
    "MaxAgeSeconds": 3600
  }
]

Restrict AllowedOrigins to the frontend URL in production.`)

	fmt.Println("\nSetup complete")
}
