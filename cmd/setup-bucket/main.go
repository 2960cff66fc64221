package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// One-time setup for the upload bucket: creates it if missing, applies a
// public-read policy (product images are served straight from the bucket),
// and smoke-tests write permission.
func main() {
	godotenv.Load()

	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := os.Getenv("S3_REGION")

	fmt.Printf("Endpoint: %s\n", endpoint)
	fmt.Printf("Bucket: %s\n", bucket)
	fmt.Printf("Region: %s\n", region)

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
		fmt.Printf("✓ Bucket '%s' created\n", bucket)
	} else {
		fmt.Printf("✓ Bucket '%s' exists\n", bucket)
	}

	// Product images are linked directly from the storefront, so the whole
	// bucket is public-read.
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Sid":       "PublicRead",
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}

	policyJSON, _ := json.MarshalIndent(policy, "", "  ")

	fmt.Println("\n--- Setting Bucket Policy ---")
	fmt.Println(string(policyJSON))

	if err := client.SetBucketPolicy(ctx, bucket, string(policyJSON)); err != nil {
		log.Printf("⚠️  Warning: Failed to set policy: %v", err)
	} else {
		fmt.Println("✓ Bucket policy set successfully")
	}

	// Smoke test: upload then remove a small object.
	fmt.Print("Testing PutObject... ")
	testContent := []byte("upload permission check")
	_, err = client.PutObject(ctx, bucket, "test/upload-test.txt",
		bytes.NewReader(testContent), int64(len(testContent)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		fmt.Printf("❌ Failed: %v\n", err)
	} else {
		fmt.Println("✓ OK")
		client.RemoveObject(ctx, bucket, "test/upload-test.txt", minio.RemoveObjectOptions{})
	}

	fmt.Println("\nSetup complete.")
}
