package db

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
)

// NewClient opens a Firestore client for the project named by
// FIRESTORE_PROJECT_ID, falling back to GOOGLE_CLOUD_PROJECT. Credentials
// resolve through the standard client library lookup order
// (GOOGLE_APPLICATION_CREDENTIALS, then ambient service account).
func NewClient(ctx context.Context) (*firestore.Client, error) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID environment variable not set")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("unable to create firestore client: %w", err)
	}
	return client, nil
}
