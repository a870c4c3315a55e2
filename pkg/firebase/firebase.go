package firebase

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app and its storage bucket, used to
// upload post images and serve them from a public URL.
type App struct {
	FirebaseApp *firebase.App
	bucket      *storage.BucketHandle
	bucketName  string
}

// InitFirebase initializes the Firebase application and its default
// storage bucket
func InitFirebase(ctx context.Context, credentialsPath, bucketName string) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("Firebase credentials path not provided")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name not provided")
	}

	// Check if the credentials file exists
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error getting default storage bucket: %w", err)
	}

	log.Println("Firebase app and storage bucket initialized successfully!")
	return &App{FirebaseApp: firebaseApp, bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes the image to the bucket under a uuid-prefixed object name,
// makes it publicly readable and returns its public URL.
func (a *App) Upload(ctx context.Context, fileName string, r io.Reader, contentType string) (string, error) {
	objectName := fmt.Sprintf("posts/%s-%s", uuid.NewString(), fileName)
	obj := a.bucket.Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("error writing image to bucket: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error finalizing image upload: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("error making image public: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", a.bucketName, objectName), nil
}
