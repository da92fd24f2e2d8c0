package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/andrejsk/prodcatalog/internal/filex"
	"github.com/andrejsk/prodcatalog/internal/netx"
)

// readFile and uploadToPresignedURL are test seams.
var readFile = os.ReadFile
var uploadToPresignedURL = netx.UploadToS3PresignedURL

// Upload reads an image file, asks the server for a presigned upload URL and
// PUTs the bytes straight to object storage. The resulting storage key is
// printed so it can be attached to a product.
func (a *App) Upload(ctx context.Context) error {
	filePath, err := getSimpleText(a.reader, "Enter path to image file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := readFile(filePath)
	if err != nil {
		log.Printf("Cannot read file: %s", err.Error())
		return err
	}

	key, uploadURL, err := a.api.createUpload(ctx)
	if err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return err
	}

	if err := uploadToPresignedURL(uploadURL, data); err != nil {
		log.Printf("Upload unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Uploaded. Storage key: %s\n", key)
	return nil
}

// Fetch resolves a storage key to a presigned download URL and saves the
// image bytes under ./downloads.
func (a *App) Fetch(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter storage key", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.api.imageURL(ctx, key)
	if err != nil {
		log.Printf("Fetch unsuccessful: %s", err.Error())
		return err
	}

	resp, err := http.Get(url)
	if err != nil {
		log.Printf("Fetch unsuccessful: %s", err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Fetch unsuccessful: %s", resp.Status)
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	dir, err := filex.EnsureSubdDir("downloads")
	if err != nil {
		return err
	}

	target := path.Join(dir, path.Base(key))
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}

	fmt.Printf("Saved to %s\n", target)
	return nil
}
