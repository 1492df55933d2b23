package forge

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/rios0rios0/ferrypick/internal/domain/repositories"
)

const userAgent = "ferrypick"

// PatchRepository downloads raw patches over HTTP(S) from the forge.
type PatchRepository struct {
	httpClient *http.Client
}

var _ domainRepos.PatchRepository = (*PatchRepository)(nil)

// NewPatchRepository creates a PatchRepository. Deadlines come from the context
// handed to Download.
func NewPatchRepository() *PatchRepository {
	return &PatchRepository{httpClient: &http.Client{}}
}

// Download performs a single GET of patchURL and returns the response body.
func (r *PatchRepository) Download(ctx context.Context, patchURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, patchURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", patchURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("unexpected status %d from %s", resp.StatusCode, patchURL)
	}

	logger.Debugf("Downloaded %d bytes from %s", len(body), patchURL)
	return body, nil
}
