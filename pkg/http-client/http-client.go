package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/apihelpers"
)

// ClientConfig describes one downstream HTTP API the portal talks to.
type ClientConfig struct {
	RootURL              string
	APIKey               string
	MTLSCertificatePaths *apihelpers.CertificatePaths
	Timeout              time.Duration
}

func (cConfig ClientConfig) newClient() (*http.Client, error) {
	client := &http.Client{
		Timeout: cConfig.Timeout,
	}

	if cConfig.MTLSCertificatePaths != nil {
		tlsConfig, err := apihelpers.LoadTLSConfig(*cConfig.MTLSCertificatePaths)
		if err != nil {
			return nil, err
		}
		client.Transport = &http.Transport{
			TLSClientConfig: tlsConfig,
		}
	}
	return client, nil
}

// RunHTTPGet fetches pathname from the downstream API and decodes the JSON
// response into target.
func (cConfig ClientConfig) RunHTTPGet(pathname string, target interface{}) error {
	client, err := cConfig.newClient()
	if err != nil {
		slog.Error("Error creating http client", slog.String("error", err.Error()))
		return err
	}

	req, err := http.NewRequest(http.MethodGet, cConfig.RootURL+pathname, nil)
	if err != nil {
		return err
	}
	if cConfig.APIKey != "" {
		req.Header.Set("Api-Key", cConfig.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error in http call", slog.String("url", cConfig.RootURL+pathname), slog.String("error", err.Error()))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, pathname)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// RunHTTPPost sends payload as JSON to pathname and decodes the JSON response
// into target if target is not nil.
func (cConfig ClientConfig) RunHTTPPost(pathname string, payload interface{}, target interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client, err := cConfig.newClient()
	if err != nil {
		slog.Error("Error creating http client", slog.String("error", err.Error()))
		return err
	}

	req, err := http.NewRequest(http.MethodPost, cConfig.RootURL+pathname, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	if cConfig.APIKey != "" {
		req.Header.Set("Api-Key", cConfig.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		slog.Error("unexpected error in http call", slog.String("url", cConfig.RootURL+pathname), slog.String("error", err.Error()))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, pathname)
	}
	if target == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
