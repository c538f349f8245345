package fixtures

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/myarea/app-myarea/tests/config"
)

// APIClient wraps HTTP client with common test functionality
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Language   string
}

// NewAPIClient creates a new API client for testing
func NewAPIClient(cfg *config.TestConfig) *APIClient {
	return &APIClient{
		BaseURL: cfg.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.APICallTimeout) * time.Second,
		},
	}
}

// Get performs a GET request
func (c *APIClient) Get(path string) (*http.Response, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body
func (c *APIClient) Post(path string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body
func (c *APIClient) Put(path string, body interface{}) (*http.Response, error) {
	return c.do(http.MethodPut, path, body)
}

// Delete performs a DELETE request
func (c *APIClient) Delete(path string) (*http.Response, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *APIClient) do(method, path string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Language != "" {
		req.Header.Set("Accept-Language", c.Language)
	}

	return c.HTTPClient.Do(req)
}

// SignupCredentials returns the credentials sent by the signup flow
func SignupCredentials(cfg *config.TestConfig) map[string]string {
	return map[string]string{
		"inputMethod": "phone",
		"identifier":  cfg.TestPhone,
		"password":    cfg.TestPassword,
	}
}

// TestProfileForm returns a profile completion form that passes validation
func TestProfileForm() map[string]interface{} {
	return map[string]interface{}{
		"firstName": "Priya",
		"lastName":  "Sharma",
		"age":       "34",
		"gender":    "female",
		"address": map[string]string{
			"houseNo": "12",
			"street":  "Lake View Road",
			"area":    "T Nagar",
			"ward":    "Ward 9",
			"city":    "Chennai",
			"pincode": "600017",
		},
		"emergencyContacts": []map[string]string{
			{"name": "Ravi Sharma", "relation": "Spouse", "phone": "9876543211"},
		},
	}
}
