//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// Test credentials the mock server accepts.
const (
	testClientID     = "integration-client"
	testClientSecret = "integration-secret"
	testUsername     = "integration@example.com"
	testPassword     = "integration-password"
	testOrgID        = 7001
	testOrgName      = "Integration Org"
)

// mockCloudIQ is an in-process CloudIQ API good enough to run whole client
// workflows against: it issues tokens for the password grant, requires them
// on every other endpoint, and persists created tenants, agreements, and
// subscriptions in memory.
type mockCloudIQ struct {
	Server *httptest.Server

	mu            sync.Mutex
	tokensIssued  int
	nextTenantID  int
	tenants       map[int]*cloudiq.CustomerTenantDetailed
	agreements    map[int][]cloudiq.CustomerTenantAgreement
	subscriptions []cloudiq.SubscriptionDetailed
}

func newMockCloudIQ() *mockCloudIQ {
	mock := &mockCloudIQ{
		nextTenantID: 9000,
		tenants:      map[int]*cloudiq.CustomerTenantDetailed{},
		agreements:   map[int][]cloudiq.CustomerTenantAgreement{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", mock.handleToken)
	mux.HandleFunc("/ping", mock.handlePing)
	mux.HandleFunc("/Me", mock.requireToken(mock.handleMe))
	mux.HandleFunc("/Organizations", mock.requireToken(mock.handleOrganizations))
	mux.HandleFunc("/CustomerTenants", mock.requireToken(mock.handleTenants))
	mux.HandleFunc("/customertenants/", mock.requireToken(mock.handleTenantAgreements))
	mux.HandleFunc("/Subscriptions", mock.requireToken(mock.handleSubscriptions))

	mock.Server = httptest.NewServer(mux)

	return mock
}

func (m *mockCloudIQ) Close() {
	m.Server.Close()
}

// TokensIssued reports how many password grants the server has served.
func (m *mockCloudIQ) TokensIssued() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tokensIssued
}

// Subscriptions returns a copy of every subscription created so far.
func (m *mockCloudIQ) Subscriptions() []cloudiq.SubscriptionDetailed {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]cloudiq.SubscriptionDetailed(nil), m.subscriptions...)
}

// Agreements returns the agreements signed for one tenant.
func (m *mockCloudIQ) Agreements(tenantID int) []cloudiq.CustomerTenantAgreement {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]cloudiq.CustomerTenantAgreement(nil), m.agreements[tenantID]...)
}

// Tenant returns a created tenant by id, or nil.
func (m *mockCloudIQ) Tenant(tenantID int) *cloudiq.CustomerTenantDetailed {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tenants[tenantID]
}

func (m *mockCloudIQ) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	clientID, clientSecret, ok := r.BasicAuth()
	if !ok || clientID != testClientID || clientSecret != testClientSecret {
		writeOAuthError(w, http.StatusUnauthorized, "invalid_client")

		return
	}

	if err := r.ParseForm(); err != nil {
		writeOAuthError(w, http.StatusBadRequest, "invalid_request")

		return
	}

	if r.PostForm.Get("grant_type") != "password" ||
		r.PostForm.Get("username") != testUsername ||
		r.PostForm.Get("password") != testPassword ||
		r.PostForm.Get("scope") != "CustomerApi" {
		writeOAuthError(w, http.StatusBadRequest, "invalid_grant")

		return
	}

	m.mu.Lock()
	m.tokensIssued++
	token := fmt.Sprintf("integration-token-%d", m.tokensIssued)
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"AccessToken": token,
		"TokenType":   "Bearer",
		"ExpiresIn":   3600,
	})
}

// requireToken rejects requests without a Bearer token the server issued.
func (m *mockCloudIQ) requireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer integration-token-") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"Message": "unauthorized"})

			return
		}

		next(w, r)
	}
}

func (m *mockCloudIQ) handlePing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cloudiq.PingResponse{Version: "1.0", Environment: "mock"})
}

func (m *mockCloudIQ) handleMe(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cloudiq.Me{
		User: cloudiq.User{ID: "user-1", UserName: testUsername, Email: testUsername},
	})
}

func (m *mockCloudIQ) handleOrganizations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cloudiq.ListResponse[cloudiq.Organization]{
		Items:     []cloudiq.Organization{{ID: testOrgID, Name: testOrgName}},
		TotalHits: 1,
	})
}

func (m *mockCloudIQ) handleTenants(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		m.mu.Lock()

		items := make([]cloudiq.CustomerTenant, 0, len(m.tenants))
		for _, tenant := range m.tenants {
			items = append(items, tenant.Tenant)
		}

		m.mu.Unlock()

		writeJSON(w, http.StatusOK, cloudiq.ListResponse[cloudiq.CustomerTenant]{
			Items:     items,
			TotalHits: len(items),
		})
	case http.MethodPost:
		var tenant cloudiq.CustomerTenantDetailed
		if err := json.NewDecoder(r.Body).Decode(&tenant); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"Message": err.Error()})

			return
		}

		m.mu.Lock()
		m.nextTenantID++
		tenant.Tenant.ID = m.nextTenantID
		tenant.User = cloudiq.TenantUser{
			UserName: fmt.Sprintf("admin@%s.onmicrosoft.com", tenant.Tenant.DomainPrefix),
			Password: fmt.Sprintf("generated-%d", m.nextTenantID),
		}
		m.tenants[tenant.Tenant.ID] = &tenant
		m.mu.Unlock()

		writeJSON(w, http.StatusOK, tenant)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleTenantAgreements serves POST /customertenants/{id}/agreements.
func (m *mockCloudIQ) handleTenantAgreements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/agreements") {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	var tenantID int
	if _, err := fmt.Sscanf(r.URL.Path, "/customertenants/%d/agreements", &tenantID); err != nil {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	var agreement cloudiq.CustomerTenantAgreement
	if err := json.NewDecoder(r.Body).Decode(&agreement); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": err.Error()})

		return
	}

	m.mu.Lock()
	m.agreements[tenantID] = append(m.agreements[tenantID], agreement)
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, agreement)
}

func (m *mockCloudIQ) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	var subscription cloudiq.SubscriptionDetailed
	if err := json.NewDecoder(r.Body).Decode(&subscription); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"Message": err.Error()})

		return
	}

	m.mu.Lock()
	subscription.ID = len(m.subscriptions) + 1
	m.subscriptions = append(m.subscriptions, subscription)
	m.mu.Unlock()

	writeJSON(w, http.StatusOK, subscription)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOAuthError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
