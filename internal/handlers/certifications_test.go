package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationCreate_Defaults(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/certifications", adminToken(t), map[string]interface{}{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issueDate": "2024-03-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cert := decodeBody(t, resp)["certification"].(map[string]interface{})
	assert.Equal(t, "CKA", cert["name"])
	assert.Nil(t, cert["expiryDate"])
	assert.Equal(t, float64(0), cert["order"])
}

func TestCertificationList_NewestIssuedFirst(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	for name, issued := range map[string]string{
		"Old Cert": "2020-01-01",
		"New Cert": "2025-01-01",
	} {
		resp := env.doJSON(t, http.MethodPost, "/api/portfolio/certifications", token, map[string]interface{}{
			"name": name, "issuer": "Org", "issueDate": issued,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := env.doJSON(t, http.MethodGet, "/api/portfolio/certifications", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)["certifications"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "New Cert", list[0].(map[string]interface{})["name"])
	assert.Equal(t, "Old Cert", list[1].(map[string]interface{})["name"])
}

func TestCertificationUpdate_ReplacesSkillsWhenPresent(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/certifications", token, map[string]interface{}{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issueDate": "2024-03-10",
		"skills":    []string{"Kubernetes", "Helm"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["certification"].(map[string]interface{})["id"].(string)

	resp = env.doJSON(t, http.MethodPut, "/api/portfolio/certifications/"+id, token, map[string]interface{}{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issueDate": "2024-03-10",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cert := decodeBody(t, resp)["certification"].(map[string]interface{})
	assert.ElementsMatch(t, []interface{}{"Kubernetes", "Helm"}, cert["skills"], "omitted skills keep stored value")

	resp = env.doJSON(t, http.MethodPut, "/api/portfolio/certifications/"+id, token, map[string]interface{}{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issueDate": "2024-03-10",
		"skills":    []string{"Kubernetes"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cert = decodeBody(t, resp)["certification"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Kubernetes"}, cert["skills"])
}

func TestCertificationUpdate_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPut, "/api/portfolio/certifications/8177e5a0-0000-4000-8000-00000000beef", adminToken(t), map[string]interface{}{
		"name": "CKA", "issuer": "CNCF", "issueDate": "2024-03-10",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
