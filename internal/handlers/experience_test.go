package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceCreate_EndDateRequiredUnlessCurrent(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	base := map[string]interface{}{
		"company":     "Acme",
		"position":    "Engineer",
		"startDate":   "2022-01-15",
		"description": "Built the platform.",
	}

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, base)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "endDate is required unless current is true", body["error"])

	// current: true lifts the requirement
	base["current"] = true
	resp = env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, base)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decodeBody(t, resp)["experience"].(map[string]interface{})
	assert.Equal(t, true, entry["current"])
	assert.Nil(t, entry["endDate"])

	// an explicit endDate works without current
	delete(base, "current")
	base["company"] = "Globex"
	base["endDate"] = "2023-06-30"
	resp = env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, base)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestExperienceCreate_BadDate(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/experience", adminToken(t), map[string]interface{}{
		"company":     "Acme",
		"position":    "Engineer",
		"startDate":   "January 2022",
		"description": "x",
		"current":     true,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "startDate must be a valid date", body["error"])
}

func TestExperienceList_OrderThenRecency(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	mk := func(company, start string, order int) {
		resp := env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, map[string]interface{}{
			"company":     company,
			"position":    "Engineer",
			"startDate":   start,
			"current":     true,
			"description": "x",
			"order":       order,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	mk("Oldest", "2018-01-01", 2)
	mk("Newest", "2024-01-01", 2)
	mk("Pinned", "2020-01-01", 1)

	resp := env.doJSON(t, http.MethodGet, "/api/portfolio/experience", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)["experience"].([]interface{})
	require.Len(t, list, 3)

	var companies []string
	for _, it := range list {
		companies = append(companies, it.(map[string]interface{})["company"].(string))
	}
	// lower order first, then newer start dates
	assert.Equal(t, []string{"Pinned", "Newest", "Oldest"}, companies)
}

func TestExperienceUpdate_CoalescesAndReplacesLists(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, map[string]interface{}{
		"company":      "Acme",
		"position":     "Engineer",
		"location":     "Remote",
		"startDate":    "2022-01-15",
		"current":      true,
		"description":  "Built the platform.",
		"technologies": []string{"Go", "Postgres"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["experience"].(map[string]interface{})["id"].(string)

	// omitted location and technologies keep their stored values
	resp = env.doJSON(t, http.MethodPut, "/api/portfolio/experience/"+id, token, map[string]interface{}{
		"company":     "Acme Corp",
		"position":    "Senior Engineer",
		"startDate":   "2022-01-15",
		"current":     true,
		"description": "Built and ran the platform.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := decodeBody(t, resp)["experience"].(map[string]interface{})
	assert.Equal(t, "Acme Corp", entry["company"])
	assert.Equal(t, "Remote", entry["location"])
	assert.ElementsMatch(t, []interface{}{"Go", "Postgres"}, entry["technologies"])

	// a present list replaces wholesale
	resp = env.doJSON(t, http.MethodPut, "/api/portfolio/experience/"+id, token, map[string]interface{}{
		"company":      "Acme Corp",
		"position":     "Senior Engineer",
		"startDate":    "2022-01-15",
		"current":      true,
		"description":  "Built and ran the platform.",
		"technologies": []string{"Go"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry = decodeBody(t, resp)["experience"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Go"}, entry["technologies"])
}

func TestExperienceDelete(t *testing.T) {
	env := newTestEnv(t)
	token := adminToken(t)

	resp := env.doJSON(t, http.MethodPost, "/api/portfolio/experience", token, map[string]interface{}{
		"company":     "Acme",
		"position":    "Engineer",
		"startDate":   "2022-01-15",
		"current":     true,
		"description": "x",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["experience"].(map[string]interface{})["id"].(string)

	resp = env.doJSON(t, http.MethodDelete, "/api/portfolio/experience/"+id, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	entries, err := env.store.ListExperience(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	resp = env.doJSON(t, http.MethodDelete, "/api/portfolio/experience/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
