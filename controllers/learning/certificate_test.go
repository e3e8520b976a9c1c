package controllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	_, token := createUser(t, "Sam Learn", "sam@example.com")

	// Not enrolled at all
	resp := doRequest(t, app, "POST", "/certificates", token, map[string]interface{}{
		"courseId": course.ID,
	})
	require.Equal(t, 400, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "NOT_ENROLLED", body["code"])

	// Enrolled but below 100%
	resp = doRequest(t, app, "POST", "/enrollments", token, map[string]interface{}{"courseId": course.ID})
	enrollmentID := decodeMap(t, resp)["id"].(float64)
	doRequest(t, app, "PUT", fmt.Sprintf("/enrollments?id=%.0f", enrollmentID), token,
		map[string]interface{}{"progress": 99})

	resp = doRequest(t, app, "POST", "/certificates", token, map[string]interface{}{
		"courseId": course.ID,
	})
	require.Equal(t, 400, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "INCOMPLETE_COURSE", body["code"])
}

func TestIssueCertificateOncePerCourse(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	_, token := createUser(t, "Sam Learn", "sam@example.com")

	resp := doRequest(t, app, "POST", "/enrollments", token, map[string]interface{}{"courseId": course.ID})
	enrollmentID := decodeMap(t, resp)["id"].(float64)
	doRequest(t, app, "PUT", fmt.Sprintf("/enrollments?id=%.0f", enrollmentID), token,
		map[string]interface{}{"progress": 100})

	resp = doRequest(t, app, "POST", "/certificates", token, map[string]interface{}{
		"courseId": course.ID,
	})
	require.Equal(t, 201, resp.StatusCode)
	body := decodeMap(t, resp)
	url, _ := body["certificateUrl"].(string)
	assert.True(t, strings.HasPrefix(url, "https://"), "expected a hosted URL, got %q", url)
	assert.True(t, strings.HasSuffix(url, ".pdf"))
	assert.NotNil(t, body["issuedDate"])

	resp = doRequest(t, app, "POST", "/certificates", token, map[string]interface{}{
		"courseId": course.ID,
	})
	require.Equal(t, 400, resp.StatusCode)
	body = decodeMap(t, resp)
	assert.Equal(t, "CERTIFICATE_EXISTS", body["code"])
}

func TestRevokeCertificateOwnership(t *testing.T) {
	app := setupApp(t)
	instructor, _ := createUser(t, "Ira Teach", "ira@example.com")
	course := createCourse(t, instructor.ID, "Go Fundamentals")
	_, ownerToken := createUser(t, "Sam Learn", "sam@example.com")
	_, otherToken := createUser(t, "Pat Other", "pat@example.com")

	resp := doRequest(t, app, "POST", "/enrollments", ownerToken, map[string]interface{}{"courseId": course.ID})
	enrollmentID := decodeMap(t, resp)["id"].(float64)
	doRequest(t, app, "PUT", fmt.Sprintf("/enrollments?id=%.0f", enrollmentID), ownerToken,
		map[string]interface{}{"progress": 100})
	resp = doRequest(t, app, "POST", "/certificates", ownerToken, map[string]interface{}{"courseId": course.ID})
	certID := decodeMap(t, resp)["id"].(float64)
	path := fmt.Sprintf("/certificates?id=%.0f", certID)

	resp = doRequest(t, app, "DELETE", path, otherToken, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", path, ownerToken, nil)
	assert.Equal(t, 200, resp.StatusCode)
}
